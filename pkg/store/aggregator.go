package store

import (
	"container/ring"
	"errors"
	"os"
	"sort"
	"sync"

	"code.cloudfoundry.org/lager"
	"code.cloudfoundry.org/throughput/pkg/rate"
	"github.com/benbjohnson/clock"
)

var errNoObservations = errors.New("no observations")

// Aggregator retains the most recent reported rates in a fixed number of
// buckets. It implements rate.Sink, so it can be handed directly to a
// sampler or composed behind a tee. It bridges the single-owner sampler to
// concurrent readers, so access is guarded; the sampler itself stays
// lock-free.
type Aggregator struct {
	mu   sync.RWMutex
	data *ring.Ring

	maxBuckets int
	clock      clock.Clock
	logger     lager.Logger
}

// NewAggregator returns an initialized Aggregator.
func NewAggregator(opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{
		maxBuckets: 10,
		clock:      clock.New(),
		logger:     lager.NewLogger("aggregator"),
	}

	a.logger.RegisterSink(lager.NewWriterSink(os.Stdout, lager.INFO))
	for _, o := range opts {
		o(a)
	}

	a.data = ring.New(a.maxBuckets)
	return a
}

// OnRate stores the reported rate with the current time, evicting the
// oldest bucket when full.
func (a *Aggregator) OnRate(r rate.ByteRate) {
	ts := a.clock.Now().Unix()

	a.mu.Lock()
	a.data = a.data.Next()
	a.data.Value = Observation{
		Timestamp:   ts,
		BytesPerSec: r,
	}
	a.mu.Unlock()
}

// Observations returns the retained observations sorted by timestamp.
func (a *Aggregator) Observations() Observations {
	a.mu.RLock()
	defer a.mu.RUnlock()

	obs := make([]Observation, 0, a.data.Len())
	a.data.Next().Do(func(value interface{}) {
		if value == nil {
			return
		}

		obs = append(obs, value.(Observation))
	})

	sort.Sort(Observations(obs))

	return obs
}

// Latest returns the most recently stored observation. It returns an error
// when nothing has been reported yet.
func (a *Aggregator) Latest() (Observation, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.data.Value == nil {
		a.logger.Debug("no observation available")
		return Observation{}, errNoObservations
	}

	return a.data.Value.(Observation), nil
}

// AggregatorOption are funcs that can be used to configure an Aggregator at
// initialization.
type AggregatorOption func(a *Aggregator)

// WithMaxBuckets returns an AggregatorOption to configure the max number of
// observation buckets to retain.
func WithMaxBuckets(n int) AggregatorOption {
	return func(a *Aggregator) {
		a.maxBuckets = n
	}
}

// WithLogger returns an AggregatorOption to override the logger.
func WithLogger(l lager.Logger) AggregatorOption {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// WithAggregatorClock returns an AggregatorOption to override the clock
// used for timestamps.
func WithAggregatorClock(c clock.Clock) AggregatorOption {
	return func(a *Aggregator) {
		a.clock = c
	}
}
