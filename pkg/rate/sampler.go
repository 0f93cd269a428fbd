package rate

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Sampler accumulates observed bytes and reports the bytes-per-second rate
// to its Sink once the configured window has elapsed. A Sampler is owned by
// the single goroutine driving the wrapped stream; it takes no locks and is
// not safe for concurrent use.
type Sampler struct {
	sink   Sink
	window time.Duration
	clock  clock.Clock

	accumulated uint64
	windowStart time.Time
}

// NewSampler returns a Sampler reporting to s every DefaultWindow.
func NewSampler(s Sink, opts ...SamplerOption) *Sampler {
	sm := &Sampler{
		sink:   s,
		window: DefaultWindow,
		clock:  clock.New(),
	}

	for _, o := range opts {
		o(sm)
	}

	sm.windowStart = sm.clock.Now()
	return sm
}

// Record adds n to the bytes observed in the current window. If at least one
// window has elapsed since the last report, it computes the rate over the
// actual elapsed time, resets the accumulator, and reports exactly once.
//
// The rate divides accumulated bytes by fractional elapsed seconds,
// truncating on conversion. Zero elapsed time never reports, so a window of
// zero (or less) degenerates to reporting on every Record call with
// positive elapsed time. Partial accumulation is discarded when the Sampler
// is dropped; there is no final flush.
func (s *Sampler) Record(n uint64) {
	s.accumulated += n

	elapsed := s.clock.Since(s.windowStart)
	if elapsed < s.window || elapsed <= 0 {
		return
	}

	bps := ByteRate(float64(s.accumulated) / elapsed.Seconds())
	s.windowStart = s.clock.Now()
	s.accumulated = 0
	s.sink.OnRate(bps)
}

// SamplerOption configures a Sampler at initialization.
type SamplerOption func(*Sampler)

// WithWindow sets the minimum duration between reports.
func WithWindow(d time.Duration) SamplerOption {
	return func(s *Sampler) {
		s.window = d
	}
}

// WithWindowConfig reads the window from a per-pipeline WindowConfig. The
// value is read once, here; later changes to the config do not affect this
// Sampler.
func WithWindowConfig(c *WindowConfig) SamplerOption {
	return func(s *Sampler) {
		s.window = c.Get()
	}
}

// WithClock overrides the clock used to measure elapsed time.
func WithClock(c clock.Clock) SamplerOption {
	return func(s *Sampler) {
		s.clock = c
	}
}
