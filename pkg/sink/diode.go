package sink

import (
	"log"

	"code.cloudfoundry.org/go-diodes"
	"code.cloudfoundry.org/throughput/pkg/rate"
)

// DiodeSink buffers reported rates through a one-to-one diode for a single
// consuming goroutine. Under pressure old rates are overwritten and the
// number missed is logged.
type DiodeSink struct {
	d *diodes.Poller
}

// NewDiodeSink returns a DiodeSink holding up to size rates.
func NewDiodeSink(size int) *DiodeSink {
	s := &DiodeSink{}

	s.d = diodes.NewPoller(diodes.NewOneToOne(size, s))

	return s
}

// OnRate stores the rate for the consumer.
func (s *DiodeSink) OnRate(r rate.ByteRate) {
	s.d.Set(diodes.GenericDataType(&r))
}

// TryNext returns the next buffered rate if one is available.
func (s *DiodeSink) TryNext() (rate.ByteRate, bool) {
	v, ok := s.d.TryNext()
	if !ok {
		return 0, false
	}

	return *(*rate.ByteRate)(v), true
}

// Next blocks until a rate is available and returns it.
func (s *DiodeSink) Next() rate.ByteRate {
	v := s.d.Next()

	return *(*rate.ByteRate)(v)
}

// Alert implements the diode alerter, logging how many rates were
// overwritten before the consumer caught up.
func (s *DiodeSink) Alert(missed int) {
	log.Printf("dropped %d rate samples", missed)
}
