package sink

import "code.cloudfoundry.org/throughput/pkg/rate"

// TeeSink fans each reported rate out to several sinks, in order.
type TeeSink struct {
	sinks []rate.Sink
}

// NewTeeSink returns a TeeSink reporting to each of the given sinks.
func NewTeeSink(sinks ...rate.Sink) *TeeSink {
	return &TeeSink{sinks: sinks}
}

// OnRate reports the rate to every sink.
func (s *TeeSink) OnRate(r rate.ByteRate) {
	for _, sk := range s.sinks {
		sk.OnRate(r)
	}
}
