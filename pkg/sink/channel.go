package sink

import "code.cloudfoundry.org/throughput/pkg/rate"

// ChannelSink forwards reported rates into a channel for consumption by
// another goroutine. Sends are best effort: a full or unconsumed channel
// drops the rate rather than blocking the instrumented stream.
type ChannelSink struct {
	c chan<- rate.ByteRate
}

// NewChannelSink returns a ChannelSink forwarding into c.
func NewChannelSink(c chan<- rate.ByteRate) *ChannelSink {
	return &ChannelSink{c: c}
}

// OnRate sends the rate without blocking, dropping it if the receiver is
// not keeping up.
func (s *ChannelSink) OnRate(r rate.ByteRate) {
	select {
	case s.c <- r:
	default:
	}
}
