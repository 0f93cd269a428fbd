package rate

// Sink receives the rates a Sampler reports. Implementations must not block
// for long: OnRate runs on the same goroutine and stack as the Record call
// that triggered it.
type Sink interface {
	OnRate(ByteRate)
}

// SinkFunc adapts a plain func to the Sink interface.
type SinkFunc func(ByteRate)

// OnRate calls f with the reported rate.
func (f SinkFunc) OnRate(r ByteRate) {
	f(r)
}
