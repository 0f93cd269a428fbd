package tap

import (
	"iter"
	"unsafe"

	"code.cloudfoundry.org/throughput/pkg/rate"
	"code.cloudfoundry.org/throughput/pkg/sink"
)

// Seq returns a sequence yielding the same elements, in the same order, as
// seq, reporting throughput to s. Each element is costed at its shallow
// in-memory size, not its serialized size; use SizedSeq to cost elements
// differently. The size is recorded before the element is yielded onward.
func Seq[T any](seq iter.Seq[T], s rate.Sink, opts ...rate.SamplerOption) iter.Seq[T] {
	var zero T
	size := uint64(unsafe.Sizeof(zero))

	return SizedSeq(seq, func(T) uint64 { return size }, s, opts...)
}

// SizedSeq is Seq with a caller-supplied cost per element, for callers that
// want serialized or payload sizes instead of in-memory sizes.
func SizedSeq[T any](seq iter.Seq[T], sizeOf func(T) uint64, s rate.Sink, opts ...rate.SamplerOption) iter.Seq[T] {
	sampler := rate.NewSampler(s, opts...)

	return func(yield func(T) bool) {
		for v := range seq {
			sampler.Record(sizeOf(v))
			if !yield(v) {
				return
			}
		}
	}
}

// StdoutSeq returns a sequence printing formatted rates to stdout.
func StdoutSeq[T any](seq iter.Seq[T], opts ...rate.SamplerOption) iter.Seq[T] {
	return Seq(seq, sink.NewStdoutSink(), opts...)
}

// StderrSeq returns a sequence printing formatted rates to stderr.
func StderrSeq[T any](seq iter.Seq[T], opts ...rate.SamplerOption) iter.Seq[T] {
	return Seq(seq, sink.NewStderrSink(), opts...)
}

// ChannelSeq returns a sequence forwarding rates into c, dropping them if
// the receiver is not keeping up.
func ChannelSeq[T any](seq iter.Seq[T], c chan<- rate.ByteRate, opts ...rate.SamplerOption) iter.Seq[T] {
	return Seq(seq, sink.NewChannelSink(c), opts...)
}
