package tap

import (
	"io"

	"code.cloudfoundry.org/throughput/pkg/rate"
	"code.cloudfoundry.org/throughput/pkg/sink"
)

// Writer wraps an io.Writer and reports its throughput. It accepts exactly
// the bytes and returns exactly the errors the underlying writer does.
type Writer struct {
	w       io.Writer
	sampler *rate.Sampler
}

// NewWriter returns a Writer wrapping w, reporting rates to s.
func NewWriter(w io.Writer, s rate.Sink, opts ...rate.SamplerOption) *Writer {
	return &Writer{
		w:       w,
		sampler: rate.NewSampler(s, opts...),
	}
}

// NewStdoutWriter returns a Writer printing formatted rates to stdout.
func NewStdoutWriter(w io.Writer, opts ...rate.SamplerOption) *Writer {
	return NewWriter(w, sink.NewStdoutSink(), opts...)
}

// NewStderrWriter returns a Writer printing formatted rates to stderr.
func NewStderrWriter(w io.Writer, opts ...rate.SamplerOption) *Writer {
	return NewWriter(w, sink.NewStderrSink(), opts...)
}

// NewChannelWriter returns a Writer forwarding rates into c, dropping them
// if the receiver is not keeping up.
func NewChannelWriter(w io.Writer, c chan<- rate.ByteRate, opts ...rate.SamplerOption) *Writer {
	return NewWriter(w, sink.NewChannelSink(c), opts...)
}

// Write writes to the underlying writer and records the count actually
// written. A failed write with no bytes written records nothing. The count
// and error are returned untouched.
func (t *Writer) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 || err == nil {
		t.sampler.Record(uint64(n))
	}

	return n, err
}

// ReadFrom copies r to the underlying writer, recording every chunk. When
// the underlying writer implements io.ReaderFrom the copy is delegated to
// it through a sampling reader sharing this Writer's accumulator.
func (t *Writer) ReadFrom(r io.Reader) (int64, error) {
	if rf, ok := t.w.(io.ReaderFrom); ok {
		return rf.ReadFrom(&Reader{r: r, sampler: t.sampler})
	}

	return io.Copy(onlyWriter{t}, r)
}

// Flush forwards to the underlying writer's Flush when it has one. Flushing
// records no sample.
func (t *Writer) Flush() error {
	if f, ok := t.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// Close closes the underlying writer when it is an io.Closer. Closing
// records no sample.
func (t *Writer) Close() error {
	if c, ok := t.w.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// onlyWriter hides ReadFrom so io.Copy falls back to Write.
type onlyWriter struct {
	io.Writer
}
