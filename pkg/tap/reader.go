// Package tap wraps readers, writers, and sequences so that the bytes
// flowing through them are reported as rates, without changing what the
// wrapped stream produces.
package tap

import (
	"io"

	"code.cloudfoundry.org/throughput/pkg/rate"
	"code.cloudfoundry.org/throughput/pkg/sink"
)

// Reader wraps an io.Reader and reports its throughput. It yields exactly
// the bytes and errors the underlying reader yields.
type Reader struct {
	r       io.Reader
	sampler *rate.Sampler
}

// NewReader returns a Reader wrapping r, reporting rates to s.
func NewReader(r io.Reader, s rate.Sink, opts ...rate.SamplerOption) *Reader {
	return &Reader{
		r:       r,
		sampler: rate.NewSampler(s, opts...),
	}
}

// NewStdoutReader returns a Reader printing formatted rates to stdout.
func NewStdoutReader(r io.Reader, opts ...rate.SamplerOption) *Reader {
	return NewReader(r, sink.NewStdoutSink(), opts...)
}

// NewStderrReader returns a Reader printing formatted rates to stderr.
func NewStderrReader(r io.Reader, opts ...rate.SamplerOption) *Reader {
	return NewReader(r, sink.NewStderrSink(), opts...)
}

// NewChannelReader returns a Reader forwarding rates into c, dropping them
// if the receiver is not keeping up.
func NewChannelReader(r io.Reader, c chan<- rate.ByteRate, opts ...rate.SamplerOption) *Reader {
	return NewReader(r, sink.NewChannelSink(c), opts...)
}

// Read reads from the underlying reader and records the count actually
// read. Zero-byte reads and EOF record a zero sample, which still lets
// elapsed time close a window; any other error with no bytes read records
// nothing. The count and error are returned untouched.
func (t *Reader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 || err == nil || err == io.EOF {
		t.sampler.Record(uint64(n))
	}

	return n, err
}

// WriteTo copies the rest of the stream to w, recording every chunk. When
// the underlying reader implements io.WriterTo the copy is delegated to it
// through a sampling writer sharing this Reader's accumulator.
func (t *Reader) WriteTo(w io.Writer) (int64, error) {
	if wt, ok := t.r.(io.WriterTo); ok {
		return wt.WriteTo(&Writer{w: w, sampler: t.sampler})
	}

	return io.Copy(w, onlyReader{t})
}

// Close closes the underlying reader when it is an io.Closer. Closing
// records no sample.
func (t *Reader) Close() error {
	if c, ok := t.r.(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// onlyReader hides WriteTo so io.Copy falls back to Read.
type onlyReader struct {
	io.Reader
}
