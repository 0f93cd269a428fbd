// Package sink provides ready-made rate.Sink implementations: formatted
// printing, best-effort channel forwarding, diode buffering for a consuming
// goroutine, and fan-out.
package sink

import (
	"fmt"
	"io"
	"os"

	"code.cloudfoundry.org/throughput/pkg/rate"
)

// WriterSink prints each reported rate, formatted, on its own line.
type WriterSink struct {
	w io.Writer
}

// NewWriterSink returns a WriterSink printing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// NewStdoutSink returns a WriterSink printing to stdout.
func NewStdoutSink() *WriterSink {
	return NewWriterSink(os.Stdout)
}

// NewStderrSink returns a WriterSink printing to stderr.
func NewStderrSink() *WriterSink {
	return NewWriterSink(os.Stderr)
}

// OnRate writes the formatted rate. Write errors are discarded; reporting
// must never fail the instrumented stream.
func (s *WriterSink) OnRate(r rate.ByteRate) {
	_, _ = fmt.Fprintln(s.w, r)
}
