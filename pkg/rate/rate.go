// Package rate provides byte-rate sampling for instrumented streams. A
// Sampler accumulates the bytes observed by a wrapping adapter and, once the
// configured window has elapsed, reports the bytes-per-second rate to a Sink.
package rate

import "fmt"

// ByteRate is a bytes-per-second magnitude.
type ByteRate uint64

// Binary-prefix magnitudes used for formatting.
const (
	KiB ByteRate = 1 << (10 * (iota + 1))
	MiB
	GiB
	TiB
)

// String renders the rate with two fractional digits and a binary-prefix
// unit. Bands are half-open: a value formats in the largest unit it reaches.
// The default case covers the top of the uint64 range, so every value
// formats.
func (r ByteRate) String() string {
	n := float64(r)

	switch {
	case r < KiB:
		return fmt.Sprintf("%.2f B/s", n)
	case r < MiB:
		return fmt.Sprintf("%.2f KiB/s", n/float64(KiB))
	case r < GiB:
		return fmt.Sprintf("%.2f MiB/s", n/float64(MiB))
	case r < TiB:
		return fmt.Sprintf("%.2f GiB/s", n/float64(GiB))
	default:
		return fmt.Sprintf("%.2f TiB/s", n/float64(TiB))
	}
}
