package rate

import "time"

// DefaultWindow is the minimum duration between reports when no window has
// been configured.
const DefaultWindow = time.Second

// WindowConfig holds the reporting window for a single pipeline. Each
// pipeline owns its own WindowConfig, so independent pipelines configure
// their cadence without interfering. A WindowConfig is owned by a single
// goroutine and is not safe for concurrent use.
//
// Samplers read the window once, at construction. Changing the window
// affects samplers created afterward.
type WindowConfig struct {
	window time.Duration
}

// NewWindowConfig returns a WindowConfig set to DefaultWindow.
func NewWindowConfig() *WindowConfig {
	return &WindowConfig{window: DefaultWindow}
}

// Get returns the currently configured window.
func (c *WindowConfig) Get() time.Duration {
	return c.window
}

// Set updates the window. No validation is performed; see Sampler for how a
// non-positive window behaves.
func (c *WindowConfig) Set(d time.Duration) {
	c.window = d
}
