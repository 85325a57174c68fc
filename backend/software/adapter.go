package software

import (
	"fmt"

	"github.com/gogpu/surfman/gpucore"
)

// DefaultMaxSurfaceDimension is the largest surface width or height
// unless WithMaxSurfaceDimension says otherwise.
const DefaultMaxSurfaceDimension = 16384

// Option configures the software adapter.
type Option func(*options)

type options struct {
	disabled     bool
	maxDimension int
	loader       gpucore.ProcLoader
}

func defaultOptions() options {
	return options{maxDimension: DefaultMaxSurfaceDimension}
}

// WithMaxSurfaceDimension limits surface width and height to n pixels.
// Values below 1 keep the default.
func WithMaxSurfaceDimension(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDimension = n
		}
	}
}

// WithProcLoader sets the GL entry point loader used by GetProcAddress on
// devices opened from the adapter.
func WithProcLoader(loader gpucore.ProcLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithDisabled makes DefaultAdapter fail with ErrDisabled. Startup
// configurations use it to forbid CPU rendering.
func WithDisabled() Option {
	return func(o *options) {
		o.disabled = true
	}
}

// Adapter describes the CPU rasterizer.
type Adapter struct {
	maxDimension int
	loader       gpucore.ProcLoader
}

// DefaultAdapter returns the software adapter. It always succeeds unless
// the rasterizer is disabled.
func DefaultAdapter(opts ...Option) (Adapter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.disabled {
		return Adapter{}, ErrDisabled
	}
	slogger().Info("software: adapter selected", "max_dimension", o.maxDimension)
	return Adapter{maxDimension: o.maxDimension, loader: o.loader}, nil
}

// Name returns "cpu".
func (a Adapter) Name() string { return "cpu" }

// MaxSurfaceDimension returns the largest allowed surface width or height.
func (a Adapter) MaxSurfaceDimension() int { return a.maxDimension }

// String returns a human-readable description of the adapter.
func (a Adapter) String() string {
	return fmt.Sprintf("cpu rasterizer (max %dx%d)", a.maxDimension, a.maxDimension)
}

func (a Adapter) valid() bool {
	return a.maxDimension > 0
}
