package surfman

import (
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
)

// AdapterOption configures adapter discovery.
//
// Example:
//
//	// Discover on Vulkan only, and cap software surfaces at 4096 pixels.
//	adapter, err := surfman.DefaultAdapter(
//	    surfman.WithHardwareOptions(hardware.WithBackends(gputypes.BackendVulkan)),
//	    surfman.WithSoftwareOptions(software.WithMaxSurfaceDimension(4096)),
//	)
type AdapterOption func(*adapterOptions)

type adapterOptions struct {
	hardware []hardware.Option
	software []software.Option
}

func newAdapterOptions(opts []AdapterOption) adapterOptions {
	var o adapterOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithHardwareOptions passes options to hardware adapter discovery.
func WithHardwareOptions(opts ...hardware.Option) AdapterOption {
	return func(o *adapterOptions) {
		o.hardware = append(o.hardware, opts...)
	}
}

// WithSoftwareOptions passes options to software adapter discovery.
func WithSoftwareOptions(opts ...software.Option) AdapterOption {
	return func(o *adapterOptions) {
		o.software = append(o.software, opts...)
	}
}

// WithProcLoader sets the GL entry point loader used by GetProcAddress,
// whichever backend is selected.
func WithProcLoader(loader ProcLoader) AdapterOption {
	return func(o *adapterOptions) {
		o.hardware = append(o.hardware, hardware.WithProcLoader(loader))
		o.software = append(o.software, software.WithProcLoader(loader))
	}
}
