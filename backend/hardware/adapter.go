package hardware

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/surfman/gpucore"
	"github.com/gogpu/wgpu/hal"
)

// InstanceProvider creates HAL instances.
// The backends returned by hal.GetBackend satisfy it, as does the noop HAL.
type InstanceProvider interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// Option configures adapter discovery.
type Option func(*options)

type options struct {
	backends  []gputypes.Backend
	providers []InstanceProvider
	loader    gpucore.ProcLoader
}

func defaultOptions() options {
	return options{backends: DefaultBackends()}
}

// DefaultBackends returns the HAL backends probed when no explicit list
// is configured, in probe order.
func DefaultBackends() []gputypes.Backend {
	return []gputypes.Backend{
		gputypes.BackendVulkan,
		gputypes.BackendMetal,
		gputypes.BackendDX12,
		gputypes.BackendGL,
	}
}

// WithBackends sets the HAL backends to probe, in order. Backends not
// compiled into the binary are skipped.
func WithBackends(backends ...gputypes.Backend) Option {
	return func(o *options) {
		o.backends = backends
	}
}

// WithInstanceProviders probes the given providers instead of looking up
// HAL backends. Tests use it to inject the noop HAL or a failing provider.
func WithInstanceProviders(providers ...InstanceProvider) Option {
	return func(o *options) {
		o.providers = providers
	}
}

// WithProcLoader sets the GL entry point loader used by GetProcAddress on
// devices opened from the adapter.
func WithProcLoader(loader gpucore.ProcLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// Adapter is a GPU adapter exposed by a HAL instance. Adapters are plain
// values and can be copied; copies share the instance, which stays alive
// until Release is called on one of them.
type Adapter struct {
	instance hal.Instance
	exposed  hal.ExposedAdapter
	loader   gpucore.ProcLoader
}

// DefaultAdapter returns the best GPU adapter available.
// The first provider that exposes any adapter wins. Within it, discrete
// GPUs are preferred, then integrated GPUs, then its first adapter.
func DefaultAdapter(opts ...Option) (Adapter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	providers := o.providers
	if len(providers) == 0 {
		for _, b := range o.backends {
			if p, ok := hal.GetBackend(b); ok {
				providers = append(providers, p)
			}
		}
	}
	if len(providers) == 0 {
		return Adapter{}, ErrNoAdapter
	}

	var lastErr error
	for _, p := range providers {
		a, err := probe(p)
		if err != nil {
			slogger().Debug("hardware: provider yielded no adapter", "error", err)
			lastErr = err
			continue
		}
		a.loader = o.loader
		slogger().Info("hardware: adapter selected", "adapter", a.Name())
		return a, nil
	}
	return Adapter{}, fmt.Errorf("%w: %w", ErrNoAdapter, lastErr)
}

// probe creates an instance from p and picks one of its adapters.
func probe(p InstanceProvider) (Adapter, error) {
	instance, err := p.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return Adapter{}, fmt.Errorf("create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return Adapter{}, fmt.Errorf("enumerate adapters: none found")
	}

	selected := selectAdapter(adapters)
	for i := range adapters {
		if i != selected && adapters[i].Adapter != nil {
			adapters[i].Adapter.Destroy()
		}
	}
	return Adapter{instance: instance, exposed: adapters[selected]}, nil
}

// adapterPreference lists device types in the order DefaultAdapter picks
// them.
var adapterPreference = []gputypes.DeviceType{
	gputypes.DeviceTypeDiscreteGPU,
	gputypes.DeviceTypeIntegratedGPU,
}

// selectAdapter returns the index of the preferred adapter, or 0 when no
// adapter has a preferred device type.
func selectAdapter(adapters []hal.ExposedAdapter) int {
	for _, want := range adapterPreference {
		for i := range adapters {
			if adapters[i].Info.DeviceType == want {
				return i
			}
		}
	}
	return 0
}

// Name returns the adapter name reported by the driver.
func (a Adapter) Name() string {
	return a.exposed.Info.Name
}

// String returns a human-readable description of the adapter.
func (a Adapter) String() string {
	return fmt.Sprintf("%s (%v)", a.exposed.Info.Name, a.exposed.Info.DeviceType)
}

// Release destroys the HAL adapter and the instance that exposed it.
// Devices opened on a must be released first. Release is a no-op on the
// zero Adapter; copies of a must not be used or released afterwards.
func (a Adapter) Release() {
	if !a.valid() {
		return
	}
	a.exposed.Adapter.Destroy()
	if a.instance != nil {
		a.instance.Destroy()
	}
	slogger().Debug("hardware: adapter released", "adapter", a.Name())
}

// valid reports whether a came from DefaultAdapter.
func (a Adapter) valid() bool {
	return a.exposed.Adapter != nil
}
