package surfman

import (
	"github.com/gogpu/surfman/backend"
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
)

// Adapter is a selected backend together with its backend adapter.
// The zero Adapter belongs to no backend and cannot open a device.
type Adapter struct {
	hw *hardware.Adapter
	sw *software.Adapter
}

// DefaultAdapter returns the best adapter on this system: a hardware
// adapter when discovery succeeds, otherwise the software adapter.
// Hardware failures are not reported; if the software backend fails too,
// its error is returned unchanged.
func DefaultAdapter(opts ...AdapterOption) (Adapter, error) {
	return probeAdapters(backend.DefaultProbeOrder(), newAdapterOptions(opts))
}

// HardwareAdapter returns the best hardware adapter, without fallback.
func HardwareAdapter(opts ...AdapterOption) (Adapter, error) {
	return probeAdapter(backend.Hardware, newAdapterOptions(opts))
}

// SoftwareAdapter returns the software adapter, without fallback.
func SoftwareAdapter(opts ...AdapterOption) (Adapter, error) {
	return probeAdapter(backend.Software, newAdapterOptions(opts))
}

// SelectAdapter tries the backends of cfg's probe order in turn. Failures
// of all but the last backend are swallowed; the last failure is returned
// unchanged. A nil cfg means DefaultConfig. opts are applied after the
// options derived from cfg.
func SelectAdapter(cfg *Config, opts ...AdapterOption) (Adapter, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	order, err := cfg.ProbeOrder()
	if err != nil {
		return Adapter{}, err
	}
	cfgOpts, err := cfg.Options()
	if err != nil {
		return Adapter{}, err
	}
	return probeAdapters(order, newAdapterOptions(append(cfgOpts, opts...)))
}

func probeAdapters(order []backend.Kind, o adapterOptions) (Adapter, error) {
	var lastErr error
	for i, kind := range order {
		a, err := probeAdapter(kind, o)
		if err == nil {
			return a, nil
		}
		lastErr = err
		if i < len(order)-1 {
			slogger().Info("surfman: adapter unavailable, falling back",
				"backend", kind, "next", order[i+1], "err", err)
		}
	}
	if lastErr == nil {
		lastErr = backend.ErrBackendNotAvailable
	}
	return Adapter{}, lastErr
}

func probeAdapter(kind backend.Kind, o adapterOptions) (Adapter, error) {
	switch kind {
	case backend.Hardware:
		a, err := hardware.DefaultAdapter(o.hardware...)
		if err != nil {
			return Adapter{}, err
		}
		return Adapter{hw: &a}, nil
	case backend.Software:
		a, err := software.DefaultAdapter(o.software...)
		if err != nil {
			return Adapter{}, err
		}
		return Adapter{sw: &a}, nil
	default:
		return Adapter{}, backend.ErrUnknownBackend
	}
}

// Backend returns the backend the adapter belongs to.
func (a Adapter) Backend() backend.Kind {
	switch {
	case a.hw != nil:
		return backend.Hardware
	case a.sw != nil:
		return backend.Software
	default:
		return backend.Invalid
	}
}

// Hardware returns the hardware adapter, or ErrIncompatibleAdapter.
func (a Adapter) Hardware() (hardware.Adapter, error) {
	if a.hw == nil {
		return hardware.Adapter{}, ErrIncompatibleAdapter
	}
	return *a.hw, nil
}

// Software returns the software adapter, or ErrIncompatibleAdapter.
func (a Adapter) Software() (software.Adapter, error) {
	if a.sw == nil {
		return software.Adapter{}, ErrIncompatibleAdapter
	}
	return *a.sw, nil
}

// Release frees the native resources behind a hardware adapter. Devices
// opened on a must be released first. Software and zero adapters hold
// nothing to free.
func (a Adapter) Release() {
	if a.hw != nil {
		a.hw.Release()
	}
}

// String describes the backend and adapter.
func (a Adapter) String() string {
	switch {
	case a.hw != nil:
		return "hardware: " + a.hw.String()
	case a.sw != nil:
		return "software: " + a.sw.String()
	default:
		return "invalid adapter"
	}
}
