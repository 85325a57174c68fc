package hardware

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// DeviceProvider exposes d to the gogpu ecosystem (gg canvases, gogpu
// integrations) as a gpucontext.DeviceProvider sharing the same HAL
// device and queue.
//
// The device stays owned by d: destroying it through the provider is a
// no-op; call Release instead.
func (d *Device) DeviceProvider() gpucontext.DeviceProvider {
	return deviceProvider{d: d}
}

type deviceProvider struct {
	d *Device
}

func (p deviceProvider) Device() gpucontext.Device   { return sharedDevice{device: p.d.device} }
func (p deviceProvider) Queue() gpucontext.Queue     { return p.d.queue }
func (p deviceProvider) Adapter() gpucontext.Adapter { return p.d.adapter.exposed.Adapter }

// AdapterInfo reports the name and kind of the adapter d was opened on.
func (p deviceProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{
		Name: p.d.adapter.Name(),
		Type: adapterType(p.d.adapter.exposed.Info.DeviceType),
	}
}

func adapterType(t gputypes.DeviceType) gpucontext.AdapterType {
	switch t {
	case gputypes.DeviceTypeDiscreteGPU:
		return gpucontext.AdapterTypeDiscrete
	case gputypes.DeviceTypeIntegratedGPU:
		return gpucontext.AdapterTypeIntegrated
	case gputypes.DeviceTypeCPU:
		return gpucontext.AdapterTypeSoftware
	default:
		return gpucontext.AdapterTypeUnknown
	}
}

// SurfaceFormat returns the color format of surfaces created with
// alpha-enabled descriptors.
func (p deviceProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// sharedDevice is a non-owning gpucontext.Device view of a HAL device.
type sharedDevice struct {
	device hal.Device
}

func (sharedDevice) Poll(bool) {}
func (sharedDevice) Destroy()  {}

// HAL returns the wrapped HAL device.
func (s sharedDevice) HAL() hal.Device { return s.device }

var _ gpucontext.DeviceProvider = deviceProvider{}
