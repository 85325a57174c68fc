package surfman

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/surfman/backend"
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
	"github.com/gogpu/surfman/gpucore"
)

// Device owns one backend device and creates contexts and surfaces on it.
// Every operation dispatches on the device's backend; resources from the
// other backend are rejected with an ErrIncompatible* error.
//
// A Device is not safe for concurrent use.
type Device struct {
	hw *hardware.Device
	sw *software.Device
}

// NewDevice opens a device for the adapter. The device carries the
// adapter's backend.
func NewDevice(adapter Adapter) (*Device, error) {
	switch {
	case adapter.hw != nil:
		d, err := hardware.NewDevice(*adapter.hw)
		if err != nil {
			return nil, err
		}
		return &Device{hw: d}, nil
	case adapter.sw != nil:
		d, err := software.NewDevice(*adapter.sw)
		if err != nil {
			return nil, err
		}
		return &Device{sw: d}, nil
	default:
		return nil, ErrIncompatibleAdapter
	}
}

// FromCurrentHardwareContext adopts the current hardware context. The
// returned device does not own the native device and the context renders
// to an external target.
func FromCurrentHardwareContext() (*Device, *Context, error) {
	d, ctx, err := hardware.FromCurrentContext()
	if err != nil {
		return nil, nil, err
	}
	return &Device{hw: d}, &Context{hw: ctx}, nil
}

// FromCurrentSoftwareContext adopts the current software context.
func FromCurrentSoftwareContext() (*Device, *Context, error) {
	d, ctx, err := software.FromCurrentContext()
	if err != nil {
		return nil, nil, err
	}
	return &Device{sw: d}, &Context{sw: ctx}, nil
}

// FromCurrentContext adopts the current hardware context, or the current
// software context when no hardware context is current. The software
// error is returned if neither is.
func FromCurrentContext() (*Device, *Context, error) {
	if d, ctx, err := FromCurrentHardwareContext(); err == nil {
		return d, ctx, nil
	}
	return FromCurrentSoftwareContext()
}

// Backend returns the backend the device belongs to.
func (d *Device) Backend() backend.Kind {
	switch {
	case d == nil:
		return backend.Invalid
	case d.hw != nil:
		return backend.Hardware
	case d.sw != nil:
		return backend.Software
	default:
		return backend.Invalid
	}
}

// Adapter returns the adapter the device was opened for, tagged like the
// device.
func (d *Device) Adapter() Adapter {
	switch d.Backend() {
	case backend.Hardware:
		a := d.hw.Adapter()
		return Adapter{hw: &a}
	case backend.Software:
		a := d.sw.Adapter()
		return Adapter{sw: &a}
	default:
		return Adapter{}
	}
}

// Hardware returns the hardware device, or ErrIncompatibleAdapter.
func (d *Device) Hardware() (*hardware.Device, error) {
	if d == nil || d.hw == nil {
		return nil, ErrIncompatibleAdapter
	}
	return d.hw, nil
}

// Software returns the software device, or ErrIncompatibleAdapter.
func (d *Device) Software() (*software.Device, error) {
	if d == nil || d.sw == nil {
		return nil, ErrIncompatibleAdapter
	}
	return d.sw, nil
}

// GLApi returns the GL flavour contexts expose. It is GLApiGL for every
// device.
func (d *Device) GLApi() GLApi {
	return gpucore.GLApiGL
}

// DeviceProvider exposes a hardware device as a gpucontext.DeviceProvider.
// It reports false for software devices.
func (d *Device) DeviceProvider() (gpucontext.DeviceProvider, bool) {
	if d.Backend() != backend.Hardware {
		return nil, false
	}
	return d.hw.DeviceProvider(), true
}

// LiveSurfaces returns the number of surfaces the device has created and
// not yet destroyed.
func (d *Device) LiveSurfaces() int {
	switch d.Backend() {
	case backend.Hardware:
		return d.hw.LiveSurfaces()
	case backend.Software:
		return d.sw.LiveSurfaces()
	default:
		return 0
	}
}

// Release releases the backend device. Destroy contexts and surfaces
// first. Release is idempotent.
func (d *Device) Release() error {
	switch d.Backend() {
	case backend.Hardware:
		return d.hw.Release()
	case backend.Software:
		return d.sw.Release()
	default:
		return ErrIncompatibleAdapter
	}
}
