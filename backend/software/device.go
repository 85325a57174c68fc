package software

import (
	"sync/atomic"

	"github.com/gogpu/surfman/gpucore"
)

// MaxGLVersion is the highest GL version software contexts accept.
var MaxGLVersion = gpucore.GLVersion{Major: 4, Minor: 5}

// current is the context the rasterizer considers current, shared by all
// software devices.
var current atomic.Pointer[Context]

// Device creates CPU contexts and surfaces.
//
// A Device is not safe for concurrent use.
type Device struct {
	adapter  Adapter
	borrowed bool
	released bool

	nextContextID atomic.Uint64
	nextSurfaceID atomic.Uint64
	nextTexture   atomic.Uint32
	live          atomic.Int64
}

// NewDevice creates a device for the adapter.
func NewDevice(adapter Adapter) (*Device, error) {
	if !adapter.valid() {
		return nil, ErrNoAdapter
	}
	slogger().Debug("software: device opened")
	return &Device{adapter: adapter}, nil
}

// FromCurrentContext adopts the current software context. The returned
// context renders to an external target: its size can be queried, but its
// surface cannot be replaced or identified.
func FromCurrentContext() (*Device, *Context, error) {
	cur := current.Load()
	if cur == nil || cur.destroyed || cur.device.released {
		return nil, nil, ErrNoCurrentContext
	}
	d := &Device{adapter: cur.device.adapter, borrowed: true}
	ctx := &Context{
		id:         d.nextContextID.Add(1),
		device:     d,
		descriptor: cur.descriptor,
		external:   &externalTarget{size: cur.targetSize()},
	}
	slogger().Debug("software: adopted current context", "size", ctx.external.size)
	return d, ctx, nil
}

// Adapter returns the adapter the device was created for.
func (d *Device) Adapter() Adapter {
	return d.adapter
}

// LiveSurfaces returns the number of surfaces created by d and not yet
// destroyed, including surfaces bound to contexts and held by textures.
func (d *Device) LiveSurfaces() int {
	return int(d.live.Load())
}

// SurfaceGLTextureTarget returns the GL texture target surface textures
// are bound to.
func (d *Device) SurfaceGLTextureTarget() uint32 {
	return gpucore.GLTexture2D
}

// Release marks the device released and clears the current context if it
// belongs to d. CPU surfaces still alive are left to the garbage
// collector. Release is idempotent.
func (d *Device) Release() error {
	if d.released {
		return nil
	}
	d.released = true
	if cur := current.Load(); cur != nil && cur.device == d {
		current.CompareAndSwap(cur, nil)
	}
	if n := d.live.Load(); n > 0 && !d.borrowed {
		slogger().Warn("software: releasing device with live surfaces", "surfaces", n)
	}
	slogger().Debug("software: device released")
	return nil
}

func (d *Device) checkContext(ctx *Context) error {
	if d.released {
		return ErrDeviceReleased
	}
	if ctx == nil || ctx.destroyed {
		return ErrContextDestroyed
	}
	if ctx.device != d {
		return ErrWrongDevice
	}
	return nil
}
