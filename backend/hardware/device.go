package hardware

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/surfman/gpucore"
	"github.com/gogpu/wgpu/hal"
)

// MaxGLVersion is the highest GL version hardware contexts accept.
var MaxGLVersion = gpucore.GLVersion{Major: 4, Minor: 6}

// MaxSurfaceDimension is the largest width or height of a hardware surface.
// It matches the default WebGPU 2D texture limit.
const MaxSurfaceDimension = 8192

// current is the context the driver considers current. GL tracks this per
// thread; goroutines do not map onto threads, so the backend keeps one
// process-wide slot.
var current atomic.Pointer[Context]

// Device owns an opened HAL device and queue and creates the contexts and
// surfaces that render through them.
//
// A Device is not safe for concurrent use.
type Device struct {
	adapter  Adapter
	device   hal.Device
	queue    hal.Queue
	borrowed bool
	released bool

	nextContextID   atomic.Uint64
	nextSurfaceID   atomic.Uint64
	nextFramebuffer atomic.Uint32
	nextTexture     atomic.Uint32
	live            atomic.Int64

	blitModule hal.ShaderModule
	blitTried  bool
}

// NewDevice opens a HAL device on the adapter.
func NewDevice(adapter Adapter) (*Device, error) {
	if !adapter.valid() {
		return nil, ErrNoAdapter
	}
	openDev, err := adapter.exposed.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		return nil, fmt.Errorf("open device: %w", err)
	}
	slogger().Debug("hardware: device opened", "adapter", adapter.Name())
	return &Device{
		adapter: adapter,
		device:  openDev.Device,
		queue:   openDev.Queue,
	}, nil
}

// FromCurrentContext adopts the current hardware context.
//
// The returned device shares the native device of the context's owner
// and does not destroy it on Release. The returned context renders to an
// external target: its size and framebuffer object can be queried, but
// its surface cannot be replaced or identified.
func FromCurrentContext() (*Device, *Context, error) {
	cur := current.Load()
	if cur == nil || cur.destroyed || cur.device.released {
		return nil, nil, ErrNoCurrentContext
	}
	owner := cur.device
	d := &Device{
		adapter:  owner.adapter,
		device:   owner.device,
		queue:    owner.queue,
		borrowed: true,
	}
	size, fbo := cur.targetSize(), cur.targetFramebuffer()
	ctx := &Context{
		id:         d.nextContextID.Add(1),
		device:     d,
		descriptor: cur.descriptor,
		external:   &externalTarget{size: size, framebuffer: fbo},
	}
	slogger().Debug("hardware: adopted current context", "size", size, "fbo", fbo)
	return d, ctx, nil
}

// Adapter returns the adapter the device was opened on.
func (d *Device) Adapter() Adapter {
	return d.adapter
}

// HAL returns the underlying HAL device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) {
	return d.device, d.queue
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

// Release destroys the native device and clears the current context if
// it belongs to d. Devices obtained from FromCurrentContext only drop
// their reference. Release is idempotent.
func (d *Device) Release() error {
	if d.released {
		return nil
	}
	d.released = true
	if cur := current.Load(); cur != nil && cur.device == d {
		current.CompareAndSwap(cur, nil)
	}
	if d.borrowed {
		return nil
	}
	if n := d.live.Load(); n > 0 {
		slogger().Warn("hardware: releasing device with live surfaces", "surfaces", n)
	}
	if d.blitModule != nil {
		d.device.DestroyShaderModule(d.blitModule)
		d.blitModule = nil
	}
	d.device.Destroy()
	slogger().Debug("hardware: device released")
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
