package software

import (
	"fmt"

	"github.com/gogpu/surfman/gpucore"
)

// ContextDescriptor is the immutable software rendering configuration.
// The rasterizer has no multisampling; the flag is dropped.
type ContextDescriptor struct {
	version     gpucore.GLVersion
	flags       gpucore.ContextAttributeFlags
	depthBits   int
	stencilBits int
}

// DepthBits returns the depth buffer precision, 0 without depth.
func (cd ContextDescriptor) DepthBits() int { return cd.depthBits }

// StencilBits returns the stencil buffer precision, 0 without stencil.
func (cd ContextDescriptor) StencilBits() int { return cd.stencilBits }

// HasAlpha reports whether surfaces keep an alpha channel.
func (cd ContextDescriptor) HasAlpha() bool { return cd.flags.Has(gpucore.ContextAlpha) }

type externalTarget struct {
	size gpucore.Size
}

// Context is a software rendering context bound to one surface, or to an
// external target for contexts adopted with FromCurrentContext.
type Context struct {
	id         uint64
	device     *Device
	descriptor ContextDescriptor
	surface    *surfaceState
	external   *externalTarget
	destroyed  bool
}

// ID returns a device-unique context number.
func (c *Context) ID() uint64 { return c.id }

// IsCurrent reports whether c is the current software context.
func (c *Context) IsCurrent() bool { return current.Load() == c }

func (c *Context) targetSize() gpucore.Size {
	if c.external != nil {
		return c.external.size
	}
	return c.surface.size
}

// CreateContextDescriptor translates attributes into a descriptor.
func (d *Device) CreateContextDescriptor(attrs gpucore.ContextAttributes) (ContextDescriptor, error) {
	if MaxGLVersion.Less(attrs.Version) {
		return ContextDescriptor{}, fmt.Errorf("%w: %s > %s", ErrUnsupportedGLVersion, attrs.Version, MaxGLVersion)
	}
	cd := ContextDescriptor{
		version: attrs.Version,
		flags:   attrs.Flags &^ gpucore.ContextMultisample,
	}
	if attrs.Flags.Has(gpucore.ContextDepth) {
		cd.depthBits = 24
	}
	if attrs.Flags.Has(gpucore.ContextStencil) {
		cd.stencilBits = 8
	}
	return cd, nil
}

// ContextDescriptorAttributes returns the attributes the descriptor
// honours.
func (d *Device) ContextDescriptorAttributes(cd ContextDescriptor) gpucore.ContextAttributes {
	return gpucore.ContextAttributes{Version: cd.version, Flags: cd.flags}
}

// CreateContext creates a context rendering to a new generic surface.
func (d *Device) CreateContext(cd ContextDescriptor, st SurfaceType) (*Context, error) {
	if d.released {
		return nil, ErrDeviceReleased
	}
	s, err := d.allocSurface(cd, st)
	if err != nil {
		return nil, err
	}
	ctx := &Context{
		id:         d.nextContextID.Add(1),
		device:     d,
		descriptor: cd,
		surface:    s,
	}
	slogger().Debug("software: context created", "context", ctx.id, "surface", s.id, "size", s.size)
	return ctx, nil
}

// DestroyContext destroys ctx and its bound surface.
func (d *Device) DestroyContext(ctx *Context) error {
	if err := d.checkContext(ctx); err != nil {
		return err
	}
	current.CompareAndSwap(ctx, nil)
	if ctx.surface != nil {
		d.freeSurface(ctx.surface)
		ctx.surface = nil
	}
	ctx.destroyed = true
	slogger().Debug("software: context destroyed", "context", ctx.id)
	return nil
}

// ContextDescriptor returns the descriptor ctx was created with.
func (d *Device) ContextDescriptor(ctx *Context) (ContextDescriptor, error) {
	if err := d.checkContext(ctx); err != nil {
		return ContextDescriptor{}, err
	}
	return ctx.descriptor, nil
}

// MakeContextCurrent makes ctx the current software context.
func (d *Device) MakeContextCurrent(ctx *Context) error {
	if err := d.checkContext(ctx); err != nil {
		return err
	}
	current.Store(ctx)
	return nil
}

// MakeNoContextCurrent clears the current software context.
func (d *Device) MakeNoContextCurrent() error {
	current.Store(nil)
	return nil
}

// ReplaceContextSurface binds s to ctx and returns the previously bound
// surface. s is unusable afterwards.
func (d *Device) ReplaceContextSurface(ctx *Context, s *Surface) (*Surface, error) {
	if err := d.checkContext(ctx); err != nil {
		return nil, err
	}
	if ctx.external != nil {
		return nil, ErrExternalRenderTarget
	}
	state, err := d.surfaceState(s)
	if err != nil {
		return nil, err
	}
	prev := ctx.surface
	ctx.surface = state
	s.state = nil
	return &Surface{state: prev}, nil
}

// ContextSurfaceSize returns the size of the surface ctx renders to.
func (d *Device) ContextSurfaceSize(ctx *Context) (gpucore.Size, error) {
	if err := d.checkContext(ctx); err != nil {
		return gpucore.Size{}, err
	}
	return ctx.targetSize(), nil
}

// ContextSurfaceID returns the ID of the surface bound to ctx.
func (d *Device) ContextSurfaceID(ctx *Context) (gpucore.SurfaceID, error) {
	if err := d.checkContext(ctx); err != nil {
		return gpucore.InvalidSurfaceID, err
	}
	if ctx.external != nil {
		return gpucore.InvalidSurfaceID, ErrExternalRenderTarget
	}
	return ctx.surface.id, nil
}

// ContextSurfaceFramebufferObject returns 0: the rasterizer always draws
// into the default framebuffer.
func (d *Device) ContextSurfaceFramebufferObject(ctx *Context) (uint32, error) {
	if err := d.checkContext(ctx); err != nil {
		return 0, err
	}
	return 0, nil
}

// GetProcAddress resolves a GL entry point through the adapter's loader.
func (d *Device) GetProcAddress(ctx *Context, symbolName string) (uintptr, error) {
	if err := d.checkContext(ctx); err != nil {
		return 0, err
	}
	if d.adapter.loader == nil {
		return 0, nil
	}
	return d.adapter.loader(symbolName), nil
}
