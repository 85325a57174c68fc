package hardware

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/surfman/gpucore"
)

// multisampleCount is the sample count used when ContextMultisample is set.
const multisampleCount = 4

// ContextDescriptor is the immutable hardware rendering configuration
// derived from context attributes. A descriptor can seed any number of
// contexts.
type ContextDescriptor struct {
	version            gpucore.GLVersion
	flags              gpucore.ContextAttributeFlags
	colorFormat        gputypes.TextureFormat
	depthStencilFormat gputypes.TextureFormat
	sampleCount        uint32
}

// ColorFormat returns the color attachment format.
func (cd ContextDescriptor) ColorFormat() gputypes.TextureFormat { return cd.colorFormat }

// DepthStencilFormat returns the depth/stencil attachment format, or
// TextureFormatUndefined when neither depth nor stencil was requested.
func (cd ContextDescriptor) DepthStencilFormat() gputypes.TextureFormat {
	return cd.depthStencilFormat
}

// SampleCount returns the color sample count.
func (cd ContextDescriptor) SampleCount() uint32 { return cd.sampleCount }

// externalTarget is the render target of an adopted context.
type externalTarget struct {
	size        gpucore.Size
	framebuffer uint32
}

// Context is a hardware rendering context. It always renders to exactly
// one target: a bound surface it owns, or an external target for
// contexts adopted with FromCurrentContext.
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

// IsCurrent reports whether c is the current hardware context.
func (c *Context) IsCurrent() bool { return current.Load() == c }

func (c *Context) targetSize() gpucore.Size {
	if c.external != nil {
		return c.external.size
	}
	return c.surface.size
}

func (c *Context) targetFramebuffer() uint32 {
	if c.external != nil {
		return c.external.framebuffer
	}
	return c.surface.framebuffer
}

// CreateContextDescriptor translates attributes into a descriptor.
// It allocates nothing.
func (d *Device) CreateContextDescriptor(attrs gpucore.ContextAttributes) (ContextDescriptor, error) {
	if MaxGLVersion.Less(attrs.Version) {
		return ContextDescriptor{}, fmt.Errorf("%w: %s > %s", ErrUnsupportedGLVersion, attrs.Version, MaxGLVersion)
	}
	cd := ContextDescriptor{
		version:            attrs.Version,
		flags:              attrs.Flags,
		colorFormat:        gputypes.TextureFormatBGRA8Unorm,
		depthStencilFormat: gputypes.TextureFormatUndefined,
		sampleCount:        1,
	}
	if attrs.Flags.Has(gpucore.ContextAlpha) {
		cd.colorFormat = gputypes.TextureFormatRGBA8Unorm
	}
	if attrs.Flags.Has(gpucore.ContextDepth) || attrs.Flags.Has(gpucore.ContextStencil) {
		cd.depthStencilFormat = gputypes.TextureFormatDepth24PlusStencil8
	}
	if attrs.Flags.Has(gpucore.ContextMultisample) {
		cd.sampleCount = multisampleCount
	}
	return cd, nil
}

// ContextDescriptorAttributes returns the attributes a descriptor was
// created from.
func (d *Device) ContextDescriptorAttributes(cd ContextDescriptor) gpucore.ContextAttributes {
	return gpucore.ContextAttributes{Version: cd.version, Flags: cd.flags}
}

// CreateContext creates a context rendering to a new surface described
// by st.
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
	slogger().Debug("hardware: context created", "context", ctx.id, "surface", s.id, "size", s.size)
	return ctx, nil
}

// DestroyContext destroys ctx and its bound surface. If ctx is current,
// no context is current afterwards.
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
	slogger().Debug("hardware: context destroyed", "context", ctx.id)
	return nil
}

// ContextDescriptor returns the descriptor ctx was created with.
func (d *Device) ContextDescriptor(ctx *Context) (ContextDescriptor, error) {
	if err := d.checkContext(ctx); err != nil {
		return ContextDescriptor{}, err
	}
	return ctx.descriptor, nil
}

// MakeContextCurrent makes ctx the current hardware context.
func (d *Device) MakeContextCurrent(ctx *Context) error {
	if err := d.checkContext(ctx); err != nil {
		return err
	}
	current.Store(ctx)
	return nil
}

// MakeNoContextCurrent clears the current hardware context, whichever
// device created it.
func (d *Device) MakeNoContextCurrent() error {
	current.Store(nil)
	return nil
}

// ReplaceContextSurface binds s to ctx and returns the previously bound
// surface. s is moved into ctx and is unusable afterwards.
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
	slogger().Debug("hardware: context surface replaced", "context", ctx.id, "old", prev.id, "new", state.id)
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

// ContextSurfaceFramebufferObject returns the framebuffer object ctx
// draws into. Widget surfaces use the default framebuffer 0.
func (d *Device) ContextSurfaceFramebufferObject(ctx *Context) (uint32, error) {
	if err := d.checkContext(ctx); err != nil {
		return 0, err
	}
	return ctx.targetFramebuffer(), nil
}

// GetProcAddress resolves a GL entry point through the adapter's loader.
// It returns 0 when no loader is configured or the symbol is unknown.
func (d *Device) GetProcAddress(ctx *Context, symbolName string) (uintptr, error) {
	if err := d.checkContext(ctx); err != nil {
		return 0, err
	}
	if d.adapter.loader == nil {
		return 0, nil
	}
	return d.adapter.loader(symbolName), nil
}
