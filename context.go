package surfman

import (
	"github.com/gogpu/surfman/backend"
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
)

// ContextDescriptor is an immutable context configuration tagged with the
// backend that created it. It can seed any number of contexts on devices
// of that backend.
type ContextDescriptor struct {
	hw *hardware.ContextDescriptor
	sw *software.ContextDescriptor
}

// Backend returns the backend the descriptor belongs to.
func (cd ContextDescriptor) Backend() backend.Kind {
	switch {
	case cd.hw != nil:
		return backend.Hardware
	case cd.sw != nil:
		return backend.Software
	default:
		return backend.Invalid
	}
}

// Hardware returns the hardware descriptor, or ErrIncompatibleContext.
func (cd ContextDescriptor) Hardware() (hardware.ContextDescriptor, error) {
	if cd.hw == nil {
		return hardware.ContextDescriptor{}, ErrIncompatibleContext
	}
	return *cd.hw, nil
}

// Software returns the software descriptor, or ErrIncompatibleContext.
func (cd ContextDescriptor) Software() (software.ContextDescriptor, error) {
	if cd.sw == nil {
		return software.ContextDescriptor{}, ErrIncompatibleContext
	}
	return *cd.sw, nil
}

// Context is a rendering context tagged with its device's backend.
type Context struct {
	hw *hardware.Context
	sw *software.Context
}

// Backend returns the backend the context belongs to.
func (c *Context) Backend() backend.Kind {
	switch {
	case c == nil:
		return backend.Invalid
	case c.hw != nil:
		return backend.Hardware
	case c.sw != nil:
		return backend.Software
	default:
		return backend.Invalid
	}
}

// Hardware returns the hardware context, or ErrIncompatibleContext.
func (c *Context) Hardware() (*hardware.Context, error) {
	if c == nil || c.hw == nil {
		return nil, ErrIncompatibleContext
	}
	return c.hw, nil
}

// Software returns the software context, or ErrIncompatibleContext.
func (c *Context) Software() (*software.Context, error) {
	if c == nil || c.sw == nil {
		return nil, ErrIncompatibleContext
	}
	return c.sw, nil
}

// CreateContextDescriptor translates attrs into a descriptor for this
// device's backend. No resources are allocated.
func (d *Device) CreateContextDescriptor(attrs ContextAttributes) (ContextDescriptor, error) {
	switch d.Backend() {
	case backend.Hardware:
		cd, err := d.hw.CreateContextDescriptor(attrs)
		if err != nil {
			return ContextDescriptor{}, err
		}
		return ContextDescriptor{hw: &cd}, nil
	case backend.Software:
		cd, err := d.sw.CreateContextDescriptor(attrs)
		if err != nil {
			return ContextDescriptor{}, err
		}
		return ContextDescriptor{sw: &cd}, nil
	default:
		return ContextDescriptor{}, ErrIncompatibleAdapter
	}
}

// ContextDescriptorAttributes returns the attributes cd honours.
func (d *Device) ContextDescriptorAttributes(cd ContextDescriptor) (ContextAttributes, error) {
	switch d.Backend() {
	case backend.Hardware:
		hcd, err := cd.Hardware()
		if err != nil {
			return ContextAttributes{}, err
		}
		return d.hw.ContextDescriptorAttributes(hcd), nil
	case backend.Software:
		scd, err := cd.Software()
		if err != nil {
			return ContextAttributes{}, err
		}
		return d.sw.ContextDescriptorAttributes(scd), nil
	default:
		return ContextAttributes{}, ErrIncompatibleAdapter
	}
}

// CreateContext creates a context from cd rendering to a new surface
// described by st. Software devices reject widget requests with
// ErrInvalidNativeWidget.
func (d *Device) CreateContext(cd ContextDescriptor, st SurfaceType) (*Context, error) {
	switch d.Backend() {
	case backend.Hardware:
		hcd, err := cd.Hardware()
		if err != nil {
			return nil, err
		}
		ctx, err := d.hw.CreateContext(hcd, st)
		if err != nil {
			return nil, err
		}
		return &Context{hw: ctx}, nil
	case backend.Software:
		scd, err := cd.Software()
		if err != nil {
			return nil, err
		}
		sst, err := intoSoftware(st)
		if err != nil {
			return nil, err
		}
		ctx, err := d.sw.CreateContext(scd, sst)
		if err != nil {
			return nil, err
		}
		return &Context{sw: ctx}, nil
	default:
		return nil, ErrIncompatibleAdapter
	}
}

// DestroyContext destroys ctx and the surface bound to it. ctx must not be
// used afterwards.
func (d *Device) DestroyContext(ctx *Context) error {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return err
		}
		return d.hw.DestroyContext(hctx)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return err
		}
		return d.sw.DestroyContext(sctx)
	default:
		return ErrIncompatibleAdapter
	}
}

// ContextDescriptor returns the descriptor ctx was created with.
func (d *Device) ContextDescriptor(ctx *Context) (ContextDescriptor, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return ContextDescriptor{}, err
		}
		cd, err := d.hw.ContextDescriptor(hctx)
		if err != nil {
			return ContextDescriptor{}, err
		}
		return ContextDescriptor{hw: &cd}, nil
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return ContextDescriptor{}, err
		}
		cd, err := d.sw.ContextDescriptor(sctx)
		if err != nil {
			return ContextDescriptor{}, err
		}
		return ContextDescriptor{sw: &cd}, nil
	default:
		return ContextDescriptor{}, ErrIncompatibleAdapter
	}
}

// MakeContextCurrent makes ctx the current context of its backend.
func (d *Device) MakeContextCurrent(ctx *Context) error {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return err
		}
		return d.hw.MakeContextCurrent(hctx)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return err
		}
		return d.sw.MakeContextCurrent(sctx)
	default:
		return ErrIncompatibleAdapter
	}
}

// MakeNoContextCurrent clears whichever context of the device's backend is
// current, whichever device made it current.
func (d *Device) MakeNoContextCurrent() error {
	switch d.Backend() {
	case backend.Hardware:
		return d.hw.MakeNoContextCurrent()
	case backend.Software:
		return d.sw.MakeNoContextCurrent()
	default:
		return ErrIncompatibleAdapter
	}
}

// ReplaceContextSurface binds s to ctx and returns the surface that was
// bound before. The caller owns the returned surface and must destroy or
// rebind it. s and its copies are unusable afterwards.
func (d *Device) ReplaceContextSurface(ctx *Context, s *Surface) (*Surface, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return nil, err
		}
		hs, err := s.Hardware()
		if err != nil {
			return nil, err
		}
		prev, err := d.hw.ReplaceContextSurface(hctx, hs)
		if err != nil {
			return nil, err
		}
		return &Surface{hw: prev}, nil
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return nil, err
		}
		ss, err := s.Software()
		if err != nil {
			return nil, err
		}
		prev, err := d.sw.ReplaceContextSurface(sctx, ss)
		if err != nil {
			return nil, err
		}
		return &Surface{sw: prev}, nil
	default:
		return nil, ErrIncompatibleAdapter
	}
}

// ContextSurfaceSize returns the size of the surface ctx renders to.
func (d *Device) ContextSurfaceSize(ctx *Context) (Size, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return Size{}, err
		}
		return d.hw.ContextSurfaceSize(hctx)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return Size{}, err
		}
		return d.sw.ContextSurfaceSize(sctx)
	default:
		return Size{}, ErrIncompatibleAdapter
	}
}

// ContextSurfaceID returns the ID of the surface bound to ctx.
func (d *Device) ContextSurfaceID(ctx *Context) (SurfaceID, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return InvalidSurfaceID, err
		}
		return d.hw.ContextSurfaceID(hctx)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return InvalidSurfaceID, err
		}
		return d.sw.ContextSurfaceID(sctx)
	default:
		return InvalidSurfaceID, ErrIncompatibleAdapter
	}
}

// ContextSurfaceFramebufferObject returns the GL framebuffer object ctx
// draws into; 0 is the default framebuffer.
func (d *Device) ContextSurfaceFramebufferObject(ctx *Context) (uint32, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return 0, err
		}
		return d.hw.ContextSurfaceFramebufferObject(hctx)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return 0, err
		}
		return d.sw.ContextSurfaceFramebufferObject(sctx)
	default:
		return 0, ErrIncompatibleAdapter
	}
}

// GetProcAddress resolves the GL entry point symbolName for ctx. It
// returns 0 for unknown symbols or when no loader is configured.
func (d *Device) GetProcAddress(ctx *Context, symbolName string) (uintptr, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return 0, err
		}
		return d.hw.GetProcAddress(hctx, symbolName)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return 0, err
		}
		return d.sw.GetProcAddress(sctx, symbolName)
	default:
		return 0, ErrIncompatibleAdapter
	}
}
