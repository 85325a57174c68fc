package surfman

import (
	"github.com/gogpu/surfman/backend"
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
)

// Surface is a drawable tagged with its device's backend. Surfaces are
// moved by CreateSurfaceTexture and ReplaceContextSurface; a moved Surface
// keeps its backend but reports InvalidSurfaceID and a zero size, and
// backend operations on it fail.
type Surface struct {
	hw *hardware.Surface
	sw *software.Surface
}

// Backend returns the backend the surface belongs to.
func (s *Surface) Backend() backend.Kind {
	switch {
	case s == nil:
		return backend.Invalid
	case s.hw != nil:
		return backend.Hardware
	case s.sw != nil:
		return backend.Software
	default:
		return backend.Invalid
	}
}

// Hardware returns the hardware surface, or ErrIncompatibleSurface.
func (s *Surface) Hardware() (*hardware.Surface, error) {
	if s == nil || s.hw == nil {
		return nil, ErrIncompatibleSurface
	}
	return s.hw, nil
}

// Software returns the software surface, or ErrIncompatibleSurface.
func (s *Surface) Software() (*software.Surface, error) {
	if s == nil || s.sw == nil {
		return nil, ErrIncompatibleSurface
	}
	return s.sw, nil
}

// Valid reports whether s still owns a surface.
func (s *Surface) Valid() bool {
	switch s.Backend() {
	case backend.Hardware:
		return s.hw.Valid()
	case backend.Software:
		return s.sw.Valid()
	default:
		return false
	}
}

// Size returns the surface size in pixels.
func (s *Surface) Size() Size {
	switch s.Backend() {
	case backend.Hardware:
		return s.hw.Size()
	case backend.Software:
		return s.sw.Size()
	default:
		return Size{}
	}
}

// ID returns the surface ID, unique among the live surfaces of its device.
func (s *Surface) ID() SurfaceID {
	switch s.Backend() {
	case backend.Hardware:
		return s.hw.ID()
	case backend.Software:
		return s.sw.ID()
	default:
		return InvalidSurfaceID
	}
}

// SurfaceTexture is a surface consumed as a sampleable texture, tagged with
// its device's backend.
type SurfaceTexture struct {
	hw *hardware.SurfaceTexture
	sw *software.SurfaceTexture
}

// Backend returns the backend the surface texture belongs to.
func (t *SurfaceTexture) Backend() backend.Kind {
	switch {
	case t == nil:
		return backend.Invalid
	case t.hw != nil:
		return backend.Hardware
	case t.sw != nil:
		return backend.Software
	default:
		return backend.Invalid
	}
}

// Hardware returns the hardware surface texture, or
// ErrIncompatibleSurfaceTexture.
func (t *SurfaceTexture) Hardware() (*hardware.SurfaceTexture, error) {
	if t == nil || t.hw == nil {
		return nil, ErrIncompatibleSurfaceTexture
	}
	return t.hw, nil
}

// Software returns the software surface texture, or
// ErrIncompatibleSurfaceTexture.
func (t *SurfaceTexture) Software() (*software.SurfaceTexture, error) {
	if t == nil || t.sw == nil {
		return nil, ErrIncompatibleSurfaceTexture
	}
	return t.sw, nil
}

// GLTexture returns the texture name, or 0 once the texture is destroyed.
func (t *SurfaceTexture) GLTexture() uint32 {
	switch t.Backend() {
	case backend.Hardware:
		return t.hw.GLTexture()
	case backend.Software:
		return t.sw.GLTexture()
	default:
		return 0
	}
}

// SurfaceDataGuard would give CPU access to a surface's pixels while held.
// LockSurfaceData never returns one yet.
type SurfaceDataGuard struct{}

// CreateSurface allocates a surface for ctx. The caller owns the surface
// until it is destroyed or moved. Software devices reject widget requests
// with ErrInvalidNativeWidget.
func (d *Device) CreateSurface(ctx *Context, st SurfaceType) (*Surface, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return nil, err
		}
		s, err := d.hw.CreateSurface(hctx, st)
		if err != nil {
			return nil, err
		}
		return &Surface{hw: s}, nil
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return nil, err
		}
		sst, err := intoSoftware(st)
		if err != nil {
			return nil, err
		}
		s, err := d.sw.CreateSurface(sctx, sst)
		if err != nil {
			return nil, err
		}
		return &Surface{sw: s}, nil
	default:
		return nil, ErrIncompatibleAdapter
	}
}

// CreateSurfaceTexture moves s into a texture that can be sampled from
// ctx. s and its copies are unusable afterwards.
func (d *Device) CreateSurfaceTexture(ctx *Context, s *Surface) (*SurfaceTexture, error) {
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
		t, err := d.hw.CreateSurfaceTexture(hctx, hs)
		if err != nil {
			return nil, err
		}
		return &SurfaceTexture{hw: t}, nil
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return nil, err
		}
		ss, err := s.Software()
		if err != nil {
			return nil, err
		}
		t, err := d.sw.CreateSurfaceTexture(sctx, ss)
		if err != nil {
			return nil, err
		}
		return &SurfaceTexture{sw: t}, nil
	default:
		return nil, ErrIncompatibleAdapter
	}
}

// DestroySurface releases s. s and its copies are unusable afterwards.
func (d *Device) DestroySurface(ctx *Context, s *Surface) error {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return err
		}
		hs, err := s.Hardware()
		if err != nil {
			return err
		}
		return d.hw.DestroySurface(hctx, hs)
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return err
		}
		ss, err := s.Software()
		if err != nil {
			return err
		}
		return d.sw.DestroySurface(sctx, ss)
	default:
		return ErrIncompatibleAdapter
	}
}

// DestroySurfaceTexture releases the texture of t and returns the surface
// it was created from, with the same ID and size.
func (d *Device) DestroySurfaceTexture(ctx *Context, t *SurfaceTexture) (*Surface, error) {
	switch d.Backend() {
	case backend.Hardware:
		hctx, err := ctx.Hardware()
		if err != nil {
			return nil, err
		}
		ht, err := t.Hardware()
		if err != nil {
			return nil, err
		}
		s, err := d.hw.DestroySurfaceTexture(hctx, ht)
		if err != nil {
			return nil, err
		}
		return &Surface{hw: s}, nil
	case backend.Software:
		sctx, err := ctx.Software()
		if err != nil {
			return nil, err
		}
		st, err := t.Software()
		if err != nil {
			return nil, err
		}
		s, err := d.sw.DestroySurfaceTexture(sctx, st)
		if err != nil {
			return nil, err
		}
		return &Surface{sw: s}, nil
	default:
		return nil, ErrIncompatibleAdapter
	}
}

// SurfaceGLTextureTarget returns the GL texture target surface textures
// are bound to.
func (d *Device) SurfaceGLTextureTarget() uint32 {
	switch d.Backend() {
	case backend.Hardware:
		return d.hw.SurfaceGLTextureTarget()
	case backend.Software:
		return d.sw.SurfaceGLTextureTarget()
	default:
		return 0
	}
}

// LockSurfaceData is not implemented and always returns ErrUnimplemented.
func (d *Device) LockSurfaceData(s *Surface) (*SurfaceDataGuard, error) {
	return nil, ErrUnimplemented
}
