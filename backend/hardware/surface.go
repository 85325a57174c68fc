package hardware

import (
	"fmt"

	"github.com/gogpu/surfman/gpucore"
	"github.com/gogpu/wgpu/hal"
)

// NativeWidget is a native window handle a widget surface presents to.
type NativeWidget struct {
	// Handle is the platform window handle (GLFWwindow*, X11 Window,
	// HWND, NSView*). It must not be zero.
	Handle uintptr

	// Size is the window framebuffer size in pixels.
	Size gpucore.Size
}

// SurfaceType is a hardware surface request.
type SurfaceType = gpucore.SurfaceType[NativeWidget]

// surfaceState is the native resource behind a surface. Exactly one handle
// (a Surface, a SurfaceTexture or a Context binding) refers to it at a
// time; moving it clears the source handle.
type surfaceState struct {
	id          gpucore.SurfaceID
	size        gpucore.Size
	kind        gpucore.SurfaceKind
	widget      NativeWidget
	framebuffer uint32
	textures    *surfaceTextures
	device      *Device
}

// Surface is a hardware drawable. The zero Surface and any surface that
// has been moved or destroyed are invalid.
type Surface struct {
	state *surfaceState
}

// Valid reports whether s still owns its surface.
func (s *Surface) Valid() bool { return s != nil && s.state != nil }

// Size returns the surface size, or the zero size for an invalid surface.
func (s *Surface) Size() gpucore.Size {
	if !s.Valid() {
		return gpucore.Size{}
	}
	return s.state.size
}

// ID returns the surface ID, or InvalidSurfaceID for an invalid surface.
func (s *Surface) ID() gpucore.SurfaceID {
	if !s.Valid() {
		return gpucore.InvalidSurfaceID
	}
	return s.state.id
}

// Kind returns whether the surface is generic or widget-bound.
func (s *Surface) Kind() gpucore.SurfaceKind {
	if !s.Valid() {
		return gpucore.SurfaceGeneric
	}
	return s.state.kind
}

// SurfaceTexture is a surface converted into a sampleable texture.
type SurfaceTexture struct {
	state   *surfaceState
	view    hal.TextureView
	texture uint32
}

// GLTexture returns the texture name the surface is bound to, or 0 once
// the texture has been destroyed.
func (t *SurfaceTexture) GLTexture() uint32 {
	if t == nil || t.state == nil {
		return 0
	}
	return t.texture
}

// View returns the sampling view of the surface's color texture.
func (t *SurfaceTexture) View() hal.TextureView {
	if t == nil {
		return nil
	}
	return t.view
}

// CreateSurface allocates a surface for ctx. The caller owns the surface;
// it is not bound to ctx.
func (d *Device) CreateSurface(ctx *Context, st SurfaceType) (*Surface, error) {
	if err := d.checkContext(ctx); err != nil {
		return nil, err
	}
	state, err := d.allocSurface(ctx.descriptor, st)
	if err != nil {
		return nil, err
	}
	slogger().Debug("hardware: surface created", "surface", state.id, "size", state.size, "kind", state.kind)
	return &Surface{state: state}, nil
}

// DestroySurface releases s. s is unusable afterwards.
func (d *Device) DestroySurface(ctx *Context, s *Surface) error {
	if err := d.checkContext(ctx); err != nil {
		return err
	}
	state, err := d.surfaceState(s)
	if err != nil {
		return err
	}
	d.freeSurface(state)
	s.state = nil
	slogger().Debug("hardware: surface destroyed", "surface", state.id)
	return nil
}

// CreateSurfaceTexture converts s into a texture that can be sampled by
// ctx. s is moved into the texture and is unusable afterwards.
func (d *Device) CreateSurfaceTexture(ctx *Context, s *Surface) (*SurfaceTexture, error) {
	if err := d.checkContext(ctx); err != nil {
		return nil, err
	}
	state, err := d.surfaceState(s)
	if err != nil {
		return nil, err
	}
	view, err := d.device.CreateTextureView(state.textures.color, &hal.TextureViewDescriptor{
		Label: fmt.Sprintf("surfman_surface_%d_sample_view", state.id),
	})
	if err != nil {
		return nil, fmt.Errorf("create sample view: %w", err)
	}
	d.ensureBlitShader()

	t := &SurfaceTexture{
		state:   state,
		view:    view,
		texture: d.nextTexture.Add(1),
	}
	s.state = nil
	slogger().Debug("hardware: surface texture created", "surface", state.id, "texture", t.texture)
	return t, nil
}

// DestroySurfaceTexture converts t back into the surface it was created
// from. The returned surface has the same ID and size.
func (d *Device) DestroySurfaceTexture(ctx *Context, t *SurfaceTexture) (*Surface, error) {
	if err := d.checkContext(ctx); err != nil {
		return nil, err
	}
	if t == nil || t.state == nil {
		return nil, ErrSurfaceTextureInvalid
	}
	if t.state.device != d {
		return nil, ErrWrongDevice
	}
	if t.view != nil {
		d.device.DestroyTextureView(t.view)
	}
	s := &Surface{state: t.state}
	t.state = nil
	t.view = nil
	slogger().Debug("hardware: surface texture destroyed", "surface", s.state.id, "texture", t.texture)
	return s, nil
}

// surfaceState validates s for use with d.
func (d *Device) surfaceState(s *Surface) (*surfaceState, error) {
	if !s.Valid() {
		return nil, ErrSurfaceInvalid
	}
	if s.state.device != d {
		return nil, ErrWrongDevice
	}
	return s.state, nil
}

func (d *Device) allocSurface(cd ContextDescriptor, st SurfaceType) (*surfaceState, error) {
	var size gpucore.Size
	switch st.Kind {
	case gpucore.SurfaceGeneric:
		size = st.Size
	case gpucore.SurfaceWidget:
		if st.Widget.Handle == 0 {
			return nil, ErrInvalidNativeWidget
		}
		size = st.Widget.Size
	default:
		return nil, fmt.Errorf("hardware: unknown surface kind %v", st.Kind)
	}
	if size.Empty() || size.Width > MaxSurfaceDimension || size.Height > MaxSurfaceDimension {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSurfaceSize, size)
	}

	id := gpucore.SurfaceID(d.nextSurfaceID.Add(1))
	textures, err := newSurfaceTextures(d.device, cd, size, fmt.Sprintf("surfman_surface_%d", id))
	if err != nil {
		return nil, err
	}

	state := &surfaceState{
		id:       id,
		size:     size,
		kind:     st.Kind,
		widget:   st.Widget,
		textures: textures,
		device:   d,
	}
	// Widget surfaces draw into the window's default framebuffer.
	if st.Kind == gpucore.SurfaceGeneric {
		state.framebuffer = d.nextFramebuffer.Add(1)
	}
	d.live.Add(1)
	return state, nil
}

func (d *Device) freeSurface(state *surfaceState) {
	state.textures.destroy(d.device)
	d.live.Add(-1)
}
