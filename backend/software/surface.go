package software

import (
	"fmt"
	"image"

	"github.com/gogpu/surfman/gpucore"
	"golang.org/x/image/draw"
)

// NativeWidget stands in for a window handle. The rasterizer renders
// offscreen only, so every widget request is rejected.
type NativeWidget struct{}

// SurfaceType is a software surface request.
type SurfaceType = gpucore.SurfaceType[NativeWidget]

type surfaceState struct {
	id      gpucore.SurfaceID
	size    gpucore.Size
	pixels  *image.RGBA
	depth   []float32
	stencil []uint8
	device  *Device
}

// Surface is a CPU drawable. The zero Surface and any surface that has
// been moved or destroyed are invalid.
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

// Image returns the color plane, or nil for an invalid surface.
func (s *Surface) Image() *image.RGBA {
	if !s.Valid() {
		return nil
	}
	return s.state.pixels
}

// SurfaceTexture is a surface uploaded into texture storage.
type SurfaceTexture struct {
	state   *surfaceState
	image   *image.RGBA
	texture uint32
}

// GLTexture returns the texture name, or 0 once destroyed.
func (t *SurfaceTexture) GLTexture() uint32 {
	if t == nil || t.state == nil {
		return 0
	}
	return t.texture
}

// Image returns the texture storage: a copy of the surface's color plane
// taken when the texture was created.
func (t *SurfaceTexture) Image() *image.RGBA {
	if t == nil || t.state == nil {
		return nil
	}
	return t.image
}

// CreateSurface allocates a surface for ctx. The caller owns it.
func (d *Device) CreateSurface(ctx *Context, st SurfaceType) (*Surface, error) {
	if err := d.checkContext(ctx); err != nil {
		return nil, err
	}
	state, err := d.allocSurface(ctx.descriptor, st)
	if err != nil {
		return nil, err
	}
	slogger().Debug("software: surface created", "surface", state.id, "size", state.size)
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
	return nil
}

// CreateSurfaceTexture uploads the color plane of s into a texture. s is
// moved into the texture and is unusable afterwards.
func (d *Device) CreateSurfaceTexture(ctx *Context, s *Surface) (*SurfaceTexture, error) {
	if err := d.checkContext(ctx); err != nil {
		return nil, err
	}
	state, err := d.surfaceState(s)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(state.pixels.Bounds())
	draw.Copy(img, image.Point{}, state.pixels, state.pixels.Bounds(), draw.Src, nil)

	t := &SurfaceTexture{
		state:   state,
		image:   img,
		texture: d.nextTexture.Add(1),
	}
	s.state = nil
	slogger().Debug("software: surface texture created", "surface", state.id, "texture", t.texture)
	return t, nil
}

// DestroySurfaceTexture releases the texture storage of t and returns the
// surface it was created from.
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
	s := &Surface{state: t.state}
	t.state = nil
	t.image = nil
	return s, nil
}

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
	if st.Kind != gpucore.SurfaceGeneric {
		return nil, ErrInvalidNativeWidget
	}
	size := st.Size
	limit := d.adapter.maxDimension
	if size.Empty() || size.Width > limit || size.Height > limit {
		return nil, fmt.Errorf("%w: %s", ErrInvalidSurfaceSize, size)
	}

	pixels := image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	if !cd.HasAlpha() {
		draw.Draw(pixels, pixels.Bounds(), image.Black, image.Point{}, draw.Src)
	}
	state := &surfaceState{
		id:     gpucore.SurfaceID(d.nextSurfaceID.Add(1)),
		size:   size,
		pixels: pixels,
		device: d,
	}
	if cd.depthBits > 0 {
		state.depth = make([]float32, size.Area())
		for i := range state.depth {
			state.depth[i] = 1
		}
	}
	if cd.stencilBits > 0 {
		state.stencil = make([]uint8, size.Area())
	}
	d.live.Add(1)
	return state, nil
}

func (d *Device) freeSurface(state *surfaceState) {
	state.pixels = nil
	state.depth = nil
	state.stencil = nil
	d.live.Add(-1)
}
