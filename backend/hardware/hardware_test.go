package hardware

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/surfman/gpucore"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
)

// failingProvider is an InstanceProvider whose instance creation fails.
type failingProvider struct {
	err error
}

func (p failingProvider) CreateInstance(*hal.InstanceDescriptor) (hal.Instance, error) {
	return nil, p.err
}

// countingProvider hands out noop instances that expose adapters and
// record how many instances and adapters were destroyed.
type countingProvider struct {
	adapters []hal.ExposedAdapter // nil exposes the default noop adapter

	instancesDestroyed int
	adaptersDestroyed  int
}

func (p *countingProvider) CreateInstance(*hal.InstanceDescriptor) (hal.Instance, error) {
	return countingInstance{Instance: &noop.Instance{}, p: p}, nil
}

// expose returns an adapter of the given type whose Destroy is counted by p.
func (p *countingProvider) expose(name string, typ gputypes.DeviceType) hal.ExposedAdapter {
	return hal.ExposedAdapter{
		Adapter: countingAdapter{Adapter: &noop.Adapter{}, p: p},
		Info:    gputypes.AdapterInfo{Name: name, DeviceType: typ},
	}
}

type countingInstance struct {
	*noop.Instance
	p *countingProvider
}

func (i countingInstance) EnumerateAdapters(hint hal.Surface) []hal.ExposedAdapter {
	if i.p.adapters == nil {
		return []hal.ExposedAdapter{i.p.expose("Noop Adapter", gputypes.DeviceTypeOther)}
	}
	return i.p.adapters
}

func (i countingInstance) Destroy() { i.p.instancesDestroyed++ }

type countingAdapter struct {
	*noop.Adapter
	p *countingProvider
}

func (a countingAdapter) Destroy() { a.p.adaptersDestroyed++ }

// newTestDevice opens a device on the noop HAL.
func newTestDevice(t *testing.T) *Device {
	t.Helper()
	adapter, err := DefaultAdapter(WithInstanceProviders(&noop.API{}))
	if err != nil {
		t.Fatalf("DefaultAdapter failed: %v", err)
	}
	d, err := NewDevice(adapter)
	if err != nil {
		t.Fatalf("NewDevice failed: %v", err)
	}
	t.Cleanup(func() {
		_ = d.MakeNoContextCurrent()
		_ = d.Release()
	})
	return d
}

func generic(w, h int) SurfaceType {
	return gpucore.Generic[NativeWidget](gpucore.Sz(w, h))
}

func newTestContext(t *testing.T, d *Device, flags gpucore.ContextAttributeFlags, w, h int) *Context {
	t.Helper()
	cd, err := d.CreateContextDescriptor(gpucore.ContextAttributes{
		Version: gpucore.GLVersion{Major: 3, Minor: 3},
		Flags:   flags,
	})
	if err != nil {
		t.Fatalf("CreateContextDescriptor failed: %v", err)
	}
	ctx, err := d.CreateContext(cd, generic(w, h))
	if err != nil {
		t.Fatalf("CreateContext failed: %v", err)
	}
	return ctx
}

func TestDefaultAdapterNoop(t *testing.T) {
	adapter, err := DefaultAdapter(WithInstanceProviders(&noop.API{}))
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	if !adapter.valid() {
		t.Error("DefaultAdapter() returned an adapter without a HAL adapter")
	}
	if adapter.String() == "" {
		t.Error("Adapter.String() is empty")
	}
}

func TestDefaultAdapterFallsThroughProviders(t *testing.T) {
	adapter, err := DefaultAdapter(WithInstanceProviders(
		failingProvider{err: errors.New("no vulkan")},
		&noop.API{},
	))
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	if !adapter.valid() {
		t.Error("expected the noop provider to yield an adapter")
	}
}

func TestDefaultAdapterAllProvidersFail(t *testing.T) {
	cause := errors.New("driver missing")
	_, err := DefaultAdapter(WithInstanceProviders(failingProvider{err: cause}))
	if !errors.Is(err, ErrNoAdapter) {
		t.Errorf("DefaultAdapter() error = %v, want ErrNoAdapter", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("DefaultAdapter() error = %v, want it to wrap the provider error", err)
	}
}

func TestDefaultAdapterNoBackends(t *testing.T) {
	_, err := DefaultAdapter(WithBackends())
	if !errors.Is(err, ErrNoAdapter) {
		t.Errorf("DefaultAdapter(WithBackends()) error = %v, want ErrNoAdapter", err)
	}
}

func TestNewDeviceZeroAdapter(t *testing.T) {
	if _, err := NewDevice(Adapter{}); !errors.Is(err, ErrNoAdapter) {
		t.Errorf("NewDevice(Adapter{}) error = %v, want ErrNoAdapter", err)
	}
}

func TestContextDescriptor(t *testing.T) {
	d := newTestDevice(t)

	tests := []struct {
		name        string
		flags       gpucore.ContextAttributeFlags
		color       gputypes.TextureFormat
		depth       gputypes.TextureFormat
		sampleCount uint32
	}{
		{"plain", 0, gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatUndefined, 1},
		{"alpha", gpucore.ContextAlpha, gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatUndefined, 1},
		{"depth", gpucore.ContextDepth, gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatDepth24PlusStencil8, 1},
		{"stencil", gpucore.ContextStencil, gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatDepth24PlusStencil8, 1},
		{"msaa", gpucore.ContextMultisample, gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatUndefined, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := gpucore.ContextAttributes{Version: gpucore.GLVersion{Major: 3, Minor: 3}, Flags: tt.flags}
			cd, err := d.CreateContextDescriptor(attrs)
			if err != nil {
				t.Fatalf("CreateContextDescriptor() error = %v", err)
			}
			if cd.ColorFormat() != tt.color {
				t.Errorf("ColorFormat() = %v, want %v", cd.ColorFormat(), tt.color)
			}
			if cd.DepthStencilFormat() != tt.depth {
				t.Errorf("DepthStencilFormat() = %v, want %v", cd.DepthStencilFormat(), tt.depth)
			}
			if cd.SampleCount() != tt.sampleCount {
				t.Errorf("SampleCount() = %d, want %d", cd.SampleCount(), tt.sampleCount)
			}
			if got := d.ContextDescriptorAttributes(cd); got != attrs {
				t.Errorf("ContextDescriptorAttributes() = %+v, want %+v", got, attrs)
			}
		})
	}
}

func TestContextDescriptorUnsupportedVersion(t *testing.T) {
	d := newTestDevice(t)
	_, err := d.CreateContextDescriptor(gpucore.ContextAttributes{Version: gpucore.GLVersion{Major: 5, Minor: 0}})
	if !errors.Is(err, ErrUnsupportedGLVersion) {
		t.Errorf("CreateContextDescriptor(5.0) error = %v, want ErrUnsupportedGLVersion", err)
	}
}

func TestCreateContextAllFlags(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, gpucore.ContextAlpha|gpucore.ContextDepth|gpucore.ContextStencil|gpucore.ContextMultisample, 320, 200)

	if ctx.surface.textures.msaa == nil {
		t.Error("expected an MSAA texture for a multisampled context")
	}
	if ctx.surface.textures.depthStencil == nil {
		t.Error("expected a depth/stencil texture for a depth context")
	}
	if err := d.DestroyContext(ctx); err != nil {
		t.Fatalf("DestroyContext() error = %v", err)
	}
	if n := d.LiveSurfaces(); n != 0 {
		t.Errorf("LiveSurfaces() = %d after DestroyContext, want 0", n)
	}
}

func TestContextSurfaceQueries(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, gpucore.ContextAlpha, 640, 480)

	size, err := d.ContextSurfaceSize(ctx)
	if err != nil {
		t.Fatalf("ContextSurfaceSize() error = %v", err)
	}
	if size != gpucore.Sz(640, 480) {
		t.Errorf("ContextSurfaceSize() = %v, want 640x480", size)
	}
	id, err := d.ContextSurfaceID(ctx)
	if err != nil {
		t.Fatalf("ContextSurfaceID() error = %v", err)
	}
	if id == gpucore.InvalidSurfaceID {
		t.Error("ContextSurfaceID() returned the invalid ID")
	}
	fbo, err := d.ContextSurfaceFramebufferObject(ctx)
	if err != nil {
		t.Fatalf("ContextSurfaceFramebufferObject() error = %v", err)
	}
	if fbo == 0 {
		t.Error("generic surfaces should not use the default framebuffer")
	}
	if d.SurfaceGLTextureTarget() != gpucore.GLTexture2D {
		t.Errorf("SurfaceGLTextureTarget() = %#x, want GL_TEXTURE_2D", d.SurfaceGLTextureTarget())
	}
}

func TestCreateSurfaceInvalidSize(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 16, 16)

	for _, size := range []gpucore.Size{{Width: 0, Height: 10}, {Width: 10, Height: -1}, {Width: MaxSurfaceDimension + 1, Height: 10}} {
		if _, err := d.CreateSurface(ctx, gpucore.Generic[NativeWidget](size)); !errors.Is(err, ErrInvalidSurfaceSize) {
			t.Errorf("CreateSurface(%v) error = %v, want ErrInvalidSurfaceSize", size, err)
		}
	}
	if n := d.LiveSurfaces(); n != 1 {
		t.Errorf("LiveSurfaces() = %d, want 1 (context surface only)", n)
	}
}

func TestWidgetSurface(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 16, 16)

	if _, err := d.CreateSurface(ctx, gpucore.Widget(NativeWidget{Size: gpucore.Sz(100, 100)})); !errors.Is(err, ErrInvalidNativeWidget) {
		t.Errorf("CreateSurface(widget without handle) error = %v, want ErrInvalidNativeWidget", err)
	}

	s, err := d.CreateSurface(ctx, gpucore.Widget(NativeWidget{Handle: 0xdead, Size: gpucore.Sz(800, 600)}))
	if err != nil {
		t.Fatalf("CreateSurface(widget) error = %v", err)
	}
	if s.Kind() != gpucore.SurfaceWidget {
		t.Errorf("Kind() = %v, want widget", s.Kind())
	}
	if s.Size() != gpucore.Sz(800, 600) {
		t.Errorf("Size() = %v, want 800x600", s.Size())
	}

	prev, err := d.ReplaceContextSurface(ctx, s)
	if err != nil {
		t.Fatalf("ReplaceContextSurface() error = %v", err)
	}
	fbo, err := d.ContextSurfaceFramebufferObject(ctx)
	if err != nil {
		t.Fatalf("ContextSurfaceFramebufferObject() error = %v", err)
	}
	if fbo != 0 {
		t.Errorf("widget surface framebuffer = %d, want 0", fbo)
	}
	if err := d.DestroySurface(ctx, prev); err != nil {
		t.Fatalf("DestroySurface() error = %v", err)
	}
}

func TestReplaceContextSurface(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 640, 480)
	idA, _ := d.ContextSurfaceID(ctx)

	surfaceB, err := d.CreateSurface(ctx, generic(1280, 720))
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}
	idB := surfaceB.ID()

	prev, err := d.ReplaceContextSurface(ctx, surfaceB)
	if err != nil {
		t.Fatalf("ReplaceContextSurface() error = %v", err)
	}
	if prev.ID() != idA || prev.Size() != gpucore.Sz(640, 480) {
		t.Errorf("ReplaceContextSurface() returned %v %v, want %v 640x480", prev.ID(), prev.Size(), idA)
	}
	if surfaceB.Valid() {
		t.Error("surface moved into the context should be invalid")
	}
	size, _ := d.ContextSurfaceSize(ctx)
	if size != gpucore.Sz(1280, 720) {
		t.Errorf("ContextSurfaceSize() = %v, want 1280x720", size)
	}
	id, _ := d.ContextSurfaceID(ctx)
	if id != idB {
		t.Errorf("ContextSurfaceID() = %v, want %v", id, idB)
	}

	if _, err := d.ReplaceContextSurface(ctx, surfaceB); !errors.Is(err, ErrSurfaceInvalid) {
		t.Errorf("ReplaceContextSurface(moved surface) error = %v, want ErrSurfaceInvalid", err)
	}
	if err := d.DestroySurface(ctx, prev); err != nil {
		t.Fatalf("DestroySurface() error = %v", err)
	}
	if n := d.LiveSurfaces(); n != 1 {
		t.Errorf("LiveSurfaces() = %d, want 1", n)
	}
}

func TestSurfaceTextureRoundTrip(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, gpucore.ContextAlpha, 64, 64)

	s, err := d.CreateSurface(ctx, generic(256, 128))
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}
	id, size := s.ID(), s.Size()
	copied := s

	tex, err := d.CreateSurfaceTexture(ctx, s)
	if err != nil {
		t.Fatalf("CreateSurfaceTexture() error = %v", err)
	}
	if tex.GLTexture() == 0 {
		t.Error("GLTexture() = 0, want a texture name")
	}
	if tex.View() == nil {
		t.Error("View() = nil, want a sampling view")
	}
	if !d.blitTried {
		t.Error("CreateSurfaceTexture should build the blit shader")
	}
	if copied.Valid() {
		t.Error("copies of a surface moved into a texture should be invalid")
	}
	if err := d.DestroySurface(ctx, s); !errors.Is(err, ErrSurfaceInvalid) {
		t.Errorf("DestroySurface(moved) error = %v, want ErrSurfaceInvalid", err)
	}

	back, err := d.DestroySurfaceTexture(ctx, tex)
	if err != nil {
		t.Fatalf("DestroySurfaceTexture() error = %v", err)
	}
	if back.ID() != id || back.Size() != size {
		t.Errorf("round trip = %v %v, want %v %v", back.ID(), back.Size(), id, size)
	}
	if tex.GLTexture() != 0 {
		t.Error("destroyed surface texture should report texture 0")
	}
	if _, err := d.DestroySurfaceTexture(ctx, tex); !errors.Is(err, ErrSurfaceTextureInvalid) {
		t.Errorf("second DestroySurfaceTexture() error = %v, want ErrSurfaceTextureInvalid", err)
	}
	if err := d.DestroySurface(ctx, back); err != nil {
		t.Fatalf("DestroySurface() error = %v", err)
	}
}

func TestSurfaceIDsUnique(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 8, 8)
	first, _ := d.ContextSurfaceID(ctx)

	seen := map[gpucore.SurfaceID]bool{first: true}
	for i := 0; i < 8; i++ {
		s, err := d.CreateSurface(ctx, generic(8, 8))
		if err != nil {
			t.Fatalf("CreateSurface() error = %v", err)
		}
		if seen[s.ID()] {
			t.Fatalf("duplicate surface ID %v", s.ID())
		}
		seen[s.ID()] = true
	}
}

func TestWrongDevice(t *testing.T) {
	d1 := newTestDevice(t)
	d2 := newTestDevice(t)
	ctx1 := newTestContext(t, d1, 0, 8, 8)
	ctx2 := newTestContext(t, d2, 0, 8, 8)

	if _, err := d2.CreateSurface(ctx1, generic(8, 8)); !errors.Is(err, ErrWrongDevice) {
		t.Errorf("CreateSurface(foreign context) error = %v, want ErrWrongDevice", err)
	}
	s1, err := d1.CreateSurface(ctx1, generic(8, 8))
	if err != nil {
		t.Fatalf("CreateSurface() error = %v", err)
	}
	if _, err := d2.ReplaceContextSurface(ctx2, s1); !errors.Is(err, ErrWrongDevice) {
		t.Errorf("ReplaceContextSurface(foreign surface) error = %v, want ErrWrongDevice", err)
	}
	if !s1.Valid() {
		t.Error("a failed move must leave the surface with the caller")
	}
}

func TestMakeContextCurrent(t *testing.T) {
	d := newTestDevice(t)
	a := newTestContext(t, d, 0, 8, 8)
	b := newTestContext(t, d, 0, 8, 8)

	if err := d.MakeContextCurrent(a); err != nil {
		t.Fatalf("MakeContextCurrent() error = %v", err)
	}
	if !a.IsCurrent() || b.IsCurrent() {
		t.Error("expected only a to be current")
	}

	// Clearing goes through another device: current state is backend-wide.
	other := newTestDevice(t)
	if err := other.MakeNoContextCurrent(); err != nil {
		t.Fatalf("MakeNoContextCurrent() error = %v", err)
	}
	if a.IsCurrent() {
		t.Error("MakeNoContextCurrent on another device should clear a")
	}

	if err := d.MakeContextCurrent(b); err != nil {
		t.Fatalf("MakeContextCurrent() error = %v", err)
	}
	if err := d.DestroyContext(b); err != nil {
		t.Fatalf("DestroyContext() error = %v", err)
	}
	if _, _, err := FromCurrentContext(); !errors.Is(err, ErrNoCurrentContext) {
		t.Errorf("FromCurrentContext() after destroying the current context error = %v, want ErrNoCurrentContext", err)
	}
	if err := d.MakeContextCurrent(b); !errors.Is(err, ErrContextDestroyed) {
		t.Errorf("MakeContextCurrent(destroyed) error = %v, want ErrContextDestroyed", err)
	}
}

func TestFromCurrentContext(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, gpucore.ContextDepth, 300, 200)
	if err := d.MakeContextCurrent(ctx); err != nil {
		t.Fatalf("MakeContextCurrent() error = %v", err)
	}
	wantFBO, _ := d.ContextSurfaceFramebufferObject(ctx)

	ad, actx, err := FromCurrentContext()
	if err != nil {
		t.Fatalf("FromCurrentContext() error = %v", err)
	}
	size, err := ad.ContextSurfaceSize(actx)
	if err != nil || size != gpucore.Sz(300, 200) {
		t.Errorf("adopted ContextSurfaceSize() = %v, %v, want 300x200", size, err)
	}
	fbo, err := ad.ContextSurfaceFramebufferObject(actx)
	if err != nil || fbo != wantFBO {
		t.Errorf("adopted framebuffer = %d, %v, want %d", fbo, err, wantFBO)
	}
	if _, err := ad.ContextSurfaceID(actx); !errors.Is(err, ErrExternalRenderTarget) {
		t.Errorf("adopted ContextSurfaceID() error = %v, want ErrExternalRenderTarget", err)
	}
	s, err := ad.CreateSurface(actx, generic(10, 10))
	if err != nil {
		t.Fatalf("CreateSurface() on adopted device error = %v", err)
	}
	if _, err := ad.ReplaceContextSurface(actx, s); !errors.Is(err, ErrExternalRenderTarget) {
		t.Errorf("adopted ReplaceContextSurface() error = %v, want ErrExternalRenderTarget", err)
	}
	if err := ad.DestroySurface(actx, s); err != nil {
		t.Fatalf("DestroySurface() error = %v", err)
	}
	if err := ad.DestroyContext(actx); err != nil {
		t.Fatalf("DestroyContext(adopted) error = %v", err)
	}
	if err := ad.Release(); err != nil {
		t.Fatalf("Release(adopted) error = %v", err)
	}

	// The owning device is untouched.
	if size, err := d.ContextSurfaceSize(ctx); err != nil || size != gpucore.Sz(300, 200) {
		t.Errorf("owner ContextSurfaceSize() = %v, %v after adopted release", size, err)
	}
}

func TestGetProcAddress(t *testing.T) {
	adapter, err := DefaultAdapter(
		WithInstanceProviders(&noop.API{}),
		WithProcLoader(func(name string) uintptr {
			if name == "glClear" {
				return 0x1000
			}
			return 0
		}),
	)
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	d, err := NewDevice(adapter)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	defer d.Release()
	ctx := newTestContext(t, d, 0, 8, 8)

	if addr, err := d.GetProcAddress(ctx, "glClear"); err != nil || addr != 0x1000 {
		t.Errorf("GetProcAddress(glClear) = %#x, %v, want 0x1000", addr, err)
	}
	if addr, _ := d.GetProcAddress(ctx, "glBogus"); addr != 0 {
		t.Errorf("GetProcAddress(glBogus) = %#x, want 0", addr)
	}

	plain := newTestDevice(t)
	pctx := newTestContext(t, plain, 0, 8, 8)
	if addr, err := plain.GetProcAddress(pctx, "glClear"); err != nil || addr != 0 {
		t.Errorf("GetProcAddress without loader = %#x, %v, want 0", addr, err)
	}
}

func TestReleasedDevice(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 8, 8)
	if err := d.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := d.Release(); err != nil {
		t.Fatalf("second Release() error = %v", err)
	}
	if _, err := d.CreateSurface(ctx, generic(8, 8)); !errors.Is(err, ErrDeviceReleased) {
		t.Errorf("CreateSurface() after Release error = %v, want ErrDeviceReleased", err)
	}
}

func TestDeviceProvider(t *testing.T) {
	d := newTestDevice(t)
	p := d.DeviceProvider()
	if p.Device() == nil {
		t.Error("DeviceProvider().Device() = nil")
	}
	if p.Queue() == nil {
		t.Error("DeviceProvider().Queue() = nil")
	}
	if p.SurfaceFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want RGBA8Unorm", p.SurfaceFormat())
	}
	info := p.AdapterInfo()
	if info.Name != d.Adapter().Name() {
		t.Errorf("AdapterInfo().Name = %q, want %q", info.Name, d.Adapter().Name())
	}
	if info.Type != gpucontext.AdapterTypeUnknown {
		t.Errorf("AdapterInfo().Type = %v, want AdapterTypeUnknown for the noop adapter", info.Type)
	}

	// Destroy through the provider must not release the device.
	sd, ok := p.Device().(sharedDevice)
	if !ok {
		t.Fatalf("DeviceProvider().Device() = %T, want sharedDevice", p.Device())
	}
	if sd.HAL() == nil {
		t.Error("sharedDevice.HAL() = nil")
	}
	sd.Destroy()
	ctx := newTestContext(t, d, 0, 8, 8)
	if _, err := d.CreateSurface(ctx, generic(8, 8)); err != nil {
		t.Errorf("CreateSurface() after provider Destroy error = %v", err)
	}
}

func TestAdapterType(t *testing.T) {
	tests := []struct {
		in   gputypes.DeviceType
		want gpucontext.AdapterType
	}{
		{gputypes.DeviceTypeDiscreteGPU, gpucontext.AdapterTypeDiscrete},
		{gputypes.DeviceTypeIntegratedGPU, gpucontext.AdapterTypeIntegrated},
		{gputypes.DeviceTypeCPU, gpucontext.AdapterTypeSoftware},
		{gputypes.DeviceTypeVirtualGPU, gpucontext.AdapterTypeUnknown},
		{gputypes.DeviceTypeOther, gpucontext.AdapterTypeUnknown},
	}
	for _, tt := range tests {
		if got := adapterType(tt.in); got != tt.want {
			t.Errorf("adapterType(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDeviceProviderAdapterInfoType(t *testing.T) {
	p := &countingProvider{}
	p.adapters = []hal.ExposedAdapter{p.expose("dgpu", gputypes.DeviceTypeDiscreteGPU)}
	adapter, err := DefaultAdapter(WithInstanceProviders(p))
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	d, err := NewDevice(adapter)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	defer d.Release()

	info := d.DeviceProvider().AdapterInfo()
	if info.Name != "dgpu" || info.Type != gpucontext.AdapterTypeDiscrete {
		t.Errorf("AdapterInfo() = %+v, want dgpu/AdapterTypeDiscrete", info)
	}
}

func TestSelectAdapter(t *testing.T) {
	var (
		discrete   = gputypes.DeviceTypeDiscreteGPU
		integrated = gputypes.DeviceTypeIntegratedGPU
		cpu        = gputypes.DeviceTypeCPU
		virtual    = gputypes.DeviceTypeVirtualGPU
		other      = gputypes.DeviceTypeOther
	)
	tests := []struct {
		name  string
		types []gputypes.DeviceType
		want  int
	}{
		{"single", []gputypes.DeviceType{other}, 0},
		{"discrete after integrated", []gputypes.DeviceType{integrated, discrete}, 1},
		{"discrete last", []gputypes.DeviceType{virtual, integrated, cpu, discrete}, 3},
		{"integrated over cpu", []gputypes.DeviceType{cpu, integrated}, 1},
		{"first discrete wins", []gputypes.DeviceType{discrete, discrete}, 0},
		{"no preferred type", []gputypes.DeviceType{cpu, virtual, other}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapters := make([]hal.ExposedAdapter, len(tt.types))
			for i, typ := range tt.types {
				adapters[i].Info.DeviceType = typ
			}
			if got := selectAdapter(adapters); got != tt.want {
				t.Errorf("selectAdapter(%v) = %d, want %d", tt.types, got, tt.want)
			}
		})
	}
}

func TestDefaultAdapterPrefersDiscrete(t *testing.T) {
	p := &countingProvider{}
	p.adapters = []hal.ExposedAdapter{
		p.expose("igpu", gputypes.DeviceTypeIntegratedGPU),
		p.expose("dgpu", gputypes.DeviceTypeDiscreteGPU),
		p.expose("llvmpipe", gputypes.DeviceTypeCPU),
	}
	adapter, err := DefaultAdapter(WithInstanceProviders(p))
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	if adapter.Name() != "dgpu" {
		t.Errorf("DefaultAdapter().Name() = %q, want %q", adapter.Name(), "dgpu")
	}
	if p.adaptersDestroyed != 2 {
		t.Errorf("unselected adapters destroyed = %d, want 2", p.adaptersDestroyed)
	}
	if p.instancesDestroyed != 0 {
		t.Errorf("instances destroyed = %d, want 0 while the adapter is alive", p.instancesDestroyed)
	}
}

func TestDefaultAdapterDestroysEmptyInstance(t *testing.T) {
	empty := &countingProvider{adapters: []hal.ExposedAdapter{}}
	used := &countingProvider{}
	adapter, err := DefaultAdapter(WithInstanceProviders(empty, used))
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	if empty.instancesDestroyed != 1 {
		t.Errorf("instances destroyed for a provider without adapters = %d, want 1", empty.instancesDestroyed)
	}
	if used.instancesDestroyed != 0 {
		t.Errorf("selected instance destroyed = %d times before Release, want 0", used.instancesDestroyed)
	}
	adapter.Release()
	if used.instancesDestroyed != 1 {
		t.Errorf("selected instance destroyed = %d times after Release, want 1", used.instancesDestroyed)
	}
}

func TestAdapterRelease(t *testing.T) {
	p := &countingProvider{}
	adapter, err := DefaultAdapter(WithInstanceProviders(p))
	if err != nil {
		t.Fatalf("DefaultAdapter() error = %v", err)
	}
	d, err := NewDevice(adapter)
	if err != nil {
		t.Fatalf("NewDevice() error = %v", err)
	}
	if err := d.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	adapter.Release()
	if p.adaptersDestroyed != 1 || p.instancesDestroyed != 1 {
		t.Errorf("after Release: adapters destroyed = %d, instances destroyed = %d, want 1 and 1",
			p.adaptersDestroyed, p.instancesDestroyed)
	}

	// The zero adapter holds nothing.
	Adapter{}.Release()
}

func TestReleaseClearsCurrentContext(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 8, 8)
	if err := d.MakeContextCurrent(ctx); err != nil {
		t.Fatalf("MakeContextCurrent() error = %v", err)
	}
	if err := d.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if ctx.IsCurrent() {
		t.Error("context of a released device is still current")
	}
	if _, _, err := FromCurrentContext(); !errors.Is(err, ErrNoCurrentContext) {
		t.Errorf("FromCurrentContext() after Release error = %v, want ErrNoCurrentContext", err)
	}
}

func TestReleaseKeepsOtherDevicesCurrentContext(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 8, 8)
	if err := d.MakeContextCurrent(ctx); err != nil {
		t.Fatalf("MakeContextCurrent() error = %v", err)
	}
	other := newTestDevice(t)
	if err := other.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if !ctx.IsCurrent() {
		t.Error("releasing another device cleared the current context")
	}
}

func TestFromCurrentContextReleasedOwner(t *testing.T) {
	d := newTestDevice(t)
	ctx := newTestContext(t, d, 0, 8, 8)
	if err := d.MakeContextCurrent(ctx); err != nil {
		t.Fatalf("MakeContextCurrent() error = %v", err)
	}
	// Owner released while its context is still in the slot.
	d.released = true
	if _, _, err := FromCurrentContext(); !errors.Is(err, ErrNoCurrentContext) {
		t.Errorf("FromCurrentContext() with a released owner error = %v, want ErrNoCurrentContext", err)
	}
	d.released = false
}

func TestCompileBlitShader(t *testing.T) {
	spirv, err := compileShaderToSPIRV(blitShaderWGSL)
	if err != nil {
		t.Skipf("naga cannot compile the blit shader: %v", err)
	}
	if len(spirv) == 0 {
		t.Fatal("compiled shader is empty")
	}
	const spirvMagic = 0x07230203
	if spirv[0] != spirvMagic {
		t.Errorf("SPIR-V magic = %#x, want %#x", spirv[0], spirvMagic)
	}
}
