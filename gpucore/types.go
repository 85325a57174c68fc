package gpucore

import (
	"fmt"
	"strings"
)

// SurfaceID identifies a surface among the live surfaces of one device.
// It is meant for external tracking; two surfaces with equal content
// still have different IDs.
type SurfaceID uint64

// InvalidSurfaceID is the zero value. Devices never hand it out.
const InvalidSurfaceID SurfaceID = 0

// String returns the ID in the form "#N".
func (id SurfaceID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Size is a pixel size.
type Size struct {
	Width  int
	Height int
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h int) Size {
	return Size{Width: w, Height: h}
}

// Empty reports whether either dimension is not positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Area returns Width*Height, or 0 for an empty size.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.Width * s.Height
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// GLVersion is a requested OpenGL version.
type GLVersion struct {
	Major uint8
	Minor uint8
}

// Less reports whether v is an earlier version than other.
func (v GLVersion) Less(other GLVersion) bool {
	if v.Major != other.Major {
		return v.Major < other.Major
	}
	return v.Minor < other.Minor
}

// String returns the version as "major.minor".
func (v GLVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ContextAttributeFlags selects optional framebuffer planes and profile
// behaviour of a context. Flags can be combined with bitwise OR.
type ContextAttributeFlags uint8

const (
	// ContextAlpha requests an alpha channel in the color buffer.
	ContextAlpha ContextAttributeFlags = 1 << iota

	// ContextDepth requests a depth buffer.
	ContextDepth

	// ContextStencil requests a stencil buffer.
	ContextStencil

	// ContextCompatibilityProfile requests the compatibility profile
	// instead of the core profile.
	ContextCompatibilityProfile

	// ContextMultisample requests a multisampled color buffer.
	// Backends without multisampling drop this flag.
	ContextMultisample
)

// Has reports whether all bits of f2 are set in f.
func (f ContextAttributeFlags) Has(f2 ContextAttributeFlags) bool {
	return f&f2 == f2
}

// String returns the set flags joined with "|".
func (f ContextAttributeFlags) String() string {
	if f == 0 {
		return "none"
	}
	names := []struct {
		flag ContextAttributeFlags
		name string
	}{
		{ContextAlpha, "alpha"},
		{ContextDepth, "depth"},
		{ContextStencil, "stencil"},
		{ContextCompatibilityProfile, "compat"},
		{ContextMultisample, "multisample"},
	}
	var parts []string
	for _, n := range names {
		if f.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// ContextAttributes are the user-requested properties of a context.
// A backend turns them into its own immutable context descriptor.
type ContextAttributes struct {
	Version GLVersion
	Flags   ContextAttributeFlags
}

// SurfaceKind distinguishes offscreen surfaces from window-bound ones.
type SurfaceKind uint8

const (
	// SurfaceGeneric is an offscreen surface described only by its size.
	SurfaceGeneric SurfaceKind = iota

	// SurfaceWidget is a surface bound to a native window.
	SurfaceWidget
)

// String returns "generic" or "widget".
func (k SurfaceKind) String() string {
	switch k {
	case SurfaceGeneric:
		return "generic"
	case SurfaceWidget:
		return "widget"
	default:
		return fmt.Sprintf("SurfaceKind(%d)", uint8(k))
	}
}

// SurfaceType is a surface request: either a generic surface of a given
// size or a widget surface for the native widget W. Each backend
// instantiates it with its own widget type.
type SurfaceType[W any] struct {
	Kind   SurfaceKind
	Size   Size
	Widget W
}

// Generic returns a request for an offscreen surface of the given size.
func Generic[W any](size Size) SurfaceType[W] {
	return SurfaceType[W]{Kind: SurfaceGeneric, Size: size}
}

// Widget returns a request for a surface bound to the native widget w.
func Widget[W any](w W) SurfaceType[W] {
	return SurfaceType[W]{Kind: SurfaceWidget, Widget: w}
}

// GLApi identifies the OpenGL flavour exposed to clients.
type GLApi uint8

const (
	// GLApiGL is desktop OpenGL.
	GLApiGL GLApi = iota

	// GLApiGLES is OpenGL ES.
	GLApiGLES
)

// String returns "GL" or "GLES".
func (a GLApi) String() string {
	if a == GLApiGLES {
		return "GLES"
	}
	return "GL"
}

// GL enums reported by devices.
const (
	// GLTexture2D is GL_TEXTURE_2D.
	GLTexture2D uint32 = 0x0DE1

	// GLTextureRectangle is GL_TEXTURE_RECTANGLE.
	GLTextureRectangle uint32 = 0x84F5
)

// ProcLoader resolves a GL entry point by name. It returns 0 for unknown
// symbols.
type ProcLoader func(symbolName string) uintptr
