package surfman

import "github.com/gogpu/surfman/gpucore"

// Value types shared with the backends.
type (
	Size                  = gpucore.Size
	SurfaceID             = gpucore.SurfaceID
	GLVersion             = gpucore.GLVersion
	GLApi                 = gpucore.GLApi
	ContextAttributes     = gpucore.ContextAttributes
	ContextAttributeFlags = gpucore.ContextAttributeFlags
	SurfaceKind           = gpucore.SurfaceKind
	ProcLoader            = gpucore.ProcLoader
)

// Context attribute flags.
const (
	ContextAlpha                = gpucore.ContextAlpha
	ContextDepth                = gpucore.ContextDepth
	ContextStencil              = gpucore.ContextStencil
	ContextCompatibilityProfile = gpucore.ContextCompatibilityProfile
	ContextMultisample          = gpucore.ContextMultisample
)

// Surface kinds.
const (
	SurfaceGeneric = gpucore.SurfaceGeneric
	SurfaceWidget  = gpucore.SurfaceWidget
)

// GL API flavours.
const (
	GLApiGL   = gpucore.GLApiGL
	GLApiGLES = gpucore.GLApiGLES
)

// InvalidSurfaceID is the ID reported by moved or destroyed surfaces.
const InvalidSurfaceID = gpucore.InvalidSurfaceID

// Sz returns a Size of w by h pixels.
func Sz(w, h int) Size { return gpucore.Sz(w, h) }
