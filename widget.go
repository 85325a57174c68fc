package surfman

import (
	"github.com/gogpu/surfman/backend/hardware"
	"github.com/gogpu/surfman/backend/software"
	"github.com/gogpu/surfman/gpucore"
)

// NativeWidget is a platform window handle. Only hardware devices accept
// it; see integration/glfwsurface for building one from a GLFW window.
type NativeWidget = hardware.NativeWidget

// SurfaceType is a surface request: generic (offscreen, size only) or
// bound to a NativeWidget.
type SurfaceType = gpucore.SurfaceType[NativeWidget]

// GenericSurfaceType requests an offscreen surface of the given size.
func GenericSurfaceType(size Size) SurfaceType {
	return gpucore.Generic[NativeWidget](size)
}

// WidgetSurfaceType requests a surface that renders into w.
func WidgetSurfaceType(w NativeWidget) SurfaceType {
	return gpucore.Widget(w)
}

// intoSoftware converts st for the software backend, which only renders
// offscreen.
func intoSoftware(st SurfaceType) (software.SurfaceType, error) {
	if st.Kind != gpucore.SurfaceGeneric {
		return software.SurfaceType{}, ErrInvalidNativeWidget
	}
	return gpucore.Generic[software.NativeWidget](st.Size), nil
}
