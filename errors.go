package surfman

import "errors"

// Errors raised by the dispatch layer. They are returned before any
// backend call is made. Backend failures are returned as-is and can be
// matched against the sentinels of backend/hardware and backend/software.
var (
	// ErrIncompatibleAdapter is returned when an adapter or device does not
	// carry the backend an operation requires, including the zero Adapter.
	ErrIncompatibleAdapter = errors.New("surfman: incompatible adapter")

	// ErrIncompatibleContext is returned when a Context or ContextDescriptor
	// was created by another backend than the device it is passed to.
	ErrIncompatibleContext = errors.New("surfman: incompatible context")

	// ErrIncompatibleSurface is returned for a Surface from another backend.
	ErrIncompatibleSurface = errors.New("surfman: incompatible surface")

	// ErrIncompatibleSurfaceTexture is returned for a SurfaceTexture from
	// another backend.
	ErrIncompatibleSurfaceTexture = errors.New("surfman: incompatible surface texture")

	// ErrInvalidNativeWidget is returned when a widget surface is requested
	// from a device that only renders offscreen.
	ErrInvalidNativeWidget = errors.New("surfman: invalid native widget")

	// ErrUnimplemented is returned by operations that exist in the API but
	// have no implementation yet.
	ErrUnimplemented = errors.New("surfman: unimplemented")
)
