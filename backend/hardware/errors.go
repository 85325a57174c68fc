package hardware

import "errors"

// Package errors for the hardware backend.
var (
	// ErrNoAdapter is returned when no HAL backend yields a GPU adapter.
	ErrNoAdapter = errors.New("hardware: no GPU adapter available")

	// ErrDeviceReleased is returned when a released device is used.
	ErrDeviceReleased = errors.New("hardware: device released")

	// ErrWrongDevice is returned when a context or surface created by one
	// device is passed to another.
	ErrWrongDevice = errors.New("hardware: resource belongs to another device")

	// ErrUnsupportedGLVersion is returned when the requested GL version is
	// above MaxGLVersion.
	ErrUnsupportedGLVersion = errors.New("hardware: unsupported GL version")

	// ErrInvalidSurfaceSize is returned for empty or oversized surfaces.
	ErrInvalidSurfaceSize = errors.New("hardware: invalid surface size")

	// ErrInvalidNativeWidget is returned for widget requests without a
	// window handle.
	ErrInvalidNativeWidget = errors.New("hardware: invalid native widget")

	// ErrSurfaceInvalid is returned when a surface handle has been moved
	// into a context or texture, or destroyed.
	ErrSurfaceInvalid = errors.New("hardware: surface has been moved or destroyed")

	// ErrSurfaceTextureInvalid is returned when a surface texture has
	// already been converted back to a surface.
	ErrSurfaceTextureInvalid = errors.New("hardware: surface texture has been destroyed")

	// ErrContextDestroyed is returned when a destroyed context is used.
	ErrContextDestroyed = errors.New("hardware: context destroyed")

	// ErrNoCurrentContext is returned by FromCurrentContext when no
	// hardware context is current.
	ErrNoCurrentContext = errors.New("hardware: no current context")

	// ErrExternalRenderTarget is returned for surface operations on a
	// context adopted with FromCurrentContext.
	ErrExternalRenderTarget = errors.New("hardware: context renders to an external target")
)
