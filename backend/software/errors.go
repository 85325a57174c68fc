package software

import "errors"

// Package errors for the software backend.
var (
	// ErrDisabled is returned by DefaultAdapter when the software
	// rasterizer has been disabled.
	ErrDisabled = errors.New("software: rasterizer disabled")

	// ErrNoAdapter is returned by NewDevice for the zero Adapter.
	ErrNoAdapter = errors.New("software: invalid adapter")

	// ErrDeviceReleased is returned when a released device is used.
	ErrDeviceReleased = errors.New("software: device released")

	// ErrWrongDevice is returned when a context or surface created by one
	// device is passed to another.
	ErrWrongDevice = errors.New("software: resource belongs to another device")

	// ErrUnsupportedGLVersion is returned when the requested GL version is
	// above MaxGLVersion.
	ErrUnsupportedGLVersion = errors.New("software: unsupported GL version")

	// ErrInvalidSurfaceSize is returned for empty or oversized surfaces.
	ErrInvalidSurfaceSize = errors.New("software: invalid surface size")

	// ErrInvalidNativeWidget is returned for widget surface requests; the
	// rasterizer only renders offscreen.
	ErrInvalidNativeWidget = errors.New("software: widget surfaces are not supported")

	// ErrSurfaceInvalid is returned when a surface handle has been moved
	// into a context or texture, or destroyed.
	ErrSurfaceInvalid = errors.New("software: surface has been moved or destroyed")

	// ErrSurfaceTextureInvalid is returned when a surface texture has
	// already been converted back to a surface.
	ErrSurfaceTextureInvalid = errors.New("software: surface texture has been destroyed")

	// ErrContextDestroyed is returned when a destroyed context is used.
	ErrContextDestroyed = errors.New("software: context destroyed")

	// ErrNoCurrentContext is returned by FromCurrentContext when no
	// software context is current.
	ErrNoCurrentContext = errors.New("software: no current context")

	// ErrExternalRenderTarget is returned for surface operations on a
	// context adopted with FromCurrentContext.
	ErrExternalRenderTarget = errors.New("software: context renders to an external target")
)
