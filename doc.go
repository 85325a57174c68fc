// Package surfman renders through GPU contexts and drawable surfaces
// without caring whether a hardware GPU or the CPU rasterizer sits
// underneath.
//
// # Overview
//
// Every resource (Adapter, Device, ContextDescriptor, Context, Surface,
// SurfaceTexture) is tagged with the backend that produced it. A Device
// only accepts resources carrying its own tag; a mismatch fails with one
// of the ErrIncompatible* errors before the backend is called. Errors
// returned by a backend are passed through unchanged.
//
// # Quick Start
//
//	adapter, err := surfman.DefaultAdapter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	device, err := surfman.NewDevice(adapter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer device.Release()
//
//	cd, err := device.CreateContextDescriptor(surfman.ContextAttributes{
//	    Version: surfman.GLVersion{Major: 3, Minor: 3},
//	    Flags:   surfman.ContextAlpha | surfman.ContextDepth,
//	})
//	ctx, err := device.CreateContext(cd, surfman.GenericSurfaceType(surfman.Sz(640, 480)))
//	defer device.DestroyContext(ctx)
//
// # Backend Selection
//
// DefaultAdapter tries the hardware backend and falls back to the software
// backend; the hardware failure is never returned. HardwareAdapter and
// SoftwareAdapter force one backend. SelectAdapter walks the probe order
// of a Config, typically loaded from YAML with LoadConfig.
//
// # Ownership
//
// Surfaces are moved, not copied. CreateSurfaceTexture and
// ReplaceContextSurface take the surface away from the caller: the passed
// Surface and all of its copies become unusable and later operations on
// them fail with the backend's ErrSurfaceInvalid. DestroySurfaceTexture
// hands back a Surface with the same ID and size.
//
// # Logging
//
// surfman is silent by default. SetLogger enables log/slog output for this
// package and both backends.
package surfman
