// Package hardware is the GPU backend of surfman, built on gogpu/wgpu HAL.
//
// Adapter discovery probes HAL backends (Vulkan, Metal, DX12, GL by
// default) and opens the best GPU adapter found. Surfaces are HAL render
// target textures: a single-sample color texture that can be sampled,
// plus an MSAA color texture and a Depth24PlusStencil8 texture when the
// context descriptor asks for them.
//
//	adapter, err := hardware.DefaultAdapter()
//	if err != nil {
//		return err
//	}
//	device, err := hardware.NewDevice(adapter)
//	if err != nil {
//		return err
//	}
//	defer device.Release()
//
//	cd, _ := device.CreateContextDescriptor(gpucore.ContextAttributes{
//		Version: gpucore.GLVersion{Major: 3, Minor: 3},
//		Flags:   gpucore.ContextAlpha | gpucore.ContextDepth,
//	})
//	ctx, err := device.CreateContext(cd, gpucore.Generic[hardware.NativeWidget](gpucore.Sz(640, 480)))
//
// Most programs use the backend through the root surfman package, which
// tags every resource and rejects mixing hardware and software values.
//
// Surfaces, contexts and surface textures are single-owner handles.
// Operations that move a surface (binding it to a context, converting it
// to a texture) invalidate the handle that was passed in; using it again
// fails with ErrSurfaceInvalid.
package hardware
