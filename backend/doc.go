// Package backend declares the backend tag shared by every surfman resource.
//
// surfman supports exactly two backends, chosen at startup rather than
// loaded as plugins:
//
//   - "hardware": GPU rendering through gogpu/wgpu HAL (backend/hardware)
//   - "software": CPU rasterizer surfaces (backend/software)
//
// # Backend Selection
//
// The probe order decides which backend an adapter comes from. The default
// order tries hardware first and falls back to software:
//
//	order, err := backend.ParseProbeOrder([]string{"software", "hardware"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Backend Contract
//
// Both backend packages expose the same method set on their Device type
// (context descriptors, contexts, surfaces, surface textures, current
// context handling and queries), so the root package can dispatch on the
// tag with a plain switch.
package backend
