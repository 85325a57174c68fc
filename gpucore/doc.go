// Package gpucore defines the value types shared by the surfman dispatch
// layer and its backends.
//
// Both backend/hardware and backend/software speak the same minimal
// contract: they accept [ContextAttributes] and [SurfaceType] values and
// report sizes, surface IDs and GL enums using the types declared here.
// Keeping these in a leaf package lets the root package wrap the backends
// without an import cycle.
//
//	               +-----------------+
//	               |     surfman     |
//	               | (tagged facade) |
//	               +--------+--------+
//	                        |
//	         +--------------+--------------+
//	         |                             |
//	+--------v--------+          +--------v--------+
//	|    hardware     |          |    software     |
//	|  (wgpu/hal)     |          |  (image.RGBA)   |
//	+--------+--------+          +--------+--------+
//	         |                             |
//	         +--------------+--------------+
//	                        |
//	               +--------v--------+
//	               |     gpucore     |
//	               +-----------------+
package gpucore
