package hardware

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// blitShaderWGSL samples a surface texture onto a full-screen triangle.
// Clients compositing surface textures bind the sampling view at
// binding 0 and a sampler at binding 1.
const blitShaderWGSL = `
@group(0) @binding(0) var src_texture: texture_2d<f32>;
@group(0) @binding(1) var src_sampler: sampler;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@builtin(vertex_index) index: u32) -> VertexOutput {
    var out: VertexOutput;
    let uv = vec2<f32>(f32((index << 1u) & 2u), f32(index & 2u));
    out.position = vec4<f32>(uv.x * 2.0 - 1.0, 1.0 - uv.y * 2.0, 0.0, 1.0);
    out.uv = uv;
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(src_texture, src_sampler, in.uv);
}
`

// compileShaderToSPIRV compiles WGSL source to SPIR-V words.
func compileShaderToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// ensureBlitShader builds the device's blit shader module on first use.
// Failure leaves the module nil; surface textures still work, clients
// just have to bring their own sampling pipeline.
func (d *Device) ensureBlitShader() {
	if d.blitTried {
		return
	}
	d.blitTried = true

	spirv, err := compileShaderToSPIRV(blitShaderWGSL)
	if err != nil {
		slogger().Warn("hardware: blit shader unavailable", "error", err)
		return
	}
	module, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "surfman_blit",
		Source: hal.ShaderSource{
			SPIRV: spirv,
		},
	})
	if err != nil {
		slogger().Warn("hardware: blit shader module creation failed", "error", err)
		return
	}
	d.blitModule = module
}

// BlitShaderModule returns the blit shader module, or nil if no surface
// texture has been created yet or the shader failed to build.
func (d *Device) BlitShaderModule() hal.ShaderModule {
	return d.blitModule
}
