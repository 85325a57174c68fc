package hardware

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/surfman/gpucore"
	"github.com/gogpu/wgpu/hal"
)

// surfaceTextures holds the HAL textures behind one surface:
//   - color: 1x sample, RenderAttachment | TextureBinding | CopySrc
//   - msaa: descriptor sample count, RenderAttachment (multisampled contexts only)
//   - depthStencil: Depth24PlusStencil8, RenderAttachment (depth or stencil contexts only)
type surfaceTextures struct {
	color            hal.Texture
	colorView        hal.TextureView
	msaa             hal.Texture
	msaaView         hal.TextureView
	depthStencil     hal.Texture
	depthStencilView hal.TextureView
}

func newSurfaceTextures(device hal.Device, cd ContextDescriptor, size gpucore.Size, labelPrefix string) (*surfaceTextures, error) {
	ts := &surfaceTextures{}
	extent := hal.Extent3D{Width: uint32(size.Width), Height: uint32(size.Height), DepthOrArrayLayers: 1}

	var err error
	ts.color, ts.colorView, err = createTarget(device, &hal.TextureDescriptor{
		Label:         labelPrefix + "_color",
		Size:          extent,
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        cd.colorFormat,
		Usage: gputypes.TextureUsageRenderAttachment |
			gputypes.TextureUsageTextureBinding |
			gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return nil, fmt.Errorf("create color texture: %w", err)
	}

	if cd.sampleCount > 1 {
		ts.msaa, ts.msaaView, err = createTarget(device, &hal.TextureDescriptor{
			Label:         labelPrefix + "_msaa_color",
			Size:          extent,
			MipLevelCount: 1,
			SampleCount:   cd.sampleCount,
			Dimension:     gputypes.TextureDimension2D,
			Format:        cd.colorFormat,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			ts.destroy(device)
			return nil, fmt.Errorf("create MSAA color texture: %w", err)
		}
	}

	if cd.depthStencilFormat != gputypes.TextureFormatUndefined {
		ts.depthStencil, ts.depthStencilView, err = createTarget(device, &hal.TextureDescriptor{
			Label:         labelPrefix + "_depth_stencil",
			Size:          extent,
			MipLevelCount: 1,
			SampleCount:   cd.sampleCount,
			Dimension:     gputypes.TextureDimension2D,
			Format:        cd.depthStencilFormat,
			Usage:         gputypes.TextureUsageRenderAttachment,
		})
		if err != nil {
			ts.destroy(device)
			return nil, fmt.Errorf("create depth/stencil texture: %w", err)
		}
	}
	return ts, nil
}

// createTarget creates a texture and a default view of it.
func createTarget(device hal.Device, desc *hal.TextureDescriptor) (hal.Texture, hal.TextureView, error) {
	tex, err := device.CreateTexture(desc)
	if err != nil {
		return nil, nil, err
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: desc.Label + "_view",
	})
	if err != nil {
		device.DestroyTexture(tex)
		return nil, nil, err
	}
	return tex, view, nil
}

// destroy releases views before their textures.
func (ts *surfaceTextures) destroy(device hal.Device) {
	if ts.depthStencilView != nil {
		device.DestroyTextureView(ts.depthStencilView)
		ts.depthStencilView = nil
	}
	if ts.depthStencil != nil {
		device.DestroyTexture(ts.depthStencil)
		ts.depthStencil = nil
	}
	if ts.msaaView != nil {
		device.DestroyTextureView(ts.msaaView)
		ts.msaaView = nil
	}
	if ts.msaa != nil {
		device.DestroyTexture(ts.msaa)
		ts.msaa = nil
	}
	if ts.colorView != nil {
		device.DestroyTextureView(ts.colorView)
		ts.colorView = nil
	}
	if ts.color != nil {
		device.DestroyTexture(ts.color)
		ts.color = nil
	}
}
