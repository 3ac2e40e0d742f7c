package gpu

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/sprite.wgsl
var spriteShaderSource string

// colorFormat is the render target pixel format.
const colorFormat = gputypes.TextureFormatBGRA8Unorm

// depthFormat is the depth attachment format. The stencil component is
// unused but required by the format; all stencil ops are Keep with zero
// masks.
const depthFormat = gputypes.TextureFormatDepth24PlusStencil8

// spritePipeline owns the compiled shader module, the single bind group
// layout (one uniform block at group(0) binding(0)), and the render
// pipeline. Created once; there is no rebuild path.
type spritePipeline struct {
	device hal.Device

	shader         hal.ShaderModule
	uniformLayout  hal.BindGroupLayout
	pipeLayout     hal.PipelineLayout
	pipeline       hal.RenderPipeline
	uniformOffsets map[string]int
}

// createSpritePipeline validates and compiles the sprite shader, resolves the
// uniform block members, and links the render pipeline. Each step fails
// fatally, releasing whatever was created before it in reverse order.
func createSpritePipeline(device hal.Device) (*spritePipeline, error) {
	if spriteShaderSource == "" {
		return nil, fmt.Errorf("gpu: sprite shader source is empty")
	}

	// Validate WGSL before handing it to the backend, so a malformed shader
	// fails here with naga's diagnostics instead of inside the driver.
	if _, err := naga.Compile(spriteShaderSource); err != nil {
		return nil, fmt.Errorf("compile sprite shader: %w", err)
	}

	offsets, err := resolveUniformOffsets(spriteShaderSource)
	if err != nil {
		return nil, err
	}

	p := &spritePipeline{device: device, uniformOffsets: offsets}

	shader, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "sprite_shader",
		Source: hal.ShaderSource{WGSL: spriteShaderSource},
	})
	if err != nil {
		return nil, fmt.Errorf("create sprite shader module: %w", err)
	}
	p.shader = shader

	uniformLayout, err := device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "sprite_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create sprite uniform layout: %w", err)
	}
	p.uniformLayout = uniformLayout

	pipeLayout, err := device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "sprite_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.uniformLayout},
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("create sprite pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	// Straight-alpha blending: src-alpha / one-minus-src-alpha, both
	// components. Depth test is less-or-equal with depth writes so nearer
	// sprites (larger world Z) win regardless of draw order.
	alphaBlend := gputypes.BlendState{
		Color: gputypes.BlendComponent{
			Operation: gputypes.BlendOperationAdd,
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		},
		Alpha: gputypes.BlendComponent{
			Operation: gputypes.BlendOperationAdd,
			SrcFactor: gputypes.BlendFactorSrcAlpha,
			DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		},
	}

	pipeline, err := device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "sprite_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: quadVertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},  // position
						{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 1}, // aux coordinate
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    colorFormat,
					Blend:     &alphaBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		DepthStencil: &hal.DepthStencilState{
			Format:            depthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      gputypes.CompareFunctionLessEqual,
			StencilFront: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilBack: hal.StencilFaceState{
				Compare:     gputypes.CompareFunctionAlways,
				FailOp:      hal.StencilOperationKeep,
				DepthFailOp: hal.StencilOperationKeep,
				PassOp:      hal.StencilOperationKeep,
			},
			StencilReadMask:  0x00,
			StencilWriteMask: 0x00,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		p.destroy()
		return nil, fmt.Errorf("link sprite pipeline: %w", err)
	}
	p.pipeline = pipeline

	return p, nil
}

// destroy releases pipeline resources in reverse creation order. Safe to
// call on a partially created pipeline.
func (p *spritePipeline) destroy() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.uniformLayout != nil {
		p.device.DestroyBindGroupLayout(p.uniformLayout)
		p.uniformLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
