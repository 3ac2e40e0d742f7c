package gpu

import (
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/surface"
)

// Renderer draws sprites into an offscreen color target using a fixed
// orthographic camera. It implements sprite.Renderer.
//
// The camera is immutable: world X spans [-640, 640], Y spans [-480, 480],
// and Z spans [-50, 50] with +Z toward the viewer. The render target is
// always logical size (1280x960); the viewport tracked from the surface
// only describes where that image would land on the physical surface.
//
// Draw records submissions; nothing reaches the GPU until Flush, which
// encodes one render pass covering the clear (if requested) and every
// recorded sprite in submission order. Depth testing resolves Z ordering
// between sprites independent of that order.
//
// Renderer is not safe for concurrent use. Clear, Draw, and Flush must be
// called from a single goroutine (the frame loop).
type Renderer struct {
	device hal.Device
	queue  hal.Queue

	pipeline *spritePipeline
	targets  targetSet

	// Shared unit-quad geometry, uploaded once at construction.
	vertexBuf hal.Buffer
	indexBuf  hal.Buffer

	// Uniform block template: identity transforms, the fixed projection
	// (written once at construction), opaque white. Draw copies it and
	// overwrites the per-sprite regions at the resolved offsets.
	offsets  map[string]int
	template []byte

	clearColor   gputypes.Color
	clearPending bool

	// Recorded uniform blocks, one per Draw, in call order.
	submissions [][]byte

	mu       sync.Mutex
	viewport surface.Viewport
}

// NewRenderer creates a sprite renderer bound to the given device, queue,
// and surface. Construction runs the full setup sequence: shader
// compilation, uniform resolution, pipeline creation, render targets, and
// the shared unit-quad mesh. Any failure releases what was already created
// and returns an error naming the step.
func NewRenderer(device hal.Device, queue hal.Queue, surf surface.Surface) (*Renderer, error) {
	if surf == nil {
		return nil, fmt.Errorf("gpu: surface is nil")
	}
	if device == nil {
		return nil, fmt.Errorf("gpu: device is nil")
	}
	if queue == nil {
		return nil, fmt.Errorf("gpu: queue is nil")
	}

	pipeline, err := createSpritePipeline(device)
	if err != nil {
		return nil, err
	}

	// Fixed camera: world X [-640, 640], Y [-480, 480], Z [50, -50] with
	// near at +50 so positive Z wins the depth test.
	projection := sprite.Ortho(-640, 640, -480, 480, 50, -50)

	r := &Renderer{
		device:     device,
		queue:      queue,
		pipeline:   pipeline,
		offsets:    pipeline.uniformOffsets,
		template:   newUniformTemplate(pipeline.uniformOffsets, projection),
		clearColor: gputypes.Color{R: 0, G: 0, B: 0, A: 1},
	}

	if err := r.targets.ensure(device, surface.LogicalWidth, surface.LogicalHeight); err != nil {
		r.Destroy()
		return nil, err
	}

	vertexBuf, err := r.createAndUploadBuffer("sprite_quad_verts", quadVertexData(),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("create quad vertex buffer: %w", err)
	}
	r.vertexBuf = vertexBuf

	indexBuf, err := r.createAndUploadBuffer("sprite_quad_indices", quadIndexData(),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		r.Destroy()
		return nil, fmt.Errorf("create quad index buffer: %w", err)
	}
	r.indexBuf = indexBuf

	// Track the surface so resizes keep the aspect-correct viewport current.
	// OnResize fires once immediately with the current size.
	surf.OnResize(func(w, h int) {
		vp := surface.FitViewport(w, h)
		r.mu.Lock()
		r.viewport = vp
		r.mu.Unlock()
	})

	return r, nil
}

// SetClearColor replaces the color used by Clear. Components are clamped
// by the GPU, not here.
func (r *Renderer) SetClearColor(red, green, blue, alpha float64) {
	r.clearColor = gputypes.Color{R: red, G: green, B: blue, A: alpha}
}

// Viewport returns the aspect-correct viewport computed from the most
// recent surface size.
func (r *Renderer) Viewport() surface.Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.viewport
}

// Clear requests that the next Flush clear the color target before drawing.
func (r *Renderer) Clear() {
	r.clearPending = true
}

// Draw records one sprite draw with the given transform matrices and color.
// The transforms compose in the shader as projection * translation *
// rotation * scale applied to the unit quad.
func (r *Renderer) Draw(scale, rotation, translation sprite.Mat4, color sprite.Vec4) {
	block := make([]byte, uniformBlockSize)
	copy(block, r.template)
	writeMat4(block, r.offsets["uniScl"], scale)
	writeMat4(block, r.offsets["uniRot"], rotation)
	writeMat4(block, r.offsets["uniTrs"], translation)
	writeVec4(block, r.offsets["uniCol"], color)
	r.submissions = append(r.submissions, block)
}

// Flush encodes all recorded draws into a single render pass, submits, and
// blocks until the GPU signals completion. Recorded submissions and the
// pending clear are consumed whether or not Flush succeeds.
func (r *Renderer) Flush() error {
	submissions := r.submissions
	r.submissions = nil
	clearPending := r.clearPending
	r.clearPending = false

	if len(submissions) == 0 && !clearPending {
		return nil
	}

	// Per-frame uniform buffers and bind groups, one per recorded draw.
	// Each draw needs its own buffer because all draws share one render
	// pass and uniform writes are not ordered against draws within it.
	type drawResources struct {
		uniformBuf hal.Buffer
		bindGroup  hal.BindGroup
	}
	frame := make([]drawResources, 0, len(submissions))
	defer func() {
		for _, res := range frame {
			if res.bindGroup != nil {
				r.device.DestroyBindGroup(res.bindGroup)
			}
			if res.uniformBuf != nil {
				r.device.DestroyBuffer(res.uniformBuf)
			}
		}
	}()

	for i, block := range submissions {
		uniformBuf, err := r.createAndUploadBuffer(fmt.Sprintf("sprite_uniform_%d", i), block,
			gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
		if err != nil {
			return fmt.Errorf("create uniform buffer: %w", err)
		}
		frame = append(frame, drawResources{uniformBuf: uniformBuf})

		bindGroup, err := r.device.CreateBindGroup(&hal.BindGroupDescriptor{
			Label:  "sprite_bind",
			Layout: r.pipeline.uniformLayout,
			Entries: []gputypes.BindGroupEntry{
				{Binding: 0, Resource: gputypes.BufferBinding{
					Buffer: uniformBuf.NativeHandle(), Offset: 0, Size: uniformBlockSize,
				}},
			},
		})
		if err != nil {
			return fmt.Errorf("create bind group: %w", err)
		}
		frame[i].bindGroup = bindGroup
	}

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	colorLoadOp := gputypes.LoadOpLoad
	if clearPending {
		colorLoadOp = gputypes.LoadOpClear
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "sprite_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       r.targets.colorView,
			LoadOp:     colorLoadOp,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: r.clearColor,
		}},
		DepthStencilAttachment: &hal.RenderPassDepthStencilAttachment{
			View:              r.targets.depthView,
			DepthLoadOp:       gputypes.LoadOpClear,
			DepthStoreOp:      gputypes.StoreOpDiscard,
			DepthClearValue:   1.0,
			StencilLoadOp:     gputypes.LoadOpClear,
			StencilStoreOp:    gputypes.StoreOpDiscard,
			StencilClearValue: 0,
		},
	})

	if len(frame) > 0 {
		rp.SetPipeline(r.pipeline.pipeline)
		rp.SetVertexBuffer(0, r.vertexBuf, 0)
		rp.SetIndexBuffer(r.indexBuf, gputypes.IndexFormatUint16, 0)
		for _, res := range frame {
			rp.SetBindGroup(0, res.bindGroup, nil)
			rp.DrawIndexed(quadIndexCount, 1, 0, 0, 0)
		}
	}

	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	return nil
}

// Readback copies the color target to CPU memory and returns it as an
// RGBA image at logical size. Intended for tests and headless capture.
func (r *Renderer) Readback() (*image.RGBA, error) {
	w := uint32(surface.LogicalWidth)
	h := uint32(surface.LogicalHeight)

	// WebGPU (and DX12) require BytesPerRow aligned to 256 bytes.
	bytesPerRow := w * 4
	const copyPitchAlignment = 256
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	stagingBuf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "sprite_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create staging buffer: %w", err)
	}
	defer r.device.DestroyBuffer(stagingBuf)

	encoder, err := r.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "sprite_readback_encoder",
	})
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("sprite_readback"); err != nil {
		return nil, fmt.Errorf("begin encoding: %w", err)
	}

	// The color target sits in render-attachment layout after Flush;
	// transition it for the copy and back again afterwards.
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targets.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})

	encoder.CopyTextureToBuffer(r.targets.colorTex, stagingBuf, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: r.targets.colorTex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: r.targets.colorTex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("end encoding: %w", err)
	}
	defer r.device.FreeCommandBuffer(cmdBuf)

	fence, err := r.device.CreateFence()
	if err != nil {
		return nil, fmt.Errorf("create fence: %w", err)
	}
	defer r.device.DestroyFence(fence)

	if err := r.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	fenceOK, err := r.device.Wait(fence, 1, 5*time.Second)
	if err != nil || !fenceOK {
		return nil, fmt.Errorf("wait for GPU: ok=%v err=%w", fenceOK, err)
	}

	readback := make([]byte, stagingSize)
	if err := r.queue.ReadBuffer(stagingBuf, 0, readback); err != nil {
		return nil, fmt.Errorf("readback: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	for row := uint32(0); row < h; row++ {
		src := readback[row*alignedBytesPerRow:]
		dst := img.Pix[int(row)*img.Stride:]
		// BGRA -> RGBA.
		for x := uint32(0); x < w; x++ {
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = src[x*4+3]
		}
	}
	return img, nil
}

// Destroy releases all GPU resources held by the renderer. Safe to call
// multiple times or on a partially constructed renderer.
func (r *Renderer) Destroy() {
	if r.device == nil {
		return
	}
	if r.indexBuf != nil {
		r.device.DestroyBuffer(r.indexBuf)
		r.indexBuf = nil
	}
	if r.vertexBuf != nil {
		r.device.DestroyBuffer(r.vertexBuf)
		r.vertexBuf = nil
	}
	r.targets.destroy(r.device)
	if r.pipeline != nil {
		r.pipeline.destroy()
		r.pipeline = nil
	}
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (r *Renderer) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := r.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// Renderer satisfies the drawing contract used by the frame loop.
var _ sprite.Renderer = (*Renderer)(nil)
