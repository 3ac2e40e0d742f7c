// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/internal/gpu"
	"github.com/gogpu/sprite/surface"
)

// ErrNilProvider is returned by New when the device provider is nil.
var ErrNilProvider = errors.New("render: device provider is nil")

// Option configures a GPURenderer.
type Option func(*config)

type config struct {
	clearColor    [4]float64
	hasClearColor bool
}

// WithClearColor sets the color used when clearing the render target.
// The default is opaque black.
func WithClearColor(r, g, b, a float64) Option {
	return func(c *config) {
		c.clearColor = [4]float64{r, g, b, a}
		c.hasClearColor = true
	}
}

// GPURenderer renders sprites on a GPU device shared with the host
// application. It implements sprite.Renderer; hand it to sprite.NewLoop
// to drive frames.
//
// Clear, Draw, and Flush must be called from a single goroutine.
type GPURenderer struct {
	inner *gpu.Renderer
}

// New creates a GPU sprite renderer on the provider's device, targeting
// the given surface. The provider must expose raw HAL access (as gogpu's
// context does); the surface drives viewport fitting on resize.
func New(provider DeviceHandle, surf surface.Surface, opts ...Option) (*GPURenderer, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	device, queue, err := halFrom(provider)
	if err != nil {
		return nil, err
	}

	inner, err := gpu.NewRenderer(device, queue, surf)
	if err != nil {
		return nil, err
	}
	if cfg.hasClearColor {
		inner.SetClearColor(cfg.clearColor[0], cfg.clearColor[1], cfg.clearColor[2], cfg.clearColor[3])
	}
	return &GPURenderer{inner: inner}, nil
}

// Clear requests that the next Flush clear the render target.
func (r *GPURenderer) Clear() {
	r.inner.Clear()
}

// Draw records one sprite draw with the given transforms and color.
func (r *GPURenderer) Draw(scale, rotation, translation sprite.Mat4, color sprite.Vec4) {
	r.inner.Draw(scale, rotation, translation, color)
}

// Flush submits all recorded draws and blocks until the GPU finishes.
func (r *GPURenderer) Flush() error {
	return r.inner.Flush()
}

// Viewport returns the aspect-correct viewport computed from the most
// recent surface size.
func (r *GPURenderer) Viewport() surface.Viewport {
	return r.inner.Viewport()
}

// Readback copies the rendered frame to CPU memory. Intended for tests
// and headless capture.
func (r *GPURenderer) Readback() (*image.RGBA, error) {
	return r.inner.Readback()
}

// Release frees all GPU resources held by the renderer. The shared device
// is untouched; it belongs to the host. Safe to call multiple times.
func (r *GPURenderer) Release() {
	r.inner.Destroy()
}

var _ sprite.Renderer = (*GPURenderer)(nil)
