// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/surface"
)

// halTestProvider implements DeviceHandle plus the HAL accessor methods,
// backed by the noop GPU backend.
type halTestProvider struct {
	device hal.Device
	queue  hal.Queue
}

func newHalTestProvider(t *testing.T) (*halTestProvider, func()) {
	t.Helper()
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		t.Fatalf("CreateInstance failed: %v", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		t.Fatalf("Open failed: %v", err)
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return &halTestProvider{device: openDev.Device, queue: openDev.Queue}, cleanup
}

func (p *halTestProvider) Device() gpucontext.Device   { return nil }
func (p *halTestProvider) Queue() gpucontext.Queue     { return nil }
func (p *halTestProvider) Adapter() gpucontext.Adapter { return nil }
func (p *halTestProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}
func (p *halTestProvider) HalDevice() any { return p.device }
func (p *halTestProvider) HalQueue() any  { return p.queue }

func TestNewNilProvider(t *testing.T) {
	_, err := New(nil, surface.NewMemorySurface(640, 480))
	if !errors.Is(err, ErrNilProvider) {
		t.Errorf("New(nil, ...) error = %v, want ErrNilProvider", err)
	}
}

func TestNewProviderWithoutHAL(t *testing.T) {
	_, err := New(NullDeviceHandle{}, surface.NewMemorySurface(640, 480))
	if err == nil {
		t.Fatal("expected error for provider without HAL access")
	}
}

func TestNewAndRenderFrame(t *testing.T) {
	provider, cleanup := newHalTestProvider(t)
	defer cleanup()

	r, err := New(provider, surface.NewMemorySurface(1280, 960))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r.Release()

	r.Clear()
	r.Draw(sprite.Scaling(100, 100, 1), sprite.RotationXYZ(0, 0, 0),
		sprite.Translation(0, 0, 0), sprite.RGBA(1, 0, 0, 1))
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	img, err := r.Readback()
	if err != nil {
		t.Fatalf("Readback failed: %v", err)
	}
	if img.Bounds().Dx() != surface.LogicalWidth {
		t.Errorf("readback width = %d, want %d", img.Bounds().Dx(), surface.LogicalWidth)
	}
}

func TestNewWithClearColor(t *testing.T) {
	provider, cleanup := newHalTestProvider(t)
	defer cleanup()

	r, err := New(provider, surface.NewMemorySurface(640, 480), WithClearColor(0.1, 0.2, 0.3, 1))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r.Release()

	r.Clear()
	if err := r.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
}

func TestGPURendererViewport(t *testing.T) {
	provider, cleanup := newHalTestProvider(t)
	defer cleanup()

	surf := surface.NewMemorySurface(640, 480)
	r, err := New(provider, surf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer r.Release()

	vp := r.Viewport()
	if vp.Width != 640 || vp.Height != 480 {
		t.Errorf("viewport = %+v, want 640x480", vp)
	}
}

func TestGPURendererIsRenderer(t *testing.T) {
	var _ sprite.Renderer = (*GPURenderer)(nil)
}
