// Command spritedemo renders an animated sprite scene headlessly and saves
// the final frame as a PNG. It runs on the noop GPU backend so it works on
// machines without a GPU; swap the provider for a real gogpu context to
// render on hardware.
package main

import (
	"context"
	"flag"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/render"
	"github.com/gogpu/sprite/surface"
)

func main() {
	var (
		output   = flag.String("output", "spritedemo.png", "output file")
		duration = flag.Duration("duration", 2*time.Second, "animation run time")
		verbose  = flag.Bool("v", false, "log renderer activity")
	)
	flag.Parse()

	if *verbose {
		sprite.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	provider, cleanup, err := newNoopProvider()
	if err != nil {
		log.Fatalf("GPU init failed: %v", err)
	}
	defer cleanup()

	surf := surface.NewMemorySurface(1280, 960)
	renderer, err := render.New(provider, surf, render.WithClearColor(0.05, 0.05, 0.1, 1))
	if err != nil {
		log.Fatalf("Renderer init failed: %v", err)
	}
	defer renderer.Release()

	// Scene: a spinning red square in front, a wide green bar behind it,
	// and a blue square that blinks.
	spinner := sprite.NewSprite(
		sprite.WithPosition(0, 0, 40),
		sprite.WithScale(200, 200),
		sprite.WithColor(sprite.RGBA(0.9, 0.2, 0.2, 1)),
	)
	bar := sprite.NewSprite(
		sprite.WithPosition(0, -300, -20),
		sprite.WithScale(1000, 80),
		sprite.WithColor(sprite.RGBA(0.2, 0.8, 0.3, 1)),
	)
	blinker := sprite.NewSprite(
		sprite.WithPosition(400, 200, 10),
		sprite.WithScale(120, 120),
		sprite.WithColor(sprite.RGBA(0.2, 0.4, 0.9, 0.8)),
	)

	registry := sprite.NewRegistry()
	for _, s := range []*sprite.Sprite{bar, spinner, blinker} {
		if _, err := registry.Add(s); err != nil {
			log.Fatalf("Registry add failed: %v", err)
		}
	}

	// Animation runs in the update callback, on the loop goroutine, so the
	// sprites are never touched while a frame reads them.
	start := time.Now()
	loop, err := sprite.NewLoop(renderer, registry, sprite.WithUpdate(func() {
		t := float32(time.Since(start).Seconds())
		spinner.SetRotation(0, 0, t*math.Pi)
		spinner.SetPosition(300*cos(t), 100*sin(t*2), 40)
		if int(t*4)%2 == 0 {
			blinker.Enable()
		} else {
			blinker.Disable()
		}
	}))
	if err != nil {
		log.Fatalf("Loop init failed: %v", err)
	}
	if err := loop.Start(context.Background()); err != nil {
		log.Fatalf("Loop start failed: %v", err)
	}
	time.Sleep(*duration)
	loop.Stop()

	img, err := renderer.Readback()
	if err != nil {
		log.Fatalf("Readback failed: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Encode PNG: %v", err)
	}

	log.Printf("Rendered %d frames, saved %s", loop.Frames(), *output)
}

func sin(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// noopProvider exposes a noop-backend device through the DeviceHandle
// contract plus the raw HAL accessors render.New needs.
type noopProvider struct {
	device hal.Device
	queue  hal.Queue
}

func newNoopProvider() (*noopProvider, func(), error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, nil, err
	}
	adapters := instance.EnumerateAdapters(nil)
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, nil, err
	}
	cleanup := func() {
		openDev.Device.Destroy()
		instance.Destroy()
	}
	return &noopProvider{device: openDev.Device, queue: openDev.Queue}, cleanup, nil
}

func (p *noopProvider) Device() gpucontext.Device   { return nil }
func (p *noopProvider) Queue() gpucontext.Queue     { return nil }
func (p *noopProvider) Adapter() gpucontext.Adapter { return nil }
func (p *noopProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}
func (p *noopProvider) HalDevice() any { return p.device }
func (p *noopProvider) HalQueue() any  { return p.queue }

var _ render.DeviceHandle = (*noopProvider)(nil)
