// Package sprite is a minimal 2D/3D sprite renderer for the GoGPU ecosystem.
//
// # Overview
//
// sprite maintains a set of drawable entities and submits them, frame by
// frame, to a GPU rendering context under a fixed orthographic camera. Every
// entity is the same shared unit quad, differentiated purely through four
// per-draw uniforms: a scale matrix, a rotation matrix, a translation matrix
// and a flat color.
//
// # Quick Start
//
//	reg := sprite.NewRegistry()
//	reg.Add(sprite.NewSprite(
//	    sprite.WithPosition(0, 0, 40),
//	    sprite.WithScale(100, 100),
//	    sprite.WithColor(sprite.RGBA(1, 0, 0, 1)),
//	))
//
//	r, _ := render.New(provider, surf) // device comes from the host
//	loop, _ := sprite.NewLoop(r, reg)
//	loop.Start(ctx)
//	defer loop.Stop()
//
// # Architecture
//
// The library is organized into:
//   - Public API: Vec4, Mat4, Component, Registry, Sprite, Renderer, Loop
//   - render: GPU renderer construction from a host-provided device
//   - surface: drawing-surface contract and fixed 4:3 viewport fitting
//   - internal/gpu: wgpu/hal pipeline, unit-quad mesh, frame submission
//
// # Coordinate System
//
// World units map to X in [-640, 640] (positive right), Y in [-480, 480]
// (positive up), Z in [-50, 50] (positive toward the viewer). The projection
// is parallel: Z affects depth ordering only.
package sprite
