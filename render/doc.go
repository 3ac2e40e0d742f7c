// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render exposes the GPU-backed sprite renderer.
//
// The host application owns the GPU device and hands it to this package
// through a DeviceHandle; render never creates a device of its own. New
// builds a renderer bound to that device and a surface, and the returned
// GPURenderer plugs straight into a sprite.Loop:
//
//	renderer, err := render.New(provider, surf)
//	if err != nil {
//	    return err
//	}
//	defer renderer.Release()
//
//	loop, err := sprite.NewLoop(renderer, registry)
package render
