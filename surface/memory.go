// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "sync"

// MemorySurface is an in-memory resizable surface for tests and headless
// runs. Resize notifies every registered observer with the new size.
type MemorySurface struct {
	mu        sync.Mutex
	width     int
	height    int
	observers []func(width, height int)
}

// NewMemorySurface creates a surface with the given pixel size.
// Non-positive dimensions are clamped to 1.
func NewMemorySurface(width, height int) *MemorySurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &MemorySurface{width: width, height: height}
}

// Width returns the surface width in pixels.
func (s *MemorySurface) Width() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width
}

// Height returns the surface height in pixels.
func (s *MemorySurface) Height() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// OnResize registers fn and invokes it once with the current size.
func (s *MemorySurface) OnResize(fn func(width, height int)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	w, h := s.width, s.height
	s.mu.Unlock()
	fn(w, h)
}

// Resize changes the surface size and notifies observers.
func (s *MemorySurface) Resize(width, height int) {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	s.mu.Lock()
	s.width = width
	s.height = height
	observers := make([]func(int, int), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(width, height)
	}
}

var _ Surface = (*MemorySurface)(nil)
