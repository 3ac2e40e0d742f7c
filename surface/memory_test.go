// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "testing"

func TestNewMemorySurface(t *testing.T) {
	s := NewMemorySurface(800, 600)
	if s.Width() != 800 || s.Height() != 600 {
		t.Errorf("size = %dx%d, want 800x600", s.Width(), s.Height())
	}
}

func TestNewMemorySurfaceClampsDegenerate(t *testing.T) {
	s := NewMemorySurface(0, -5)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.Width(), s.Height())
	}
}

func TestMemorySurfaceOnResizeFiresImmediately(t *testing.T) {
	s := NewMemorySurface(640, 480)

	var gotW, gotH int
	calls := 0
	s.OnResize(func(w, h int) {
		gotW, gotH = w, h
		calls++
	})

	if calls != 1 || gotW != 640 || gotH != 480 {
		t.Errorf("OnResize fired %d times with %dx%d, want once with 640x480", calls, gotW, gotH)
	}
}

func TestMemorySurfaceResizeNotifies(t *testing.T) {
	s := NewMemorySurface(640, 480)

	var sizes [][2]int
	s.OnResize(func(w, h int) {
		sizes = append(sizes, [2]int{w, h})
	})

	s.Resize(1920, 1080)
	s.Resize(300, 200)

	want := [][2]int{{640, 480}, {1920, 1080}, {300, 200}}
	if len(sizes) != len(want) {
		t.Fatalf("observer saw %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("observer saw %v, want %v", sizes, want)
		}
	}
	if s.Width() != 300 || s.Height() != 200 {
		t.Errorf("size = %dx%d, want 300x200", s.Width(), s.Height())
	}
}

func TestMemorySurfaceMultipleObservers(t *testing.T) {
	s := NewMemorySurface(100, 100)

	first, second := 0, 0
	s.OnResize(func(int, int) { first++ })
	s.OnResize(func(int, int) { second++ })

	s.Resize(200, 150)

	if first != 2 || second != 2 {
		t.Errorf("observer counts = %d, %d, want 2 each", first, second)
	}
}

func TestMemorySurfaceResizeClampsDegenerate(t *testing.T) {
	s := NewMemorySurface(100, 100)
	s.Resize(-1, 0)
	if s.Width() != 1 || s.Height() != 1 {
		t.Errorf("size = %dx%d, want 1x1", s.Width(), s.Height())
	}
}
