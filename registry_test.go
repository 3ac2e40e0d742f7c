package sprite

import (
	"errors"
	"testing"
)

// marker is a minimal non-drawable component for registry tests.
type marker struct {
	enabled bool
	id      int
}

func (m *marker) Enabled() bool { return m.enabled }
func (m *marker) Enable()       { m.enabled = true }
func (m *marker) Disable()      { m.enabled = false }

func TestRegistryAddNil(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add(nil); !errors.Is(err, ErrNilComponent) {
		t.Errorf("Add(nil) error = %v, want ErrNilComponent", err)
	}
}

func TestRegistryGetConcreteType(t *testing.T) {
	r := NewRegistry()
	a := &marker{id: 1}
	b := &marker{id: 2}
	s := NewSprite()

	for _, c := range []Component{a, s, b} {
		if _, err := r.Add(c); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	got := Get[*marker](r)
	if len(got) != 2 || got[0].id != 1 || got[1].id != 2 {
		t.Errorf("Get[*marker] = %v, want markers 1, 2 in order", got)
	}

	sprites := Get[*Sprite](r)
	if len(sprites) != 1 || sprites[0] != s {
		t.Errorf("Get[*Sprite] returned %d entries, want the one added", len(sprites))
	}
}

func TestRegistryGetInterfaceType(t *testing.T) {
	r := NewRegistry()
	s1 := NewSprite()
	m := &marker{}
	s2 := NewSprite()

	for _, c := range []Component{s1, m, s2} {
		if _, err := r.Add(c); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	// Interface queries scan in insertion order; the marker is not Drawable.
	drawables := Get[Drawable](r)
	if len(drawables) != 2 {
		t.Fatalf("Get[Drawable] returned %d entries, want 2", len(drawables))
	}
	if drawables[0] != Drawable(s1) || drawables[1] != Drawable(s2) {
		t.Error("Get[Drawable] order does not match insertion order")
	}

	all := Get[Component](r)
	if len(all) != 3 {
		t.Errorf("Get[Component] returned %d entries, want 3", len(all))
	}
}

func TestRegistryGetUnrelatedTypeEmpty(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Add(&marker{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if got := Get[*Sprite](r); len(got) != 0 {
		t.Errorf("Get[*Sprite] on marker-only registry = %d entries, want 0", len(got))
	}
}

func TestRegistryDuplicateAdd(t *testing.T) {
	r := NewRegistry()
	m := &marker{}
	if _, err := r.Add(m); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	if _, err := r.Add(m); err != nil {
		t.Fatalf("second Add failed: %v", err)
	}
	if got := Get[*marker](r); len(got) != 2 {
		t.Errorf("duplicate add yields %d entries, want 2", len(got))
	}
}

func TestRegistryRemove(t *testing.T) {
	r := NewRegistry()
	a := &marker{id: 1}
	b := &marker{id: 2}
	c := &marker{id: 3}

	_, err := r.Add(a)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	hb, err := r.Add(b)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	_, err = r.Add(c)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := r.Remove(hb); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	got := Get[*marker](r)
	if len(got) != 2 || got[0].id != 1 || got[1].id != 3 {
		t.Errorf("after Remove: %v, want markers 1, 3 in order", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len = %d, want 2", r.Len())
	}

	// Removing again through the same handle is rejected.
	if err := r.Remove(hb); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("second Remove error = %v, want ErrStaleHandle", err)
	}
}

func TestRegistryRemoveBogusHandle(t *testing.T) {
	r := NewRegistry()
	if err := r.Remove(Handle{index: 5}); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Remove(bogus) error = %v, want ErrStaleHandle", err)
	}
}

func TestRegistryAll(t *testing.T) {
	r := NewRegistry()
	a := &marker{}
	s := NewSprite()
	if _, err := r.Add(a); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := r.Add(s); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	all := r.All()
	if len(all) != 2 || all[0] != Component(a) || all[1] != Component(s) {
		t.Errorf("All = %v, want [a, s]", all)
	}
}

func TestRegistryDisabledStillReturned(t *testing.T) {
	r := NewRegistry()
	s := NewSprite()
	s.Disable()
	if _, err := r.Add(s); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// The registry never filters on the enabled flag.
	if got := Get[*Sprite](r); len(got) != 1 {
		t.Errorf("Get returned %d entries for disabled sprite, want 1", len(got))
	}
}
