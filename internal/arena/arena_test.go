package arena

import "testing"

func TestAlloc_ReturnsZeroedValue(t *testing.T) {
	var a Arena[int]
	h, v := a.Alloc()
	if h.IsZero() {
		t.Fatal("Alloc returned the zero handle")
	}
	if *v != 0 {
		t.Errorf("expected zeroed value, got %d", *v)
	}
	if a.Len() != 1 {
		t.Errorf("expected Len 1, got %d", a.Len())
	}
}

func TestGet_ZeroHandleIsNil(t *testing.T) {
	var a Arena[int]
	if a.Get(Handle{}) != nil {
		t.Error("zero handle must resolve to nil")
	}
}

func TestGet_ReturnsStoredValue(t *testing.T) {
	var a Arena[string]
	h, v := a.Alloc()
	*v = "hello"
	if got := a.Get(h); got == nil || *got != "hello" {
		t.Errorf("expected %q, got %v", "hello", got)
	}
}

func TestRelease_StaleHandleResolvesNil(t *testing.T) {
	var a Arena[int]
	h, _ := a.Alloc()
	a.Release(h)
	if a.Get(h) != nil {
		t.Error("released handle must resolve to nil")
	}
	if a.Len() != 0 {
		t.Errorf("expected Len 0, got %d", a.Len())
	}
}

func TestRelease_SlotReuseInvalidatesOldHandle(t *testing.T) {
	var a Arena[int]
	old, _ := a.Alloc()
	a.Release(old)

	fresh, v := a.Alloc()
	*v = 42
	if old == fresh {
		t.Fatal("reused slot must carry a new generation")
	}
	if a.Get(old) != nil {
		t.Error("old handle must stay invalid after slot reuse")
	}
	if got := a.Get(fresh); got == nil || *got != 42 {
		t.Errorf("fresh handle must resolve, got %v", got)
	}
}

func TestRelease_DoubleReleaseIsNoOp(t *testing.T) {
	var a Arena[int]
	h, _ := a.Alloc()
	a.Release(h)
	a.Release(h)
	if a.Len() != 0 {
		t.Errorf("expected Len 0, got %d", a.Len())
	}

	// release must not disturb a subsequent occupant either
	fresh, _ := a.Alloc()
	a.Release(h)
	if a.Get(fresh) == nil {
		t.Error("stale release must not evict the new occupant")
	}
}

func TestLen_TracksLiveSlots(t *testing.T) {
	var a Arena[int]
	var handles []Handle
	for i := 0; i < 10; i++ {
		h, _ := a.Alloc()
		handles = append(handles, h)
	}
	if a.Len() != 10 {
		t.Fatalf("expected Len 10, got %d", a.Len())
	}
	for _, h := range handles[:5] {
		a.Release(h)
	}
	if a.Len() != 5 {
		t.Errorf("expected Len 5, got %d", a.Len())
	}
}

func TestAlloc_GrowthKeepsHandlesValid(t *testing.T) {
	var a Arena[int]
	type entry struct {
		h Handle
		v int
	}
	var entries []entry
	for i := 0; i < 1000; i++ {
		h, v := a.Alloc()
		*v = i
		entries = append(entries, entry{h, i})
	}
	for _, e := range entries {
		got := a.Get(e.h)
		if got == nil || *got != e.v {
			t.Fatalf("handle for %d resolved to %v after growth", e.v, got)
		}
	}
}
