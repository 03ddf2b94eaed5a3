package displayio

import (
	"errors"
	"testing"
)

func TestRegistryCapacity(t *testing.T) {
	const limit = 3
	r := NewRegistry(&RegistryConfig{Limit: limit})

	for i := 0; i < limit; i++ {
		if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8}); err != nil {
			t.Fatalf("allocation %d failed: %v", i, err)
		}
	}

	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8}); !errors.Is(err, ErrTooManyDisplays) {
		t.Fatalf("allocation %d: expected ErrTooManyDisplays, got %v", limit, err)
	}

	// Releasing frees every slot again, exactly limit allocations succeed.
	r.ReleaseAll()
	for i := 0; i < limit; i++ {
		if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8}); err != nil {
			t.Fatalf("allocation %d after release failed: %v", i, err)
		}
	}
	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8}); !errors.Is(err, ErrTooManyDisplays) {
		t.Fatalf("expected ErrTooManyDisplays after refilling, got %v", err)
	}
}

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry(nil)
	if r.Limit() != DisplayLimit {
		t.Errorf("default limit is %d, expected %d", r.Limit(), DisplayLimit)
	}
}

func TestRegistryConstructionValidation(t *testing.T) {
	r := NewRegistry(nil)

	if _, err := r.New(nil, nil, &Config{Width: 8, Height: 8}); err == nil {
		t.Error("expected error for nil bus")
	}
	if _, err := r.New(&testBus{}, nil, nil); err == nil {
		t.Error("expected error for nil config")
	}
	if _, err := r.New(&testBus{}, nil, &Config{Width: 0, Height: 8}); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8, Rotation: 45}); !errors.Is(err, ErrRotation) {
		t.Error("expected ErrRotation for 45 degree rotation")
	}
}

func TestRegistryFailedConstructionLeavesSlotEmpty(t *testing.T) {
	r := NewRegistry(&RegistryConfig{Limit: 1})
	pin := &testPin{name: "GPIO19"}

	// Truncated init sequence: construction fails, slot and pin stay free.
	truncated := []byte{0xE1, 0x0F, 0x00}
	if _, err := r.New(&testBus{}, truncated, &Config{Width: 8, Height: 8, Backlight: pin}); !errors.Is(err, ErrTruncatedInit) {
		t.Fatalf("expected ErrTruncatedInit, got %v", err)
	}

	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8, Backlight: pin}); err != nil {
		t.Fatalf("slot or pin leaked by failed construction: %v", err)
	}
}

func TestRegistryBacklightPinConflict(t *testing.T) {
	r := NewRegistry(nil)
	pin := &testPin{name: "GPIO19"}

	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8, Backlight: pin}); err != nil {
		t.Fatalf("first claim failed: %v", err)
	}
	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8, Backlight: pin}); !errors.Is(err, ErrPinInUse) {
		t.Fatalf("expected ErrPinInUse, got %v", err)
	}

	// ReleaseAll relinquishes the claim.
	r.ReleaseAll()
	if _, err := r.New(&testBus{}, nil, &Config{Width: 8, Height: 8, Backlight: pin}); err != nil {
		t.Fatalf("pin still claimed after ReleaseAll: %v", err)
	}
}

func TestReleasedHandleIsInvalid(t *testing.T) {
	r := NewRegistry(nil)
	d := newTestDisplay(t, r, &testBus{}, nil)
	r.ReleaseAll()

	if err := d.RefreshSoon(); !errors.Is(err, ErrReleased) {
		t.Errorf("RefreshSoon: expected ErrReleased, got %v", err)
	}
	if _, err := d.WaitForFrame(); !errors.Is(err, ErrReleased) {
		t.Errorf("WaitForFrame: expected ErrReleased, got %v", err)
	}
	if err := d.SetVerticalScroll(0); !errors.Is(err, ErrReleased) {
		t.Errorf("SetVerticalScroll: expected ErrReleased, got %v", err)
	}
}

func TestReleaseAllResetsSlotState(t *testing.T) {
	r := NewRegistry(&RegistryConfig{Limit: 1})
	bus := &testBus{}
	d := newTestDisplay(t, r, bus, nil)
	d.Show(NewCanvas(240, 240))
	r.Tick()
	if d.FrameCount() != 1 {
		t.Fatalf("expected one completed frame, got %d", d.FrameCount())
	}

	r.ReleaseAll()

	// The reallocated slot is indistinguishable from a fresh one.
	d2 := newTestDisplay(t, r, &testBus{}, nil)
	if d2.FrameCount() != 0 {
		t.Errorf("reallocated slot has frame count %d, expected 0", d2.FrameCount())
	}
	if err := d2.RefreshSoon(); err != nil {
		t.Errorf("reallocated slot carries an error: %v", err)
	}
}
