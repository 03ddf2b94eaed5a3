package displayio

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
)

func TestBrightnessWithoutBacklight(t *testing.T) {
	r := NewRegistry(nil)
	d := newTestDisplay(t, r, &testBus{}, nil)

	if _, err := d.Brightness(); !errors.Is(err, ErrBrightness) {
		t.Errorf("Brightness: expected ErrBrightness, got %v", err)
	}
	if err := d.SetBrightness(0.5); !errors.Is(err, ErrBrightness) {
		t.Errorf("SetBrightness: expected ErrBrightness, got %v", err)
	}
}

func TestBrightnessFullOnConstruction(t *testing.T) {
	r := NewRegistry(nil)
	pin := &testPin{name: "GPIO19"}
	newTestDisplay(t, r, &testBus{}, &Config{Width: 8, Height: 8, Backlight: pin})

	if pin.pwmCalls != 1 {
		t.Fatalf("expected one PWM call during construction, got %d", pin.pwmCalls)
	}
	if pin.duty != gpio.DutyMax {
		t.Errorf("construction duty is %d, expected full %d", pin.duty, gpio.DutyMax)
	}
	if pin.freq != backlightRate {
		t.Errorf("PWM rate is %s, expected %s", pin.freq, backlightRate)
	}
}

func TestSetBrightness(t *testing.T) {
	r := NewRegistry(nil)
	pin := &testPin{name: "GPIO19"}
	d := newTestDisplay(t, r, &testBus{}, &Config{Width: 8, Height: 8, Backlight: pin})

	tests := []struct {
		name  string
		value float64
		duty  gpio.Duty
	}{
		{"half", 0.5, gpio.Duty(float64(gpio.DutyMax) * 0.5)},
		{"clamped low", -1, 0},
		{"clamped high", 2, gpio.DutyMax},
		{"off", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := d.SetBrightness(tt.value); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if pin.duty != tt.duty {
				t.Errorf("duty is %d, expected %d", pin.duty, tt.duty)
			}
		})
	}
}

func TestAutoBrightnessMasksExplicitSets(t *testing.T) {
	r := NewRegistry(nil)
	pin := &testPin{name: "GPIO19"}
	d := newTestDisplay(t, r, &testBus{}, &Config{Width: 8, Height: 8, Backlight: pin})

	if d.AutoBrightness() {
		t.Fatal("auto brightness should be off by default")
	}
	if err := d.SetAutoBrightness(true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := pin.pwmCalls
	if err := d.SetBrightness(0.25); err != nil {
		t.Fatalf("explicit set while auto must be accepted, got %v", err)
	}
	if pin.pwmCalls != calls {
		t.Error("explicit set while auto must not reach the backlight")
	}
	if v, _ := d.Brightness(); v != 0.25 {
		t.Errorf("requested value was not retained: %v", v)
	}

	// Leaving auto mode reapplies the retained value.
	if err := d.SetAutoBrightness(false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pin.pwmCalls != calls+1 {
		t.Error("leaving auto mode must reapply the retained value")
	}
	if want := gpio.Duty(float64(gpio.DutyMax) * 0.25); pin.duty != want {
		t.Errorf("duty is %d, expected %d", pin.duty, want)
	}
}
