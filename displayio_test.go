package displayio

import (
	"sync"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// testBus records every command and pixel write. Setting err makes all
// sends fail.
type testBus struct {
	mu       sync.Mutex
	commands []busCommand
	pixels   [][]byte
	err      error
}

type busCommand struct {
	code   byte
	params []byte
}

func (b *testBus) String() string { return "test bus" }

func (b *testBus) SendCommand(code byte, params []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.commands = append(b.commands, busCommand{code, append([]byte(nil), params...)})
	return nil
}

func (b *testBus) SendPixels(data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.pixels = append(b.pixels, append([]byte(nil), data...))
	return nil
}

func (b *testBus) fail(err error) {
	b.mu.Lock()
	b.err = err
	b.mu.Unlock()
}

func (b *testBus) recorded() ([]busCommand, [][]byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]busCommand(nil), b.commands...), append([][]byte(nil), b.pixels...)
}

// testPin is a fake backlight pin recording the last PWM request.
type testPin struct {
	name     string
	level    gpio.Level
	duty     gpio.Duty
	freq     physic.Frequency
	pwmCalls int
}

func (p *testPin) String() string   { return p.name }
func (p *testPin) Halt() error      { return nil }
func (p *testPin) Name() string     { return p.name }
func (p *testPin) Number() int      { return 0 }
func (p *testPin) Function() string { return "PWM" }

func (p *testPin) Out(l gpio.Level) error {
	p.level = l
	return nil
}

func (p *testPin) PWM(duty gpio.Duty, freq physic.Frequency) error {
	p.duty = duty
	p.freq = freq
	p.pwmCalls++
	return nil
}

var _ gpio.PinOut = (*testPin)(nil)

func newTestDisplay(t *testing.T, r *Registry, bus Bus, config *Config) *Display {
	t.Helper()
	if config == nil {
		config = &Config{Width: 240, Height: 240}
	}
	d, err := r.New(bus, nil, config)
	if err != nil {
		t.Fatalf("unexpected construction error: %v", err)
	}
	return d
}
