//go:build !rp2040 && !rp2350

package platform

import (
	"image/color"
	"testing"

	"picobutton-go/errcode"
	"picobutton-go/services/config"
	"picobutton-go/services/hal"
	"picobutton-go/types"
)

func TestSetupBringsUpDarkOutputs(t *testing.T) {
	pins := &HostPinFactory{}
	p, err := SetupWith(config.Default(), pins, hal.SystemClock())
	if err != nil {
		t.Fatalf("SetupWith: %v", err)
	}
	led := pins.Pin(25)
	if !led.IsOutput() || led.Get() {
		t.Fatal("LED should be an output driven low")
	}
	fs, ok := p.Pixels.(*FakeStrip)
	if !ok {
		t.Fatalf("pixels = %T", p.Pixels)
	}
	if fs.Frames() != 1 {
		t.Fatalf("frames = %d, want one clearing frame", fs.Frames())
	}
	if last := fs.Last(); len(last) != 1 || last[0] != (color.RGBA{}) {
		t.Fatalf("clearing frame = %v", last)
	}
	if p.Button.ReadLevel() != types.High {
		t.Fatal("pulled-up button should idle high")
	}
}

func TestSetupKeepsHeldButton(t *testing.T) {
	pins := &HostPinFactory{}
	pins.Pin(16).Drive(false)
	p, err := SetupWith(config.Default(), pins, hal.SystemClock())
	if err != nil {
		t.Fatalf("SetupWith: %v", err)
	}
	if p.Button.ReadLevel() != types.Low {
		t.Fatal("a button held at boot must read low")
	}
}

func TestSetupRejectsBadWiring(t *testing.T) {
	b := config.Default()
	b.ButtonPin = 40
	_, err := SetupWith(b, &HostPinFactory{}, hal.SystemClock())
	if errcode.Of(err) != errcode.ConfigurationError {
		t.Fatalf("err = %v, want config_error", err)
	}

	b = config.Default()
	b.ButtonPull = "sideways"
	if _, err := SetupWith(b, &HostPinFactory{}, hal.SystemClock()); errcode.Of(err) != errcode.ConfigurationError {
		t.Fatalf("err = %v, want config_error", err)
	}
}

func TestFakePinEdgeFiltering(t *testing.T) {
	p := &FakePin{number: 4}
	_ = p.ConfigureInput(types.PullUp)
	var hits int
	_ = p.SetIRQ(types.EdgeFalling, func() { hits++ })
	p.Drive(true) // no change
	p.Drive(false)
	p.Drive(true)
	p.Drive(false)
	if hits != 2 {
		t.Fatalf("hits = %d, want 2 falling edges", hits)
	}
	_ = p.ClearIRQ()
	p.Drive(true)
	p.Drive(false)
	if hits != 2 {
		t.Fatal("cleared IRQ must not fire")
	}
}
