package gpio

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// InitPeriph loads periph host drivers. Call once before ByName.
func InitPeriph() error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to init periph host: %w", err)
	}
	return nil
}

// PeriphPin is an output line driven through periph.io. Writes go through
// the host driver and may fail.
type PeriphPin struct {
	p gpio.PinOut
}

func NewPeriphPin(p gpio.PinOut) PeriphPin {
	return PeriphPin{p: p}
}

// ByName looks up a registered pin such as "GPIO26".
func ByName(name string) (PeriphPin, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return PeriphPin{}, fmt.Errorf("no such pin %q", name)
	}
	return PeriphPin{p: p}, nil
}

// PeriphPins resolves pins for IN1..IN4.
func PeriphPins(names []string) ([4]PeriphPin, error) {
	var pins [4]PeriphPin
	if err := checkCount(len(names)); err != nil {
		return pins, err
	}
	for i, n := range names {
		p, err := ByName(n)
		if err != nil {
			return pins, err
		}
		pins[i] = p
	}
	return pins, nil
}

func (p PeriphPin) SetHigh() error {
	return p.out(gpio.High)
}

func (p PeriphPin) SetLow() error {
	return p.out(gpio.Low)
}

func (p PeriphPin) out(l gpio.Level) error {
	if err := p.p.Out(l); err != nil {
		return fmt.Errorf("%s: %w", p.p.Name(), err)
	}
	return nil
}
