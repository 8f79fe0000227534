package gpio

import "github.com/stianeikeland/go-rpio/v4"

// Pin is a Raspberry Pi output pin driven through memory mapped GPIO
// registers. Writes can't fail once Open succeeded.
type Pin struct {
	pin rpio.Pin
}

// NewPin configures BCM pin num as output. Pin level is left as is.
func NewPin(num int) Pin {
	p := rpio.Pin(num)
	p.Output()
	return Pin{pin: p}
}

// NewPins configures pins for IN1..IN4.
func NewPins(nums []int) ([4]Pin, error) {
	var pins [4]Pin
	if err := checkCount(len(nums)); err != nil {
		return pins, err
	}
	for i, n := range nums {
		pins[i] = NewPin(n)
	}
	return pins, nil
}

func (p Pin) SetHigh() error {
	p.pin.High()
	return nil
}

func (p Pin) SetLow() error {
	p.pin.Low()
	return nil
}
