package i2cdev

import (
	"encoding/binary"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	GPIO_BASE = 0x01

	GPIO_DIRSET_BULK = 0x02
	GPIO_BULK_SET    = 0x05
	GPIO_BULK_CLR    = 0x06
)

// Seesaw pins are 0..31 addressed as bits of a big endian mask.
const seesawPins = 32

const DefaultSeesawAddr = 0x49

// Seesaw is an Adafruit seesaw GPIO expander. Its pins can be used as
// stepper lines; every level change is a separate bus transaction.
type Seesaw struct {
	dev *Device
}

func NewSeesaw(c Conf) (*Seesaw, error) {
	c.Default(DefaultSeesawAddr)
	log.Debug().Str("component", "i2c").Stringer("device", c).Msg("creating seesaw")
	dev, err := Open(c)
	if err != nil {
		return nil, err
	}
	return &Seesaw{dev: dev}, nil
}

func NewSeesawOnDevice(dev *Device) *Seesaw {
	return &Seesaw{dev: dev}
}

// OutputPin switches pin n to output mode.
func (s *Seesaw) OutputPin(n int) (*SeesawPin, error) {
	if n < 0 || n >= seesawPins {
		return nil, fmt.Errorf("seesaw pin %d out of range", n)
	}
	p := &SeesawPin{s: s, mask: mask(n), n: n}
	if err := s.dev.Write(GPIO_BASE, GPIO_DIRSET_BULK, p.mask); err != nil {
		return nil, fmt.Errorf("failed to set pin %d as output: %w", n, err)
	}
	return p, nil
}

// OutputPins configures pins for IN1..IN4.
func (s *Seesaw) OutputPins(nums []int) ([4]*SeesawPin, error) {
	var pins [4]*SeesawPin
	if c := len(nums); c != len(pins) {
		return pins, fmt.Errorf("incorrect number of pins in definition. found %d expected %d", c, len(pins))
	}
	for i, n := range nums {
		p, err := s.OutputPin(n)
		if err != nil {
			return pins, err
		}
		pins[i] = p
	}
	return pins, nil
}

func (s *Seesaw) Close() error {
	return s.dev.Close()
}

func mask(n int) []byte {
	cmd := make([]byte, 4)
	binary.BigEndian.PutUint32(cmd, uint32(1)<<uint32(n))
	return cmd
}

type SeesawPin struct {
	s    *Seesaw
	mask []byte
	n    int
}

func (p *SeesawPin) SetHigh() error {
	if err := p.s.dev.Write(GPIO_BASE, GPIO_BULK_SET, p.mask); err != nil {
		return fmt.Errorf("seesaw pin %d: %w", p.n, err)
	}
	return nil
}

func (p *SeesawPin) SetLow() error {
	if err := p.s.dev.Write(GPIO_BASE, GPIO_BULK_CLR, p.mask); err != nil {
		return fmt.Errorf("seesaw pin %d: %w", p.n, err)
	}
	return nil
}
