package i2cdev

import (
	"fmt"

	i2c "github.com/aliher1911/go-i2c"
)

// Bus is the subset of an I2C connection used by devices.
type Bus interface {
	WriteBytes(buf []byte) (int, error)
	Close() error
}

// Device writes module registers addressed by base and register bytes.
type Device struct {
	bus Bus
}

// Open connects to the device at c.Addr on bus c.Bus.
func Open(c Conf) (*Device, error) {
	bus, err := i2c.NewI2C(c.Addr, c.Bus)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", c, err)
	}
	return NewDevice(bus), nil
}

func NewDevice(bus Bus) *Device {
	return &Device{bus: bus}
}

// Write sends base and reg followed by extra payload as a single bus op.
func (d *Device) Write(base, reg byte, extra []byte) error {
	b := make([]byte, 2, 2+len(extra))
	b[0], b[1] = base, reg
	b = append(b, extra...)
	c, err := d.bus.WriteBytes(b)
	if err != nil {
		return err
	}
	if exp := len(b); exp != c {
		return fmt.Errorf("expected to write %d bytes, wrote %d", exp, c)
	}
	return nil
}

func (d *Device) Close() error {
	return d.bus.Close()
}
