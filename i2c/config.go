package i2cdev

import "fmt"

// Conf locates a device on the I2C buses.
type Conf struct {
	Bus  int
	Addr uint8
}

// Default sets address if none was configured.
func (c *Conf) Default(a uint8) {
	if c.Addr == 0 {
		c.Addr = a
	}
}

func (c Conf) String() string {
	return fmt.Sprintf("i2c-%d@0x%02x", c.Bus, c.Addr)
}
