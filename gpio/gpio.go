//go:build !nogpio

package gpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

const Simulated = false

// Open maps GPIO registers. Must be called before any Pin is created.
func Open() error {
	if err := rpio.Open(); err != nil {
		return fmt.Errorf("failed to open GPIO: %w", err)
	}
	return nil
}

func Close() error {
	return rpio.Close()
}
