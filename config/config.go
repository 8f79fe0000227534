package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/aliher1911/uln2003/actuator"
)

const (
	BackendRPIO   = "rpio"
	BackendPeriph = "periph"
	BackendSeesaw = "seesaw"
	BackendSim    = "sim"
)

const (
	EnvBackend   = "ULN2003_BACKEND"
	EnvDirection = "ULN2003_DIRECTION"
)

type Config struct {
	Backend   string `toml:"backend"`
	Direction string `toml:"direction"`
	// BCM numbers for rpio, expander pins for seesaw.
	Pins []int `toml:"pins"`
	// Pin names for periph.
	Names []string `toml:"names"`
	// Spacing between steps when jogging from command line.
	Delay  Duration `toml:"delay"`
	Seesaw Seesaw   `toml:"seesaw"`
}

type Seesaw struct {
	Bus  int   `toml:"bus"`
	Addr uint8 `toml:"addr"`
}

// Duration is a time.Duration written as a string like "2ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func Default() Config {
	return Config{
		Backend:   BackendRPIO,
		Direction: actuator.Clockwise.String(),
		Pins:      append([]int(nil), actuator.DefaultPins...),
		Delay:     Duration{2 * time.Millisecond},
		Seesaw: Seesaw{
			Bus:  1,
			Addr: 0x49,
		},
	}
}

// Load reads TOML on top of defaults then applies environment overrides.
// getenv is usually os.Getenv.
func Load(r io.Reader, getenv func(string) string) (Config, error) {
	c := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return c, err
	}
	if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&c); err != nil {
		return c, fmt.Errorf("failed to parse config: %w", err)
	}
	c.applyEnv(getenv)
	return c, c.Validate()
}

// LoadFile loads config from path. Missing file yields defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Load(bytes.NewReader(nil), os.Getenv)
	}
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Load(f, os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvBackend); v != "" {
		c.Backend = v
	}
	if v := getenv(EnvDirection); v != "" {
		c.Direction = v
	}
}

func (c Config) Validate() error {
	if _, err := actuator.ParseDirection(c.Direction); err != nil {
		return err
	}
	if c.Delay.Duration < 0 {
		return fmt.Errorf("negative delay %s", c.Delay)
	}
	switch c.Backend {
	case BackendRPIO, BackendSeesaw, BackendSim:
		return checkPins(c.Pins)
	case BackendPeriph:
		return checkNames(c.Names)
	}
	return fmt.Errorf("unknown backend %q", c.Backend)
}

// StepDirection returns parsed direction. Config must be valid.
func (c Config) StepDirection() actuator.Direction {
	d, _ := actuator.ParseDirection(c.Direction)
	return d
}

func checkPins(pins []int) error {
	if len(pins) != 4 {
		return fmt.Errorf("expected 4 pins, found %d", len(pins))
	}
	seen := make(map[int]bool)
	for _, p := range pins {
		if p < 0 {
			return fmt.Errorf("invalid pin %d", p)
		}
		if seen[p] {
			return fmt.Errorf("pin %d used more than once", p)
		}
		seen[p] = true
	}
	return nil
}

func checkNames(names []string) error {
	if len(names) != 4 {
		return fmt.Errorf("expected 4 pin names, found %d", len(names))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if n == "" {
			return errors.New("empty pin name")
		}
		if seen[n] {
			return fmt.Errorf("pin %s used more than once", n)
		}
		seen[n] = true
	}
	return nil
}
