package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/aliher1911/uln2003/actuator"
	"github.com/aliher1911/uln2003/config"
	"github.com/aliher1911/uln2003/gpio"
	i2cdev "github.com/aliher1911/uln2003/i2c"
)

// Open binds a stepper to lines of configured backend. Returned close
// function releases the backend; it does not de-energize the motor.
func Open(cfg config.Config) (actuator.Motor, func() error, error) {
	dir := cfg.StepDirection()
	backend := cfg.Backend
	if backend == config.BackendRPIO && gpio.Simulated {
		log.Warn().Msg("built without GPIO support, using simulated lines")
		backend = config.BackendSim
	}
	log.Info().Str("backend", backend).Stringer("direction", dir).Msg("opening stepper")

	switch backend {
	case config.BackendRPIO:
		if err := gpio.Open(); err != nil {
			return nil, nil, err
		}
		p, err := gpio.NewPins(cfg.Pins)
		if err != nil {
			closeLogged("GPIO", gpio.Close)
			return nil, nil, err
		}
		return actuator.NewULN2003(dir, p[0], p[1], p[2], p[3]).Motor(), gpio.Close, nil

	case config.BackendPeriph:
		if err := gpio.InitPeriph(); err != nil {
			return nil, nil, err
		}
		p, err := gpio.PeriphPins(cfg.Names)
		if err != nil {
			return nil, nil, err
		}
		return actuator.NewULN2003(dir, p[0], p[1], p[2], p[3]).Motor(), noClose, nil

	case config.BackendSeesaw:
		ss, err := i2cdev.NewSeesaw(i2cdev.Conf{Bus: cfg.Seesaw.Bus, Addr: cfg.Seesaw.Addr})
		if err != nil {
			return nil, nil, err
		}
		p, err := ss.OutputPins(cfg.Pins)
		if err != nil {
			closeLogged("seesaw", ss.Close)
			return nil, nil, err
		}
		return actuator.NewULN2003(dir, p[0], p[1], p[2], p[3]).Motor(), ss.Close, nil

	case config.BackendSim:
		p, err := gpio.NewSimBank(len(cfg.Pins)).Pins()
		if err != nil {
			return nil, nil, err
		}
		return actuator.NewULN2003(dir, p[0], p[1], p[2], p[3]).Motor(), noClose, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", backend)
}

func noClose() error {
	return nil
}

// closeLogged releases a backend on an error path where the original error
// is returned instead.
func closeLogged(name string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Err(err).Str("backend", name).Msg("failed to close")
	}
}
