package cli

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aliher1911/uln2003/actuator"
	"github.com/aliher1911/uln2003/pace"
)

// Jog takes steps with fixed spacing and de-energizes the motor when done
// or interrupted. Negative steps reverse configured direction.
func Jog(ctx context.Context, m actuator.Motor, steps int, delay time.Duration) error {
	if steps < 0 {
		m.SetDirection(reverse(m.Direction()))
		steps = -steps
	}

	err := jog(ctx, m, steps, delay)
	if derr := disable(m); derr != nil && err == nil {
		err = derr
	}
	return err
}

func jog(ctx context.Context, m actuator.Motor, steps int, delay time.Duration) error {
	n, err := pace.Steps(ctx, m, steps, delay)
	if errors.Is(err, context.Canceled) {
		log.Info().Int("steps", n).Msg("jog interrupted")
		return err
	}
	if err != nil {
		return err
	}
	log.Info().Int("steps", n).Stringer("direction", m.Direction()).Msg("jog done")
	return nil
}

func disable(m actuator.Motor) error {
	if err := m.Disable(); err != nil {
		log.Err(err).Msg("failed to disable stepper")
		return err
	}
	log.Debug().Int("phase", m.Index()).Msg("stepper disabled")
	return nil
}

func reverse(d actuator.Direction) actuator.Direction {
	if d == actuator.Clockwise {
		return actuator.CounterClockwise
	}
	return actuator.Clockwise
}
