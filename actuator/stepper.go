package actuator

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// OutputPin is a digital output line. Platforms where writes can't fail
// always return nil.
type OutputPin interface {
	SetHigh() error
	SetLow() error
}

// Stepper drives a unipolar stepper through four output lines IN1..IN4.
// Lines are owned by the stepper and must not be written by anybody else
// while it is in use. Stepper is not safe for concurrent use.
type Stepper[IN1, IN2, IN3, IN4 OutputPin] struct {
	// Current row in phase table.
	index     int
	direction Direction
	log       zerolog.Logger

	in1 IN1
	in2 IN2
	in3 IN3
	in4 IN4
}

// New creates stepper at phase 0. Lines are not written until first Step
// or Disable.
func New[IN1, IN2, IN3, IN4 OutputPin](dir Direction, in1 IN1, in2 IN2, in3 IN3, in4 IN4) *Stepper[IN1, IN2, IN3, IN4] {
	l := log.With().Str("component", "actuator").Logger()
	l.Debug().Stringer("direction", dir).Msg("creating stepper")
	return &Stepper[IN1, IN2, IN3, IN4]{
		direction: dir,
		log:       l,
		in1:       in1,
		in2:       in2,
		in3:       in3,
		in4:       in4,
	}
}

// SetDirection changes direction of subsequent steps. Lines are not touched.
func (s *Stepper[IN1, IN2, IN3, IN4]) SetDirection(dir Direction) {
	s.direction = dir
}

func (s *Stepper[IN1, IN2, IN3, IN4]) Direction() Direction {
	return s.direction
}

// Index returns the phase that will be applied by the next Step.
func (s *Stepper[IN1, IN2, IN3, IN4]) Index() int {
	return s.index
}

// Step applies current phase to all four lines and advances phase index in
// current direction. If any write fails, remaining lines are not written and
// index is left unchanged.
func (s *Stepper[IN1, IN2, IN3, IN4]) Step() (*Stepper[IN1, IN2, IN3, IN4], error) {
	if err := s.apply(phaseTable[s.index]); err != nil {
		return s, err
	}
	s.log.Trace().Int("phase", s.index).Stringer("direction", s.direction).Msg("step")
	s.index = wrap(s.index+s.direction.delta(), phases)
	return s, nil
}

// Steps performs n consecutive steps, stopping at first failure.
func (s *Stepper[IN1, IN2, IN3, IN4]) Steps(n int) (*Stepper[IN1, IN2, IN3, IN4], error) {
	if n < 0 {
		return s, fmt.Errorf("stepper: negative step count %d", n)
	}
	for i := 0; i < n; i++ {
		if _, err := s.Step(); err != nil {
			return s, fmt.Errorf("stepper: step %d of %d: %w", i+1, n, err)
		}
	}
	return s, nil
}

// Disable drives all lines low to de-energize coils. Phase index and
// direction are preserved so next Step resumes the sequence.
func (s *Stepper[IN1, IN2, IN3, IN4]) Disable() (*Stepper[IN1, IN2, IN3, IN4], error) {
	if err := s.apply([lines]Level{Low, Low, Low, Low}); err != nil {
		return s, err
	}
	s.log.Debug().Int("phase", s.index).Msg("disabled")
	return s, nil
}

func (s *Stepper[IN1, IN2, IN3, IN4]) apply(row [lines]Level) error {
	if err := write(1, s.in1, row[0]); err != nil {
		return err
	}
	if err := write(2, s.in2, row[1]); err != nil {
		return err
	}
	if err := write(3, s.in3, row[2]); err != nil {
		return err
	}
	return write(4, s.in4, row[3])
}

func write(line int, pin OutputPin, l Level) error {
	var err error
	if l == High {
		err = pin.SetHigh()
	} else {
		err = pin.SetLow()
	}
	if err != nil {
		return &LineError{Line: line, Level: l, Err: err}
	}
	return nil
}
