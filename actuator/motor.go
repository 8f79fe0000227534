package actuator

// Motor is a stepper with its line types erased, for code that selects the
// line backend at run time.
type Motor interface {
	Step() error
	Steps(n int) error
	Disable() error
	SetDirection(dir Direction)
	Direction() Direction
	Index() int
}

// Motor returns a view of s that satisfies the Motor interface.
func (s *Stepper[IN1, IN2, IN3, IN4]) Motor() Motor {
	return motor[IN1, IN2, IN3, IN4]{s}
}

type motor[IN1, IN2, IN3, IN4 OutputPin] struct {
	*Stepper[IN1, IN2, IN3, IN4]
}

func (m motor[IN1, IN2, IN3, IN4]) Step() error {
	_, err := m.Stepper.Step()
	return err
}

func (m motor[IN1, IN2, IN3, IN4]) Steps(n int) error {
	_, err := m.Stepper.Steps(n)
	return err
}

func (m motor[IN1, IN2, IN3, IN4]) Disable() error {
	_, err := m.Stepper.Disable()
	return err
}
