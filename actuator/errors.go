package actuator

import "fmt"

// LineError is returned when writing a level to one of the stepper lines
// fails. Lines after the failing one were not written.
type LineError struct {
	// Line number, 1 to 4 (IN1..IN4).
	Line  int
	Level Level
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("stepper: failed to set IN%d %s: %s", e.Line, e.Level, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
