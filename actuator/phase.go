package actuator

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Level is a logical output level for a single line.
type Level uint8

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	if l == High {
		return "HIGH"
	}
	return "LOW"
}

const phases = 4

const lines = 4

// Two adjacent coils are energized in every phase. Consecutive rows share
// one HIGH line.
var phaseTable = [phases][lines]Level{
	{High, High, Low, Low},
	{Low, High, High, Low},
	{Low, Low, High, High},
	{High, Low, Low, High},
}

// Phase returns a copy of the excitation row for phase i (taken mod 4).
func Phase(i int) [lines]Level {
	return phaseTable[wrap(i, phases)]
}

type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

func (d Direction) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection accepts cw/clockwise and ccw/counterclockwise.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "counterclockwise", "counter-clockwise":
		return CounterClockwise, nil
	}
	return Clockwise, fmt.Errorf("unknown direction %q", s)
}

// delta is the index increment for one step.
func (d Direction) delta() int {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

// wrap returns v mod n in [0, n).
func wrap[T constraints.Integer](v, n T) T {
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}
