package gpio

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SimBank is a set of simulated output lines. Every write is logged as a
// pin pattern where '#' is high and ' ' is low.
type SimBank struct {
	mu     sync.Mutex
	states []bool
	fail   map[int]error
	writes int
	log    zerolog.Logger
}

func NewSimBank(size int) *SimBank {
	return &SimBank{
		states: make([]bool, size),
		fail:   make(map[int]error),
		log:    log.With().Str("component", "gpio").Logger(),
	}
}

// Pin returns line n of the bank (0 based).
func (b *SimBank) Pin(n int) SimPin {
	if n < 0 || n >= len(b.states) {
		panic(fmt.Sprintf("gpio: simulated pin %d out of range [0, %d)", n, len(b.states)))
	}
	return SimPin{b: b, n: n}
}

// Pins returns the first four lines of the bank for IN1..IN4.
func (b *SimBank) Pins() ([4]SimPin, error) {
	var pins [4]SimPin
	if len(b.states) < stepperPins {
		return pins, checkCount(len(b.states))
	}
	for i := range pins {
		pins[i] = b.Pin(i)
	}
	return pins, nil
}

// Fail makes writes to line n return err. Nil err clears failure.
func (b *SimBank) Fail(n int, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.fail, n)
		return
	}
	b.fail[n] = err
}

// States returns a copy of current line levels.
func (b *SimBank) States() []bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]bool(nil), b.states...)
}

// Writes returns number of successful writes since bank creation.
func (b *SimBank) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}

func (b *SimBank) set(n int, state bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.fail[n]; err != nil {
		return err
	}
	b.states[n] = state
	b.writes++
	b.log.Trace().Str("pins", pattern(b.states)).Msg("GPIO")
	return nil
}

func pattern(states []bool) string {
	buf := make([]byte, len(states))
	for i, state := range states {
		if state {
			buf[i] = '#'
		} else {
			buf[i] = ' '
		}
	}
	return string(buf)
}

// SimPin is a single line of a SimBank.
type SimPin struct {
	b *SimBank
	n int
}

func (p SimPin) SetHigh() error {
	return p.b.set(p.n, true)
}

func (p SimPin) SetLow() error {
	return p.b.set(p.n, false)
}
