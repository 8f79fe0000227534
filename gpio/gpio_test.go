package gpio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestSimBank(t *testing.T) {
	b := NewSimBank(4)
	pins, err := b.Pins()
	require.NoError(t, err)

	require.NoError(t, pins[0].SetHigh())
	require.NoError(t, pins[3].SetHigh())
	assert.Equal(t, []bool{true, false, false, true}, b.States())
	assert.Equal(t, "#  #", pattern(b.States()))

	require.NoError(t, pins[0].SetLow())
	assert.Equal(t, []bool{false, false, false, true}, b.States())
	assert.Equal(t, 3, b.Writes())
}

func TestSimBankFail(t *testing.T) {
	b := NewSimBank(4)
	p := b.Pin(1)
	fault := errors.New("fault")

	b.Fail(1, fault)
	assert.ErrorIs(t, p.SetHigh(), fault)
	assert.Equal(t, []bool{false, false, false, false}, b.States())
	assert.NoError(t, b.Pin(2).SetHigh())

	b.Fail(1, nil)
	assert.NoError(t, p.SetHigh())
	assert.Equal(t, []bool{false, true, true, false}, b.States())
}

func TestSimBankTooSmall(t *testing.T) {
	_, err := NewSimBank(3).Pins()
	assert.Error(t, err)
	assert.Panics(t, func() { NewSimBank(3).Pin(3) })
}

func TestPinCount(t *testing.T) {
	_, err := NewPins([]int{1, 2, 3})
	assert.Error(t, err)
	_, err = PeriphPins([]string{"a", "b", "c", "d", "e"})
	assert.Error(t, err)
}

func TestPeriphPin(t *testing.T) {
	raw := &gpiotest.Pin{N: "GPIO26", Num: 26}
	p := NewPeriphPin(raw)

	require.NoError(t, p.SetHigh())
	assert.Equal(t, gpio.High, raw.Read())
	require.NoError(t, p.SetLow())
	assert.Equal(t, gpio.Low, raw.Read())
}

type brokenPin struct {
	gpiotest.Pin
}

func (*brokenPin) Out(gpio.Level) error {
	return errors.New("pin is not an output")
}

func TestPeriphPinError(t *testing.T) {
	p := NewPeriphPin(&brokenPin{Pin: gpiotest.Pin{N: "GPIO5"}})
	err := p.SetHigh()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GPIO5")
}

func TestSimBankLogsPattern(t *testing.T) {
	var buf bytes.Buffer
	saved, savedLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: &buf, NoColor: true})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() {
		log.Logger = saved
		zerolog.SetGlobalLevel(savedLevel)
	})

	b := NewSimBank(4)
	require.NoError(t, b.Pin(1).SetHigh())

	out := buf.String()
	assert.Contains(t, out, "component=gpio")
	assert.Contains(t, out, "pins=\" #  \"")
}
