package cli

import (
	"context"
	"errors"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliher1911/uln2003/actuator"
	"github.com/aliher1911/uln2003/config"
	"github.com/aliher1911/uln2003/gpio"
)

func simMotor(t *testing.T, dir actuator.Direction) (actuator.Motor, *gpio.SimBank) {
	t.Helper()
	bank := gpio.NewSimBank(4)
	p, err := bank.Pins()
	require.NoError(t, err)
	return actuator.NewULN2003(dir, p[0], p[1], p[2], p[3]).Motor(), bank
}

func TestOpenSim(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = config.BackendSim
	cfg.Direction = "ccw"

	m, closeFn, err := Open(cfg)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, actuator.CounterClockwise, m.Direction())
	require.NoError(t, m.Step())
	assert.Equal(t, 3, m.Index())
}

func TestOpenUnknown(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "serial"
	_, _, err := Open(cfg)
	assert.Error(t, err)
}

func TestJog(t *testing.T) {
	m, bank := simMotor(t, actuator.Clockwise)
	require.NoError(t, Jog(context.Background(), m, 6, time.Microsecond))
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, []bool{false, false, false, false}, bank.States())
	// 6 steps and a disable, four writes each.
	assert.Equal(t, 28, bank.Writes())
}

func TestJogReverse(t *testing.T) {
	m, _ := simMotor(t, actuator.Clockwise)
	require.NoError(t, Jog(context.Background(), m, -3, time.Microsecond))
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, actuator.CounterClockwise, m.Direction())
}

func TestJogCancelled(t *testing.T) {
	m, bank := simMotor(t, actuator.Clockwise)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Jog(ctx, m, 100, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, m.Index())
	assert.Equal(t, []bool{false, false, false, false}, bank.States())
}

func TestJogLineFailure(t *testing.T) {
	m, bank := simMotor(t, actuator.Clockwise)
	bank.Fail(2, errors.New("open coil"))

	err := Jog(context.Background(), m, 5, time.Microsecond)
	var le *actuator.LineError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, 3, le.Line)
	assert.Equal(t, 0, m.Index())
}

func TestService(t *testing.T) {
	m, bank := simMotor(t, actuator.Clockwise)
	require.NoError(t, m.Steps(2))

	sigs := make(chan os.Signal, 1)
	sigs <- syscall.SIGTERM
	require.NoError(t, Service(m, "127.0.0.1:0", time.Millisecond, sigs))
	assert.Equal(t, 2, m.Index())
	assert.Equal(t, []bool{false, false, false, false}, bank.States())
}
