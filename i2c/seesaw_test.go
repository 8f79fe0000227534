package i2cdev

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	ops    [][]byte
	short  bool
	err    error
	closed bool
}

func (b *fakeBus) WriteBytes(buf []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	b.ops = append(b.ops, append([]byte(nil), buf...))
	if b.short {
		return len(buf) - 1, nil
	}
	return len(buf), nil
}

func (b *fakeBus) Close() error {
	b.closed = true
	return nil
}

func TestConfDefault(t *testing.T) {
	c := Conf{Bus: 1}
	c.Default(0x49)
	assert.Equal(t, uint8(0x49), c.Addr)
	c.Default(0x36)
	assert.Equal(t, uint8(0x49), c.Addr)
}

func TestDeviceWrite(t *testing.T) {
	bus := &fakeBus{}
	d := NewDevice(bus)
	require.NoError(t, d.Write(0x01, 0x05, []byte{1, 2}))
	assert.Equal(t, [][]byte{{0x01, 0x05, 1, 2}}, bus.ops)

	bus.short = true
	assert.EqualError(t, d.Write(0x01, 0x05, nil), "expected to write 2 bytes, wrote 1")

	require.NoError(t, d.Close())
	assert.True(t, bus.closed)
}

func TestSeesawPins(t *testing.T) {
	bus := &fakeBus{}
	s := NewSeesawOnDevice(NewDevice(bus))

	pins, err := s.OutputPins([]int{0, 1, 8, 31})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{
		{GPIO_BASE, GPIO_DIRSET_BULK, 0, 0, 0, 0x01},
		{GPIO_BASE, GPIO_DIRSET_BULK, 0, 0, 0, 0x02},
		{GPIO_BASE, GPIO_DIRSET_BULK, 0, 0, 0x01, 0},
		{GPIO_BASE, GPIO_DIRSET_BULK, 0x80, 0, 0, 0},
	}, bus.ops)

	bus.ops = nil
	require.NoError(t, pins[2].SetHigh())
	require.NoError(t, pins[3].SetLow())
	assert.Equal(t, [][]byte{
		{GPIO_BASE, GPIO_BULK_SET, 0, 0, 0x01, 0},
		{GPIO_BASE, GPIO_BULK_CLR, 0x80, 0, 0, 0},
	}, bus.ops)
}

func TestSeesawErrors(t *testing.T) {
	bus := &fakeBus{}
	s := NewSeesawOnDevice(NewDevice(bus))

	_, err := s.OutputPin(32)
	assert.Error(t, err)
	_, err = s.OutputPins([]int{1, 2})
	assert.Error(t, err)

	p, err := s.OutputPin(4)
	require.NoError(t, err)

	nack := errors.New("nack")
	bus.err = nack
	err = p.SetHigh()
	assert.ErrorIs(t, err, nack)
	assert.Contains(t, err.Error(), "seesaw pin 4")
}

func TestConfString(t *testing.T) {
	assert.Equal(t, "i2c-1@0x49", Conf{Bus: 1, Addr: 0x49}.String())
}
