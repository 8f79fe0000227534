package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = saved })
	return &buf
}

func TestCloseLogged(t *testing.T) {
	buf := captureLog(t)

	closeLogged("seesaw", func() error { return errors.New("bus busy") })
	assert.Contains(t, buf.String(), `"backend":"seesaw"`)
	assert.Contains(t, buf.String(), `"error":"bus busy"`)

	buf.Reset()
	closeLogged("GPIO", func() error { return nil })
	assert.Empty(t, buf.String())
}
