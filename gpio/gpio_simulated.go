//go:build nogpio

package gpio

import "github.com/rs/zerolog/log"

const Simulated = true

func Open() error {
	log.Debug().Msg("GPIO will be simulated")
	return nil
}

func Close() error {
	log.Debug().Msg("Simulated GPIO closing")
	return nil
}
