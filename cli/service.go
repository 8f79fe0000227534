package cli

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aliher1911/uln2003/actuator"
	"github.com/aliher1911/uln2003/server"
)

// Service exposes motor over HTTP until a signal arrives, then disables it.
func Service(m actuator.Motor, address string, delay time.Duration, sigs <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errC := make(chan error, 1)
	go func() {
		errC <- server.New(m, delay).Run(ctx, address)
	}()

	var err error
	select {
	case s := <-sigs:
		log.Info().Stringer("signal", s).Msg("service: received signal, stopping")
		cancel()
		err = <-errC
	case err = <-errC:
	}

	if derr := disable(m); derr != nil && err == nil {
		err = derr
	}
	return err
}
