package pace

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aliher1911/uln2003/actuator"
)

// MinDelay is used when no spacing was configured.
const MinDelay = time.Microsecond

// Steps takes n steps with at least delay between consecutive coil changes.
// It waits one delay after the last step too, so back to back calls keep
// the spacing. Returns number of steps completed.
func Steps(ctx context.Context, m actuator.Motor, n int, delay time.Duration) (int, error) {
	t := time.NewTicker(max(delay, MinDelay))
	defer t.Stop()
	for i := 0; i < n; i++ {
		if err := m.Step(); err != nil {
			return i, fmt.Errorf("step %d of %d: %w", i+1, n, err)
		}
		if i%100 == 0 {
			log.Debug().Str("component", "pace").Int("step", i).Int("phase", m.Index()).Msg("stepping")
		}
		select {
		case <-ctx.Done():
			return i + 1, ctx.Err()
		case <-t.C:
		}
	}
	return n, nil
}
