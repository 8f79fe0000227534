package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aliher1911/uln2003/actuator"
	"github.com/aliher1911/uln2003/pace"
)

// MaxSteps limits steps taken by a single request.
const MaxSteps = 10000

/////////////////////
// Response helpers

func respondError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(message))
}

func respondJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Err(err).Msg("failed to encode response")
	}
}

type State struct {
	Index     int    `json:"index"`
	Direction string `json:"direction"`
}

type DirectionRequest struct {
	Direction string `json:"direction"`
}

type errorState struct {
	State
	Error string `json:"error"`
}

// Server exposes a motor over HTTP. Requests are serialized so the motor
// keeps exclusive use of its lines.
type Server struct {
	mu sync.Mutex
	m  actuator.Motor
	// Spacing between steps of a multi step request.
	delay time.Duration
	log   zerolog.Logger
}

func New(m actuator.Motor, delay time.Duration) *Server {
	return &Server{
		m:     m,
		delay: delay,
		log:   log.With().Str("component", "server").Logger(),
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(LoggerMiddleware(&s.log))

	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		respondJSON(w, http.StatusOK, s.state())
	})

	r.Post("/step", func(w http.ResponseWriter, r *http.Request) {
		n := 1
		if v := r.URL.Query().Get("n"); v != "" {
			var err error
			n, err = strconv.Atoi(v)
			if err != nil || n < 1 || n > MaxSteps {
				respondError(w, http.StatusBadRequest, fmt.Sprintf("n must be between 1 and %d", MaxSteps))
				return
			}
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if _, err := pace.Steps(r.Context(), s.m, n, s.delay); err != nil {
			if r.Context().Err() != nil {
				s.log.Info().Err(err).Msg("step request cancelled")
				respondJSON(w, http.StatusServiceUnavailable, errorState{State: s.state(), Error: err.Error()})
				return
			}
			s.lineFailure(w, "step", err)
			return
		}
		respondJSON(w, http.StatusOK, s.state())
	})

	r.Post("/disable", func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.m.Disable(); err != nil {
			s.lineFailure(w, "disable", err)
			return
		}
		respondJSON(w, http.StatusOK, s.state())
	})

	r.Put("/direction", func(w http.ResponseWriter, r *http.Request) {
		var req DirectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		dir, err := actuator.ParseDirection(req.Direction)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		s.m.SetDirection(dir)
		respondJSON(w, http.StatusOK, s.state())
	})

	return r
}

// Must be called with mu held.
func (s *Server) state() State {
	return State{
		Index:     s.m.Index(),
		Direction: s.m.Direction().String(),
	}
}

func (s *Server) lineFailure(w http.ResponseWriter, op string, err error) {
	ev := s.log.Error().Err(err).Str("op", op)
	var le *actuator.LineError
	if errors.As(err, &le) {
		ev = ev.Int("line", le.Line)
	}
	ev.Msg("line write failed")
	respondJSON(w, http.StatusBadGateway, errorState{State: s.state(), Error: err.Error()})
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errC := make(chan error, 1)
	go func() {
		s.log.Info().Str("listen", address).Msg("launching server")
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errC; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
