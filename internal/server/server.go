// Package server exposes gift circle draws over HTTP.
//
// Routes:
//
//	GET  /healthz           liveness and build information
//	POST /v1/circles        draw a gift circle
//	GET  /v1/circles/{id}   fetch a recorded draw (only with a history store)
//
// A draw request carries the participants and the same options as the
// draw command:
//
//	{
//	  "participants": [{"name": "Father", "group_number": 1}, ...],
//	  "use_groups": true,
//	  "seed": 42,
//	  "max_attempts": 500,
//	  "record": true,
//	  "label": "Christmas"
//	}
//
// Errors are returned as {"code": "...", "message": "..."} with status 400
// for malformed JSON, 422 for rejected input (including more participants
// than [Options.MaxParticipants]), 404 for unknown draws and 503 when the
// search runs out of attempts. A draw that outlives [Options.Timeout] is
// abandoned and answered with 504.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/giftcircle/pkg/circle"
	"github.com/matzehuels/giftcircle/pkg/history"
)

// Defaults applied by [New].
const (
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 1 << 20

	// DefaultMaxParticipants caps the participants of a single request.
	// Ordering a pool costs time quadratic in its size.
	DefaultMaxParticipants = 1000

	// MaxAttemptsLimit caps the attempts a single request may ask for.
	MaxAttemptsLimit = 10_000

	shutdownTimeout = 5 * time.Second
)

// Recorder stores and loads draws. *history.Store implements it.
type Recorder interface {
	Record(ctx context.Context, label string, res *circle.Result) (*history.Draw, error)
	Get(ctx context.Context, id string) (*history.Draw, error)
}

// Options configures a [Server].
type Options struct {
	// Logger receives request logs. Nil discards them.
	Logger *log.Logger

	// MaxAttempts is used when a request does not set max_attempts.
	// Zero means circle.DefaultMaxAttempts.
	MaxAttempts int

	// History enables recording and GET /v1/circles/{id}. Nil disables both.
	History Recorder

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxBodyBytes bounds request bodies. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64

	// MaxParticipants bounds the participants of one draw. Zero means
	// DefaultMaxParticipants.
	MaxParticipants int
}

// Server is the HTTP API.
type Server struct {
	opts   Options
	logger *log.Logger
	router chi.Router
}

// New creates a server with its routes registered.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = circle.DefaultMaxAttempts
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.MaxParticipants <= 0 {
		opts.MaxParticipants = DefaultMaxParticipants
	}

	s := &Server{opts: opts, logger: opts.Logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.Timeout))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/circles", func(r chi.Router) {
		r.Post("/", s.handleDraw)
		if opts.History != nil {
			r.Get("/{id}", s.handleGetDraw)
		}
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.Method+" "+r.URL.Path)
	})

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return ctx.Err()
}
