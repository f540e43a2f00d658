package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/giftcircle/pkg/buildinfo"
	"github.com/matzehuels/giftcircle/pkg/circle"
	gcerrors "github.com/matzehuels/giftcircle/pkg/errors"
	gio "github.com/matzehuels/giftcircle/pkg/io"
)

// drawRequest is the body of POST /v1/circles.
type drawRequest struct {
	Participants []gio.Record `json:"participants"`
	UseGroups    bool         `json:"use_groups"`
	Seed         uint64       `json:"seed"`
	MaxAttempts  int          `json:"max_attempts"`
	Record       bool         `json:"record"`
	Label        string       `json:"label"`
}

// drawResponse is an accepted draw. ID is set when the draw was recorded.
type drawResponse struct {
	ID string `json:"id,omitempty"`
	gio.Document
}

type errorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Names   []string `json:"names,omitempty"`
}

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Info: buildinfo.Current()})
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("request_id", middleware.GetReqID(ctx))

	var req drawRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, string(gcerrors.ErrCodeInvalidInput), "invalid JSON body: "+err.Error())
		return
	}

	if n := len(req.Participants); n > s.opts.MaxParticipants {
		s.writeErr(w, gcerrors.New(gcerrors.ErrCodeInvalidInput,
			"too many participants: got %d, at most %d per draw", n, s.opts.MaxParticipants))
		return
	}

	people, err := gio.ToParticipants(req.Participants)
	if err != nil {
		s.writeErr(w, err)
		return
	}

	maxAttempts := req.MaxAttempts
	switch {
	case maxAttempts == 0:
		maxAttempts = s.opts.MaxAttempts
	case maxAttempts < 0 || maxAttempts > MaxAttemptsLimit:
		s.writeErr(w, gcerrors.New(gcerrors.ErrCodeInvalidInput,
			"max_attempts must be between 1 and %d, got %d", MaxAttemptsLimit, maxAttempts))
		return
	}
	if req.Record && s.opts.History == nil {
		s.writeErr(w, gcerrors.New(gcerrors.ErrCodeInvalidInput, "recording is not enabled on this server"))
		return
	}

	res, err := circle.Generate(ctx, people, circle.Options{
		UseGroups:   req.UseGroups,
		MaxAttempts: maxAttempts,
		Seed:        req.Seed,
		Logger:      logger,
	})
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		// The timeout middleware answers once the handler returns.
		return
	}
	if err != nil {
		s.writeErr(w, err)
		return
	}

	resp := drawResponse{Document: gio.NewDocument(res)}
	if req.Record {
		d, err := s.opts.History.Record(ctx, req.Label, res)
		if err != nil {
			s.writeErr(w, gcerrors.Wrap(gcerrors.ErrCodeInternal, err, "record draw"))
			return
		}
		resp.ID = d.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetDraw(w http.ResponseWriter, r *http.Request) {
	d, err := s.opts.History.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, drawResponse{ID: d.ID, Document: gio.NewDocument(d.Result())})
}

// statusFor maps an error code to an HTTP status.
func statusFor(code gcerrors.Code) int {
	switch code {
	case gcerrors.ErrCodeInsufficientParticipants,
		gcerrors.ErrCodeDuplicateNames,
		gcerrors.ErrCodeIncompleteGroups,
		gcerrors.ErrCodeInfeasibleGroups,
		gcerrors.ErrCodeInvalidInput,
		gcerrors.ErrCodeInvalidRecord,
		gcerrors.ErrCodeInvalidFormat:
		return http.StatusUnprocessableEntity
	case gcerrors.ErrCodeSearchExhausted:
		return http.StatusServiceUnavailable
	case gcerrors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeErr(w http.ResponseWriter, err error) {
	code := gcerrors.GetCode(err)
	if code == "" {
		code = gcerrors.ErrCodeInternal
	}
	status := statusFor(code)
	if status >= 500 && code != gcerrors.ErrCodeSearchExhausted {
		s.logger.Error("request failed", "err", err)
	}

	resp := errorResponse{Code: string(code), Message: gcerrors.UserMessage(err)}
	var dup *gcerrors.DuplicateNamesError
	if errors.As(err, &dup) {
		resp.Names = dup.Names
	}
	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
