// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	service "github.com/okian/courtfmt/internal/app"
	"github.com/okian/courtfmt/internal/domain/model"
	"github.com/okian/courtfmt/internal/domain/types"
	"github.com/okian/courtfmt/pkg/format"
	"github.com/okian/courtfmt/pkg/logger"
)

// Dependencies required by HTTP handlers.
type Dependencies interface {
	// Formatter renders single values in the configured location.
	Formatter() *format.Formatter

	// MaxBatchSize is the largest batch PresentAll accepts.
	MaxBatchSize() int

	// PresentAll renders a batch of sessions, preserving order.
	PresentAll(ctx context.Context, sessions []model.Session) ([]types.SessionView, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	formatHandler   *FormatHandler
	sessionsHandler *SessionsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, log logger.Logger) *Server {
	if log == nil {
		log = logger.Nop()
	}
	return &Server{
		healthHandler:   NewHealthHandler(),
		formatHandler:   NewFormatHandler(deps, log.Named("format")),
		sessionsHandler: NewSessionsHandler(deps, log.Named("sessions")),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(path, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(path, RequestIDMiddleware(MetricsMiddleware(h, endpoint)))
	}
	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/v1/format/sport", "format_sport", s.formatHandler.HandleSport)
	route("/v1/format/date", "format_date", s.formatHandler.HandleDate)
	route("/v1/format/detailed-date", "format_detailed_date", s.formatHandler.HandleDetailedDate)
	route("/v1/format/duration", "format_duration", s.formatHandler.HandleDuration)
	route("/v1/format/clock", "format_clock", s.formatHandler.HandleClock)
	route("/v1/format/minutes", "format_minutes", s.formatHandler.HandleMinutes)
	route("/v1/sessions/present", "sessions_present", s.sessionsHandler.HandlePresent)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeFailure maps a formatter or presenter error onto a status and code.
func writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBatchTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "batch_too_large", err)
	case errors.Is(err, ErrBadRequest), errors.Is(err, service.ErrInvalidSession):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "cancelled", err)
	case format.Kind(err) != "unknown":
		writeError(w, http.StatusBadRequest, format.Kind(err), err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
