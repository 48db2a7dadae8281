package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	service "github.com/okian/courtfmt/internal/app"
	"github.com/okian/courtfmt/internal/domain/model"
	"github.com/okian/courtfmt/internal/domain/types"
	"github.com/okian/courtfmt/pkg/logger"
)

// Approximate upper bound for one encoded session.
const maxSessionBytes = 1 << 10

// SessionsHandler presents batches of tracked sessions.
type SessionsHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewSessionsHandler creates a new sessions handler.
func NewSessionsHandler(deps Dependencies, log logger.Logger) *SessionsHandler {
	return &SessionsHandler{deps: deps, logger: log}
}

type presentRequest struct {
	Sessions []model.Session `json:"sessions"`
}

type presentResponse struct {
	Sessions []types.SessionView `json:"sessions"`
}

// HandlePresent handles POST /v1/sessions/present.
func (h *SessionsHandler) HandlePresent(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	limit := int64(maxSessionBytes) * int64(max(h.deps.MaxBatchSize(), 1))
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	var req presentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeFailure(w, fmt.Errorf("%w: body exceeds %d bytes", service.ErrBatchTooLarge, tooLarge.Limit))
			return
		}
		writeFailure(w, fmt.Errorf("%w: invalid json: %w", ErrBadRequest, err))
		return
	}

	views, err := h.deps.PresentAll(r.Context(), req.Sessions)
	if err != nil {
		h.logger.Warn(r.Context(), "present failed",
			logger.Int("count", len(req.Sessions)),
			logger.String("request_id", r.Header.Get(RequestIDHeader)),
			logger.Error(err))
		writeFailure(w, err)
		return
	}
	if views == nil {
		views = []types.SessionView{}
	}
	writeJSON(w, http.StatusOK, presentResponse{Sessions: views})
}
