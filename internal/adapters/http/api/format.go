package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/courtfmt/internal/domain/types"
	"github.com/okian/courtfmt/pkg/format"
	"github.com/okian/courtfmt/pkg/logger"
	"github.com/okian/courtfmt/pkg/metrics"
)

// FormatHandler exposes the single-value formatters.
type FormatHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewFormatHandler creates a new format handler.
func NewFormatHandler(deps Dependencies, log logger.Logger) *FormatHandler {
	return &FormatHandler{deps: deps, logger: log}
}

// HandleSport handles GET /v1/format/sport?name=.
func (h *FormatHandler) HandleSport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	if !q.Has("name") {
		h.respond(w, r, "sport", "", missing("name"))
		return
	}
	h.respond(w, r, "sport", format.SportName(q.Get("name")), nil)
}

// HandleDate handles GET /v1/format/date?ts=&month=&...
func (h *FormatHandler) HandleDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	ts, err := required(q.Get("ts"), "ts")
	if err != nil {
		h.respond(w, r, "date", "", err)
		return
	}
	opts, err := dateOptions(q.Get)
	if err != nil {
		h.respond(w, r, "date", "", err)
		return
	}
	out, err := h.deps.Formatter().Date(ts, opts)
	h.respond(w, r, "date", out, err)
}

// HandleDetailedDate handles GET /v1/format/detailed-date?ts=.
func (h *FormatHandler) HandleDetailedDate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	ts, err := required(r.URL.Query().Get("ts"), "ts")
	if err != nil {
		h.respond(w, r, "detailed_date", "", err)
		return
	}
	out, err := h.deps.Formatter().DetailedDate(ts)
	h.respond(w, r, "detailed_date", out, err)
}

// HandleDuration handles GET /v1/format/duration?start=&end=&detailed=.
// An absent end means the session is still running; an empty one is invalid.
func (h *FormatHandler) HandleDuration(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	start, err := required(q.Get("start"), "start")
	if err != nil {
		h.respond(w, r, "duration", "", err)
		return
	}
	var end *string
	if q.Has("end") {
		v := q.Get("end")
		end = &v
	}
	detailed := false
	if raw := q.Get("detailed"); raw != "" {
		if detailed, err = strconv.ParseBool(raw); err != nil {
			h.respond(w, r, "duration", "", fmt.Errorf("%w: detailed: %q", ErrBadRequest, raw))
			return
		}
	}

	f := h.deps.Formatter()
	var out string
	if detailed {
		out, err = f.DetailedDuration(start, end)
	} else {
		out, err = f.SessionDuration(start, end)
	}
	h.respond(w, r, "duration", out, err)
}

// HandleClock handles GET /v1/format/clock?seconds=.
func (h *FormatHandler) HandleClock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw, err := required(r.URL.Query().Get("seconds"), "seconds")
	if err != nil {
		h.respond(w, r, "clock", "", err)
		return
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		h.respond(w, r, "clock", "", fmt.Errorf("%w: seconds must be a non-negative integer: %q", ErrBadRequest, raw))
		return
	}
	h.respond(w, r, "clock", format.Clock(seconds), nil)
}

// HandleMinutes handles GET /v1/format/minutes?minutes=.
func (h *FormatHandler) HandleMinutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	raw, err := required(r.URL.Query().Get("minutes"), "minutes")
	if err != nil {
		h.respond(w, r, "minutes", "", err)
		return
	}
	minutes, err := strconv.ParseFloat(raw, 64)
	if err != nil || !format.ValidMinutes(minutes) {
		h.respond(w, r, "minutes", "", fmt.Errorf("%w: minutes must be finite and at most %g: %q", ErrBadRequest, format.MaxMinutes, raw))
		return
	}
	h.respond(w, r, "minutes", format.Minutes(minutes), nil)
}

// respond writes out, or the failure, and records the outcome under op.
func (h *FormatHandler) respond(w http.ResponseWriter, r *http.Request, op string, out string, err error) {
	if err != nil {
		metrics.RecordFormatError(op, errorKind(err))
		h.logger.Debug(r.Context(), "format rejected",
			logger.String("op", op),
			logger.String("request_id", r.Header.Get(RequestIDHeader)),
			logger.Error(err))
		writeFailure(w, err)
		return
	}
	metrics.RecordFormat(op)
	writeJSON(w, http.StatusOK, types.Value{Value: out})
}

// errorKind labels err for format_errors_total; request validation
// failures that carry no formatter sentinel are "bad_request".
func errorKind(err error) string {
	if kind := format.Kind(err); kind != "unknown" {
		return kind
	}
	return "bad_request"
}

// dateOptions reads the optional per-field styles from a lookup such as
// url.Values.Get.
func dateOptions(get func(string) string) (format.DateOptions, error) {
	var opts format.DateOptions
	fields := []struct {
		name string
		dst  *format.Style
	}{
		{"weekday", &opts.Weekday},
		{"year", &opts.Year},
		{"month", &opts.Month},
		{"day", &opts.Day},
		{"hour", &opts.Hour},
		{"minute", &opts.Minute},
		{"second", &opts.Second},
	}
	for _, f := range fields {
		st, err := format.ParseStyle(get(f.name))
		if err != nil {
			return opts, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = st
	}
	opts.TimeZone = strings.TrimSpace(get("time_zone"))
	return opts, nil
}

func required(v, name string) (string, error) {
	if strings.TrimSpace(v) == "" {
		return "", missing(name)
	}
	return v, nil
}

func missing(name string) error {
	return fmt.Errorf("%w: %w: %s", ErrBadRequest, ErrMissingParam, name)
}
