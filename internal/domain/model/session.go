// Package model contains domain models passed between layers.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Session types recorded by the tracker.
const (
	SessionTypeMatch    = "match"
	SessionTypeTraining = "training"
)

// Session is a tracked racket-sport session as the tracker stores it.
// Fields mirror the session resource of the tracking backend.
type Session struct {
	ID              uuid.UUID  `json:"session_id"`
	Sport           string     `json:"sport"`        // identifier, e.g. "table_tennis"
	SessionType     string     `json:"session_type"` // "match" or "training"
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`         // nil while the session runs
	DurationSeconds *int       `json:"duration_seconds,omitempty"` // active time reported by the watch
	ScoreMe         int        `json:"final_score_me"`
	ScoreOpponent   int        `json:"final_score_opponent"`
	TotalRallies    int        `json:"total_rallies"`
}

// Ended reports whether the session has an end time.
func (s Session) Ended() bool { return s.EndTime != nil }

// IsMatch reports whether the session was a scored match.
func (s Session) IsMatch() bool { return s.SessionType == SessionTypeMatch }
