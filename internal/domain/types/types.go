// Package types contains common types used across the application
package types

// Value wraps a single formatted string
type Value struct {
	Value string `json:"value"`
}

// SessionView is a session with every field rendered for display
type SessionView struct {
	ID               string `json:"session_id"`
	Sport            string `json:"sport"`
	Type             string `json:"type"`
	Date             string `json:"date"`
	DetailedDate     string `json:"detailed_date"`
	Duration         string `json:"duration"`
	DetailedDuration string `json:"detailed_duration"`
	Clock            string `json:"clock,omitempty"`
	Score            string `json:"score,omitempty"`
	Rallies          int    `json:"rallies"`
	InProgress       bool   `json:"in_progress"`
}
