package format

import (
	"fmt"
	"math"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// Clock converts seconds to "M:SS", or "H:MM:SS" once an hour has passed.
// Negative input renders as "0:00".
func Clock(seconds int) string {
	if seconds < 0 {
		return "0:00"
	}
	h := seconds / secondsPerHour
	m := (seconds % secondsPerHour) / secondsPerMinute
	s := seconds % secondsPerMinute
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// MaxMinutes is the largest count Minutes renders exactly; larger values
// are clamped to it. The bound keeps minutes*60 well inside int64.
const MaxMinutes = 1e15

// ValidMinutes reports whether minutes is a finite count Minutes renders
// without clamping. Callers taking user input should reject the rest.
func ValidMinutes(minutes float64) bool {
	return !math.IsNaN(minutes) && !math.IsInf(minutes, 0) && math.Abs(minutes) <= MaxMinutes
}

// Minutes renders a fractional minute count as "M:SS" without rolling
// over into hours, so 75.5 becomes "75:30". Non-positive input and NaN
// are "0:00"; values above MaxMinutes, +Inf included, are clamped.
func Minutes(minutes float64) string {
	if math.IsNaN(minutes) || minutes <= 0 {
		return "0:00"
	}
	minutes = math.Min(minutes, MaxMinutes)
	total := int(minutes * secondsPerMinute)
	return fmt.Sprintf("%d:%02d", total/secondsPerMinute, total%secondsPerMinute)
}
