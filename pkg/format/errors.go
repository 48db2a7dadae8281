package format

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidTimeZone  = errors.New("invalid time zone")
	ErrInvalidOption    = errors.New("invalid date option")
	ErrNegativeDuration = errors.New("end time before start time")
)

// Kind names the sentinel behind err for metrics and API error codes.
// Errors from outside this package are "unknown".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidTimestamp):
		return "invalid_timestamp"
	case errors.Is(err, ErrInvalidTimeZone):
		return "invalid_time_zone"
	case errors.Is(err, ErrInvalidOption):
		return "invalid_option"
	case errors.Is(err, ErrNegativeDuration):
		return "negative_duration"
	default:
		return "unknown"
	}
}
