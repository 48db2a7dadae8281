package format

import (
	"fmt"
	"time"
)

// InProgress is shown for sessions that have not ended.
const InProgress = "In progress"

const minutesPerHour = 60

// SessionDuration renders the span between two timestamps as "45m" or
// "1h 30m". A nil end means the session is still running.
func (f *Formatter) SessionDuration(start string, end *string) (string, error) {
	return f.duration(start, end, CompactDuration)
}

// DetailedDuration is SessionDuration with sub-hour spans spelled out,
// e.g. "5 minutes".
func (f *Formatter) DetailedDuration(start string, end *string) (string, error) {
	return f.duration(start, end, VerboseDuration)
}

func (f *Formatter) duration(start string, end *string, render func(time.Duration) (string, error)) (string, error) {
	if end == nil {
		return InProgress, nil
	}
	s, err := f.Parse(start)
	if err != nil {
		return "", fmt.Errorf("start: %w", err)
	}
	e, err := f.Parse(*end)
	if err != nil {
		return "", fmt.Errorf("end: %w", err)
	}
	return render(e.Sub(s))
}

// CompactDuration renders whole elapsed minutes as "45m" or "1h 30m".
func CompactDuration(d time.Duration) (string, error) {
	m, err := wholeMinutes(d)
	if err != nil {
		return "", err
	}
	if m < minutesPerHour {
		return fmt.Sprintf("%dm", m), nil
	}
	return hoursMinutes(m), nil
}

// VerboseDuration renders whole elapsed minutes as "45 minutes" or "1h 30m".
func VerboseDuration(d time.Duration) (string, error) {
	m, err := wholeMinutes(d)
	if err != nil {
		return "", err
	}
	if m < minutesPerHour {
		return fmt.Sprintf("%d minutes", m), nil
	}
	return hoursMinutes(m), nil
}

func wholeMinutes(d time.Duration) (int64, error) {
	if d < 0 {
		return 0, fmt.Errorf("%w: %s", ErrNegativeDuration, d)
	}
	return d.Milliseconds() / time.Minute.Milliseconds(), nil
}

func hoursMinutes(m int64) string {
	return fmt.Sprintf("%dh %dm", m/minutesPerHour, m%minutesPerHour)
}
