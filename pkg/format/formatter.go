// Package format turns raw session data into display strings: sport
// labels, en-US dates, session durations and clock readouts.
//
// Every function is pure. A Formatter only carries the location used to
// render timestamps and never changes after New returns, so a single
// instance can be shared between goroutines.
package format

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone data for containers without /usr/share/zoneinfo

	"golang.org/x/text/language"
)

// locale is fixed; nothing in the configuration surface changes it.
var locale = language.AmericanEnglish

// Locale returns the language tag all output is rendered for.
func Locale() language.Tag { return locale }

// Formatter renders timestamps in a fixed location.
type Formatter struct {
	loc *time.Location
}

// New creates a Formatter rendering in UTC unless an option says otherwise.
func New(opts ...Option) *Formatter {
	f := &Formatter{loc: time.UTC}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Location returns the rendering location.
func (f *Formatter) Location() *time.Location { return f.loc }

// LoadLocation resolves an IANA zone name. The empty name is UTC.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTimeZone, name, err)
	}
	return loc, nil
}

var std = New()

// Date renders ts with the default formatter. See Formatter.Date.
func Date(ts string, opts DateOptions) (string, error) { return std.Date(ts, opts) }

// DetailedDate renders ts with the default formatter. See Formatter.DetailedDate.
func DetailedDate(ts string) (string, error) { return std.DetailedDate(ts) }

// SessionDuration uses the default formatter. See Formatter.SessionDuration.
func SessionDuration(start string, end *string) (string, error) {
	return std.SessionDuration(start, end)
}

// DetailedDuration uses the default formatter. See Formatter.DetailedDuration.
func DetailedDuration(start string, end *string) (string, error) {
	return std.DetailedDuration(start, end)
}
