package format

import (
	"time"
)

// Option applies a configuration option to the Formatter.
type Option func(*Formatter)

// WithLocation sets the location used to render timestamps and to
// interpret timestamps that carry no offset.
func WithLocation(loc *time.Location) Option {
	return func(f *Formatter) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithTimeZone loads a location by IANA name. Unknown names leave the
// default in place; use LoadLocation first when the caller needs the error.
func WithTimeZone(name string) Option {
	return func(f *Formatter) {
		if loc, err := LoadLocation(name); err == nil {
			f.loc = loc
		}
	}
}
