package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Style selects how a single date field is rendered. The empty Style means
// the field is absent.
type Style string

// Field styles, named after their en-US display option values.
const (
	StyleNumeric Style = "numeric"
	Style2Digit  Style = "2-digit"
	StyleShort   Style = "short"
	StyleLong    Style = "long"
	StyleNarrow  Style = "narrow"
)

var (
	numberStyles  = []Style{StyleNumeric, Style2Digit}
	textStyles    = []Style{StyleShort, StyleLong, StyleNarrow}
	monthStyles   = []Style{StyleNumeric, Style2Digit, StyleShort, StyleLong, StyleNarrow}
	weekdayStyles = textStyles
)

// ParseStyle validates a style name. The empty string parses to the
// absent style.
func ParseStyle(s string) (Style, error) {
	st := Style(strings.ToLower(strings.TrimSpace(s)))
	if st == "" {
		return "", nil
	}
	for _, known := range monthStyles {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown style %q", ErrInvalidOption, s)
}

// DateOptions lists the fields rendered by Date. Present fields override
// DefaultDateOptions; absent fields keep the default.
type DateOptions struct {
	Weekday Style
	Year    Style
	Month   Style
	Day     Style
	Hour    Style
	Minute  Style
	Second  Style

	// TimeZone overrides the formatter's location for one call.
	TimeZone string
}

// DefaultDateOptions are applied under every Date call.
var DefaultDateOptions = DateOptions{
	Month:  StyleShort,
	Day:    StyleNumeric,
	Hour:   Style2Digit,
	Minute: Style2Digit,
}

// DetailedDateOptions are the fields used by DetailedDate.
var DetailedDateOptions = DateOptions{
	Weekday: StyleLong,
	Year:    StyleNumeric,
	Month:   StyleLong,
	Day:     StyleNumeric,
	Hour:    Style2Digit,
	Minute:  Style2Digit,
}

// Merge returns o with every present field of over applied on top.
func (o DateOptions) Merge(over DateOptions) DateOptions {
	pick := func(base, top Style) Style {
		if top != "" {
			return top
		}
		return base
	}
	o.Weekday = pick(o.Weekday, over.Weekday)
	o.Year = pick(o.Year, over.Year)
	o.Month = pick(o.Month, over.Month)
	o.Day = pick(o.Day, over.Day)
	o.Hour = pick(o.Hour, over.Hour)
	o.Minute = pick(o.Minute, over.Minute)
	o.Second = pick(o.Second, over.Second)
	if over.TimeZone != "" {
		o.TimeZone = over.TimeZone
	}
	return o
}

func (o DateOptions) validate() error {
	checks := []struct {
		name    string
		style   Style
		allowed []Style
	}{
		{"weekday", o.Weekday, weekdayStyles},
		{"year", o.Year, numberStyles},
		{"month", o.Month, monthStyles},
		{"day", o.Day, numberStyles},
		{"hour", o.Hour, numberStyles},
		{"minute", o.Minute, numberStyles},
		{"second", o.Second, numberStyles},
	}
	for _, c := range checks {
		if c.style == "" {
			continue
		}
		ok := false
		for _, a := range c.allowed {
			if c.style == a {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s does not accept %q", ErrInvalidOption, c.name, c.style)
		}
	}
	return nil
}

// Date parses ts and renders it in en-US with opts merged over
// DefaultDateOptions, e.g. "Jan 15, 10:30 AM".
func (f *Formatter) Date(ts string, opts DateOptions) (string, error) {
	t, err := f.Parse(ts)
	if err != nil {
		return "", err
	}
	return f.Render(t, opts)
}

// DetailedDate renders ts with DetailedDateOptions, e.g.
// "Monday, January 15, 2024 at 10:30 AM".
func (f *Formatter) DetailedDate(ts string) (string, error) {
	return f.Date(ts, DetailedDateOptions)
}

// Render formats t the way Date does.
func (f *Formatter) Render(t time.Time, opts DateOptions) (string, error) {
	o := DefaultDateOptions.Merge(opts)
	if err := o.validate(); err != nil {
		return "", err
	}
	loc := f.loc
	if o.TimeZone != "" {
		var err error
		if loc, err = LoadLocation(o.TimeZone); err != nil {
			return "", err
		}
	}
	t = t.In(loc)

	date := renderDate(t, o)
	clock := renderClock(t, o)
	switch {
	case date == "":
		return clock, nil
	case clock == "":
		return date, nil
	case o.Month == StyleLong:
		return date + " at " + clock, nil
	default:
		return date + ", " + clock, nil
	}
}

// RenderDetailed formats t the way DetailedDate does.
func (f *Formatter) RenderDetailed(t time.Time) string {
	// DetailedDateOptions always validate and carry no zone override.
	s, _ := f.Render(t, DetailedDateOptions)
	return s
}

func renderDate(t time.Time, o DateOptions) string {
	var body string
	switch o.Month {
	case StyleShort, StyleLong, StyleNarrow:
		body = monthText(t.Month(), o.Month)
		if o.Day != "" {
			body += " " + number(t.Day(), o.Day)
		}
		if o.Year != "" {
			if o.Day != "" {
				body += ","
			}
			body += " " + year(t.Year(), o.Year)
		}
	case StyleNumeric, Style2Digit:
		parts := []string{number(int(t.Month()), o.Month)}
		if o.Day != "" {
			parts = append(parts, number(t.Day(), o.Day))
		}
		if o.Year != "" {
			parts = append(parts, year(t.Year(), o.Year))
		}
		body = strings.Join(parts, "/")
	default:
		var parts []string
		if o.Day != "" {
			parts = append(parts, number(t.Day(), o.Day))
		}
		if o.Year != "" {
			parts = append(parts, year(t.Year(), o.Year))
		}
		body = strings.Join(parts, " ")
	}

	if o.Weekday == "" {
		return body
	}
	wd := weekdayText(t.Weekday(), o.Weekday)
	if body == "" {
		return wd
	}
	return wd + ", " + body
}

func renderClock(t time.Time, o DateOptions) string {
	if o.Hour == "" {
		var parts []string
		if o.Minute != "" {
			parts = append(parts, number(t.Minute(), o.Minute))
		}
		if o.Second != "" {
			parts = append(parts, number(t.Second(), Style2Digit))
		}
		return strings.Join(parts, ":")
	}

	h := t.Hour() % 12
	if h == 0 {
		h = 12
	}
	s := number(h, o.Hour)
	if o.Minute != "" {
		s += ":" + number(t.Minute(), Style2Digit)
	}
	if o.Second != "" {
		s += ":" + number(t.Second(), Style2Digit)
	}
	if t.Hour() < 12 {
		return s + " AM"
	}
	return s + " PM"
}

func number(n int, st Style) string {
	if st == Style2Digit {
		return fmt.Sprintf("%02d", n)
	}
	return strconv.Itoa(n)
}

func year(y int, st Style) string {
	if st == Style2Digit {
		return fmt.Sprintf("%02d", y%100)
	}
	return strconv.Itoa(y)
}

func monthText(m time.Month, st Style) string {
	name := m.String()
	switch st {
	case StyleShort:
		return name[:3]
	case StyleNarrow:
		return name[:1]
	default:
		return name
	}
}

func weekdayText(d time.Weekday, st Style) string {
	name := d.String()
	switch st {
	case StyleShort:
		return name[:3]
	case StyleNarrow:
		return name[:1]
	default:
		return name
	}
}
