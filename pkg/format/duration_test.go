package format_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/courtfmt/pkg/format"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr(s string) *string { return &s }

func TestSessionDuration(t *testing.T) {
	Convey("Given a session start", t, func() {
		start := "2024-01-01T10:00:00Z"

		Convey("When the session has no end", func() {
			out, err := format.SessionDuration(start, nil)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "In progress")

			Convey("Then the start is not even parsed", func() {
				out, err := format.SessionDuration("garbage", nil)
				So(err, ShouldBeNil)
				So(out, ShouldEqual, format.InProgress)
			})
		})

		Convey("When the session lasted under an hour", func() {
			out, err := format.SessionDuration(start, ptr("2024-01-01T10:45:00Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "45m")
		})

		Convey("When the session lasted over an hour", func() {
			out, err := format.SessionDuration(start, ptr("2024-01-01T11:30:00Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "1h 30m")
		})

		Convey("When the session lasted exactly two hours", func() {
			out, err := format.SessionDuration(start, ptr("2024-01-01T12:00:00Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "2h 0m")
		})

		Convey("When partial minutes are involved they are floored", func() {
			out, err := format.SessionDuration(start, ptr("2024-01-01T10:59:59.999Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "59m")

			out, err = format.SessionDuration(start, ptr("2024-01-01T10:00:30Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "0m")
		})

		Convey("When start and end use different offsets", func() {
			out, err := format.SessionDuration("2024-01-01T12:00:00+02:00", ptr("2024-01-01T10:20:00Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "20m")
		})

		Convey("When the end precedes the start", func() {
			_, err := format.SessionDuration(start, ptr("2024-01-01T09:00:00Z"))
			So(errors.Is(err, format.ErrNegativeDuration), ShouldBeTrue)
		})

		Convey("When either timestamp is invalid", func() {
			_, err := format.SessionDuration("yesterday", ptr("2024-01-01T10:45:00Z"))
			So(errors.Is(err, format.ErrInvalidTimestamp), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, "start:")

			_, err = format.SessionDuration(start, ptr(""))
			So(errors.Is(err, format.ErrInvalidTimestamp), ShouldBeTrue)
			So(err.Error(), ShouldStartWith, "end:")
		})

		Convey("When called repeatedly the result is stable", func() {
			a, _ := format.SessionDuration(start, ptr("2024-01-01T11:30:00Z"))
			b, _ := format.SessionDuration(start, ptr("2024-01-01T11:30:00Z"))
			So(a, ShouldEqual, b)
		})
	})
}

func TestDetailedDuration(t *testing.T) {
	Convey("Given a session start", t, func() {
		start := "2024-01-01T10:00:00Z"

		Convey("When the session lasted five minutes", func() {
			out, err := format.DetailedDuration(start, ptr("2024-01-01T10:05:00Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "5 minutes")
		})

		Convey("When the session lasted over an hour", func() {
			out, err := format.DetailedDuration(start, ptr("2024-01-01T11:30:00Z"))
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "1h 30m")
		})

		Convey("When the session is running", func() {
			out, err := format.DetailedDuration(start, nil)
			So(err, ShouldBeNil)
			So(out, ShouldEqual, "In progress")
		})

		Convey("When the end precedes the start", func() {
			_, err := format.DetailedDuration(start, ptr("2024-01-01T09:59:00Z"))
			So(errors.Is(err, format.ErrNegativeDuration), ShouldBeTrue)
		})
	})
}

func TestDurationValues(t *testing.T) {
	Convey("Given raw durations", t, func() {
		out, err := format.CompactDuration(95 * time.Minute)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "1h 35m")

		out, err = format.VerboseDuration(time.Minute)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "1 minutes")

		out, err = format.VerboseDuration(0)
		So(err, ShouldBeNil)
		So(out, ShouldEqual, "0 minutes")

		_, err = format.CompactDuration(-time.Second)
		So(errors.Is(err, format.ErrNegativeDuration), ShouldBeTrue)
	})
}
