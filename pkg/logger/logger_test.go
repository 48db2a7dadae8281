package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
)

func TestLoggerInit(t *testing.T) {
	err := Init()
	if err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
}

func TestLoggerOutput(t *testing.T) {
	convey.Convey("Given a logger writing JSON to a buffer", t, func() {
		var buf bytes.Buffer
		convey.So(InitWithWriter(&buf, FormatJSON), convey.ShouldBeNil)
		ctx := context.Background()

		convey.Convey("When logging with fields", func() {
			Get().Info(ctx, "formatted", String("op", "clock"), Int("seconds", 65), Duration("took", time.Millisecond))

			convey.Convey("Then the fields and the caller are encoded", func() {
				out := buf.String()
				convey.So(out, convey.ShouldContainSubstring, `"msg":"formatted"`)
				convey.So(out, convey.ShouldContainSubstring, `"op":"clock"`)
				convey.So(out, convey.ShouldContainSubstring, `"seconds":65`)
				convey.So(out, convey.ShouldContainSubstring, `logger_test.go:`)
			})
		})

		convey.Convey("When logging through a named logger with bound fields", func() {
			Named("api").With(String("request_id", "r-1")).Error(ctx, "failed", Error(errors.New("boom")))

			convey.Convey("Then the name and bound fields are included", func() {
				out := buf.String()
				convey.So(out, convey.ShouldContainSubstring, `"logger":"api"`)
				convey.So(out, convey.ShouldContainSubstring, `"request_id":"r-1"`)
				convey.So(out, convey.ShouldContainSubstring, `"error":"boom"`)
			})
		})

		convey.Convey("When the level is raised above debug", func() {
			convey.So(SetLevelString("warn"), convey.ShouldBeNil)
			Get().Info(ctx, "hidden")
			Get().Debug(ctx, "hidden too")

			convey.Convey("Then nothing below warn is written", func() {
				convey.So(buf.Len(), convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the level is unknown", func() {
			convey.So(SetLevelString("verbose"), convey.ShouldNotBeNil)
		})
	})

	convey.Convey("Given an unknown output encoding", t, func() {
		var buf bytes.Buffer
		convey.So(InitWithWriter(&buf, "xml"), convey.ShouldNotBeNil)
	})
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "discarded")
	l.Named("x").Info(context.Background(), "discarded")
}
