package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/okian/courtfmt/internal/config"
	"github.com/okian/courtfmt/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When configuration comes from the environment", func() {
			_ = os.Setenv("COURTFMT_ADDR", ":8080")
			_ = os.Setenv("COURTFMT_TIMEZONE", "Europe/Berlin")
			_ = os.Setenv("COURTFMT_WORKER_COUNT", "4")
			defer func() {
				_ = os.Unsetenv("COURTFMT_ADDR")
				_ = os.Unsetenv("COURTFMT_TIMEZONE")
				_ = os.Unsetenv("COURTFMT_WORKER_COUNT")
			}()

			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldBeNil)
			convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
			convey.So(cfg.WorkerCount, convey.ShouldEqual, 4)

			convey.Convey("Then the handler renders in the configured zone", func() {
				h, err := newHandler(context.Background(), cfg, logger.Nop())
				convey.So(err, convey.ShouldBeNil)

				req := httptest.NewRequest(http.MethodGet, "/v1/format/date?ts=2024-01-15T10:30:00Z", nil)
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
				convey.So(rec.Body.String(), convey.ShouldContainSubstring, "Jan 15, 11:30 AM")
			})
		})

		convey.Convey("When the handler is wired with defaults", func() {
			h, err := newHandler(context.Background(), config.New(), logger.Nop())
			convey.So(err, convey.ShouldBeNil)

			convey.Convey("Then the docs and health routes are served", func() {
				for _, path := range []string{"/healthz", "/openapi.yaml", "/api-docs"} {
					req := httptest.NewRequest(http.MethodGet, path, nil)
					rec := httptest.NewRecorder()
					h.ServeHTTP(rec, req)
					convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
				}
			})
		})

		convey.Convey("When the time zone is unknown", func() {
			cfg := config.New()
			cfg.TimeZone = "Atlantis/Central"
			_, err := newHandler(context.Background(), cfg, logger.Nop())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When the context expires it returns", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.So(func() {
				startSystemMetricsUpdater(ctx)
			}, convey.ShouldNotPanic)
		})

		convey.Convey("When sampling once", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})
	})
}

func TestConfigErrors(t *testing.T) {
	convey.Convey("Given an empty listen address", t, func() {
		_ = os.Setenv("COURTFMT_ADDR", "")
		defer func() { _ = os.Unsetenv("COURTFMT_ADDR") }()

		convey.Convey("Then configuration loading fails", func() {
			cfg, err := config.Load(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(cfg, convey.ShouldBeNil)
		})
	})
}
