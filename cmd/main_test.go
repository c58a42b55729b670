package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/okian/voyago/internal/adapters/http/api"
	app "github.com/okian/voyago/internal/app"
	"github.com/okian/voyago/internal/config"
	"github.com/okian/voyago/pkg/logger"
	"github.com/smartystreets/goconvey/convey"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			t.Setenv("VOYAGO_ADDR", ":8080")
			t.Setenv("VOYAGO_MAX_RESULTS", "2")
			t.Setenv("VOYAGO_LOG_LEVEL", "debug")

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxResults, convey.ShouldEqual, 2)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When wiring the service and routes as main does", func() {
			err := logger.Init()
			convey.So(err, convey.ShouldBeNil)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			svc := app.New(app.WithLogger(logger.Get()))
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			mux := http.NewServeMux()
			api.NewServer(svc, svc).Register(ctx, mux)

			convey.Convey("Then the health endpoint answers", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			})

			convey.Convey("Then the stats endpoint answers", func() {
				rec := httptest.NewRecorder()
				mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
				convey.So(rec.Code, convey.ShouldEqual, http.StatusOK)
			})
		})

		convey.Convey("When updating system metrics", func() {
			convey.Convey("Then the updater does not panic", func() {
				convey.So(updateSystemMetrics, convey.ShouldNotPanic)
			})
		})
	})
}
