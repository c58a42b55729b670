package config_test

import (
	"testing"

	"github.com/okian/voyago/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.MaxResults, convey.ShouldEqual, 3)
			convey.So(cfg.RecentEventWindow, convey.ShouldEqual, 20)
		})

		convey.Convey("Then the scoring defaults match the engine", func() {
			convey.So(cfg.PreferenceWeight, convey.ShouldEqual, 2.0)
			convey.So(cfg.IntentWeight, convey.ShouldEqual, 1.5)
			convey.So(cfg.CollaborativeWeight, convey.ShouldEqual, 1.0)
			convey.So(cfg.TrendingBoost, convey.ShouldEqual, 1.0)
			convey.So(cfg.LowPriceCeiling, convey.ShouldEqual, 10_000)
			convey.So(cfg.MidPriceCeiling, convey.ShouldEqual, 30_000)
		})
	})
}
