package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManagerCreation(t *testing.T) {
	Convey("Given manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test_namespace"),
				WithSubsystem("test_subsystem"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with nil histogram buckets", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithHistogramBuckets(nil), WithPrometheusRegistry(registry))

			Convey("Then it should fall back to the defaults", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestMetricsRecording(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording recommendation flow metrics", func() {
			Convey("Then it should record served requests", func() {
				So(func() {
					RecordRecommendationRequest()
					RecordRecommendationRequest()
				}, ShouldNotPanic)
			})

			Convey("And it should record unknown user rejections", func() {
				So(func() {
					RecordUnknownUserRequest()
				}, ShouldNotPanic)
			})

			Convey("And it should record scored items and latency", func() {
				So(func() {
					RecordItemsScored(15)
					RecordScoringLatency(2.5)
					RecordIntentTags(3)
				}, ShouldNotPanic)
			})
		})

		Convey("When recording engagement metrics", func() {
			So(func() {
				RecordImpressions(9)
				RecordClick()
				RecordBooking()
				RecordAnalyticsReset()
			}, ShouldNotPanic)
		})

		Convey("When updating operational gauges", func() {
			So(func() {
				UpdateCatalogItems(15)
				UpdateSeededUsers(3)
				UpdateCatalogItems(0)
			}, ShouldNotPanic)
		})

		Convey("When recording HTTP metrics", func() {
			So(func() {
				RecordHTTPRequest("/recommendations", "POST", "200")
				RecordHTTPRequest("/analytics", "GET", "200")
				RecordHTTPRequestDuration("/recommendations", "POST", "200", 5.0)
			}, ShouldNotPanic)
		})

		Convey("When recording error metrics", func() {
			So(func() {
				RecordErrorByEndpoint("/recommendations", "POST", "not_found")
				RecordErrorByType("bad_request", "warning")
			}, ShouldNotPanic)
		})

		Convey("When recording system metrics", func() {
			So(func() {
				UpdateSystemMemoryUsage(1024 * 1024 * 100)
				UpdateSystemGoroutineCount(42)
				RecordSystemGCPauseTime(1.5)
			}, ShouldNotPanic)
		})
	})
}

func TestMetricsEdgeCases(t *testing.T) {
	Convey("Given edge values", t, func() {
		Convey("When using zero values", func() {
			So(func() {
				RecordItemsScored(0)
				RecordImpressions(0)
				RecordScoringLatency(0.0)
				RecordIntentTags(0)
				RecordHTTPRequestDuration("/test", "GET", "200", 0.0)
			}, ShouldNotPanic)
		})

		Convey("When using empty label values", func() {
			So(func() {
				RecordHTTPRequest("", "", "200")
				RecordErrorByEndpoint("", "", "")
				RecordErrorByType("", "")
			}, ShouldNotPanic)
		})

		Convey("When using special characters in labels", func() {
			So(func() {
				RecordHTTPRequest("/catalog/hotels?verbose=1", "GET", "200")
				RecordErrorByType("error.with.dots", "error")
			}, ShouldNotPanic)
		})
	})
}

func TestMetricsConcurrency(t *testing.T) {
	Convey("Given concurrent recorders", t, func() {
		done := make(chan bool, 10)

		for i := 0; i < 10; i++ {
			go func() {
				for j := 0; j < 100; j++ {
					RecordRecommendationRequest()
					RecordImpressions(3)
					RecordScoringLatency(float64(j))
					RecordHTTPRequest("/recommendations", "POST", "200")
				}
				done <- true
			}()
		}
		for i := 0; i < 10; i++ {
			<-done
		}

		Convey("Then concurrent access completes without panics", func() {
			So(true, ShouldBeTrue)
		})
	})
}

func TestRegistryExposure(t *testing.T) {
	Convey("Given the custom registry", t, func() {
		Convey("When gathering after recording", func() {
			RecordRecommendationRequest()
			families, err := GetRegistry().Gather()

			Convey("Then the business metrics are registered", func() {
				So(err, ShouldBeNil)
				names := make(map[string]bool, len(families))
				for _, f := range families {
					names[f.GetName()] = true
				}
				So(names["voyago_recs_recommendation_requests_total"], ShouldBeTrue)
				So(names["voyago_recs_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}
