package tracking_test

import (
	"context"
	"sync"
	"testing"
	"time"

	tracking "github.com/okian/voyago/internal/adapters/tracking"
	"github.com/okian/voyago/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestAccumulator_Record(t *testing.T) {
	Convey("Given a fresh accumulator", t, func() {
		ctx := context.Background()
		acc := tracking.NewAccumulator()

		Convey("When recording impressions for a served result", func() {
			acc.RecordImpressions(ctx, "s1", "u1", []string{"f1", "h1", "p1"})
			snap := acc.Snapshot(ctx)

			Convey("Then the counter and log grow together", func() {
				So(snap.Impressions, ShouldEqual, 3)
				So(snap.Events, ShouldHaveLength, 3)
				So(snap.Events[0].Kind, ShouldEqual, model.EventImpression)
			})

			Convey("And the batch shares one timestamp and session", func() {
				So(snap.Events[1].TS.Equal(snap.Events[0].TS), ShouldBeTrue)
				So(snap.Events[2].TS.Equal(snap.Events[0].TS), ShouldBeTrue)
				So(snap.Events[2].SessionID, ShouldEqual, "s1")
			})
		})

		Convey("When recording a booking after two impressions and one click", func() {
			acc.RecordImpressions(ctx, "s1", "u1", []string{"f1", "h1"})
			acc.Record(ctx, "s1", "u1", model.EventClick, "f1")
			snap := acc.Record(ctx, "s1", "u1", model.EventBooking, "f1")

			Convey("Then only the booking counter moves", func() {
				So(snap.Bookings, ShouldEqual, 1)
				So(snap.Clicks, ShouldEqual, 1)
				So(snap.Impressions, ShouldEqual, 2)
			})

			Convey("And the rates derive from current counts", func() {
				So(snap.CTR, ShouldAlmostEqual, 50.0, 1e-9)
				So(snap.Conversion, ShouldAlmostEqual, 100.0, 1e-9)
			})
		})

		Convey("When an externally reported impression arrives via Record", func() {
			snap := acc.Record(ctx, "s1", "u1", model.EventImpression, "f1")

			Convey("Then it is logged without moving the impression counter", func() {
				So(snap.Events, ShouldHaveLength, 1)
				So(snap.Impressions, ShouldEqual, 0)
			})
		})

		Convey("When nothing has been recorded", func() {
			snap := acc.Snapshot(ctx)

			Convey("Then rates are zero, not NaN", func() {
				So(snap.CTR, ShouldEqual, 0)
				So(snap.Conversion, ShouldEqual, 0)
				So(snap.Events, ShouldBeEmpty)
			})
		})

		Convey("When resetting after activity", func() {
			acc.RecordImpressions(ctx, "s1", "u1", []string{"f1"})
			acc.Record(ctx, "s1", "u1", model.EventClick, "f1")
			acc.Reset(ctx)
			snap := acc.Snapshot(ctx)

			Convey("Then everything returns to the zero state", func() {
				So(snap.Impressions, ShouldEqual, 0)
				So(snap.Clicks, ShouldEqual, 0)
				So(snap.Bookings, ShouldEqual, 0)
				So(snap.CTR, ShouldEqual, 0)
				So(snap.Conversion, ShouldEqual, 0)
				So(snap.Events, ShouldBeEmpty)
			})
		})
	})
}

func TestAccumulator_RecentWindow(t *testing.T) {
	Convey("Given an accumulator with a small window", t, func() {
		ctx := context.Background()
		acc := tracking.NewAccumulator(tracking.WithRecentWindow(2))

		Convey("When more events than the window arrive", func() {
			acc.Record(ctx, "s1", "u1", model.EventClick, "a")
			acc.Record(ctx, "s1", "u1", model.EventClick, "b")
			snap := acc.Record(ctx, "s1", "u1", model.EventClick, "c")

			Convey("Then the snapshot holds only the trailing window", func() {
				So(snap.Events, ShouldHaveLength, 2)
				So(snap.Events[0].ItemID, ShouldEqual, "b")
				So(snap.Events[1].ItemID, ShouldEqual, "c")
			})

			Convey("And the counters still cover the full history", func() {
				So(snap.Clicks, ShouldEqual, 3)
			})
		})
	})
}

func TestAccumulator_MonotonicTimestamps(t *testing.T) {
	Convey("Given a clock that steps backwards", t, func() {
		ctx := context.Background()
		times := []time.Time{
			time.Unix(100, 0),
			time.Unix(90, 0), // regression
			time.Unix(110, 0),
		}
		i := 0
		acc := tracking.NewAccumulator(tracking.WithClock(func() time.Time {
			ts := times[i%len(times)]
			i++
			return ts
		}))

		Convey("When recording across the regression", func() {
			acc.Record(ctx, "s1", "u1", model.EventClick, "a")
			acc.Record(ctx, "s1", "u1", model.EventClick, "b")
			snap := acc.Record(ctx, "s1", "u1", model.EventClick, "c")

			Convey("Then logged timestamps never decrease", func() {
				So(snap.Events[1].TS.Before(snap.Events[0].TS), ShouldBeFalse)
				So(snap.Events[2].TS.Before(snap.Events[1].TS), ShouldBeFalse)
			})
		})
	})
}

func TestAccumulator_ConcurrentRecord(t *testing.T) {
	Convey("Given concurrent writers", t, func() {
		ctx := context.Background()
		acc := tracking.NewAccumulator()

		const writers = 8
		const perWriter = 100

		var wg sync.WaitGroup
		for w := 0; w < writers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < perWriter; i++ {
					acc.Record(ctx, "s", "u", model.EventClick, "x")
				}
			}()
		}
		wg.Wait()

		Convey("Then no update is lost", func() {
			So(acc.Snapshot(ctx).Clicks, ShouldEqual, writers*perWriter)
		})
	})
}
