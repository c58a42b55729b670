package scoring_test

import (
	"testing"

	"github.com/okian/voyago/internal/domain/model"
	scoring "github.com/okian/voyago/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestWeightedScorer_Score(t *testing.T) {
	Convey("Given a scorer with default weights", t, func() {
		scorer := scoring.NewWeightedScorer()

		Convey("When scoring a trending item for a cold-start user", func() {
			user := model.User{
				ID: "u-cold",
				Preferences: model.Preferences{
					BudgetLevel:   model.BudgetMid,
					PreferredTags: nil,
				},
			}
			item := model.TravelItem{
				ID:       "i1",
				Tags:     []string{"beach"},
				Price:    20000,
				Rating:   4.8,
				Trending: true,
			}

			res := scorer.Score(item, user, nil, "")

			Convey("Then the score is cold-start bonus + budget fit + rating + trending", func() {
				// 4.8+1 (cold start) + 2 (mid budget fit) + 1.8 (rating) + 1 (trending)
				So(res.Score, ShouldAlmostEqual, 10.6, 1e-9)
			})

			Convey("And the reasons surface in evaluation order", func() {
				So(res.Reasons, ShouldResemble, []string{
					"Perfect for your budget",
					"Highly rated by travelers",
					"Currently trending",
				})
			})
		})

		Convey("When scoring an item matching stored preferences", func() {
			user := model.User{
				Preferences: model.Preferences{
					BudgetLevel:   model.BudgetLow,
					PreferredTags: []string{"spa", "beach"},
				},
			}
			item := model.TravelItem{
				Tags:   []string{"beach", "resort", "spa"},
				Price:  8000,
				Rating: 4.0,
			}

			res := scorer.Score(item, user, nil, "")

			Convey("Then each matched tag contributes twice its count", func() {
				// 2*2 (preferences) + 2 (low budget fit) + 1 (rating)
				So(res.Score, ShouldAlmostEqual, 7.0, 1e-9)
			})

			Convey("And the reason names the first matched preference", func() {
				So(res.Reasons[0], ShouldEqual, "Matches your spa preference")
			})
		})

		Convey("When intent tags overlap the item tags", func() {
			user := model.User{
				Preferences: model.Preferences{BudgetLevel: model.BudgetMid, PreferredTags: []string{"food"}},
			}
			item := model.TravelItem{
				Tags:   []string{"adventure", "mountains"},
				Price:  5000,
				Rating: 3.0,
			}

			res := scorer.Score(item, user, []string{"adventure", "mountains", "nature"}, "")

			Convey("Then each match adds 1.5", func() {
				So(res.Score, ShouldAlmostEqual, 3.0, 1e-9)
				So(res.Reasons, ShouldContain, "Matches your search intent")
			})
		})

		Convey("When a budget override is supplied", func() {
			user := model.User{
				Preferences: model.Preferences{BudgetLevel: model.BudgetLow, PreferredTags: []string{"city"}},
			}
			item := model.TravelItem{Tags: []string{"luxury"}, Price: 45000, Rating: 3.0}

			Convey("Then the override replaces the stored level", func() {
				// high budget, price >= 30000: partial fit, no reason
				res := scorer.Score(item, user, nil, model.BudgetHigh)
				So(res.Score, ShouldAlmostEqual, 1.0, 1e-9)
				So(res.Reasons, ShouldBeEmpty)
			})

			Convey("And a cheap item under a high budget gets the minimal nudge", func() {
				cheap := model.TravelItem{Tags: []string{"budget"}, Price: 4000, Rating: 3.0}
				res := scorer.Score(cheap, user, nil, model.BudgetHigh)
				So(res.Score, ShouldAlmostEqual, 0.5, 1e-9)
			})
		})

		Convey("When the rating is below 3", func() {
			user := model.User{
				Preferences: model.Preferences{BudgetLevel: model.BudgetMid, PreferredTags: []string{"city"}},
			}
			item := model.TravelItem{Tags: []string{"hotel"}, Price: 50000, Rating: 2.0}

			Convey("Then the negative rating component floors the score at zero", func() {
				res := scorer.Score(item, user, nil, "")
				So(res.Score, ShouldEqual, 0)
			})
		})

		Convey("When history tags overlap the item", func() {
			user := model.User{
				Preferences: model.Preferences{BudgetLevel: model.BudgetMid, PreferredTags: []string{"city"}},
				History: []model.HistoryEntry{
					{Type: "booking", Tags: []string{"beach", "resort"}, Price: 18000},
				},
			}
			item := model.TravelItem{Tags: []string{"beach", "resort", "spa"}, Price: 50000, Rating: 3.0}

			res := scorer.Score(item, user, nil, "")

			Convey("Then each overlap adds 1", func() {
				So(res.Score, ShouldAlmostEqual, 2.0, 1e-9)
				So(res.Reasons, ShouldContain, "Similar to your past trips")
			})
		})

		Convey("When more than three signals fire", func() {
			user := model.User{
				Preferences: model.Preferences{BudgetLevel: model.BudgetMid, PreferredTags: []string{"beach"}},
				History: []model.HistoryEntry{
					{Tags: []string{"resort"}},
				},
			}
			item := model.TravelItem{
				Tags:     []string{"beach", "resort"},
				Price:    15000,
				Rating:   4.9,
				Trending: true,
			}

			res := scorer.Score(item, user, []string{"beach"}, "")

			Convey("Then only the first three reasons survive", func() {
				So(res.Reasons, ShouldHaveLength, 3)
				So(res.Reasons, ShouldResemble, []string{
					"Matches your beach preference",
					"Matches your search intent",
					"Perfect for your budget",
				})
			})
		})

		Convey("When scoring the same inputs twice", func() {
			user := model.User{
				Preferences: model.Preferences{BudgetLevel: model.BudgetMid, PreferredTags: []string{"beach"}},
			}
			item := model.TravelItem{Tags: []string{"beach"}, Price: 12000, Rating: 4.6, Trending: true}

			first := scorer.Score(item, user, []string{"beach"}, "")
			second := scorer.Score(item, user, []string{"beach"}, "")

			Convey("Then the results are identical", func() {
				So(second, ShouldResemble, first)
			})
		})
	})

	Convey("Given a scorer with custom weights", t, func() {
		scorer := scoring.NewWeightedScorer(
			scoring.WithSignalWeights(4, 3, 2, 2),
			scoring.WithPriceBands(5000, 20000),
		)
		user := model.User{
			Preferences: model.Preferences{BudgetLevel: model.BudgetLow, PreferredTags: []string{"beach"}},
		}
		item := model.TravelItem{Tags: []string{"beach"}, Price: 4000, Rating: 3.0, Trending: true}

		Convey("When scoring with every custom signal active", func() {
			res := scorer.Score(item, user, []string{"beach"}, "")

			Convey("Then the overridden weights apply", func() {
				// 4 (preference) + 3 (intent) + 2 (low fit) + 0 (rating) + 2 (trending)
				So(res.Score, ShouldAlmostEqual, 11.0, 1e-9)
			})
		})
	})
}
