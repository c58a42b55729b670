// Package scoring computes per-item relevance scores for a user profile.
package scoring

import (
	"fmt"
	"math"

	"github.com/okian/voyago/internal/domain/model"
)

// Default scoring configuration constants.
const (
	defaultPreferenceWeight = 2.0
	defaultIntentWeight     = 1.5
	defaultCollabWeight     = 1.0
	defaultTrendingBoost    = 1.0
	defaultBudgetFit        = 2.0
	defaultBudgetPartial    = 1.0
	defaultBudgetMinimal    = 0.5
	defaultLowPriceCeiling  = 10_000
	defaultMidPriceCeiling  = 30_000
	highRatingThreshold     = 4.5
	maxReasons              = 3
)

// Result contains the computed score and its justifications for one item.
type Result struct {
	Score float64
	// Reasons holds at most three human-readable justifications, collected
	// in signal evaluation order.
	Reasons []string
}

// Scorer computes a relevance score for a catalog item.
type Scorer interface {
	// Score is pure: identical inputs always yield identical results.
	Score(item model.TravelItem, user model.User, intentTags []string, budgetOverride model.BudgetLevel) Result
}

// Option applies a configuration option to the WeightedScorer.
type Option func(*WeightedScorer)

// WithSignalWeights overrides the per-signal multipliers. Non-positive
// values keep the defaults.
func WithSignalWeights(preference, intent, collaborative, trending float64) Option {
	return func(s *WeightedScorer) {
		if preference > 0 {
			s.preferenceWeight = preference
		}
		if intent > 0 {
			s.intentWeight = intent
		}
		if collaborative > 0 {
			s.collabWeight = collaborative
		}
		if trending > 0 {
			s.trendingBoost = trending
		}
	}
}

// WithPriceBands overrides the budget band boundaries: items below lowCeiling
// fit a "low" budget, items in [lowCeiling, midCeiling) fit "mid", items at or
// above midCeiling fit "high".
func WithPriceBands(lowCeiling, midCeiling int) Option {
	return func(s *WeightedScorer) {
		if lowCeiling > 0 && midCeiling > lowCeiling {
			s.lowPriceCeiling = lowCeiling
			s.midPriceCeiling = midCeiling
		}
	}
}

// WeightedScorer implements Scorer as a sum of six additive signals:
// preference match, query intent match, budget fit, rating, collaborative
// (history overlap) and trending, plus a popularity fallback for cold-start
// users. The final score is floored at zero.
type WeightedScorer struct {
	preferenceWeight float64
	intentWeight     float64
	collabWeight     float64
	trendingBoost    float64

	budgetFit     float64
	budgetPartial float64
	budgetMinimal float64

	lowPriceCeiling int
	midPriceCeiling int
}

// NewWeightedScorer creates a scorer with configuration options.
func NewWeightedScorer(opts ...Option) *WeightedScorer {
	s := &WeightedScorer{
		preferenceWeight: defaultPreferenceWeight,
		intentWeight:     defaultIntentWeight,
		collabWeight:     defaultCollabWeight,
		trendingBoost:    defaultTrendingBoost,
		budgetFit:        defaultBudgetFit,
		budgetPartial:    defaultBudgetPartial,
		budgetMinimal:    defaultBudgetMinimal,
		lowPriceCeiling:  defaultLowPriceCeiling,
		midPriceCeiling:  defaultMidPriceCeiling,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score evaluates the signals in a fixed order; the order decides which
// reasons survive the three-entry cap.
func (s *WeightedScorer) Score(item model.TravelItem, user model.User, intentTags []string, budgetOverride model.BudgetLevel) Result {
	var score float64
	var reasons []string

	// 1. Preference match against the stored profile tags. The reason names
	// the first matched preference in the user's own ordering.
	prefMatches := matchingTags(item.Tags, user.Preferences.PreferredTags)
	if len(prefMatches) > 0 {
		score += float64(len(prefMatches)) * s.preferenceWeight
		named := matchingTags(user.Preferences.PreferredTags, item.Tags)
		reasons = append(reasons, fmt.Sprintf("Matches your %s preference", named[0]))
	}

	// 2. Intent boost from the query.
	intentMatches := matchingTags(item.Tags, intentTags)
	if len(intentMatches) > 0 {
		score += float64(len(intentMatches)) * s.intentWeight
		reasons = append(reasons, "Matches your search intent")
	}

	// 3. Budget fit. The request override wins over the stored level.
	budget := user.Preferences.BudgetLevel
	if budgetOverride != "" {
		budget = budgetOverride
	}
	switch {
	case budget == model.BudgetLow && item.Price < s.lowPriceCeiling:
		score += s.budgetFit
		reasons = append(reasons, "Great value within budget")
	case budget == model.BudgetMid && item.Price >= s.lowPriceCeiling && item.Price < s.midPriceCeiling:
		score += s.budgetFit
		reasons = append(reasons, "Perfect for your budget")
	case budget == model.BudgetHigh && item.Price >= s.midPriceCeiling:
		score += s.budgetPartial
	case budget == model.BudgetHigh:
		// High-budget users can afford anything; cheap items still get a nudge.
		score += s.budgetMinimal
	}

	// 4. Rating, rescaled from [3,5] to [0,2]. Goes negative below 3.
	score += (item.Rating - 3) / 2 * 2
	if item.Rating >= highRatingThreshold {
		reasons = append(reasons, "Highly rated by travelers")
	}

	// 5. Collaborative signal from history tag overlap.
	var historyTags []string
	for _, h := range user.History {
		historyTags = append(historyTags, h.Tags...)
	}
	if n := len(matchingTags(item.Tags, historyTags)); n > 0 {
		score += float64(n) * s.collabWeight
		reasons = append(reasons, "Similar to your past trips")
	}

	// 6. Trending boost.
	if item.Trending {
		score += s.trendingBoost
		reasons = append(reasons, "Currently trending")
	}

	// 7. Cold-start fallback: lean on popularity when the profile is empty.
	// Contributes score only, never a reason.
	if user.ColdStart() {
		score += item.Rating
		if item.Trending {
			score += 1
		}
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return Result{Score: math.Max(0, score), Reasons: reasons}
}

// matchingTags returns the item tags present in wanted, in item tag order.
func matchingTags(itemTags, wanted []string) []string {
	if len(itemTags) == 0 || len(wanted) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(wanted))
	for _, t := range wanted {
		set[t] = struct{}{}
	}
	var out []string
	for _, t := range itemTags {
		if _, ok := set[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
