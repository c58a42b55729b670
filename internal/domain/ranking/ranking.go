// Package ranking orders a catalog by relevance for one request.
package ranking

import (
	"sort"

	"github.com/okian/voyago/internal/domain/model"
	"github.com/okian/voyago/internal/domain/scoring"
)

// DefaultMaxResults caps a ranked catalog slice.
const DefaultMaxResults = 3

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithMaxResults sets the truncation length for ranked results.
func WithMaxResults(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.maxResults = n
		}
	}
}

// Ranker applies a Scorer to every catalog item and returns the top entries.
// Ranking is request-scoped; nothing is stored between calls.
type Ranker struct {
	scorer     scoring.Scorer
	maxResults int
}

// NewRanker creates a Ranker around the given scorer.
func NewRanker(scorer scoring.Scorer, opts ...Option) *Ranker {
	r := &Ranker{
		scorer:     scorer,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rank scores every item independently (no cross-item normalization), sorts
// by descending score and truncates. The sort is stable: equal scores keep
// their original catalog order.
func (r *Ranker) Rank(catalog []model.TravelItem, user model.User, intentTags []string, budgetOverride model.BudgetLevel) []model.ScoredItem {
	scored := make([]model.ScoredItem, len(catalog))
	for i, item := range catalog {
		res := r.scorer.Score(item, user, intentTags, budgetOverride)
		scored[i] = model.ScoredItem{
			TravelItem: item,
			Score:      res.Score,
			Reasons:    res.Reasons,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.maxResults {
		scored = scored[:r.maxResults]
	}
	return scored
}
