// Package intent maps free-text queries to catalog tags.
package intent

import "strings"

// mapping associates one trigger phrase with the tags it implies. The table
// is a slice rather than a map so scan order stays deterministic; order
// decides which tags are collected first and therefore which scoring reasons
// surface when more than three signals fire.
type mapping struct {
	phrase string
	tags   []string
}

// emotionTable maps emotional or situational phrases to catalog tags.
// Grouped roughly by mood; a query may trigger any number of rows.
var emotionTable = []mapping{
	// Social/group feelings
	{"sad", []string{"family", "resort", "cultural"}},
	{"lonely", []string{"family", "resort", "city"}},
	{"isolated", []string{"family", "resort", "city"}},
	{"need friends", []string{"family", "resort", "city"}},

	// Solo/me-time feelings
	{"me time", []string{"spa", "relax", "nature", "beach"}},
	{"alone time", []string{"spa", "relax", "nature", "beach"}},
	{"solo", []string{"adventure", "nature", "heritage", "city"}},
	{"peace", []string{"spa", "relax", "nature", "beach"}},
	{"quiet", []string{"spa", "relax", "nature"}},

	// Relaxation feelings
	{"chill", []string{"beach", "resort", "spa", "relax"}},
	{"relax", []string{"beach", "resort", "spa", "relax"}},
	{"tired", []string{"spa", "resort", "relax"}},
	{"stressed", []string{"spa", "beach", "relax", "nature"}},
	{"overwhelmed", []string{"spa", "beach", "relax", "nature"}},

	// Adventure/energy feelings
	{"adventurous", []string{"adventure", "nature", "mountains"}},
	{"excited", []string{"adventure", "city", "cultural"}},
	{"energetic", []string{"adventure", "city", "shopping"}},
	{"bored", []string{"adventure", "cultural", "city"}},
	{"restless", []string{"adventure", "nature", "city"}},

	// Romantic feelings
	{"romantic", []string{"luxury", "resort", "beach"}},
	{"love", []string{"luxury", "resort", "beach"}},
	{"honeymoon", []string{"luxury", "resort", "beach"}},

	// Cultural/learning feelings
	{"curious", []string{"cultural", "heritage", "city"}},
	{"learn", []string{"cultural", "heritage", "city"}},
	{"explore", []string{"cultural", "adventure", "city"}},
	{"discover", []string{"cultural", "heritage", "nature"}},
}

// vocabulary lists domain tags matched verbatim as substrings.
var vocabulary = []string{
	"beach", "city", "business", "leisure", "family", "luxury", "budget",
	"resort", "hotel", "flight", "package", "tropical", "cultural", "heritage",
	"spa", "adventure", "relax", "downtown", "convenient", "nature", "temple",
	"backwaters", "mountains", "shopping", "food", "asia", "europe", "domestic",
	"international", "economy", "premium", "business-class",
}

// Option applies a configuration option to the Extractor.
type Option func(*Extractor)

// WithEmotionTable replaces the phrase-to-tags table. Order is preserved.
func WithEmotionTable(table map[string][]string, order []string) Option {
	return func(e *Extractor) {
		if len(order) == 0 {
			return
		}
		rows := make([]mapping, 0, len(order))
		for _, phrase := range order {
			if tags, ok := table[phrase]; ok && len(tags) > 0 {
				rows = append(rows, mapping{phrase: strings.ToLower(phrase), tags: tags})
			}
		}
		e.table = rows
	}
}

// WithVocabulary replaces the direct-tag vocabulary.
func WithVocabulary(tags []string) Option {
	return func(e *Extractor) {
		if len(tags) > 0 {
			e.vocab = tags
		}
	}
}

// Extractor scans queries for intent phrases and direct tag mentions.
// The zero-configured extractor uses the built-in tables.
type Extractor struct {
	table []mapping
	vocab []string
}

// NewExtractor creates an Extractor with configuration options.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		table: emotionTable,
		vocab: vocabulary,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the deduplicated tags implied by query, in first-seen
// order. Matching is case-insensitive substring containment; phrase and
// vocabulary rows are checked independently, so overlapping triggers (e.g.
// "relax" is both) simply collapse via the dedup set. An empty or
// whitespace-only query yields an empty result. Pure, never fails.
func (e *Extractor) Extract(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	for _, row := range e.table {
		if strings.Contains(q, row.phrase) {
			for _, tag := range row.tags {
				add(tag)
			}
		}
	}
	for _, tag := range e.vocab {
		if strings.Contains(q, tag) {
			add(tag)
		}
	}
	return out
}
