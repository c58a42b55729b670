// Package simulate drives synthetic recommendation traffic against a
// running server and reports the engagement metrics it produced.
package simulate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/okian/voyago/internal/domain/model"
	"github.com/okian/voyago/pkg/logger"
)

// Interaction probabilities, roughly matching observed demo traffic.
const (
	clickProbability   = 0.6
	bookingProbability = 0.3
)

// queries is the pool of free-text searches the simulator draws from. A mix
// of emotional phrases, direct tags and noise that matches nothing.
var queries = []string{
	"feeling adventurous",
	"need some me time",
	"stressed out, want to relax",
	"romantic getaway",
	"curious about heritage and temples",
	"cheap beach trip",
	"luxury resort with spa",
	"quarterly planning offsite",
	"",
}

// Config controls one simulation run.
type Config struct {
	BaseURL  string
	Sessions int
	Workers  int
	Timeout  time.Duration
	Seed     int64
}

// Stats aggregates outcomes across workers.
type Stats struct {
	Sessions  atomic.Int64
	Clicks    atomic.Int64
	Bookings  atomic.Int64
	Failures  atomic.Int64
	StartedAt time.Time
}

// Run executes the simulation and prints a final report.
func Run(ctx context.Context, cfg *Config) error {
	log := logger.Get().Named("simulate")
	client := &http.Client{Timeout: cfg.Timeout}

	users, err := fetchUserIDs(ctx, client, cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("fetch users: %w", err)
	}
	if len(users) == 0 {
		return fmt.Errorf("server returned no users")
	}
	log.Info(ctx, "starting simulation",
		logger.Int("sessions", cfg.Sessions),
		logger.Int("workers", cfg.Workers),
		logger.Int("users", len(users)),
	)

	stats := &Stats{StartedAt: time.Now()}
	sessions := make(chan int64)

	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed + int64(worker))) //nolint:gosec // reproducible traffic, not crypto
			for range sessions {
				if err := runSession(ctx, client, cfg.BaseURL, users, rng, stats); err != nil {
					stats.Failures.Add(1)
					log.Debug(ctx, "session failed", logger.Error(err))
				}
			}
		}(w)
	}

	for i := int64(0); i < int64(cfg.Sessions); i++ {
		select {
		case <-ctx.Done():
			close(sessions)
			wg.Wait()
			return ctx.Err()
		case sessions <- i:
		}
	}
	close(sessions)
	wg.Wait()

	return report(ctx, client, cfg.BaseURL, stats)
}

// runSession requests recommendations for one random user and follows up
// with probabilistic click and booking events on the returned items.
func runSession(ctx context.Context, client *http.Client, baseURL string, users []string, rng *rand.Rand, stats *Stats) error {
	sessionID := uuid.NewString()
	userID := users[rng.Intn(len(users))]
	query := queries[rng.Intn(len(queries))]

	var recs struct {
		Flights  []model.ScoredItem `json:"flights"`
		Hotels   []model.ScoredItem `json:"hotels"`
		Packages []model.ScoredItem `json:"packages"`
	}
	err := postJSON(ctx, client, baseURL+"/recommendations", map[string]string{
		"user_id":    userID,
		"query":      query,
		"session_id": sessionID,
	}, &recs)
	if err != nil {
		return err
	}
	stats.Sessions.Add(1)

	var shown []model.ScoredItem
	shown = append(shown, recs.Flights...)
	shown = append(shown, recs.Hotels...)
	shown = append(shown, recs.Packages...)
	if len(shown) == 0 || rng.Float64() >= clickProbability {
		return nil
	}

	item := shown[rng.Intn(len(shown))]
	if err := track(ctx, client, baseURL, sessionID, userID, model.EventClick, item.ID); err != nil {
		return err
	}
	stats.Clicks.Add(1)

	if rng.Float64() < bookingProbability {
		if err := track(ctx, client, baseURL, sessionID, userID, model.EventBooking, item.ID); err != nil {
			return err
		}
		stats.Bookings.Add(1)
	}
	return nil
}

func track(ctx context.Context, client *http.Client, baseURL, sessionID, userID string, kind model.EventKind, itemID string) error {
	return postJSON(ctx, client, baseURL+"/track", map[string]string{
		"session_id": sessionID,
		"user_id":    userID,
		"event_type": string(kind),
		"item_id":    itemID,
	}, nil)
}

func fetchUserIDs(ctx context.Context, client *http.Client, baseURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/users", nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET /users: %s", resp.Status)
	}
	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, err
	}
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("POST %s: %s", url, resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// report fetches the server-side analytics snapshot and logs both views so
// drift between simulator counts and server counters is easy to spot.
func report(ctx context.Context, client *http.Client, baseURL string, stats *Stats) error {
	log := logger.Get().Named("simulate")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/analytics", nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	var snap model.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return err
	}

	log.Info(ctx, "simulation finished",
		logger.Int("sessions", int(stats.Sessions.Load())),
		logger.Int("clicksSent", int(stats.Clicks.Load())),
		logger.Int("bookingsSent", int(stats.Bookings.Load())),
		logger.Int("failures", int(stats.Failures.Load())),
		logger.Float64("elapsedSec", time.Since(stats.StartedAt).Seconds()),
	)
	log.Info(ctx, "server analytics",
		logger.Int("impressions", snap.Impressions),
		logger.Int("clicks", snap.Clicks),
		logger.Int("bookings", snap.Bookings),
		logger.Float64("ctr", snap.CTR),
		logger.Float64("conversion", snap.Conversion),
	)
	return nil
}
