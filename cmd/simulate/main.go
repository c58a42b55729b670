package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/voyago/internal/simulate"
	"github.com/okian/voyago/pkg/logger"
)

// Default configuration constants.
const (
	defaultSessions   = 200
	defaultTimeout    = 10 * time.Second
	defaultRunTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		sessions = flag.Int("sessions", defaultSessions, "Number of browsing sessions to simulate")
		workers  = flag.Int("workers", runtime.NumCPU(), "Number of concurrent workers")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		seed     = flag.Int64("seed", time.Now().UnixNano(), "Random seed for reproducible runs")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &simulate.Config{
		BaseURL:  *baseURL,
		Sessions: *sessions,
		Workers:  *workers,
		Timeout:  *timeout,
		Seed:     *seed,
	}
	if err := simulate.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("simulation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
