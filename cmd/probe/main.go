// Command probe runs a single acquisition pass against the configured
// upstreams and reports what came back: which source won, how many records it
// produced, and a per-region breakdown. Useful for checking relay health from
// a new network location before deploying camerad there.
//
// Usage:
//
//	go run ./cmd/probe            # human-readable summary
//	go run ./cmd/probe -json      # full record set as JSON
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/joho/godotenv"

	"github.com/lukeponga-dev/Smart-cameras/internal/acquire"
	"github.com/lukeponga-dev/Smart-cameras/internal/config"
	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
	"github.com/lukeponga-dev/Smart-cameras/internal/observability"
	"github.com/lukeponga-dev/Smart-cameras/internal/relay"
)

func main() {
	asJSON := flag.Bool("json", false, "print the full record set as JSON")
	verbose := flag.Bool("v", false, "log each source attempt to stderr")
	flag.Parse()

	_ = godotenv.Load()

	if err := run(*asJSON, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "probe: %v\n", err)
		os.Exit(1)
	}
}

func run(asJSON, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}

	acquirer := acquire.New(
		cfg.AuthoritativeURL,
		cfg.LegacyFeedURL,
		relay.DefaultPool(),
		cfg.RequestTimeout,
		domain.NewSampler(),
		logger,
		observability.NewMetrics(),
	)

	start := time.Now()
	cams := acquirer.Acquire(context.Background())
	elapsed := time.Since(start)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cams)
	}

	fmt.Printf("acquired %d records in %s via %s\n", len(cams), elapsed.Round(time.Millisecond), cams[0].Source)

	byRegion := map[string]int{}
	offline := 0
	for _, cam := range cams {
		byRegion[cam.Region]++
		if cam.Status == domain.StatusOffline {
			offline++
		}
	}

	regions := make([]string, 0, len(byRegion))
	for r := range byRegion {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	for _, r := range regions {
		fmt.Printf("  %-24s %d\n", r, byRegion[r])
	}
	if offline > 0 {
		fmt.Printf("offline cameras: %d\n", offline)
	}
	if cams[0].Source == domain.SourceFallback {
		fmt.Println("warning: every upstream path failed; this is the static dataset")
	}
	return nil
}
