// Package acquire implements the multi-source acquisition orchestrator: the
// authoritative feed first, then the relay pool in ranked order against the
// legacy feed, then the static fallback dataset.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lukeponga-dev/Smart-cameras/internal/domain"
	"github.com/lukeponga-dev/Smart-cameras/internal/feed"
	"github.com/lukeponga-dev/Smart-cameras/internal/observability"
	"github.com/lukeponga-dev/Smart-cameras/internal/relay"
)

// Attempt outcome labels for metrics.
const (
	outcomeSuccess      = "success"
	outcomeNetworkError = "network_error"
	outcomeBadStatus    = "bad_status"
	outcomeBadPayload   = "bad_payload"
	outcomeZeroRecords  = "zero_records"
)

const sourceFallbackLabel = "fallback"

// Acquirer coordinates one acquisition pass across all sources. Calls are
// independent: no state is shared between passes and a concurrent call runs
// fully on its own.
type Acquirer struct {
	client           *http.Client
	authoritativeURL string
	legacyURL        string
	relays           []relay.Relay
	timeout          time.Duration
	sampler          domain.Sampler
	logger           *slog.Logger
	metrics          *observability.Metrics
}

// New creates an Acquirer. The relay slice is the ranked preference list and
// is walked in the given order; timeout bounds each individual request.
func New(authoritativeURL, legacyURL string, relays []relay.Relay, timeout time.Duration,
	sampler domain.Sampler, logger *slog.Logger, metrics *observability.Metrics) *Acquirer {
	return &Acquirer{
		client:           &http.Client{},
		authoritativeURL: authoritativeURL,
		legacyURL:        legacyURL,
		relays:           relays,
		timeout:          timeout,
		sampler:          sampler,
		logger:           logger,
		metrics:          metrics,
	}
}

// Acquire runs one full acquisition pass and returns the canonical record
// set. It never returns an error and never returns an empty slice: when every
// source fails the static fallback dataset is served. Sources are tried
// strictly sequentially; the first one to yield at least one record wins.
func (a *Acquirer) Acquire(ctx context.Context) []domain.Camera {
	start := time.Now()
	defer func() {
		a.metrics.AcquireDuration.Observe(time.Since(start).Seconds())
	}()

	if cams := a.tryAuthoritative(ctx); len(cams) > 0 {
		a.metrics.RecordsEmitted.Set(float64(len(cams)))
		return cams
	}

	for _, r := range a.relays {
		if cams := a.tryRelay(ctx, r); len(cams) > 0 {
			a.metrics.RecordsEmitted.Set(float64(len(cams)))
			return cams
		}
	}

	a.logger.Warn("all sources failed, serving static fallback dataset")
	a.metrics.FallbackServed.Inc()
	a.metrics.SourceAttempts.WithLabelValues(sourceFallbackLabel, outcomeSuccess).Inc()
	cams := domain.FallbackCameras(a.sampler)
	a.metrics.RecordsEmitted.Set(float64(len(cams)))
	return cams
}

// tryAuthoritative queries the authoritative feature endpoint. Any failure
// (network, status, parse, zero records) returns nil so the caller proceeds
// to the relay pool.
func (a *Acquirer) tryAuthoritative(ctx context.Context) []domain.Camera {
	const source = "authoritative"

	body, err := a.fetch(ctx, a.authoritativeURL)
	if err != nil {
		a.failed(source, classifyFetchError(err), "authoritative request failed", err)
		return nil
	}

	cams, err := feed.ParseFeatureCollection(body, a.sampler)
	if err != nil {
		a.failed(source, outcomeBadPayload, "authoritative response unparseable", err)
		return nil
	}
	if len(cams) == 0 {
		a.logger.Info("authoritative feed returned zero records, proceeding to relay pool")
		a.metrics.SourceAttempts.WithLabelValues(source, outcomeZeroRecords).Inc()
		return nil
	}

	a.logger.Info("acquired records from authoritative feed", "records", len(cams))
	a.metrics.SourceAttempts.WithLabelValues(source, outcomeSuccess).Inc()
	return cams
}

// tryRelay requests the legacy feed through one relay. Every failure mode is
// absorbed and logged; the caller advances to the next relay on nil.
func (a *Acquirer) tryRelay(ctx context.Context, r relay.Relay) []domain.Camera {
	body, err := a.fetch(ctx, r.BuildURL(a.legacyURL))
	if err != nil {
		a.failed(r.Name, classifyFetchError(err), "relay request failed", err)
		return nil
	}

	payload, err := r.Unwrap(body)
	if err != nil {
		a.failed(r.Name, outcomeBadPayload, "relay envelope unusable", err)
		return nil
	}
	if !feed.IsUsablePayload(payload) {
		a.logger.Warn("relay returned an empty or HTML error payload, advancing", "relay", r.Name)
		a.metrics.SourceAttempts.WithLabelValues(r.Name, outcomeBadPayload).Inc()
		return nil
	}

	cams := feed.ParseLegacy([]byte(payload), a.sampler)
	if len(cams) == 0 {
		a.logger.Warn("relay payload yielded zero records, advancing", "relay", r.Name)
		a.metrics.SourceAttempts.WithLabelValues(r.Name, outcomeZeroRecords).Inc()
		return nil
	}

	a.logger.Info("acquired records through relay", "relay", r.Name, "records", len(cams))
	a.metrics.SourceAttempts.WithLabelValues(r.Name, outcomeSuccess).Inc()
	return cams
}

// errBadStatus distinguishes non-OK responses from transport failures.
type errBadStatus struct {
	status int
}

func (e errBadStatus) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

// fetch issues one bounded-time GET. The per-request context cancels the
// underlying transport when the timeout fires, so a stalled upstream cannot
// hold a connection past the bound.
func (a *Acquirer) fetch(ctx context.Context, url string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/xml, */*")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errBadStatus{status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return body, nil
}

func classifyFetchError(err error) string {
	var bad errBadStatus
	if errors.As(err, &bad) {
		return outcomeBadStatus
	}
	return outcomeNetworkError
}

func (a *Acquirer) failed(source, outcome, msg string, err error) {
	a.logger.Warn(msg, "source", source, "outcome", outcome, "error", err)
	a.metrics.SourceAttempts.WithLabelValues(source, outcome).Inc()
}
