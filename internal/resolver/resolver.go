// Package resolver merges static benchmark metadata with a player's live
// ranking progress. Every failure degrades to a fully-shaped view with empty
// ranking data; nothing is returned as an error from Resolve.
package resolver

//go:generate go tool mockgen -source=resolver.go -destination=mock_ranking_client_test.go -package=resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/spboyer/benchrank/internal/kovaaks"
	"github.com/spboyer/benchrank/internal/models"
	"golang.org/x/sync/errgroup"
)

// UnknownLabel is the label used when the benchmark key is not in the table.
const UnknownLabel = "Unknown"

// ErrUnknownBenchmark is returned by ResolveAll for benchmark keys that are
// not in the metadata table.
var ErrUnknownBenchmark = errors.New("unknown benchmark")

// RankingClient fetches a player's progress for a numeric benchmark id.
type RankingClient interface {
	FetchProgress(ctx context.Context, benchmarkID int, userID string) (*models.RankingResult, error)
}

// MetadataStore is the read-only benchmark table.
type MetadataStore interface {
	Benchmark(key string) (models.BenchmarkSpec, bool)
}

// Outcome names the terminal state a resolution reached.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeUnknownBenchmark Outcome = "unknown_benchmark"
	OutcomeUnknownTab       Outcome = "unknown_tab"
	OutcomeUpstreamFailure  Outcome = "upstream_failure"
	OutcomeMalformedPayload Outcome = "malformed_payload"
)

// HasData reports whether the view carries live ranking data.
func (o Outcome) HasData() bool {
	return o == OutcomeOK
}

// Options configures a Resolver.
type Options struct {
	Logger *slog.Logger
}

// Resolver is stateless apart from its collaborators; concurrent calls are
// independent.
type Resolver struct {
	store  MetadataStore
	client RankingClient
	logger *slog.Logger
}

// New creates a Resolver.
func New(store MetadataStore, client RankingClient, opts Options) *Resolver {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Resolver{store: store, client: client, logger: opts.Logger}
}

// Resolve returns the merged view for benchmark/difficulty/userID.
func (r *Resolver) Resolve(ctx context.Context, benchmark, difficulty, userID string) models.ResolvedView {
	view, _ := r.ResolveWithOutcome(ctx, benchmark, difficulty, userID)
	return view
}

// ResolveWithOutcome is Resolve plus the reason the view does or does not
// carry ranking data.
func (r *Resolver) ResolveWithOutcome(ctx context.Context, benchmark, difficulty, userID string) (models.ResolvedView, Outcome) {
	view := models.ResolvedView{
		Benchmark:     benchmark,
		Difficulty:    difficulty,
		UserID:        userID,
		Label:         UnknownLabel,
		AvailableTabs: map[string]models.TabDef{},
		Colors:        models.EmptyColors(),
		RankingResult: models.EmptyRankingResult(),
	}

	selected, ok := r.store.Benchmark(benchmark)
	if !ok {
		return r.done(view, OutcomeUnknownBenchmark)
	}
	view.Label = selected.Label
	if selected.Tabs != nil {
		view.AvailableTabs = selected.Tabs
	}

	tab, ok := selected.Tabs[difficulty]
	// A tab without a positive id has no backing benchmark to query.
	if !ok || tab.ID <= 0 {
		return r.done(view, OutcomeUnknownTab)
	}
	view.Colors = tab.Colors.Normalize()

	result, err := r.client.FetchProgress(ctx, tab.ID, userID)
	if err != nil || result == nil {
		outcome := OutcomeUpstreamFailure
		attrs := []any{
			"benchmark", benchmark,
			"difficulty", difficulty,
			"userId", userID,
			"benchmarkId", tab.ID,
		}
		var fe *kovaaks.FetchError
		if errors.As(err, &fe) {
			if fe.Kind.Malformed() {
				outcome = OutcomeMalformedPayload
			}
			attrs = append(attrs, "kind", fe.Kind)
			if fe.StatusCode != 0 {
				attrs = append(attrs, "status", fe.StatusCode)
			}
		}
		if err == nil {
			err = errors.New("ranking client returned no result")
		}
		attrs = append(attrs, "error", err)
		r.logger.Warn("failed to fetch benchmark progress", attrs...)
		return r.done(view, outcome)
	}

	view.RankingResult = result.Normalize()
	return r.done(view, OutcomeOK)
}

func (r *Resolver) done(view models.ResolvedView, outcome Outcome) (models.ResolvedView, Outcome) {
	r.logger.Debug("resolved benchmark progress",
		"benchmark", view.Benchmark,
		"difficulty", view.Difficulty,
		"userId", view.UserID,
		"outcome", outcome)
	return view, outcome
}

// TabResolution pairs a resolved view with its outcome.
type TabResolution struct {
	View    models.ResolvedView
	Outcome Outcome
}

// maxParallelTabs bounds the upstream requests ResolveAll keeps in flight.
const maxParallelTabs = 4

// ResolveAll resolves every tab of benchmark concurrently and returns the
// results ordered by difficulty key. Each tab degrades on its own exactly like
// ResolveWithOutcome; an error is returned only for an unknown benchmark or when
// ctx ends before every tab has been attempted.
func (r *Resolver) ResolveAll(ctx context.Context, benchmark, userID string) ([]TabResolution, error) {
	selected, ok := r.store.Benchmark(benchmark)
	if !ok {
		return nil, ErrUnknownBenchmark
	}

	difficulties := make([]string, 0, len(selected.Tabs))
	for k := range selected.Tabs {
		difficulties = append(difficulties, k)
	}
	sort.Strings(difficulties)

	// Each slot is written by exactly one goroutine.
	results := make([]TabResolution, len(difficulties))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelTabs)
	for i, difficulty := range difficulties {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			view, outcome := r.ResolveWithOutcome(gctx, benchmark, difficulty, userID)
			results[i] = TabResolution{View: view, Outcome: outcome}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("resolving %s: %w", benchmark, err)
	}
	return results, nil
}
