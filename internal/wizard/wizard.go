// Package wizard prompts for a benchmark, difficulty and player.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spboyer/benchrank/internal/models"
	"golang.org/x/term"
)

// ErrNoBenchmarks is returned when the catalog has nothing to pick from.
var ErrNoBenchmarks = errors.New("no benchmarks available")

// Catalog is the subset of the metadata store the wizard reads.
type Catalog interface {
	Keys() []string
	Benchmark(key string) (models.BenchmarkSpec, bool)
	Difficulties(key string) []string
}

// Selection holds the answers collected by the wizard.
type Selection struct {
	Benchmark  string
	Difficulty string
	UserID     string
}

// RunProgressWizard asks for a benchmark and player id, then for one of that
// benchmark's difficulties. initialUserID pre-populates the player field.
func RunProgressWizard(in io.Reader, out io.Writer, catalog Catalog, initialUserID string) (*Selection, error) {
	benchmarks := benchmarkOptions(catalog)
	if len(benchmarks) == 0 {
		return nil, ErrNoBenchmarks
	}

	sel := Selection{Benchmark: benchmarks[0].Value, UserID: initialUserID}
	accessible := !IsTerminal(in)

	first := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Benchmark").
				Options(benchmarks...).
				Value(&sel.Benchmark),
			huh.NewInput().
				Title("Player id").
				Description("Steam id of the player to look up").
				Placeholder("76561198000000000").
				Value(&sel.UserID).
				Validate(ValidateUserID),
		),
	).
		WithInput(in).
		WithOutput(out).
		WithAccessible(accessible)

	if err := first.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	difficulties := difficultyOptions(catalog, sel.Benchmark)
	if len(difficulties) == 0 {
		return nil, fmt.Errorf("benchmark %q has no difficulties", sel.Benchmark)
	}
	sel.Difficulty = difficulties[0].Value

	second := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Difficulty").
				Options(difficulties...).
				Value(&sel.Difficulty),
		),
	).
		WithInput(in).
		WithOutput(out).
		WithAccessible(accessible)

	if err := second.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	sel.UserID = strings.TrimSpace(sel.UserID)
	return &sel, nil
}

// ValidateUserID rejects blank ids and ids containing whitespace.
func ValidateUserID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errors.New("player id is required")
	}
	if strings.ContainsAny(s, " \t\r\n") {
		return errors.New("player id must not contain whitespace")
	}
	return nil
}

// benchmarkOptions lists benchmarks by key order, shown with their label.
func benchmarkOptions(catalog Catalog) []huh.Option[string] {
	keys := catalog.Keys()
	opts := make([]huh.Option[string], 0, len(keys))
	for _, key := range keys {
		spec, ok := catalog.Benchmark(key)
		if !ok {
			continue
		}
		display := key
		if spec.Label != "" && spec.Label != key {
			display = fmt.Sprintf("%s (%s)", spec.Label, key)
		}
		opts = append(opts, huh.NewOption(display, key))
	}
	return opts
}

func difficultyOptions(catalog Catalog, benchmark string) []huh.Option[string] {
	keys := catalog.Difficulties(benchmark)
	opts := make([]huh.Option[string], 0, len(keys))
	for _, key := range keys {
		opts = append(opts, huh.NewOption(key, key))
	}
	return opts
}

// IsTerminal reports whether in is an interactive terminal. Forms fall back
// to accessible mode for non-TTY input (e.g., tests, piped input).
func IsTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
