// Package metadata holds the static benchmark table: labels, difficulty tabs
// with their ranking-service identifiers, and color themes. A Store is built
// once and never mutated; accessors return copies.
package metadata

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spboyer/benchrank/internal/models"
	"github.com/spboyer/benchrank/internal/validation"
)

//go:embed benchmarks.json
var embeddedBenchmarks []byte

// Format selects the document syntax passed to Parse.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// SchemaError reports every schema violation found in a metadata document.
type SchemaError struct {
	Source string
	Errors []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("metadata %s failed schema validation (%d error(s)): %s",
		e.Source, len(e.Errors), strings.Join(e.Errors, "; "))
}

// Store is an immutable lookup table from benchmark key to BenchmarkSpec.
type Store struct {
	specs models.AllBenchmarks
}

// Parse validates data against the benchmarks schema and builds a Store.
func Parse(data []byte, format Format) (*Store, error) {
	return parse(data, format, "document")
}

func parse(data []byte, format Format, source string) (*Store, error) {
	doc, err := validation.ParseDocument(data, format == FormatYAML)
	if err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", source, err)
	}
	if errs := validation.ValidateBenchmarks(doc); len(errs) > 0 {
		return nil, &SchemaError{Source: source, Errors: errs}
	}

	var specs models.AllBenchmarks
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &specs,
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata decoder: %w", err)
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding metadata %s: %w", source, err)
	}

	return newStore(specs), nil
}

// New builds a Store from an in-memory table. The table is deep-copied.
func New(specs models.AllBenchmarks) *Store {
	return newStore(specs)
}

func newStore(specs models.AllBenchmarks) *Store {
	s := &Store{specs: make(models.AllBenchmarks, len(specs))}
	for key, spec := range specs {
		s.specs[key] = spec.Clone()
	}
	return s
}

// LoadFile reads a metadata table from disk. Files ending in .yaml or .yml
// are parsed as YAML, everything else as JSON.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}
	return parse(data, formatFor(path), path)
}

func formatFor(path string) Format {
	if validation.IsYAMLPath(path) {
		return FormatYAML
	}
	return FormatJSON
}

var defaultStore = sync.OnceValues(func() (*Store, error) {
	return parse(embeddedBenchmarks, FormatJSON, "embedded benchmarks.json")
})

// Default returns the table bundled with the binary. It is parsed on first
// use and shared afterwards.
func Default() (*Store, error) {
	return defaultStore()
}

// Benchmark returns the spec for key. ok is false when the key is unknown.
func (s *Store) Benchmark(key string) (spec models.BenchmarkSpec, ok bool) {
	spec, ok = s.specs[key]
	if !ok {
		return models.BenchmarkSpec{}, false
	}
	return spec.Clone(), true
}

// Tab returns the tab for benchmark/difficulty. ok is false when either key
// is unknown.
func (s *Store) Tab(benchmark, difficulty string) (tab models.TabDef, ok bool) {
	spec, ok := s.specs[benchmark]
	if !ok {
		return models.TabDef{}, false
	}
	tab, ok = spec.Tabs[difficulty]
	if !ok {
		return models.TabDef{}, false
	}
	return tab.Clone(), true
}

// Keys returns all benchmark keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.specs))
	for k := range s.specs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Difficulties returns the tab keys of benchmark in sorted order, or nil when
// the benchmark is unknown.
func (s *Store) Difficulties(benchmark string) []string {
	spec, ok := s.specs[benchmark]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(spec.Tabs))
	for k := range spec.Tabs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of benchmarks in the table.
func (s *Store) Len() int {
	return len(s.specs)
}

// ErrUnsupportedSource is returned by Load for source URLs it cannot fetch.
var ErrUnsupportedSource = errors.New("unsupported metadata source")
