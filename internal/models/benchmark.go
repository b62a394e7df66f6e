package models

import "maps"

// AllBenchmarks maps a benchmark key (e.g. "voltaic-s5") to its static metadata.
type AllBenchmarks map[string]BenchmarkSpec

// BenchmarkSpec is the bundled metadata for one benchmark.
type BenchmarkSpec struct {
	Label string            `json:"label" yaml:"label"`
	Tabs  map[string]TabDef `json:"tabs" yaml:"tabs"`
}

// TabDef describes one difficulty tab of a benchmark. ID is the numeric
// benchmark identifier used by the ranking service; zero means the tab has no
// backing benchmark.
type TabDef struct {
	ID     int    `json:"id" yaml:"id"`
	Colors Colors `json:"colors" yaml:"colors"`
}

// Colors is the color theme for a tab, keyed by category, sub-category and rank name.
type Colors struct {
	Categories    map[string]string `json:"categories" yaml:"categories"`
	SubCategories map[string]string `json:"subCategories" yaml:"subCategories"`
	Ranks         map[string]string `json:"ranks" yaml:"ranks"`
}

// EmptyColors returns a Colors value with every map allocated.
func EmptyColors() Colors {
	return Colors{
		Categories:    map[string]string{},
		SubCategories: map[string]string{},
		Ranks:         map[string]string{},
	}
}

// Normalize replaces nil maps with empty ones.
func (c Colors) Normalize() Colors {
	if c.Categories == nil {
		c.Categories = map[string]string{}
	}
	if c.SubCategories == nil {
		c.SubCategories = map[string]string{}
	}
	if c.Ranks == nil {
		c.Ranks = map[string]string{}
	}
	return c
}

// Clone returns a deep copy with nil maps normalized to empty ones.
func (c Colors) Clone() Colors {
	return Colors{
		Categories:    cloneOrEmpty(c.Categories),
		SubCategories: cloneOrEmpty(c.SubCategories),
		Ranks:         cloneOrEmpty(c.Ranks),
	}
}

// Clone returns a deep copy of the tab.
func (t TabDef) Clone() TabDef {
	return TabDef{ID: t.ID, Colors: t.Colors.Clone()}
}

// Clone returns a deep copy of the benchmark spec.
func (b BenchmarkSpec) Clone() BenchmarkSpec {
	return BenchmarkSpec{Label: b.Label, Tabs: CloneTabs(b.Tabs)}
}

// CloneTabs deep-copies a tab map. A nil input yields an empty map.
func CloneTabs(tabs map[string]TabDef) map[string]TabDef {
	out := make(map[string]TabDef, len(tabs))
	for k, t := range tabs {
		out[k] = t.Clone()
	}
	return out
}

func cloneOrEmpty(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return maps.Clone(m)
}
