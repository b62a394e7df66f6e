package models

// ResolvedView is the merged view-model for one benchmark/difficulty/user
// request. The RankingResult fields are flattened into the top level.
type ResolvedView struct {
	Benchmark     string            `json:"benchmark" yaml:"benchmark"`
	Difficulty    string            `json:"difficulty" yaml:"difficulty"`
	UserID        string            `json:"userId" yaml:"userId"`
	Label         string            `json:"label" yaml:"label"`
	AvailableTabs map[string]TabDef `json:"availableTabs" yaml:"availableTabs"`
	Colors        Colors            `json:"colors" yaml:"colors"`

	RankingResult `yaml:",inline"`
}
