package models

// RankingResult is the body returned by the KovaaK's
// player-progress-rank-benchmark endpoint.
type RankingResult struct {
	BenchmarkProgress float64                     `json:"benchmark_progress" yaml:"benchmark_progress"`
	OverallRank       int                         `json:"overall_rank" yaml:"overall_rank"`
	Categories        map[string]CategoryProgress `json:"categories" yaml:"categories"`
	Ranks             []RankDef                   `json:"ranks" yaml:"ranks"`
}

// CategoryProgress is the progress within one benchmark category.
type CategoryProgress struct {
	BenchmarkProgress float64                     `json:"benchmark_progress" yaml:"benchmark_progress"`
	CategoryRank      int                         `json:"category_rank" yaml:"category_rank"`
	RankMaxes         []float64                   `json:"rank_maxes" yaml:"rank_maxes"`
	Scenarios         map[string]ScenarioProgress `json:"scenarios" yaml:"scenarios"`
}

// ScenarioProgress is a user's standing on a single scenario.
type ScenarioProgress struct {
	Score           float64   `json:"score" yaml:"score"`
	LeaderboardRank int       `json:"leaderboard_rank" yaml:"leaderboard_rank"`
	ScenarioRank    int       `json:"scenario_rank" yaml:"scenario_rank"`
	RankMaxes       []float64 `json:"rank_maxes" yaml:"rank_maxes"`
}

// RankDef is a rank tier. All fields are display strings passed through as-is.
type RankDef struct {
	Icon            string `json:"icon" yaml:"icon"`
	Name            string `json:"name" yaml:"name"`
	Color           string `json:"color" yaml:"color"`
	Frame           string `json:"frame" yaml:"frame"`
	Description     string `json:"description" yaml:"description"`
	PlayercardLarge string `json:"playercard_large" yaml:"playercard_large"`
	PlayercardSmall string `json:"playercard_small" yaml:"playercard_small"`
}

// EmptyRankingResult returns the canonical "no data" result: zero progress,
// zero rank, no categories and no ranks.
func EmptyRankingResult() RankingResult {
	return RankingResult{
		Categories: map[string]CategoryProgress{},
		Ranks:      []RankDef{},
	}
}

// Normalize replaces a nil categories map or ranks slice with empty values so
// the result always serializes with its full shape.
func (r RankingResult) Normalize() RankingResult {
	if r.Categories == nil {
		r.Categories = map[string]CategoryProgress{}
	}
	if r.Ranks == nil {
		r.Ranks = []RankDef{}
	}
	return r
}
