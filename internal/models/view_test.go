package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestResolvedView_JSONIsFlat(t *testing.T) {
	view := ResolvedView{
		Benchmark:     "aim",
		Difficulty:    "intermediate",
		UserID:        "76561198000000000",
		Label:         "Aim Benchmark",
		AvailableTabs: map[string]TabDef{"intermediate": {ID: 42, Colors: EmptyColors()}},
		Colors:        EmptyColors(),
		RankingResult: RankingResult{
			BenchmarkProgress: 55,
			OverallRank:       1200,
			Categories:        map[string]CategoryProgress{},
			Ranks:             []RankDef{},
		},
	}

	data, err := json.Marshal(view)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	for _, key := range []string{
		"benchmark", "difficulty", "userId", "label", "availableTabs", "colors",
		"benchmark_progress", "overall_rank", "categories", "ranks",
	} {
		assert.Contains(t, got, key)
	}
	assert.NotContains(t, got, "RankingResult")
	assert.Equal(t, float64(55), got["benchmark_progress"])
	assert.Equal(t, float64(1200), got["overall_rank"])
}

func TestResolvedView_YAMLIsFlat(t *testing.T) {
	view := ResolvedView{
		Benchmark:     "aim",
		AvailableTabs: map[string]TabDef{},
		Colors:        EmptyColors(),
		RankingResult: EmptyRankingResult(),
	}

	data, err := yaml.Marshal(view)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Contains(t, got, "benchmark_progress")
	assert.Contains(t, got, "ranks")
	assert.NotContains(t, got, "rankingresult")
}

func TestEmptyRankingResult_SerializesFullShape(t *testing.T) {
	data, err := json.Marshal(EmptyRankingResult())
	require.NoError(t, err)
	assert.JSONEq(t, `{"benchmark_progress":0,"overall_rank":0,"categories":{},"ranks":[]}`, string(data))
}

func TestRankingResult_Normalize(t *testing.T) {
	r := RankingResult{BenchmarkProgress: 12.5, OverallRank: 7}.Normalize()
	assert.NotNil(t, r.Categories)
	assert.NotNil(t, r.Ranks)
	assert.Equal(t, 12.5, r.BenchmarkProgress)
	assert.Equal(t, 7, r.OverallRank)

	ranks := []RankDef{{Name: "Gold"}}
	kept := RankingResult{Ranks: ranks}.Normalize()
	assert.Equal(t, ranks, kept.Ranks)
}

func TestColors_CloneIsIndependent(t *testing.T) {
	orig := Colors{Categories: map[string]string{"Clicking": "#ff0000"}}
	cp := orig.Clone()
	cp.Categories["Clicking"] = "#000000"

	assert.Equal(t, "#ff0000", orig.Categories["Clicking"])
	assert.NotNil(t, cp.SubCategories)
	assert.NotNil(t, cp.Ranks)
}

func TestBenchmarkSpec_CloneIsIndependent(t *testing.T) {
	orig := BenchmarkSpec{
		Label: "Aim Benchmark",
		Tabs: map[string]TabDef{
			"novice": {ID: 41, Colors: Colors{Ranks: map[string]string{"Iron": "#777"}}},
		},
	}
	cp := orig.Clone()
	cp.Tabs["novice"].Colors.Ranks["Iron"] = "#fff"
	delete(cp.Tabs, "novice")

	require.Contains(t, orig.Tabs, "novice")
	assert.Equal(t, "#777", orig.Tabs["novice"].Colors.Ranks["Iron"])
}

func TestCloneTabs_Nil(t *testing.T) {
	tabs := CloneTabs(nil)
	require.NotNil(t, tabs)
	assert.Empty(t, tabs)
}
