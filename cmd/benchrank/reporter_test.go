package main

import (
	"bytes"
	"testing"

	"github.com/spboyer/benchrank/internal/models"
	"github.com/spboyer/benchrank/internal/resolver"
	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	// Wide runes count as two columns.
	assert.Equal(t, "日本 ", padRight("日本", 5))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "0", formatNumber(0))
	assert.Equal(t, "1,200", formatNumber(1200))
	assert.Equal(t, "12.50", formatNumber(12.5))
}

func TestCheckFormat(t *testing.T) {
	for _, f := range []string{"table", "json", "yaml"} {
		assert.NoError(t, checkFormat(f))
	}
	assert.Error(t, checkFormat("csv"))
}

func TestPrintProgressNoData(t *testing.T) {
	view := models.ResolvedView{
		Benchmark:     "x",
		Difficulty:    "easy",
		UserID:        "1",
		Label:         resolver.UnknownLabel,
		RankingResult: models.EmptyRankingResult(),
	}

	var buf bytes.Buffer
	printProgress(&buf, view, resolver.OutcomeUnknownBenchmark)

	out := buf.String()
	assert.Contains(t, out, "Unknown / easy")
	assert.Contains(t, out, "No ranking data (unknown_benchmark)")
	assert.NotContains(t, out, "Category")
}

func TestPrintBenchmarks(t *testing.T) {
	var buf bytes.Buffer
	printBenchmarks(&buf, models.AllBenchmarks{
		"b": {Label: "Beta", Tabs: map[string]models.TabDef{"hard": {ID: 2}, "easy": {ID: 1}}},
		"a": {Label: "Alpha"},
	})

	out := buf.String()
	assert.Contains(t, out, "easy (1), hard (2)")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Alpha")), bytes.Index(buf.Bytes(), []byte("Beta")))
}
