package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spboyer/benchrank/internal/models"
	"github.com/spboyer/benchrank/internal/resolver"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --format.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// numberPrinter groups digits in rank and score columns.
var numberPrinter = message.NewPrinter(language.English)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatJSON, formatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported format %q: must be table, json or yaml", format)
	}
}

// writeStructured writes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// printProgress renders one resolved view as a human-readable report.
func printProgress(w io.Writer, view models.ResolvedView, outcome resolver.Outcome) {
	fmt.Fprintf(w, "%s / %s\n", view.Label, view.Difficulty)
	fmt.Fprintf(w, "Player:       %s\n", view.UserID)
	fmt.Fprintf(w, "Progress:     %s\n", formatNumber(view.BenchmarkProgress))
	fmt.Fprintf(w, "Overall rank: %s\n", numberPrinter.Sprintf("%d", view.OverallRank))
	if !outcome.HasData() {
		fmt.Fprintf(w, "No ranking data (%s)\n", outcome)
		return
	}

	if len(view.Categories) > 0 {
		fmt.Fprintln(w)
		printCategories(w, view.Categories)
	}
	if len(view.Ranks) > 0 {
		names := make([]string, 0, len(view.Ranks))
		for _, r := range view.Ranks {
			names = append(names, r.Name)
		}
		fmt.Fprintf(w, "\nRanks: %s\n", strings.Join(names, ", "))
	}
}

func printCategories(w io.Writer, categories map[string]models.CategoryProgress) {
	keys := make([]string, 0, len(categories))
	nameWidth := runewidth.StringWidth("Category")
	for k, c := range categories {
		keys = append(keys, k)
		if sw := runewidth.StringWidth(k); sw > nameWidth {
			nameWidth = sw
		}
		for s := range c.Scenarios {
			if sw := runewidth.StringWidth(s) + 2; sw > nameWidth {
				nameWidth = sw
			}
		}
	}
	sort.Strings(keys)

	const colNum = 12
	fmt.Fprintf(w, "%s %s %s\n",
		padRight("Category", nameWidth),
		padRight("Progress", colNum),
		"Rank")
	fmt.Fprintln(w, strings.Repeat("─", nameWidth+colNum+6))

	for _, k := range keys {
		c := categories[k]
		fmt.Fprintf(w, "%s %s %s\n",
			padRight(k, nameWidth),
			padRight(formatNumber(c.BenchmarkProgress), colNum),
			numberPrinter.Sprintf("%d", c.CategoryRank))

		scenarios := make([]string, 0, len(c.Scenarios))
		for s := range c.Scenarios {
			scenarios = append(scenarios, s)
		}
		sort.Strings(scenarios)
		for _, s := range scenarios {
			sc := c.Scenarios[s]
			fmt.Fprintf(w, "%s %s %s\n",
				padRight("  "+s, nameWidth),
				padRight(formatNumber(sc.Score), colNum),
				numberPrinter.Sprintf("%d", sc.ScenarioRank))
		}
	}
}

// printBenchmarks renders the metadata table, one row per difficulty.
func printBenchmarks(w io.Writer, benchmarks models.AllBenchmarks) {
	keys := make([]string, 0, len(benchmarks))
	keyWidth := runewidth.StringWidth("Benchmark")
	labelWidth := runewidth.StringWidth("Label")
	for k, b := range benchmarks {
		keys = append(keys, k)
		keyWidth = max(keyWidth, runewidth.StringWidth(k))
		labelWidth = max(labelWidth, runewidth.StringWidth(b.Label))
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "%s %s %s\n",
		padRight("Benchmark", keyWidth),
		padRight("Label", labelWidth),
		"Difficulties")
	fmt.Fprintln(w, strings.Repeat("─", keyWidth+labelWidth+14))

	for _, k := range keys {
		b := benchmarks[k]
		tabs := make([]string, 0, len(b.Tabs))
		for name := range b.Tabs {
			tabs = append(tabs, name)
		}
		sort.Strings(tabs)
		for i, name := range tabs {
			tabs[i] = fmt.Sprintf("%s (%d)", name, b.Tabs[name].ID)
		}
		fmt.Fprintf(w, "%s %s %s\n",
			padRight(k, keyWidth),
			padRight(b.Label, labelWidth),
			strings.Join(tabs, ", "))
	}
}

// formatNumber prints whole numbers without a fraction and everything else
// with two decimals.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return numberPrinter.Sprintf("%d", int64(v))
	}
	return numberPrinter.Sprintf("%.2f", v)
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
