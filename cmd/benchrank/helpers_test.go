package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMetadata = `{
  "voltaic": {
    "label": "Voltaic S5",
    "tabs": {
      "novice": {"id": 42, "colors": {"ranks": {"Iron": "#6b6b6b"}}},
      "advanced": {"id": 44}
    }
  },
  "broken": {
    "label": "Broken",
    "tabs": {"easy": {"id": 0}}
  }
}`

const testRanking = `{
  "benchmark_progress": 55,
  "overall_rank": 1200,
  "categories": {
    "Clicking": {
      "benchmark_progress": 12.5,
      "category_rank": 3,
      "rank_maxes": [100, 200],
      "scenarios": {
        "VT Pasu": {"score": 812.25, "leaderboard_rank": 4021, "scenario_rank": 2, "rank_maxes": [700, 900]}
      }
    }
  },
  "ranks": [{"name": "Iron", "color": "#6b6b6b"}, {"name": "Bronze", "color": "#cd7f32"}]
}`

// writeMetadata writes the test benchmark table and returns its path.
func writeMetadata(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "benchmarks.json")
	require.NoError(t, os.WriteFile(path, []byte(testMetadata), 0o644))
	return path
}

// upstream starts a fake ranking backend and routes the CLI to it.
func upstream(t *testing.T, status int, body string) *atomic.Int32 {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(status)
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	t.Setenv("BENCHRANK_UPSTREAM_BASE_URL", srv.URL)
	return &calls
}

// runCLI executes the root command and returns stdout and stderr.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--config", t.TempDir()}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
