package webapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/spboyer/benchrank/internal/models"
	"github.com/spboyer/benchrank/internal/resolver"
)

// Version is set at build time or defaults to dev.
var Version = "0.1.0-dev"

// OutcomeHeader carries the resolver outcome on progress responses.
const OutcomeHeader = "X-Benchrank-Outcome"

// ProgressResolver resolves a benchmark/difficulty/user triple.
type ProgressResolver interface {
	ResolveWithOutcome(ctx context.Context, benchmark, difficulty, userID string) (models.ResolvedView, resolver.Outcome)
}

// Catalog is the read-only benchmark table.
type Catalog interface {
	Keys() []string
	Len() int
	Benchmark(key string) (models.BenchmarkSpec, bool)
	Difficulties(key string) []string
}

// Handlers holds the HTTP handler methods for the web API.
type Handlers struct {
	resolver ProgressResolver
	catalog  Catalog
}

// NewHandlers creates a new Handlers.
func NewHandlers(r ProgressResolver, catalog Catalog) *Handlers {
	return &Handlers{resolver: r, catalog: catalog}
}

// HandleHealth returns a simple health check response.
func (h *Handlers) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "ok",
		Version:    Version,
		Benchmarks: h.catalog.Len(),
	})
}

// HandleBenchmarks lists every benchmark with its difficulty keys.
func (h *Handlers) HandleBenchmarks(w http.ResponseWriter, _ *http.Request) {
	keys := h.catalog.Keys()
	out := make([]BenchmarkSummary, 0, len(keys))
	for _, key := range keys {
		spec, ok := h.catalog.Benchmark(key)
		if !ok {
			continue
		}
		out = append(out, BenchmarkSummary{
			Key:          key,
			Label:        spec.Label,
			Difficulties: h.catalog.Difficulties(key),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// HandleBenchmark returns the full metadata for one benchmark.
func (h *Handlers) HandleBenchmark(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("benchmark")
	spec, ok := h.catalog.Benchmark(key)
	if !ok {
		writeError(w, http.StatusNotFound, "benchmark not found")
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

// HandleProgress resolves the progress view. It always answers 200: unknown
// keys and upstream failures yield an empty view, and the outcome header says
// which case applied.
func (h *Handlers) HandleProgress(w http.ResponseWriter, r *http.Request) {
	benchmark := r.PathValue("benchmark")
	difficulty := r.PathValue("difficulty")
	userID := r.PathValue("userId")
	view, outcome := h.resolver.ResolveWithOutcome(r.Context(), benchmark, difficulty, userID)
	w.Header().Set(OutcomeHeader, string(outcome))
	writeJSON(w, http.StatusOK, view)
}

// RegisterRoutes registers all web API routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, r ProgressResolver, catalog Catalog) {
	h := NewHandlers(r, catalog)
	mux.HandleFunc("GET /api/health", h.HandleHealth)
	mux.HandleFunc("GET /api/benchmarks", h.HandleBenchmarks)
	mux.HandleFunc("GET /api/benchmarks/{benchmark}", h.HandleBenchmark)
	mux.HandleFunc("GET /api/progress/{benchmark}/{difficulty}/{userId}", h.HandleProgress)
	mux.HandleFunc("/api/", handleNotFound)
}

// CORSMiddleware wraps a handler with CORS headers.
// If allowedOrigins is empty, no CORS header is set (same-origin only).
// Otherwise, the request Origin is checked against the allowed list.
func CORSMiddleware(next http.Handler, allowedOrigins ...string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if len(allowedOrigins) > 0 && origin != "" && allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Expose-Headers", OutcomeHeader)
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, ErrorResponse{Error: msg, Code: code})
}
