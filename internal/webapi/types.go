package webapi

// BenchmarkSummary is one entry of the benchmark list response.
type BenchmarkSummary struct {
	Key          string   `json:"key"`
	Label        string   `json:"label"`
	Difficulties []string `json:"difficulties"`
}

// HealthResponse is the health check response.
type HealthResponse struct {
	Status     string `json:"status"`
	Version    string `json:"version"`
	Benchmarks int    `json:"benchmarks"`
}

// ErrorResponse is returned for errors.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}
