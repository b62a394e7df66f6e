// Package schemas embeds the JSON Schemas used to validate the benchmark
// metadata table and ranking payloads.
package schemas

import _ "embed"

//go:embed benchmarks.schema.json
var BenchmarksSchemaJSON string

//go:embed ranking.schema.json
var RankingSchemaJSON string
