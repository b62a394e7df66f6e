// Package validation checks benchmark metadata tables and ranking payloads
// against the embedded JSON Schemas.
package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/spboyer/benchrank/schemas"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// defaultPrinter is used to format schema validation error messages.
var defaultPrinter = message.NewPrinter(language.English)

// benchmarksSchema is the compiled JSON Schema for metadata tables.
var benchmarksSchema *jsonschema.Schema

// rankingSchema is the compiled JSON Schema for ranking responses.
var rankingSchema *jsonschema.Schema

func init() {
	benchmarksSchema = mustCompileSchema(schemas.BenchmarksSchemaJSON, "benchmarks.schema.json")
	rankingSchema = mustCompileSchema(schemas.RankingSchemaJSON, "ranking.schema.json")
}

func mustCompileSchema(raw string, name string) *jsonschema.Schema {
	var schemaDoc any
	if err := json.Unmarshal([]byte(raw), &schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to parse embedded %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, schemaDoc); err != nil {
		panic(fmt.Sprintf("failed to add %s resource: %v", name, err))
	}

	sch, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s: %v", name, err))
	}
	return sch
}

// ParseDocument decodes JSON or YAML bytes into a generic tree of
// map[string]any, []any and scalars.
func ParseDocument(data []byte, isYAML bool) (any, error) {
	var doc any
	if isYAML {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("YAML parse error: %w", err)
		}
		return convertToJSONCompatible(doc), nil
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("JSON parse error: %w", err)
	}
	return doc, nil
}

// IsYAMLPath reports whether path has a YAML extension.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ValidateBenchmarks validates a parsed metadata table.
func ValidateBenchmarks(doc any) []string {
	return validateAgainstSchema(benchmarksSchema, doc)
}

// ValidateBenchmarksBytes parses and validates a metadata table.
func ValidateBenchmarksBytes(data []byte, isYAML bool) []string {
	doc, err := ParseDocument(data, isYAML)
	if err != nil {
		return []string{err.Error()}
	}
	return ValidateBenchmarks(doc)
}

// ValidateBenchmarksFile validates the metadata table at path. The format is
// taken from the file extension.
func ValidateBenchmarksFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata file: %w", err)
	}
	return ValidateBenchmarksBytes(data, IsYAMLPath(path)), nil
}

// ValidateRanking validates a parsed ranking response body.
func ValidateRanking(doc any) []string {
	return validateAgainstSchema(rankingSchema, doc)
}

func validateAgainstSchema(schema *jsonschema.Schema, instance any) []string {
	err := schema.Validate(instance)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []string{fmt.Sprintf("schema: %v", err)}
	}
	var errs []string
	collectSchemaErrors(ve, &errs)
	return errs
}

func collectSchemaErrors(ve *jsonschema.ValidationError, errs *[]string) {
	if len(ve.Causes) == 0 {
		loc := "/"
		if len(ve.InstanceLocation) > 0 {
			loc = "/" + strings.Join(ve.InstanceLocation, "/")
		}
		*errs = append(*errs, fmt.Sprintf("%s: %s", loc, ve.ErrorKind.LocalizedString(defaultPrinter)))
		return
	}
	for _, c := range ve.Causes {
		collectSchemaErrors(c, errs)
	}
}

// convertToJSONCompatible rewrites YAML-decoded values so the schema
// validator sees JSON-shaped data. yaml.v3 produces map[any]any when a
// mapping has non-string keys (e.g. `1: ...`); those keys are stringified.
func convertToJSONCompatible(v any) any {
	switch val := v.(type) {
	case map[string]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[k] = convertToJSONCompatible(v2)
		}
		return result
	case map[any]any:
		result := make(map[string]any, len(val))
		for k, v2 := range val {
			result[fmt.Sprint(k)] = convertToJSONCompatible(v2)
		}
		return result
	case []any:
		result := make([]any, len(val))
		for i, v2 := range val {
			result[i] = convertToJSONCompatible(v2)
		}
		return result
	default:
		return val
	}
}
