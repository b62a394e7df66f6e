package kovaaks

import (
	"fmt"
	"strings"
)

// FailureKind classifies why a ranking fetch produced no data.
type FailureKind string

const (
	// FailureTransport covers request construction and network errors.
	FailureTransport FailureKind = "transport"
	// FailureStatus is a non-2xx HTTP response.
	FailureStatus FailureKind = "status"
	// FailureDecode is a body that is not valid JSON for a RankingResult.
	FailureDecode FailureKind = "decode"
	// FailureSchema is a body that parsed but violates the ranking schema.
	// Only reported when strict payload checking is enabled.
	FailureSchema FailureKind = "schema"
)

// Malformed reports whether the failure is about the payload rather than the
// transport.
func (k FailureKind) Malformed() bool {
	return k == FailureDecode || k == FailureSchema
}

// FetchError is returned by Client.FetchProgress for every failure.
type FetchError struct {
	Kind       FailureKind
	StatusCode int
	Status     string
	// Violations lists schema errors for FailureSchema.
	Violations []string
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case FailureStatus:
		return fmt.Sprintf("ranking API error: %s", e.Status)
	case FailureSchema:
		return fmt.Sprintf("ranking payload failed schema validation: %s", strings.Join(e.Violations, "; "))
	}
	if e.Err != nil {
		return fmt.Sprintf("ranking fetch failed (%s): %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("ranking fetch failed (%s)", e.Kind)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
