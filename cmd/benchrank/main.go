package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess          = 0 // Command completed
	ExitValidationFailed = 1 // A metadata file failed schema validation
	ExitError            = 2 // Configuration or runtime error
)

// ValidationFailedError indicates that validation ran to completion but the
// document had schema violations.
type ValidationFailedError struct {
	Path       string
	Violations []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%s failed validation with %d error(s)", e.Path, len(e.Violations))
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var validationErr *ValidationFailedError
	if errors.As(err, &validationErr) {
		return ExitValidationFailed
	}
	return ExitError
}

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
