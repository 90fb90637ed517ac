package cli

import (
	"errors"

	"github.com/Drolfothesgnir/transducer/lexer"
	"github.com/Drolfothesgnir/transducer/rules"
	"github.com/Drolfothesgnir/transducer/stream"
)

// Process exit statuses.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitInputOpen   = 2
	ExitOutputOpen  = 3
	ExitScanFailure = 4
)

// UsageError means the command line is incomplete or malformed. No file has been touched.
type UsageError struct {
	Err error
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

// ExitCode maps an error returned by the command to the process exit status.
func ExitCode(err error) int {
	var (
		usage *UsageError
		cfg   *lexer.ConfigError
	)

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usage), errors.As(err, &cfg),
		errors.Is(err, rules.ErrUnknownRuleSet), errors.Is(err, stream.ErrUnknownEncoding):
		return ExitUsage
	case errors.Is(err, stream.ErrInputOpen):
		return ExitInputOpen
	case errors.Is(err, stream.ErrOutputOpen):
		return ExitOutputOpen
	}

	return ExitScanFailure
}
