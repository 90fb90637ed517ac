package lexer

import (
	"errors"
	"fmt"
)

var (
	// ErrHalt is returned by an [Action] which wants the scan to stop after it.
	// The Engine passes it through from [Engine.Next] together with the Token.
	ErrHalt = errors.New("scan halted by action")

	// ErrNoMatch is matched by every [*NoMatchError].
	ErrNoMatch = errors.New("no rule matches input")

	// ErrTokenTooLong is returned when a match keeps growing past [Limits.MaxTokenLen].
	ErrTokenTooLong = errors.New("token exceeds maximum length")
)

// Op names the stream direction a [ScanIOError] happened on.
type Op string

const (
	OpRead  Op = "read"
	OpWrite Op = "write"
)

// ScanIOError is a read failure on the input stream, or a write failure from within an [Action].
type ScanIOError struct {
	Op   Op
	Rule string // Rule is set for write failures and names the Rule whose Action failed.
	Pos  int64
	Err  error
}

func (e *ScanIOError) Unwrap() error {
	return e.Err
}

func (e *ScanIOError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("%s at offset %d (rule %q): %v", e.Op, e.Pos, e.Rule, e.Err)
	}
	return fmt.Sprintf("%s at offset %d: %v", e.Op, e.Pos, e.Err)
}

// NoMatchError reports input that no Rule matches under the [NoMatchFail] policy.
type NoMatchError struct {
	Pos  int64
	Char rune
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("no rule matches %q at offset %d", e.Char, e.Pos)
}

func (e *NoMatchError) Is(target error) bool {
	return target == ErrNoMatch
}
