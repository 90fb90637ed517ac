package lexer

import (
	"errors"
	"fmt"
)

// ConfigError describes an error which occures during the configuration of the [RuleSet] or the [Engine],
// like a malformed Rule or a negative limit.
type ConfigError struct {
	Issue Issue // Issue is a kind of the problem occured.
	Err   error // Err contains original error created during some configuration process.
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
func (e *ConfigError) Error() string {
	return fmt.Sprintf("%d: %v", e.Issue, e.Err)
}

// NewConfigError is a factory function for creating a *ConfigError.
func NewConfigError(issue Issue, err error) *ConfigError {
	return &ConfigError{
		Issue: issue,
		Err:   err,
	}
}

func newEmptyRuleSetError() error {
	return NewConfigError(IssueEmptyRuleSet, errors.New("rule table is empty"))
}

func newEmptyRuleNameError(idx int) error {
	return NewConfigError(IssueEmptyRuleName, fmt.Errorf("rule #%d has an empty name", idx))
}

func newDuplicateRuleNameError(name string, first, dup int) error {
	return NewConfigError(
		IssueDuplicateRuleName,
		fmt.Errorf("rule name %q used by rules #%d and #%d", name, first, dup),
	)
}

func newEmptyPatternError(name string) error {
	return NewConfigError(IssueEmptyPattern, fmt.Errorf("rule %q has an empty pattern", name))
}

func newInvalidPatternError(name string, err error) error {
	return NewConfigError(IssueInvalidPattern, fmt.Errorf("rule %q: %w", name, err))
}

func newNullablePatternError(name, pattern string) error {
	return NewConfigError(
		IssueNullablePattern,
		fmt.Errorf("rule %q: pattern %q matches the empty string", name, pattern),
	)
}
