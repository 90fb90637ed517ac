package lexer

// Issue defines types of problems we might encounter while compiling a rule table or while scanning.
type Issue int

const (
	// IssueEmptyRuleSet occurs when the rule table passed to [Compile] has no rules at all.
	IssueEmptyRuleSet Issue = iota

	// IssueEmptyRuleName occurs when the [Rule] has an empty Name.
	IssueEmptyRuleName

	// IssueDuplicateRuleName occurs when two rules in the same table share a Name.
	IssueDuplicateRuleName

	// IssueEmptyPattern occurs when the [Rule] has an empty Pattern.
	IssueEmptyPattern

	// IssueInvalidPattern occurs when the Pattern is not a valid regular expression.
	IssueInvalidPattern

	// IssueNullablePattern occurs when the Pattern matches the empty string. Such a rule
	// could win without consuming input and stall the scanner forever.
	IssueNullablePattern

	// IssueNegativeLimit occurs during configuration when any value in [Limits] is negative.
	IssueNegativeLimit

	// IssueNegativeWarningsCap reports an invalid (negative) warnings capacity.
	IssueNegativeWarningsCap

	// IssueInvalidPolicy occurs when the [NoMatchPolicy] is not one of the known values.
	IssueInvalidPolicy

	// IssueUnmatchedInput occurs when no rule matches at the current position and the
	// [NoMatchEcho] policy copied the offending character to the output.
	IssueUnmatchedInput

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated
)
