package lexer

import (
	"io"
	"regexp"
)

// compiledRule is a Rule with its anchored, leftmost-longest matcher.
type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// RuleSet is an ordered, validated rule table. It is immutable after [Compile] and
// can back any number of Engines.
type RuleSet struct {
	rules []compiledRule
}

// Compile validates the rules and builds their matchers. The order of rules is their priority.
// It returns a [ConfigError] describing the first malformed Rule.
func Compile(rules []Rule) (*RuleSet, error) {
	if len(rules) == 0 {
		return nil, newEmptyRuleSetError()
	}

	seen := make(map[string]int, len(rules))
	compiled := make([]compiledRule, 0, len(rules))

	for i, r := range rules {
		if r.Name == "" {
			return nil, newEmptyRuleNameError(i)
		}

		if first, ok := seen[r.Name]; ok {
			return nil, newDuplicateRuleNameError(r.Name, first, i)
		}
		seen[r.Name] = i

		if r.Pattern == "" {
			return nil, newEmptyPatternError(r.Name)
		}

		// anchoring keeps the matcher from scanning ahead for a later start position
		re, err := regexp.Compile(`^(?:` + r.Pattern + `)`)
		if err != nil {
			return nil, newInvalidPatternError(r.Name, err)
		}
		re.Longest()

		if re.MatchString("") {
			return nil, newNullablePatternError(r.Name, r.Pattern)
		}

		compiled = append(compiled, compiledRule{Rule: r, re: re})
	}

	return &RuleSet{rules: compiled}, nil
}

// Len returns the number of rules in the table.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Names returns rule names in priority order.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.rules))
	for i := range rs.rules {
		names[i] = rs.rules[i].Name
	}
	return names
}

// longest returns the index of the winning rule and the length of its match.
// rule is -1 if nothing matches with a positive length.
//
// open is called once per rule and must return a reader positioned at the cursor.
// The matchers are anchored, so each one reads only until its last thread dies.
// A later rule replaces the current best only with a strictly longer match, which gives
// earlier rules the win on ties.
func (rs *RuleSet) longest(open func() io.RuneReader) (rule int, n int) {
	rule = -1

	for i := range rs.rules {
		loc := rs.rules[i].re.FindReaderIndex(open())
		if loc == nil {
			continue
		}

		if loc[1] > n {
			rule, n = i, loc[1]
		}
	}

	return
}
