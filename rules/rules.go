// Package rules holds the built-in rule tables of the transducer.
//
// A table is a plain []lexer.Rule built on every call, so callers are free to
// modify the returned slice.
package rules

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Drolfothesgnir/transducer/lexer"
)

// ErrUnknownRuleSet is returned by [Lookup] for names not in the catalogue.
var ErrUnknownRuleSet = errors.New("unknown rule set")

// Default is the rule set used when none is configured.
const Default = "passthrough"

var catalogue = map[string]func() []lexer.Rule{
	"passthrough": PassThrough,
	"demo":        Demo,
	"decaf":       Decaf,
}

// Lookup returns the rule table registered under name.
func Lookup(name string) ([]lexer.Rule, error) {
	build, ok := catalogue[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v", ErrUnknownRuleSet, name, Names())
	}
	return build(), nil
}

// Names returns the registered names in lexical order.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PassThrough copies every character verbatim; the output is byte-identical to the input.
func PassThrough() []lexer.Rule {
	return []lexer.Rule{
		{Name: "ANY", Pattern: `(?s).`, Action: lexer.Echo},
	}
}

// Demo rewrites runs of 'a' to "A" and each 'b' to "B". Nothing else matches, so any
// other input is up to the engine's no-match policy.
func Demo() []lexer.Rule {
	return []lexer.Rule{
		{Name: "A_RUN", Pattern: `a+`, Action: lexer.Emit("A")},
		{Name: "B", Pattern: `b`, Action: lexer.Emit("B")},
	}
}
