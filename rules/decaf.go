package rules

import (
	"io"

	"github.com/Drolfothesgnir/transducer/lexer"
)

// UndefinedToken is written when the decaf table meets a character it cannot classify.
const UndefinedToken = "UNDEFINED_TOKEN"

var decafKeywords = map[string]struct{}{
	"void": {}, "int": {}, "double": {}, "bool": {}, "string": {},
	"class": {}, "interface": {}, "null": {}, "this": {},
	"extends": {}, "implements": {},
	"for": {}, "while": {}, "if": {}, "else": {}, "return": {}, "break": {}, "continue": {},
	"new": {}, "NewArray": {}, "Print": {}, "ReadInteger": {}, "ReadLine": {},
	"dtoi": {}, "itos": {}, "btoi": {}, "itob": {},
	"private": {}, "protected": {}, "public": {},
}

// Decaf is the token table of the Decaf language.
//
// Each token goes on its own line: keywords and operators as their bare text, everything else
// as "<CLASS> <text>". Whitespace, newlines and comments produce nothing. The first character
// no other rule accepts writes [UndefinedToken] and stops the scan.
func Decaf() []lexer.Rule {
	return []lexer.Rule{
		// ties with T_ID on "true"/"false", and wins by coming first
		{Name: "T_BOOLEANLITERAL", Pattern: `false|true`, Action: lexer.Line("T_BOOLEANLITERAL")},
		{Name: "T_ID", Pattern: `[a-zA-Z]\w*`, Action: decafIdent},
		{Name: "T_DOUBLELITERAL", Pattern: `[-+]?\d+\.\d*(?:[eE][-+]?\d+)?`, Action: lexer.Line("T_DOUBLELITERAL")},
		{Name: "T_INTLITERAL", Pattern: `0[xX][0-9a-fA-F]+|[0-9]+`, Action: lexer.Line("T_INTLITERAL")},
		{Name: "COMMENT", Pattern: `/\*([^*]|\*+[^*/])*\*+/|//.*`},
		{Name: "OP_PUNCTUATION", Pattern: `==|>=|<=|!=|\|\||&&|[<>+\-*/%=!;,.\[\](){}]`, Action: lexer.Line("")},
		{Name: "T_STRINGLITERAL", Pattern: `"[^\n"]*"`, Action: lexer.Line("T_STRINGLITERAL")},
		{Name: "NEWLINE", Pattern: `\n`},
		{Name: "SKIP", Pattern: `[ \t\v\f\r]+`},
		{Name: "MISMATCH", Pattern: `(?s).`, Action: lexer.Halt(UndefinedToken + "\n")},
	}
}

// decafIdent writes keywords bare and other identifiers with their class.
func decafIdent(w io.Writer, text []byte) error {
	if _, ok := decafKeywords[string(text)]; ok {
		return lexer.Line("")(w, text)
	}
	return lexer.Line("T_ID")(w, text)
}
