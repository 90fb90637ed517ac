package lexer

// DefaultRuleName is reported as [Token.Rule] for input consumed by the [NoMatchEcho] policy
// rather than by a declared Rule.
const DefaultRuleName = "<default>"

// Token is the result of one scan step.
type Token struct {
	// Rule is the Name of the Rule whose Action was executed.
	Rule string

	// Text is the matched byte sequence.
	//
	// WARNING: Text aliases the Engine's internal buffer and is only valid until the next call
	// to [Engine.Next]. Copy it if you need to keep it.
	Text []byte

	// Pos is the byte offset of the first matched byte in the input stream.
	Pos int64
}

// Len returns the number of input bytes consumed by the Token.
func (t Token) Len() int {
	return len(t.Text)
}
