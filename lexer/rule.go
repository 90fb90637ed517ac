package lexer

import (
	"io"
)

// Action is executed when its Rule wins a scan step. It receives the output stream and the matched text.
//
// A nil Action consumes the match silently. Returning [ErrHalt] stops the scan after this token;
// any other error is reported as a write failure.
type Action func(w io.Writer, text []byte) error

// Rule binds a regular expression to an Action. Rules are tried in declaration order:
// the longest match wins and among equally long matches the Rule declared first wins.
type Rule struct {
	// Name identifies the Rule in Tokens, traces and errors. It must be unique in the table.
	Name string

	// Pattern is an RE2 regular expression. It is implicitly anchored at the scan position
	// and must not match the empty string.
	Pattern string

	// Action is the side effect of a match.
	Action Action
}

// Echo copies the matched text to the output verbatim.
func Echo(w io.Writer, text []byte) error {
	_, err := w.Write(text)
	return err
}

// Emit returns an Action writing s in place of the matched text.
func Emit(s string) Action {
	return func(w io.Writer, _ []byte) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

// Line returns an Action writing the matched text on its own line, preceded by label and a space.
// An empty label writes the bare text.
func Line(label string) Action {
	return func(w io.Writer, text []byte) error {
		if label != "" {
			if _, err := io.WriteString(w, label+" "); err != nil {
				return err
			}
		}
		if _, err := w.Write(text); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
}

// Halt returns an Action writing s and then stopping the scan.
func Halt(s string) Action {
	return func(w io.Writer, _ []byte) error {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
		return ErrHalt
	}
}
