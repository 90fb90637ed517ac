package scan

import "strconv"

// State is the state of a [Loop]. A Loop starts in [Scanning] and moves to [Done] exactly once.
type State int

const (
	Scanning State = iota
	Done
)

func (s State) String() string {
	switch s {
	case Scanning:
		return "scanning"
	case Done:
		return "done"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Reason tells why a [Loop] reached [Done].
type Reason int

const (
	// ReasonNone is the Reason of a Loop which is still scanning.
	ReasonNone Reason = iota

	// EndOfInput means the engine drained the input.
	EndOfInput

	// Halted means a rule action asked to stop the scan.
	Halted

	// IOError means reading the input or writing the output failed.
	IOError

	// NoMatch means the engine found input no rule matches.
	NoMatch

	// Overflow means a token grew past the engine's length limit.
	Overflow

	// Canceled means the context was done before the input was drained.
	Canceled
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case EndOfInput:
		return "end of input"
	case Halted:
		return "halted"
	case IOError:
		return "i/o error"
	case NoMatch:
		return "no match"
	case Overflow:
		return "token too long"
	case Canceled:
		return "canceled"
	}
	return "Reason(" + strconv.Itoa(int(r)) + ")"
}

// Clean reports whether the Reason is a successful termination.
func (r Reason) Clean() bool {
	return r == EndOfInput || r == Halted
}
