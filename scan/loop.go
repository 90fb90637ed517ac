package scan

import (
	"context"
	"errors"
	"io"

	"github.com/Drolfothesgnir/transducer/lexer"
	"github.com/rs/zerolog"
)

// Result describes a finished scan.
type Result struct {
	State  State
	Reason Reason

	// Tokens is the number of tokens whose actions were executed.
	Tokens int

	// Bytes is the number of input bytes consumed by those tokens.
	Bytes int64
}

// Loop drives an [Engine] until it reports end of input or a failure.
// It is a two-state machine: [Scanning] until the first terminal condition, then [Done].
type Loop struct {
	engine Engine
	logger zerolog.Logger
	state  State
	reason Reason
	err    error
	tokens int
	bytes  int64
}

// NewLoop creates a Loop in the [Scanning] state.
func NewLoop(engine Engine) *Loop {
	return &Loop{engine: engine, logger: zerolog.Nop()}
}

// State returns the current state of the Loop.
func (l *Loop) State() State {
	return l.state
}

// Step asks the engine for one token. It returns false once the Loop is [Done];
// further calls are no-ops.
func (l *Loop) Step() bool {
	if l.state == Done {
		return false
	}

	tok, err := l.engine.Next()

	// a halting or failing action still consumed its token
	if n := tok.Len(); n > 0 {
		l.tokens++
		l.bytes += int64(n)

		l.logger.Trace().
			Str("rule", tok.Rule).
			Int64("pos", tok.Pos).
			Int("len", n).
			Msg("token")
	}

	if err == nil {
		return true
	}

	l.finish(classify(err), err)
	return false
}

// Result returns the current counters, state and reason.
func (l *Loop) Result() Result {
	return Result{
		State:  l.state,
		Reason: l.reason,
		Tokens: l.tokens,
		Bytes:  l.bytes,
	}
}

// Err returns the error which ended the Loop, or nil for a clean termination.
func (l *Loop) Err() error {
	return l.err
}

// Run steps the Loop until it is [Done]. The context is checked between tokens;
// a canceled context ends the Loop with [Canceled]. Tokens are traced to the logger
// carried by the context, if any.
//
// The returned error is nil when the Reason is [EndOfInput] or [Halted].
func (l *Loop) Run(ctx context.Context) (Result, error) {
	l.logger = *zerolog.Ctx(ctx)

	for l.state == Scanning {
		if err := ctx.Err(); err != nil {
			l.finish(Canceled, err)
			break
		}

		l.Step()
	}

	res := l.Result()
	l.logger.Debug().
		Str("reason", res.Reason.String()).
		Int("tokens", res.Tokens).
		Int64("bytes", res.Bytes).
		Msg("scan finished")

	return res, l.err
}

// Run drives the engine to completion. See [Loop.Run].
func Run(ctx context.Context, engine Engine) (Result, error) {
	return NewLoop(engine).Run(ctx)
}

func (l *Loop) finish(reason Reason, err error) {
	l.state = Done
	l.reason = reason

	if !reason.Clean() {
		l.err = err
	}
}

// classify maps an engine error to the Reason it ends the scan with.
func classify(err error) Reason {
	var sioe *lexer.ScanIOError

	switch {
	case errors.As(err, &sioe):
		return IOError
	case errors.Is(err, io.EOF):
		return EndOfInput
	case errors.Is(err, lexer.ErrHalt):
		return Halted
	case errors.Is(err, lexer.ErrNoMatch):
		return NoMatch
	case errors.Is(err, lexer.ErrTokenTooLong):
		return Overflow
	}

	// anything else came from the engine's reader or writer
	return IOError
}
