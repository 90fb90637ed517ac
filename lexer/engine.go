package lexer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"
)

// NoMatchPolicy decides what the Engine does at a position no Rule matches.
type NoMatchPolicy int

const (
	// NoMatchFail stops the scan with a [*NoMatchError].
	NoMatchFail NoMatchPolicy = iota

	// NoMatchEcho copies one character to the output, records a [Warning] and continues.
	// This is the default rule of classic scanner generators.
	NoMatchEcho
)

// ParseNoMatchPolicy converts "fail" or "echo" into a NoMatchPolicy.
func ParseNoMatchPolicy(s string) (NoMatchPolicy, error) {
	switch s {
	case "fail", "":
		return NoMatchFail, nil
	case "echo":
		return NoMatchEcho, nil
	}

	return NoMatchFail, NewConfigError(IssueInvalidPolicy, fmt.Errorf("unknown no-match policy %q", s))
}

func (p NoMatchPolicy) String() string {
	switch p {
	case NoMatchFail:
		return "fail"
	case NoMatchEcho:
		return "echo"
	}
	return "NoMatchPolicy(" + strconv.Itoa(int(p)) + ")"
}

// EngineConfig holds the optional settings of an [Engine].
type EngineConfig struct {
	Limits    Limits
	OnNoMatch NoMatchPolicy

	// Warnings receives non-fatal issues. Nil discards them.
	Warnings *Warnings
}

// Engine produces Tokens from an input stream and runs their Actions against an output stream.
// It owns all input buffering; it is not safe for concurrent use.
type Engine struct {
	rs    *RuleSet
	r     io.Reader
	w     io.Writer
	cfg   EngineConfig
	warns *Warnings

	// buf[start:end] is the unconsumed window
	buf   []byte
	start int
	end   int

	// pos is the input offset of buf[start]
	pos int64

	eof bool

	// readErr is the first read failure, reported by every later call to Next
	readErr error

	src windowReader
}

// NewEngine binds the RuleSet to an input and an output stream.
// It returns a [ConfigError] if the config is invalid.
func (rs *RuleSet) NewEngine(r io.Reader, w io.Writer, cfg EngineConfig) (*Engine, error) {
	if err := cfg.Limits.Validate(); err != nil {
		return nil, err
	}

	if cfg.OnNoMatch != NoMatchFail && cfg.OnNoMatch != NoMatchEcho {
		return nil, NewConfigError(IssueInvalidPolicy, fmt.Errorf("unknown no-match policy %d", cfg.OnNoMatch))
	}

	warns := cfg.Warnings
	if warns == nil {
		discard, _ := NewWarnings(WarnOverflowNone, 0)
		warns = &discard
	}

	e := &Engine{
		rs:    rs,
		r:     r,
		w:     w,
		cfg:   cfg,
		warns: warns,
		buf:   make([]byte, cfg.Limits.readSize()),
	}
	e.src.e = e

	return e, nil
}

// Offset returns the input offset of the next unconsumed byte.
func (e *Engine) Offset() int64 {
	return e.pos
}

// Next scans one token and executes its Action.
//
// It returns [io.EOF] once the input is exhausted, [ErrHalt] (with the Token) if the Action halted,
// a [*ScanIOError] on read or write failure, a [*NoMatchError] or [ErrTokenTooLong].
func (e *Engine) Next() (Token, error) {
	e.ensure(1)
	if e.readErr != nil {
		return Token{}, e.readErr
	}

	if e.start == e.end {
		return Token{}, io.EOF
	}

	rule, n := e.rs.longest(e.rewind)

	// the matchers saw the failure as end of input, so their result can't be trusted
	if e.readErr != nil {
		return Token{}, e.readErr
	}

	if rule < 0 {
		return e.noMatch()
	}

	if limit := e.cfg.Limits.MaxTokenLen; limit > 0 && n > limit {
		return Token{}, fmt.Errorf("rule %q at offset %d: %w", e.rs.rules[rule].Name, e.pos, ErrTokenTooLong)
	}

	return e.dispatch(&e.rs.rules[rule], e.buf[e.start:e.start+n])
}

// rewind positions the shared window reader at the cursor.
func (e *Engine) rewind() io.RuneReader {
	e.src.off = 0
	return &e.src
}

// dispatch consumes text and runs the Rule's Action.
func (e *Engine) dispatch(r *compiledRule, text []byte) (Token, error) {
	tok := e.consume(r.Name, text)

	if r.Action == nil {
		return tok, nil
	}

	if err := r.Action(e.w, text); err != nil {
		if errors.Is(err, ErrHalt) {
			return tok, ErrHalt
		}

		return tok, &ScanIOError{Op: OpWrite, Rule: r.Name, Pos: tok.Pos, Err: err}
	}

	return tok, nil
}

func (e *Engine) noMatch() (Token, error) {
	// a whole rune, unless the input ends first
	e.ensure(utf8.UTFMax)
	if e.readErr != nil {
		return Token{}, e.readErr
	}

	window := e.buf[e.start:e.end]
	char, width := utf8.DecodeRune(window)

	if e.cfg.OnNoMatch == NoMatchFail {
		return Token{}, &NoMatchError{Pos: e.pos, Char: char}
	}

	e.warns.Add(Warning{
		Issue:       IssueUnmatchedInput,
		Pos:         e.pos,
		Description: "no rule matches " + strconv.QuoteRune(char) + " at offset " + strconv.FormatInt(e.pos, 10) + ", copied as is",
	})

	text := window[:width]
	tok := e.consume(DefaultRuleName, text)

	if _, err := e.w.Write(text); err != nil {
		return tok, &ScanIOError{Op: OpWrite, Rule: DefaultRuleName, Pos: tok.Pos, Err: err}
	}

	return tok, nil
}

// consume advances the cursor past text, which must be the head of the window.
func (e *Engine) consume(rule string, text []byte) Token {
	tok := Token{Rule: rule, Text: text, Pos: e.pos}
	e.start += len(text)
	e.pos += int64(len(text))
	return tok
}

// ensure reads until the window holds k bytes, the input is exhausted or a read fails.
// A failure is kept in e.readErr.
func (e *Engine) ensure(k int) {
	for !e.eof && e.readErr == nil && e.end-e.start < k {
		if e.end == len(e.buf) {
			e.makeRoom()
		}

		n, err := e.r.Read(e.buf[e.end:])
		e.end += n

		if errors.Is(err, io.EOF) {
			e.eof = true
			return
		}

		if err != nil {
			e.readErr = &ScanIOError{Op: OpRead, Pos: e.pos + int64(e.end-e.start), Err: err}
		}
	}
}

// makeRoom shifts the window to the front of the buffer, doubling the buffer if the window still fills it.
func (e *Engine) makeRoom() {
	n := copy(e.buf, e.buf[e.start:e.end])
	e.start, e.end = 0, n

	if n < len(e.buf) {
		return
	}

	grown := make([]byte, 2*len(e.buf))
	copy(grown, e.buf[:n])
	e.buf = grown
}

// windowReader feeds the window to a matcher rune by rune, reading more input on demand.
// Invalid UTF-8 comes out as [utf8.RuneError] of width 1, the same way the regexp
// package decodes byte slices, so every input byte stays addressable by a match.
type windowReader struct {
	e *Engine

	// off is relative to the cursor
	off int
}

func (wr *windowReader) ReadRune() (r rune, size int, err error) {
	e := wr.e

	// one rune past the limit is enough to tell that a match is too long
	if limit := e.cfg.Limits.MaxTokenLen; limit > 0 && wr.off > limit {
		return 0, 0, io.EOF
	}

	e.ensure(wr.off + utf8.UTFMax)

	rest := e.buf[e.start+wr.off : e.end]
	if len(rest) == 0 {
		return 0, 0, io.EOF
	}

	r, size = utf8.DecodeRune(rest)
	wr.off += size

	return r, size, nil
}
