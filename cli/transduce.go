package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/Drolfothesgnir/transducer/lexer"
	"github.com/Drolfothesgnir/transducer/rules"
	"github.com/Drolfothesgnir/transducer/scan"
	"github.com/Drolfothesgnir/transducer/stream"
	"github.com/rs/zerolog"
)

// Params describe one transduction run.
type Params struct {
	InputPath  string
	OutputPath string

	RuleSet    string
	Encoding   string
	OnNoMatch  lexer.NoMatchPolicy
	Limits     lexer.Limits
	BufferSize int

	MaxWarnings    int
	WarningsPolicy lexer.WarningOverflowPolicy

	// Dump, if set, receives one line per token.
	Dump io.Writer
}

// Transduce scans the input file with the named rule set and writes the actions' output to the output file.
//
// Configuration is checked before any file is opened. Once the streams are open they are flushed and
// closed on every path, so partial output stays on disk after a scan failure.
func Transduce(ctx context.Context, p Params) (res scan.Result, err error) {
	logger := zerolog.Ctx(ctx)

	table, err := rules.Lookup(p.RuleSet)
	if err != nil {
		return
	}

	rs, err := lexer.Compile(table)
	if err != nil {
		err = fmt.Errorf("rule set %q: %w", p.RuleSet, err)
		return
	}

	if err = p.Limits.Validate(); err != nil {
		return
	}

	if p.BufferSize < 0 {
		err = lexer.NewConfigError(lexer.IssueNegativeLimit, fmt.Errorf("BufferSize must be >= 0, got %d", p.BufferSize))
		return
	}

	warns, err := lexer.NewWarnings(p.WarningsPolicy, p.MaxWarnings)
	if err != nil {
		return
	}

	if err = stream.CheckEncoding(p.Encoding); err != nil {
		return
	}

	streams, err := stream.Open(p.InputPath, p.OutputPath, stream.Options{
		Encoding:   p.Encoding,
		BufferSize: p.BufferSize,
	})
	if err != nil {
		return
	}

	defer func() {
		closeErr := streams.Close()
		if err == nil {
			err = closeErr
		}
	}()

	engine, err := rs.NewEngine(streams.Reader(), streams.Writer(), lexer.EngineConfig{
		Limits:    p.Limits,
		OnNoMatch: p.OnNoMatch,
		Warnings:  &warns,
	})
	if err != nil {
		return
	}

	logger.Debug().
		Str("input", p.InputPath).
		Str("output", p.OutputPath).
		Str("rules", p.RuleSet).
		Int("rule_count", rs.Len()).
		Msg("scan started")

	var source scan.Engine = engine
	if p.Dump != nil {
		source = scan.Dump(engine, p.Dump)
	}

	res, err = scan.Run(ctx, source)

	for _, w := range warns.List() {
		logger.Warn().Int64("pos", w.Pos).Msg(w.Description)
	}
	if n := warns.DroppedCount(); n > 0 {
		logger.Warn().Int("dropped", n).Int64("first_pos", warns.FirstDropPos()).Msg("warnings suppressed")
	}

	return
}
