package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Drolfothesgnir/transducer/lexer"
	"github.com/Drolfothesgnir/transducer/rules"
	"github.com/Drolfothesgnir/transducer/util"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type flags struct {
	input       string
	output      string
	ruleSet     string
	encoding    string
	onNoMatch   string
	logLevel    string
	readSize    int
	maxTokenLen int
	bufferSize  int
	warnings    string
	debug       bool
}

// NewCommand builds the root command. Flag defaults come from the config.
func NewCommand(config util.Config, stderr io.Writer) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "transducer -i <input> -o <output>",
		Short: "Tokenize a file with a rule set and write what the rules emit",
		Long: `transducer reads the input file, splits it into tokens with the selected rule set
(longest match wins, ties go to the rule declared first) and writes the output of
each token's action to the output file.

Built-in rule sets: ` + strings.Join(rules.Names(), ", ") + `.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &UsageError{Err: fmt.Errorf("unexpected arguments: %q", args)}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.input == "" || f.output == "" {
				return &UsageError{Err: errors.New("both -i <input> and -o <output> are required")}
			}

			policy, err := lexer.ParseNoMatchPolicy(f.onNoMatch)
			if err != nil {
				return err
			}

			warningsPolicy, err := lexer.ParseWarningOverflowPolicy(f.warnings)
			if err != nil {
				return err
			}

			var dump io.Writer
			if f.debug {
				dump = cmd.OutOrStdout()
			}

			logger := NewLogger(stderr, config.Environment, f.logLevel).
				With().
				Str("run_id", uuid.NewString()).
				Logger()

			ctx := logger.WithContext(cmd.Context())

			res, err := Transduce(ctx, Params{
				InputPath:      f.input,
				OutputPath:     f.output,
				RuleSet:        f.ruleSet,
				Encoding:       f.encoding,
				OnNoMatch:      policy,
				Limits:         lexer.Limits{ReadSize: f.readSize, MaxTokenLen: f.maxTokenLen},
				BufferSize:     f.bufferSize,
				MaxWarnings:    config.MaxWarnings,
				WarningsPolicy: warningsPolicy,
				Dump:           dump,
			})

			event := logger.Info()
			if err != nil {
				event = logger.Error().Err(err)
			}
			event.
				Str("reason", res.Reason.String()).
				Int("tokens", res.Tokens).
				Int64("bytes", res.Bytes).
				Msg("transduction finished")

			return err
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "path of the file to read")
	fl.StringVarP(&f.output, "output", "o", "", "path of the file to write, created or truncated")
	fl.StringVarP(&f.ruleSet, "rules", "r", config.RuleSet, "rule set to scan with")
	fl.StringVarP(&f.encoding, "encoding", "e", config.InputEncoding, "character encoding of the input, e.g. windows-1252")
	fl.StringVar(&f.onNoMatch, "on-no-match", config.NoMatchPolicy, "what to do with input no rule matches: fail or echo")
	fl.StringVar(&f.logLevel, "log-level", config.LogLevel, "log level: trace, debug, info, warn, error or disabled")
	fl.IntVar(&f.readSize, "read-size", config.ReadSize, "initial input buffer size in bytes, 0 for the default")
	fl.IntVar(&f.maxTokenLen, "max-token-len", config.MaxTokenLen, "longest token in bytes, 0 for no limit")
	fl.IntVar(&f.bufferSize, "buffer-size", config.BufferSize, "output buffer size in bytes, 0 for the default")
	fl.StringVar(&f.warnings, "warnings-policy", config.WarningsPolicy, "what to do past MAX_WARNINGS warnings: keep, none, drop or truncate")
	fl.BoolVarP(&f.debug, "debug", "d", false, "also print every token to stdout")

	return cmd
}

// Execute runs the command with args and returns the process exit status.
// Errors are printed to stderr, followed by the usage for usage errors.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, config util.Config) int {
	// cobra falls back to os.Args on nil
	if args == nil {
		args = []string{}
	}

	cmd := NewCommand(config, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
	}

	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprint(stderr, cmd.UsageString())
	}

	return ExitCode(err)
}
