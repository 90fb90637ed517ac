package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Drolfothesgnir/transducer/lexer"
	"github.com/Drolfothesgnir/transducer/stream"
	"github.com/Drolfothesgnir/transducer/util"
	"github.com/stretchr/testify/require"
)

var testConfig = util.Config{
	Environment:    "production",
	LogLevel:       "disabled",
	RuleSet:        "passthrough",
	NoMatchPolicy:  "fail",
	MaxWarnings:    10,
	WarningsPolicy: "truncate",
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func execute(t *testing.T, ctx context.Context, args ...string) runResult {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := Execute(ctx, args, &stdout, &stderr, testConfig)
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func requireNotExist(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.ErrorIs(t, err, os.ErrNotExist, "%s must not be created", path)
}

func TestExecuteTransduces(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		args  []string
		want  string
	}{
		{
			name:  "demo_rules",
			input: "aaab",
			args:  []string{"--rules", "demo"},
			want:  "AB",
		},
		{
			name:  "passthrough_is_identity",
			input: "line one\r\nline two\n\x00\xff tail",
			want:  "line one\r\nline two\n\x00\xff tail",
		},
		{
			name:  "passthrough_small_buffers",
			input: strings.Repeat("abc\n", 500),
			args:  []string{"--read-size", "3", "--buffer-size", "16"},
			want:  strings.Repeat("abc\n", 500),
		},
		{
			name:  "decaf_comment_past_read_size",
			input: "/* " + strings.Repeat("long comment ", 100) + "*/ x",
			args:  []string{"-r", "decaf", "--read-size", "4"},
			want:  "T_ID x\n",
		},
		{
			name:  "decaf_halts_cleanly",
			input: "int x = 0x1F; # oops",
			args:  []string{"-r", "decaf"},
			want:  "int\nT_ID x\n=\nT_INTLITERAL 0x1F\n;\nUNDEFINED_TOKEN\n",
		},
		{
			name:  "decoded_input",
			input: "na\xefve",
			args:  []string{"--encoding", "windows-1252"},
			want:  "naïve",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeInput(t, dir, tc.input)
			out := filepath.Join(dir, "out.txt")

			args := append([]string{"-i", in, "-o", out}, tc.args...)
			res := execute(t, context.Background(), args...)

			require.Equal(t, ExitOK, res.code, res.stderr)
			require.Equal(t, tc.want, readOutput(t, out))
		})
	}
}

func TestExecuteUsageErrors(t *testing.T) {
	testCases := []struct {
		name string
		args func(in, out string) []string
	}{
		{name: "no_args", args: func(in, out string) []string { return nil }},
		{name: "only_input", args: func(in, out string) []string { return []string{"-i", in} }},
		{name: "only_output", args: func(in, out string) []string { return []string{"-o", out} }},
		{name: "dangling_flag", args: func(in, out string) []string { return []string{"-i", in, "-o"} }},
		{name: "unknown_flag", args: func(in, out string) []string { return []string{"-i", in, "-o", out, "-x"} }},
		{name: "positional_args", args: func(in, out string) []string { return []string{in, out} }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeInput(t, dir, "aaab")
			out := filepath.Join(dir, "out.txt")

			res := execute(t, context.Background(), tc.args(in, out)...)

			require.Equal(t, ExitUsage, res.code)
			require.Contains(t, res.stderr, "Usage:")
			requireNotExist(t, out)
		})
	}
}

func TestExecuteMissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	res := execute(t, context.Background(), "-i", filepath.Join(dir, "nope.txt"), "-o", out)

	require.Equal(t, ExitInputOpen, res.code)
	require.Contains(t, res.stderr, "open input")
	require.NotContains(t, res.stderr, "Usage:")
	requireNotExist(t, out)
}

func TestExecuteOutputOpenError(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "aaab")

	res := execute(t, context.Background(), "-i", in, "-o", filepath.Join(dir, "missing", "out.txt"))

	require.Equal(t, ExitOutputOpen, res.code)
	require.Contains(t, res.stderr, "open output")
}

func TestExecuteConfigErrorsTouchNothing(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "unknown_rule_set", args: []string{"--rules", "cobol"}},
		{name: "unknown_policy", args: []string{"--on-no-match", "skip"}},
		{name: "negative_read_size", args: []string{"--read-size", "-1"}},
		{name: "negative_buffer_size", args: []string{"--buffer-size", "-1"}},
		{name: "unknown_warnings_policy", args: []string{"--warnings-policy", "forget"}},
		{name: "unknown_encoding", args: []string{"--encoding", "klingon-8"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			in := writeInput(t, dir, "aaab")
			out := filepath.Join(dir, "out.txt")

			args := append([]string{"-i", in, "-o", out}, tc.args...)
			res := execute(t, context.Background(), args...)

			require.Equal(t, ExitUsage, res.code)
			require.Contains(t, res.stderr, "Error:")
			requireNotExist(t, out)
		})
	}
}

func TestExecuteNoMatch(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "aab?b")
	out := filepath.Join(dir, "out.txt")

	res := execute(t, context.Background(), "-i", in, "-o", out, "-r", "demo")

	require.Equal(t, ExitScanFailure, res.code)
	require.Contains(t, res.stderr, "offset 3")

	// what was scanned before the failure is flushed
	require.Equal(t, "AB", readOutput(t, out))
}

func TestExecuteDebugDumpsTokens(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "int x; @")
	out := filepath.Join(dir, "out.txt")

	res := execute(t, context.Background(), "-i", in, "-o", out, "-r", "decaf", "-d")

	require.Equal(t, ExitOK, res.code, res.stderr)
	require.Equal(t, "int\nT_ID x\n;\nUNDEFINED_TOKEN\n", readOutput(t, out))
	require.Equal(t,
		"T_ID\t\"int\"\nSKIP\t\" \"\nT_ID\t\"x\"\nOP_PUNCTUATION\t\";\"\nSKIP\t\" \"\nMISMATCH\t\"@\"\n",
		res.stdout,
	)
}

func TestExecuteWarningsPolicy(t *testing.T) {
	testCases := []struct {
		policy string
		want   int
	}{
		{policy: "keep", want: 3},
		{policy: "none", want: 0},
		{policy: "drop", want: 2},
		{policy: "truncate", want: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.policy, func(t *testing.T) {
			dir := t.TempDir()
			in := writeInput(t, dir, "xyaz")
			out := filepath.Join(dir, "out.txt")

			config := testConfig
			config.MaxWarnings = 2

			var stdout, stderr bytes.Buffer
			code := Execute(context.Background(), []string{
				"-i", in, "-o", out, "-r", "demo",
				"--on-no-match", "echo",
				"--warnings-policy", tc.policy,
				"--log-level", "warn",
			}, &stdout, &stderr, config)

			require.Equal(t, ExitOK, code, stderr.String())
			require.Equal(t, "xyAz", readOutput(t, out))
			require.Equal(t, tc.want, strings.Count(stderr.String(), "no rule matches"))
		})
	}
}

func TestExecuteCanceled(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "aaab")
	out := filepath.Join(dir, "out.txt")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := execute(t, ctx, "-i", in, "-o", out, "-r", "demo")

	require.Equal(t, ExitScanFailure, res.code)
	require.Contains(t, res.stderr, "context canceled")

	// the output was opened, so it exists, but nothing was scanned into it
	require.Equal(t, "", readOutput(t, out))
}

func TestExecuteHelp(t *testing.T) {
	res := execute(t, context.Background(), "--help")

	require.Equal(t, ExitOK, res.code)
	require.Contains(t, res.stdout, "decaf, demo, passthrough")
}

func TestExitCode(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "usage", err: &UsageError{Err: errors.New("x")}, want: ExitUsage},
		{name: "config", err: lexer.NewConfigError(lexer.IssueNegativeLimit, errors.New("x")), want: ExitUsage},
		{name: "no_match", err: &lexer.NoMatchError{Pos: 3, Char: '@'}, want: ExitScanFailure},
		{name: "read", err: &lexer.ScanIOError{Op: lexer.OpRead, Err: errors.New("x")}, want: ExitScanFailure},
		{name: "too_long", err: lexer.ErrTokenTooLong, want: ExitScanFailure},
		{name: "unknown_encoding", err: stream.CheckEncoding("klingon-8"), want: ExitUsage},
		{name: "input_open", err: &stream.InputOpenError{Path: "x", Err: os.ErrNotExist}, want: ExitInputOpen},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
