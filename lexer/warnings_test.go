package lexer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNewWarnings(t *testing.T, policy WarningOverflowPolicy, capacity int) Warnings {
	t.Helper()
	w, err := NewWarnings(policy, capacity)
	require.NoError(t, err)
	return w
}

func TestNewWarningsConfigErrors(t *testing.T) {
	testCases := []struct {
		name      string
		policy    WarningOverflowPolicy
		capacity  int
		wantIssue Issue
	}{
		{name: "negative_capacity", policy: WarnOverflowDrop, capacity: -1, wantIssue: IssueNegativeWarningsCap},
		{name: "unknown_policy", policy: WarningOverflowPolicy(42), capacity: 1, wantIssue: IssueInvalidPolicy},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewWarnings(tc.policy, tc.capacity)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce), "expected *ConfigError, got %T (%v)", err, err)
			require.Equal(t, tc.wantIssue, ce.Issue)
		})
	}
}

func TestWarningsOverflow(t *testing.T) {
	testCases := []struct {
		name         string
		policy       WarningOverflowPolicy
		capacity     int
		added        int
		wantPos      []int64
		wantOverflow bool
		wantDropped  int
		wantDropPos  int64
	}{
		{name: "keep_ignores_capacity", policy: WarnOverflowKeep, capacity: 2, added: 4, wantPos: []int64{0, 1, 2, 3}},
		{name: "none_records_nothing", policy: WarnOverflowNone, capacity: 3, added: 2},
		{name: "drop_under_capacity", policy: WarnOverflowDrop, capacity: 3, added: 2, wantPos: []int64{0, 1}},
		{
			name: "drop_keeps_first", policy: WarnOverflowDrop, capacity: 3, added: 5,
			wantPos: []int64{0, 1, 2}, wantOverflow: true, wantDropPos: 3,
		},
		{
			// the marker takes the third slot and shares the first dropped position
			name: "truncate_counts_rest", policy: WarnOverflowTruncate, capacity: 3, added: 5,
			wantPos: []int64{0, 1, 2}, wantOverflow: true, wantDropped: 3, wantDropPos: 2,
		},
		{
			name: "truncate_zero_capacity", policy: WarnOverflowTruncate, capacity: 0, added: 2,
			wantOverflow: true, wantDropped: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := mustNewWarnings(t, tc.policy, tc.capacity)

			for i := 0; i < tc.added; i++ {
				w.Add(Warning{Issue: IssueUnmatchedInput, Pos: int64(i)})
			}

			var gotPos []int64
			for _, item := range w.List() {
				gotPos = append(gotPos, item.Pos)
			}

			require.Equal(t, tc.wantPos, gotPos)
			require.Equal(t, tc.wantOverflow, w.IsOverflow())
			require.Equal(t, tc.wantDropped, w.DroppedCount())
			require.Equal(t, tc.wantDropPos, w.FirstDropPos())
		})
	}
}

func TestWarningsTruncateMarker(t *testing.T) {
	w := mustNewWarnings(t, WarnOverflowTruncate, 2)

	for i := 0; i < 4; i++ {
		w.Add(Warning{Issue: IssueUnmatchedInput, Pos: int64(10 * i)})
	}

	require.Len(t, w.List(), 2)
	require.Equal(t, IssueUnmatchedInput, w.List()[0].Issue)
	require.Equal(t, IssueWarningsTruncated, w.List()[1].Issue)
	require.Equal(t, int64(10), w.List()[1].Pos)
	require.Equal(t, 3, w.DroppedCount())
}

func TestParseWarningOverflowPolicy(t *testing.T) {
	for _, p := range []WarningOverflowPolicy{WarnOverflowKeep, WarnOverflowNone, WarnOverflowDrop, WarnOverflowTruncate} {
		parsed, err := ParseWarningOverflowPolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, parsed)
	}

	p, err := ParseWarningOverflowPolicy("")
	require.NoError(t, err)
	require.Equal(t, WarnOverflowTruncate, p)

	_, err = ParseWarningOverflowPolicy("forget")
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, IssueInvalidPolicy, ce.Issue)

	require.Equal(t, "WarningOverflowPolicy(7)", WarningOverflowPolicy(7).String())
}
