package lexer

import (
	"fmt"
	"strconv"
)

// Warning is a non-fatal problem found while scanning, such as input copied by the
// [NoMatchEcho] policy.
type Warning struct {
	Issue Issue

	// Pos is the input byte offset the Warning refers to.
	Pos int64

	Description string
}

// WarningOverflowPolicy decides what a [Warnings] collector does once it holds its capacity.
type WarningOverflowPolicy int

const (
	// WarnOverflowKeep ignores the capacity and records everything.
	WarnOverflowKeep WarningOverflowPolicy = iota

	// WarnOverflowNone records nothing at all.
	WarnOverflowNone

	// WarnOverflowDrop keeps the first Warnings up to the capacity and silently discards the rest.
	WarnOverflowDrop

	// WarnOverflowTruncate works like WarnOverflowDrop, but gives the last slot to a marker
	// Warning and counts what was discarded.
	WarnOverflowTruncate
)

var overflowPolicyNames = [...]string{
	WarnOverflowKeep:     "keep",
	WarnOverflowNone:     "none",
	WarnOverflowDrop:     "drop",
	WarnOverflowTruncate: "truncate",
}

// ParseWarningOverflowPolicy converts a policy name into a WarningOverflowPolicy.
// The empty string means [WarnOverflowTruncate].
func ParseWarningOverflowPolicy(s string) (WarningOverflowPolicy, error) {
	if s == "" {
		return WarnOverflowTruncate, nil
	}

	for p, name := range overflowPolicyNames {
		if name == s {
			return WarningOverflowPolicy(p), nil
		}
	}

	return WarnOverflowTruncate, NewConfigError(IssueInvalidPolicy, fmt.Errorf("unknown warnings policy %q", s))
}

func (p WarningOverflowPolicy) String() string {
	if p >= 0 && int(p) < len(overflowPolicyNames) {
		return overflowPolicyNames[p]
	}
	return "WarningOverflowPolicy(" + strconv.Itoa(int(p)) + ")"
}

// Warnings collects the Warnings of one scan. Unmatched binary input under the echo policy
// yields one Warning per byte, so the collector has a capacity and an overflow policy.
type Warnings struct {
	policy   WarningOverflowPolicy
	capacity int
	list     []Warning

	overflowed   bool
	dropped      int
	firstDropPos int64
}

// NewWarnings creates a collector. It returns a [ConfigError] if capacity is negative
// or the policy is unknown.
func NewWarnings(policy WarningOverflowPolicy, capacity int) (Warnings, error) {
	if capacity < 0 {
		return Warnings{}, NewConfigError(
			IssueNegativeWarningsCap,
			fmt.Errorf("warnings capacity must be >= 0, got %d", capacity),
		)
	}

	if policy < 0 || int(policy) >= len(overflowPolicyNames) {
		return Warnings{}, NewConfigError(IssueInvalidPolicy, fmt.Errorf("unknown warnings policy %d", policy))
	}

	return Warnings{
		policy:   policy,
		capacity: capacity,
		list:     make([]Warning, 0, capacity),
	}, nil
}

// IsOverflow reports whether at least one Warning did not fit.
func (w *Warnings) IsOverflow() bool {
	return w.overflowed
}

// DroppedCount is the number of Warnings discarded under [WarnOverflowTruncate].
func (w *Warnings) DroppedCount() int {
	return w.dropped
}

// FirstDropPos is the offset of the first Warning that did not fit.
func (w *Warnings) FirstDropPos() int64 {
	return w.firstDropPos
}

func (w *Warnings) List() []Warning {
	return w.list
}

// Add records item according to the overflow policy.
func (w *Warnings) Add(item Warning) {
	switch w.policy {
	case WarnOverflowNone:
		return
	case WarnOverflowKeep:
		w.list = append(w.list, item)
		return
	}

	room := w.capacity
	if w.policy == WarnOverflowTruncate {
		// the last slot belongs to the marker
		room = max(room-1, 0)
	}

	if !w.overflowed && len(w.list) < room {
		w.list = append(w.list, item)
		return
	}

	if !w.overflowed {
		w.overflowed = true
		w.firstDropPos = item.Pos

		if w.policy == WarnOverflowTruncate && w.capacity > 0 {
			w.list = append(w.list, Warning{
				Issue:       IssueWarningsTruncated,
				Pos:         item.Pos,
				Description: "too many warnings, the rest are counted only",
			})
		}
	}

	if w.policy == WarnOverflowTruncate {
		w.dropped++
	}
}
