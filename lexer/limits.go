package lexer

import "fmt"

// DefaultReadSize is the initial size of the [Engine] input buffer when [Limits.ReadSize] is zero.
const DefaultReadSize = 64 * 1024

// Limits define upper bounds used during scanning to keep the memory footprint of a single
// token under control.
type Limits struct {

	// ReadSize is the initial capacity of the input buffer, so the largest single read
	// request made to the input. The buffer grows while a match is still in progress,
	// so ReadSize never limits token length.
	//
	// Zero means [DefaultReadSize]. Measured in bytes, not UTF-8 runes.
	ReadSize int

	// MaxTokenLen defines the maximum number of bytes a single token may span.
	//
	// Matchers are never fed more than MaxTokenLen+1 bytes past the cursor; a match reaching
	// past the limit stops the scan with [ErrTokenTooLong]. Zero means no limit.
	MaxTokenLen int
}

// Validate checks if the limits are not negative.
// Return [ConfigError] if at least on of the values is negative.
func (l Limits) Validate() error {

	values := [2]int{
		l.ReadSize,
		l.MaxTokenLen,
	}

	names := [2]string{
		"ReadSize",
		"MaxTokenLen",
	}

	for i := range values {
		if values[i] < 0 {
			err := fmt.Errorf("%s must be >= 0, got %d", names[i], values[i])
			return NewConfigError(IssueNegativeLimit, err)
		}
	}

	return nil
}

// readSize returns the effective initial buffer size.
func (l Limits) readSize() int {
	if l.ReadSize == 0 {
		return DefaultReadSize
	}
	return l.ReadSize
}
