package segment

import (
	"errors"
	"fmt"
)

// Sentinel errors for segmentation.
var (
	// ErrLimitTooSmall indicates a word without internal whitespace is longer
	// than the maximum chunk length and cannot be placed in any chunk.
	ErrLimitTooSmall = errors.New("maximum length is smaller than a word")

	// ErrInvalidLimit indicates a maximum chunk length below 1.
	ErrInvalidLimit = errors.New("maximum length must be at least 1")
)

// LimitError reports a maximum length that cannot segment the input.
type LimitError struct {
	Limit      int    // Configured maximum chunk length
	Word       string // Offending word, empty for ErrInvalidLimit
	WordLength int    // Rune count of Word
	Offset     int    // Byte offset of Word in the trimmed text
	Err        error  // ErrLimitTooSmall or ErrInvalidLimit
}

// Error implements the error interface.
func (e *LimitError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("segment: limit %d: %v", e.Limit, e.Err)
	}
	return fmt.Sprintf("segment: limit %d: %v (word of length %d at offset %d: %q)",
		e.Limit, e.Err, e.WordLength, e.Offset, preview(e.Word))
}

// Unwrap returns the underlying sentinel for errors.Is support.
func (e *LimitError) Unwrap() error {
	return e.Err
}

// IsLimitError reports whether err was caused by an unusable maximum length.
func IsLimitError(err error) bool {
	return errors.Is(err, ErrLimitTooSmall) || errors.Is(err, ErrInvalidLimit)
}

const previewRunes = 32

func preview(word string) string {
	runes := []rune(word)
	if len(runes) <= previewRunes {
		return word
	}
	return string(runes[:previewRunes]) + "..."
}
