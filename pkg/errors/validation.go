package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the maximum number of characters (Unicode code points)
// a note may contain.
const MaxTextLength = 128

// ValidateNoteText validates the text of a new note.
//
// The rules match what the editor accepts from its input prompt:
//   - Text must contain at least one non-whitespace character
//   - Text must be at most MaxTextLength characters long
//
// Length is measured in code points, not bytes, so "café" counts as 4.
func ValidateNoteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return New(ErrCodeValidation, "note text cannot be empty")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return New(ErrCodeValidation, "note text too long (max %d characters, got %d)", MaxTextLength, n)
	}
	return nil
}

// ValidatePath validates a graph file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
