package errors

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest display name accepted for a participant.
const MaxNameLength = 256

// ValidateName validates a participant display name.
//
// The rules are:
//   - No empty names (after trimming whitespace)
//   - Valid UTF-8
//   - No control characters or null bytes
//   - Maximum length of MaxNameLength characters
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidRecord, "participant name cannot be empty")
	}

	if !utf8.ValidString(name) {
		return New(ErrCodeInvalidRecord, "participant name is not valid UTF-8")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return New(ErrCodeInvalidRecord, "participant name too long (max %d characters)", MaxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidRecord, "participant name contains invalid control characters")
		}
	}

	return nil
}

// ValidateOutputPath validates a file path that draw results are written to.
// Empty means standard output and is accepted.
func ValidateOutputPath(path string) error {
	if path == "" {
		return nil
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidInput, "output path %q is a directory", path)
	}

	return nil
}
