package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateReportFilename validates a report file name taken from flags or
// the config file. Names are joined onto the output directory, so they must
// be plain relative paths that stay inside it.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 255 characters
//   - No null bytes or control characters
//   - No absolute paths
//   - No path traversal sequences (..)
func ValidateReportFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "report file name cannot be empty")
	}

	const maxNameLength = 255
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPath, "report file name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "report file name contains invalid characters")
		}
	}

	if filepath.IsAbs(name) || strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidPath, "report file name must be relative: %q", name)
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "report file name cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateFormat checks name against the list of supported output formats.
func ValidateFormat(name string, supported []string) error {
	for _, s := range supported {
		if name == s {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", name, strings.Join(supported, ", "))
}
