package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// nodeRefRegex matches manifest node references: letters, digits,
// underscores and hyphens.
var nodeRefRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidateNodeRef validates a manifest node reference.
// References are manifest-local names used to connect edges to nodes;
// keeping them to a safe character set makes them usable as cache key
// components and file name fragments without escaping.
//
// The validation rules are:
//   - No empty references
//   - Only letters, digits, underscores and hyphens
//   - Maximum length of 128 characters
func ValidateNodeRef(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidNode, "node reference cannot be empty")
	}

	if len(ref) > 128 {
		return New(ErrCodeInvalidNode, "node reference too long (max 128 characters)")
	}

	if !nodeRefRegex.MatchString(ref) {
		return New(ErrCodeInvalidNode, "invalid node reference %q (allowed: letters, digits, underscore, hyphen)", ref)
	}

	return nil
}

// ValidateDiagramName validates a stored diagram name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateDiagramName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "diagram name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "diagram name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "diagram name contains invalid control characters")
		}
	}

	return nil
}

// ValidateSourcePath validates a local manifest source path.
// The path "-" (stdin) is accepted. Absolute and relative paths are
// both allowed; the checks guard against null bytes and runaway input,
// not against location.
func ValidateSourcePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidSource, "source path cannot be empty")
	}
	if path == "-" {
		return nil
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidSource, "source path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || (unicode.IsControl(r) && r != '\t') {
			return New(ErrCodeInvalidSource, "source path contains invalid characters")
		}
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidSource, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidSource, "URL must use http or https scheme")
	}

	return nil
}

// IsURL reports whether a manifest source names a remote location.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
