package errors

import (
	"strings"
	"unicode"
)

// MaxBins bounds the histogram bin count accepted from configuration.
const MaxBins = 1000

// ValidateBins validates a histogram bin count.
func ValidateBins(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfig, "bin count must be at least 1, got %d", n)
	}
	if n > MaxBins {
		return New(ErrCodeInvalidConfig, "bin count too large (max %d), got %d", MaxBins, n)
	}
	return nil
}

// ValidateTitle validates a chart title. Titles become part of the output
// filename, so they must be a plain name without path components.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return New(ErrCodeInvalidConfig, "chart title cannot be empty")
	}

	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "chart title contains invalid control characters")
		}
	}

	if strings.ContainsAny(title, "/\\") {
		return New(ErrCodeInvalidConfig, "chart title cannot contain path separators")
	}

	if strings.Contains(title, "..") {
		return New(ErrCodeInvalidConfig, "chart title cannot contain path traversal sequences (..)")
	}

	return nil
}

// ValidateInputPath validates the edge list path.
func ValidateInputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "input path cannot be empty")
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidConfig, "input path contains a null byte")
	}
	return nil
}
