package errors

import (
	"math"
	"strings"
	"unicode"
)

// maxKeyLength bounds node names and flow keys.
const maxKeyLength = 256

// ValidateFinite rejects NaN and infinite values.
// The what argument names the value in the error message (e.g. "node \"a\" value").
func ValidateFinite(what string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %g", what, v)
	}
	return nil
}

// ValidateNonNegative rejects NaN, infinite and negative values.
func ValidateNonNegative(what string, v float64) error {
	if err := ValidateFinite(what, v); err != nil {
		return err
	}
	if v < 0 {
		return New(ErrCodeInvalidInput, "%s must be non-negative, got %g", what, v)
	}
	return nil
}

// ValidateCanvas validates a target canvas size.
//
// Validation rules:
//   - Width and height must be finite
//   - Width and height must be strictly positive
func ValidateCanvas(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidCanvas, "canvas size must be finite, got %gx%g", width, height)
	}
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidCanvas, "canvas size must be positive, got %gx%g", width, height)
	}
	return nil
}

// ValidateKey validates a node name or flow endpoint key.
//
// The validation rules are intentionally conservative:
//   - No empty keys
//   - No control characters
//   - Maximum length of 256 characters
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return New(ErrCodeInvalidInput, "key too long (max %d characters)", maxKeyLength)
	}

	for _, r := range key {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "key %q contains control characters", strings.ToValidUTF8(key, "?"))
		}
	}

	return nil
}

// ValidateMatrix checks that m is rectangular with finite, non-negative entries.
// If square is true, the matrix must also have as many rows as columns.
func ValidateMatrix(m [][]float64, square bool) error {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return New(ErrCodeInvalidMatrix, "row %d has %d columns, want %d", i, len(row), cols)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return New(ErrCodeInvalidMatrix, "entry [%d][%d] must be finite and non-negative, got %g", i, j, v)
			}
		}
	}
	if square && cols != len(m) {
		return New(ErrCodeInvalidMatrix, "matrix must be square, got %dx%d", len(m), cols)
	}
	return nil
}
