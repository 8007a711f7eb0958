// Package validator holds the field checks shared by domain entities.
// Every check returns nil or a *domain.ValidationError naming the field, so
// callers can chain them and stop at the first failure.
package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/devflix-admin/internal/domain"
)

// NotNull fails when value is nil.
func NotNull[T any](value *T, field string) error {
	if value == nil {
		return domain.NewValidationError(field, field+" should not be null")
	}
	return nil
}

// NotNullOrEmpty fails when value is nil, empty, or only whitespace.
func NotNullOrEmpty(value *string, field string) error {
	return NotNullOrEmptyMessage(value, field, field+" should not be null or empty")
}

// NotNullOrEmptyMessage is NotNullOrEmpty reporting message instead of the
// shared wording. Entities use it where their published messages differ.
func NotNullOrEmptyMessage(value *string, field, message string) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return domain.NewValidationError(field, message)
	}
	return nil
}

// MinLength fails when value has fewer than minLen characters.
// Characters are counted as Unicode code points.
func MinLength(value string, minLen int, field string) error {
	if utf8.RuneCountInString(value) < minLen {
		return domain.NewValidationError(field,
			fmt.Sprintf("%s should be at least %d characters long", field, minLen))
	}
	return nil
}

// MaxLength fails when value has more than maxLen characters.
// Characters are counted as Unicode code points.
func MaxLength(value string, maxLen int, field string) error {
	if utf8.RuneCountInString(value) > maxLen {
		return domain.NewValidationError(field,
			fmt.Sprintf("%s should be less or equal %d characters long", field, maxLen))
	}
	return nil
}
