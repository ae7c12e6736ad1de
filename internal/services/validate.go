package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length caps applied before persistence.
const (
	MaxNameLen        = 200
	MaxMessageLen     = 2000
	MaxPhoneLen       = 50
	MaxSourcePageLen  = 200
	MaxDescriptionLen = 2000
)

// Product price bounds, in whole currency units.
const (
	MinPrice = 1
	MaxPrice = 1_000_000
)

var (
	ErrProductNameRequired = errors.New("product name is required")
	ErrPriceOutOfRange     = errors.New("price out of range")
)

// FieldTooLongError reports a free-text field exceeding its cap. The message
// is surfaced verbatim to the caller.
type FieldTooLongError struct {
	Max int
}

func (e *FieldTooLongError) Error() string {
	return fmt.Sprintf("Field too long (max %d characters).", e.Max)
}

// CleanText trims surrounding whitespace and bounds the length of a
// free-text field. Empty after trimming is allowed through as empty.
func CleanText(value string, max int) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	if utf8.RuneCountInString(v) > max {
		return "", &FieldTooLongError{Max: max}
	}
	return v, nil
}

// ValidateProductFields sanitizes the product free-text fields and checks
// the price bounds, returning the cleaned values.
func ValidateProductFields(name string, price int, description string) (string, int, string, error) {
	cleanName, err := CleanText(name, MaxNameLen)
	if err != nil {
		return "", 0, "", err
	}
	if cleanName == "" {
		return "", 0, "", ErrProductNameRequired
	}

	if price < MinPrice || price > MaxPrice {
		return "", 0, "", ErrPriceOutOfRange
	}

	cleanDesc, err := CleanText(description, MaxDescriptionLen)
	if err != nil {
		return "", 0, "", err
	}

	return cleanName, price, cleanDesc, nil
}
