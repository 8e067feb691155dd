package models

import (
	"errors"
	"fmt"
)

// ErrInvalidCountryCode is returned when a value is not a two-letter ISO 3166-1 alpha-2 code.
var ErrInvalidCountryCode = errors.New("invalid country code")

const countryCodeLength = 2

// CountryCode is a validated two-letter ISO 3166-1 alpha-2 country code, e.g. "DE".
// The zero value means "no country".
type CountryCode string

// NewCountryCode validates code and returns it as a CountryCode.
// The code must consist of exactly two uppercase ASCII letters.
func NewCountryCode(code string) (CountryCode, error) {
	if len(code) != countryCodeLength {
		return "", fmt.Errorf("%w: %q must have exactly %d characters", ErrInvalidCountryCode, code, countryCodeLength)
	}

	for i := range len(code) {
		if code[i] < 'A' || code[i] > 'Z' {
			return "", fmt.Errorf("%w: %q must be uppercase alphabetic", ErrInvalidCountryCode, code)
		}
	}

	return CountryCode(code), nil
}

// String returns the code itself.
func (c CountryCode) String() string {
	return string(c)
}

// IsZero reports whether no country code is set.
func (c CountryCode) IsZero() bool {
	return c == ""
}
