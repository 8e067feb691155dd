// Package locale supplies the language in which geocoding results are requested.
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Provider returns the language code of the current locale, e.g. "de" or "en-GB".
// An empty string means that no language preference is configured.
type Provider interface {
	CurrentLanguage() string
}

// Static is a Provider with a fixed language code.
type Static struct {
	code string
}

// NewStatic parses code as a BCP 47 language tag and returns a Provider for its
// canonical form. An empty code yields a Provider without language preference.
func NewStatic(code string) (*Static, error) {
	if code == "" {
		return &Static{}, nil
	}

	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse language %q: %w", code, err)
	}

	return &Static{code: tag.String()}, nil
}

// CurrentLanguage implements Provider.
func (s *Static) CurrentLanguage() string {
	if s == nil {
		return ""
	}
	return s.code
}

// None is a Provider without language preference.
var None Provider = &Static{}
