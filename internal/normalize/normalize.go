// Package normalize canonicalizes user-supplied names and identifiers before
// they reach SQL or cache keys.
package normalize

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxNameRunes bounds search input; trigram scoring on longer strings is meaningless.
const MaxNameRunes = 200

var (
	ErrEmpty    = errors.New("empty value")
	ErrTooLong  = fmt.Errorf("value longer than %d characters", MaxNameRunes)
	ErrEncoding = errors.New("malformed percent-encoding")
)

// PathValue percent-decodes a raw path segment. Routers hand back the raw
// segment when the request path contained escapes such as %2F.
func PathValue(raw string) (string, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return decoded, nil
}

// SearchName folds diacritics and collapses whitespace and control characters so "  José   Smith " searches as "Jose Smith".
func SearchName(raw string) (string, error) {
	if !utf8.ValidString(raw) {
		return "", ErrEncoding
	}
	fold := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if unicode.IsControl(r) {
				return ' '
			}
			return r
		}),
		norm.NFC,
	)
	folded, _, err := transform.String(fold, raw)
	if err != nil {
		return "", fmt.Errorf("normalize name: %w", err)
	}
	name := strings.Join(strings.Fields(folded), " ")
	if name == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(name) > MaxNameRunes {
		return "", ErrTooLong
	}
	return name, nil
}

// SBOEID trims and upper-cases a committee identifier. Lookups compare ids
// case-insensitively, so the canonical form is upper case.
func SBOEID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrEmpty
	}
	if utf8.RuneCountInString(id) > MaxNameRunes {
		return "", ErrTooLong
	}
	// Casers are stateful, so one is built per call.
	return cases.Upper(language.Und).String(id), nil
}
