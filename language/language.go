// Package language identifies the natural languages supported by smoothtext.
//
// Languages are organized in families: a family is the base language
// (English, German, Turkish) and may have regional variants (English (United
// States), German (Germany), ...). Identifiers are parsed case-insensitively
// from full names, ISO 639-1 two-letter codes, or ISO 639-2 three-letter
// codes, with an optional region suffix separated by '-' or '_'
// (e.g. "en-US" and "en_us" are equivalent).
//
// Parsing a bare family identifier resolves to the family's default variant,
// which is the last-listed variant of that family: "en" parses to EnglishUS,
// "de" to GermanDE, and "tr" to TurkishTR.
//
// All functions are safe for concurrent use by multiple goroutines.
package language

import (
	"errors"
	"fmt"
	"strings"
)

// Language identifies a supported natural language or regional variant.
type Language int

const (
	Unknown   Language = iota // zero value, no language
	English                   // English family
	EnglishGB                 // English (Great Britain)
	EnglishUS                 // English (United States), default for "en"
	German                    // German family
	GermanDE                  // German (Germany), default for "de"
	Turkish                   // Turkish family
	TurkishTR                 // Turkish (Türkiye), default for "tr"
)

// ErrUnknownLanguage is returned by Parse for identifiers that do not name
// a supported language.
var ErrUnknownLanguage = errors.New("language: unknown language")

// names maps Language values to their full display names.
var names = [...]string{
	Unknown:   "Unknown",
	English:   "English",
	EnglishGB: "English (Great Britain)",
	EnglishUS: "English (United States)",
	German:    "German",
	GermanDE:  "German (Germany)",
	Turkish:   "Turkish",
	TurkishTR: "Turkish (Türkiye)",
}

// alpha2 maps Language values to ISO 639-1 codes with optional region.
var alpha2 = [...]string{
	Unknown:   "",
	English:   "en",
	EnglishGB: "en-gb",
	EnglishUS: "en-us",
	German:    "de",
	GermanDE:  "de-de",
	Turkish:   "tr",
	TurkishTR: "tr-tr",
}

// alpha3 maps Language values to ISO 639-2 codes with optional region.
var alpha3 = [...]string{
	Unknown:   "",
	English:   "eng",
	EnglishGB: "eng-gb",
	EnglishUS: "eng-us",
	German:    "deu",
	GermanDE:  "deu-de",
	Turkish:   "tur",
	TurkishTR: "tur-tr",
}

// families maps every variant to its base language. Families map to
// themselves, so Family is idempotent.
var families = map[Language]Language{
	English:   English,
	EnglishGB: English,
	EnglishUS: English,
	German:    German,
	GermanDE:  German,
	Turkish:   Turkish,
	TurkishTR: Turkish,
}

// variants maps each family to its regional variants. The last entry is the
// family's default variant, the one a bare family identifier parses to.
var variants = map[Language][]Language{
	English: {EnglishGB, EnglishUS},
	German:  {GermanDE},
	Turkish: {TurkishTR},
}

// String returns the full name of the language, e.g. "English (United States)".
func (l Language) String() string {
	if int(l) > 0 && int(l) < len(names) {
		return names[l]
	}
	return names[Unknown]
}

// Alpha2 returns the lowercase ISO 639-1 two-letter code of the language,
// without the region suffix.
func (l Language) Alpha2() string {
	if int(l) > 0 && int(l) < len(alpha2) {
		return alpha2[l][:2]
	}
	return ""
}

// Alpha3 returns the lowercase ISO 639-2 three-letter code of the language,
// without the region suffix.
func (l Language) Alpha3() string {
	if int(l) > 0 && int(l) < len(alpha3) {
		return alpha3[l][:3]
	}
	return ""
}

// Family returns the base language of l. Regional variants return their
// family; families return themselves; Unknown returns Unknown.
func (l Language) Family() Language {
	return families[l]
}

// Variants returns the regional variants sharing l's family.
// The returned slice is a copy and may be modified by the caller.
func (l Language) Variants() []Language {
	vs := variants[l.Family()]
	out := make([]Language, len(vs))
	copy(out, vs)
	return out
}

// Values returns every supported language, families and variants alike.
func Values() []Language {
	return []Language{English, EnglishGB, EnglishUS, German, GermanDE, Turkish, TurkishTR}
}

// Parse resolves a language identifier to a Language value.
//
// Accepted forms, all case-insensitive, with '-' and '_' interchangeable:
//   - full names: "English", "english (united states)"
//   - ISO 639-1: "en", "en-US", "en_gb"
//   - ISO 639-2: "eng", "deu-de", "tur"
//
// A bare family identifier resolves to the family's default variant.
// Unsupported identifiers return ErrUnknownLanguage.
func Parse(id string) (Language, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.ReplaceAll(id, "_", "-")
	if id == "" {
		return Unknown, fmt.Errorf("%w: empty identifier", ErrUnknownLanguage)
	}

	for _, l := range Values() {
		if id == strings.ToLower(names[l]) || id == alpha2[l] || id == alpha3[l] {
			if l == l.Family() {
				vs := variants[l]
				return vs[len(vs)-1], nil
			}
			return l, nil
		}
	}

	return Unknown, fmt.Errorf("%w: %q", ErrUnknownLanguage, id)
}

// ParseMultiple resolves several identifiers at once. Each argument may also
// be a comma-separated list. Identifiers that do not parse are dropped
// silently. The result is deduplicated; its order is not guaranteed.
func ParseMultiple(ids ...string) []Language {
	seen := make(map[Language]bool, len(ids))
	for _, id := range ids {
		for _, part := range strings.Split(id, ",") {
			l, err := Parse(part)
			if err != nil {
				continue
			}
			seen[l] = true
		}
	}

	out := make([]Language, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	return out
}
