// Package readability scores text difficulty with language-specific
// formulas.
//
// Each Formula is validated for particular language families only:
// Flesch Reading Ease covers English and, with the Amstad constants, German;
// the Flesch-Kincaid grades are English-only; the Wiener Sachtextformel
// variants are German-only; Ateşman and Bezirci-Yılmaz are Turkish-only.
// Scoring a text with a formula that does not support the engine's language
// logs a warning and returns 0.
//
// An Engine is immutable after construction and safe for concurrent use as
// long as its Tokenizer and Syllabifier are.
package readability

import (
	"fmt"
	"strings"

	"github.com/smoothtext/smoothtext/language"
)

// Formula identifies a readability formula.
type Formula int

const (
	// FleschReadingEase is the classic 0-100 ease score; higher is easier.
	// For German it uses the Amstad re-calibration of the constants.
	FleschReadingEase Formula = iota

	// FleschKincaidGrade maps English text to a US school grade level.
	FleschKincaidGrade

	// FleschKincaidGradeSimplified is the rounded-coefficient variant of
	// FleschKincaidGrade.
	FleschKincaidGradeSimplified

	// Atesman is the Turkish 0-100 ease score by Ateşman.
	Atesman

	// BezirciYilmaz is the Turkish grade-level score by Bezirci and Yılmaz;
	// higher is harder.
	BezirciYilmaz

	// WienerSachtextformel1 through WienerSachtextformel4 are the four
	// published variants of the German grade-level formula; higher is
	// harder.
	WienerSachtextformel1
	WienerSachtextformel2
	WienerSachtextformel3
	WienerSachtextformel4
)

// WienerSachtextformel is the conventional default variant (the third).
const WienerSachtextformel = WienerSachtextformel3

// String returns the formula's conventional display name.
func (f Formula) String() string {
	switch f {
	case FleschReadingEase:
		return "Flesch Reading Ease"
	case FleschKincaidGrade:
		return "Flesch-Kincaid Grade"
	case FleschKincaidGradeSimplified:
		return "Flesch-Kincaid Grade Simplified"
	case Atesman:
		return "Ateşman"
	case BezirciYilmaz:
		return "Bezirci-Yılmaz"
	case WienerSachtextformel1:
		return "Wiener Sachtextformel 1"
	case WienerSachtextformel2:
		return "Wiener Sachtextformel 2"
	case WienerSachtextformel3:
		return "Wiener Sachtextformel 3"
	case WienerSachtextformel4:
		return "Wiener Sachtextformel 4"
	default:
		return fmt.Sprintf("Formula(%d)", int(f))
	}
}

// formulasByFamily is the static catalog of which formulas are validated
// for which language family.
var formulasByFamily = map[language.Language][]Formula{
	language.English: {
		FleschReadingEase,
		FleschKincaidGrade,
		FleschKincaidGradeSimplified,
	},
	language.German: {
		FleschReadingEase,
		WienerSachtextformel1,
		WienerSachtextformel2,
		WienerSachtextformel3,
		WienerSachtextformel4,
	},
	language.Turkish: {
		Atesman,
		BezirciYilmaz,
	},
}

// Supports reports whether the formula is validated for lang.
func (f Formula) Supports(lang language.Language) bool {
	for _, g := range formulasByFamily[lang.Family()] {
		if g == f {
			return true
		}
	}
	return false
}

// FormulasFor returns the formulas validated for lang, in catalog order.
// Unknown languages get nil.
func FormulasFor(lang language.Language) []Formula {
	catalog := formulasByFamily[lang.Family()]
	if len(catalog) == 0 {
		return nil
	}
	out := make([]Formula, len(catalog))
	copy(out, catalog)
	return out
}

// ParseFormula resolves a case-insensitive formula name. Both the display
// names ("Flesch Reading Ease", "Ateşman") and compact aliases without
// spaces, hyphens, or diacritics ("fleschreadingease", "atesman",
// "bezirci-yilmaz", "wst3") are accepted.
func ParseFormula(name string) (Formula, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, old := range []string{" ", "-", "_"} {
		key = strings.ReplaceAll(key, old, "")
	}
	key = strings.NewReplacer("ş", "s", "ı", "i").Replace(key)

	switch key {
	case "fleschreadingease", "flesch":
		return FleschReadingEase, nil
	case "fleschkincaidgrade", "fleschkincaid":
		return FleschKincaidGrade, nil
	case "fleschkincaidgradesimplified":
		return FleschKincaidGradeSimplified, nil
	case "atesman":
		return Atesman, nil
	case "bezirciyilmaz":
		return BezirciYilmaz, nil
	case "wienersachtextformel", "wst":
		return WienerSachtextformel, nil
	case "wienersachtextformel1", "wst1":
		return WienerSachtextformel1, nil
	case "wienersachtextformel2", "wst2":
		return WienerSachtextformel2, nil
	case "wienersachtextformel3", "wst3":
		return WienerSachtextformel3, nil
	case "wienersachtextformel4", "wst4":
		return WienerSachtextformel4, nil
	default:
		return 0, fmt.Errorf("readability: unknown formula %q", name)
	}
}
