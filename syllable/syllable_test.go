package syllable

import (
	"testing"

	"github.com/smoothtext/smoothtext/data"
	"github.com/smoothtext/smoothtext/hyphen"
	"github.com/smoothtext/smoothtext/language"
)

func TestNew(t *testing.T) {
	t.Parallel()

	enPatterns, err := hyphen.Compile(data.HyphenEnglish)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		lang    language.Language
		res     Resources
		wantErr bool
	}{
		{"turkish needs nothing", language.TurkishTR, Resources{}, false},
		{"english with patterns", language.EnglishUS, Resources{Patterns: enPatterns}, false},
		{"english without patterns", language.EnglishGB, Resources{}, true},
		{"german without patterns", language.GermanDE, Resources{}, true},
		{"german with patterns", language.GermanDE, Resources{Patterns: enPatterns}, false},
		{"unknown language", language.Unknown, Resources{Patterns: enPatterns}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := New(tt.lang, tt.res)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%v) succeeded, want error", tt.lang)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%v): %v", tt.lang, err)
			}
			if s == nil {
				t.Fatalf("New(%v) returned nil syllabifier", tt.lang)
			}
		})
	}
}

func TestFamilyVariantsShareSyllabifier(t *testing.T) {
	t.Parallel()

	// Variants of a family use the same splitting strategy; only the
	// family matters for construction.
	a, err := New(language.English, Resources{Patterns: mustCompile(t, data.HyphenEnglish)})
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(language.EnglishUS, Resources{Patterns: mustCompile(t, data.HyphenEnglish)})
	if err != nil {
		t.Fatal(err)
	}

	if a.Count("syllable") != b.Count("syllable") {
		t.Error("family and variant syllabifiers disagree")
	}
}

func mustCompile(t *testing.T, src []byte) *hyphen.Patterns {
	t.Helper()
	p, err := hyphen.Compile(src)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
