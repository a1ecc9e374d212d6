package language

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		want Language
	}{
		{"alpha2 family resolves to default variant", "en", EnglishUS},
		{"alpha2 uppercase", "EN", EnglishUS},
		{"alpha2 with region hyphen", "en-GB", EnglishGB},
		{"alpha2 with region underscore", "en_gb", EnglishGB},
		{"alpha3 family", "eng", EnglishUS},
		{"alpha3 with region", "eng-us", EnglishUS},
		{"full name family", "English", EnglishUS},
		{"full name variant", "english (great britain)", EnglishGB},
		{"german family", "de", GermanDE},
		{"german alpha3", "DEU", GermanDE},
		{"german region", "de_DE", GermanDE},
		{"turkish family", "tr", TurkishTR},
		{"turkish alpha3 region", "tur-tr", TurkishTR},
		{"turkish full name", "Turkish (Türkiye)", TurkishTR},
		{"surrounding whitespace", "  en  ", EnglishUS},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.id)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "xx", "french", "en-XX", "123", "日本語"} {
		got, err := Parse(id)
		if !errors.Is(err, ErrUnknownLanguage) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknownLanguage", id, err)
		}
		if got != Unknown {
			t.Errorf("Parse(%q) = %v, want Unknown", id, got)
		}
	}
}

func TestParseMultiple(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ids  []string
		want map[Language]bool
	}{
		{"comma separated", []string{"en,tr"}, map[Language]bool{EnglishUS: true, TurkishTR: true}},
		{"mixed args and garbage", []string{"en", "invalid", "tr"}, map[Language]bool{EnglishUS: true, TurkishTR: true}},
		{"duplicates collapse", []string{"en", "EN", "english"}, map[Language]bool{EnglishUS: true}},
		{"all garbage", []string{"xx", "yy"}, map[Language]bool{}},
		{"empty input", nil, map[Language]bool{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseMultiple(tt.ids...)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseMultiple(%v) = %v, want %d languages", tt.ids, got, len(tt.want))
			}
			for _, l := range got {
				if !tt.want[l] {
					t.Errorf("ParseMultiple(%v) contains unexpected %v", tt.ids, l)
				}
			}
		})
	}
}

func TestFamilyIdempotent(t *testing.T) {
	t.Parallel()

	for _, l := range Values() {
		if got := l.Family().Family(); got != l.Family() {
			t.Errorf("Family(Family(%v)) = %v, want %v", l, got, l.Family())
		}
	}
}

func TestVariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang Language
		want []Language
	}{
		{English, []Language{EnglishGB, EnglishUS}},
		{EnglishGB, []Language{EnglishGB, EnglishUS}},
		{German, []Language{GermanDE}},
		{TurkishTR, []Language{TurkishTR}},
	}

	for _, tt := range tests {
		got := tt.lang.Variants()
		if len(got) != len(tt.want) {
			t.Fatalf("%v.Variants() = %v, want %v", tt.lang, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.Variants()[%d] = %v, want %v", tt.lang, i, got[i], tt.want[i])
			}
		}
	}
}

func TestCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang   Language
		alpha2 string
		alpha3 string
	}{
		{English, "en", "eng"},
		{EnglishUS, "en", "eng"},
		{GermanDE, "de", "deu"},
		{Turkish, "tr", "tur"},
	}

	for _, tt := range tests {
		if got := tt.lang.Alpha2(); got != tt.alpha2 {
			t.Errorf("%v.Alpha2() = %q, want %q", tt.lang, got, tt.alpha2)
		}
		if got := tt.lang.Alpha3(); got != tt.alpha3 {
			t.Errorf("%v.Alpha3() = %q, want %q", tt.lang, got, tt.alpha3)
		}
	}
}

func TestEveryVariantHasFamily(t *testing.T) {
	t.Parallel()

	for _, l := range Values() {
		if l.Family() == Unknown {
			t.Errorf("%v has no family", l)
		}
		if len(l.Variants()) == 0 {
			t.Errorf("%v family has no variants", l)
		}
	}
}
