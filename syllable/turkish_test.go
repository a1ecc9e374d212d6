package syllable

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestTurkishSyllabify(t *testing.T) {
	t.Parallel()
	s := NewTurkish()

	tests := []struct {
		word string
		want []string
	}{
		{"merhaba", []string{"mer", "ha", "ba"}},
		{"kitap", []string{"ki", "tap"}},
		{"İstanbul", []string{"İs", "tan", "bul"}},
		{"ağaç", []string{"a", "ğaç"}},
		{"ev", []string{"ev"}},
		{"o", []string{"o"}},
		{"türkçe", []string{"türk", "çe"}},
		{"42", []string{"42"}},
		{"!", []string{"!"}},
		{"", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			got, err := s.Syllabify(tt.word)
			if err != nil {
				t.Fatalf("Syllabify(%q) returned error: %v", tt.word, err)
			}
			if strings.Join(got, ".") != strings.Join(tt.want, ".") {
				t.Errorf("Syllabify(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestTurkishSyllabifyInvalidToken(t *testing.T) {
	t.Parallel()
	s := NewTurkish()

	// ß is alphabetic but folds to two ASCII characters, so the working
	// copy cannot stay aligned with the original word.
	for _, word := range []string{"straße", "съезд", "漢字"} {
		_, err := s.Syllabify(word)
		if !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Syllabify(%q) error = %v, want ErrInvalidToken", word, err)
		}
	}
}

func TestTurkishCount(t *testing.T) {
	t.Parallel()
	s := NewTurkish()

	tests := []struct {
		word string
		want int
	}{
		{"merhaba", 3},
		{"türkçe", 2},
		{"İstanbul", 3},
		{"ev", 1},
		{"", 0},
		{"...", 0},
		{"42", 1},           // no vowels but alphanumeric
		{"krk", 1},          // vowel-less consonant cluster floors at 1
		{"sosyo-ekonomik", 6}, // hyphen parts counted independently
	}

	for _, tt := range tests {
		if got := s.Count(tt.word); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

// The concatenation of the returned syllables must reproduce the word for
// alphanumeric input.
func FuzzTurkishRoundTrip(f *testing.F) {
	f.Add("merhaba")
	f.Add("ağaç")
	f.Add("İstanbul")
	f.Add("a1b2c3")
	f.Add("qqq")
	f.Add("aeiou")

	s := NewTurkish()
	f.Fuzz(func(t *testing.T, word string) {
		for _, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				return
			}
		}

		got, err := s.Syllabify(word)
		if err != nil {
			return // untransliterable input is rejected, not mangled
		}
		if joined := strings.Join(got, ""); joined != word {
			t.Errorf("round trip broken: %q -> %v", word, got)
		}
	})
}
