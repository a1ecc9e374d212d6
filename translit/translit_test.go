package translit

import "testing"

func TestFoldRune(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    rune
		want rune
		ok   bool
	}{
		{"ascii letter", 'a', 'a', true},
		{"ascii digit", '7', '7', true},
		{"ascii punctuation", '.', '.', true},
		{"turkish soft g", 'ğ', 'g', true},
		{"turkish dotless i", 'ı', 'i', true},
		{"turkish dotted capital", 'İ', 'I', true},
		{"turkish s cedilla", 'ş', 's', true},
		{"german umlaut", 'ü', 'u', true},
		{"german capital umlaut", 'Ö', 'O', true},
		{"decomposition fallback", 'ů', 'u', true},
		{"eszett rejected", 'ß', 0, false},
		{"ligature rejected", 'æ', 0, false},
		{"emoji rejected", '🐈', 0, false},
		{"cyrillic rejected", 'ж', 0, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := FoldRune(tt.r)
			if ok != tt.ok {
				t.Fatalf("FoldRune(%q) ok = %v, want %v", tt.r, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("FoldRune(%q) = %q, want %q", tt.r, got, tt.want)
			}
		})
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"turkish word", "ağaç", "agac"},
		{"turkish sentence", "Çok güzel", "Cok guzel"},
		{"german eszett expands", "Straße", "Strasse"},
		{"ligature expands", "Ærø", "AEro"},
		{"unmappable becomes question mark", "a🐈b", "a?b"},
		{"empty", "", ""},
		{"digits and punctuation untouched", "3,14!", "3,14!"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestVowelConsonantCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input      string
		vowels     int
		consonants int
	}{
		{"hello", 2, 3},
		{"merhaba", 3, 4},
		{"ağaç", 2, 2},
		{"Straße", 2, 5},
		{"", 0, 0},
		{"123...", 0, 0},
	}

	for _, tt := range tests {
		if got := CountVowels(tt.input); got != tt.vowels {
			t.Errorf("CountVowels(%q) = %d, want %d", tt.input, got, tt.vowels)
		}
		if got := CountConsonants(tt.input); got != tt.consonants {
			t.Errorf("CountConsonants(%q) = %d, want %d", tt.input, got, tt.consonants)
		}
	}
}

func TestIsVowelIsConsonantDisjoint(t *testing.T) {
	t.Parallel()

	for c := rune(0); c < 128; c++ {
		if IsVowel(c) && IsConsonant(c) {
			t.Errorf("%q classified as both vowel and consonant", c)
		}
	}
}
