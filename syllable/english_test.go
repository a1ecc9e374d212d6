package syllable

import (
	"strings"
	"testing"

	"github.com/smoothtext/smoothtext/data"
	"github.com/smoothtext/smoothtext/hyphen"
)

func newEnglishForTest(t *testing.T, dict Dictionary) *English {
	t.Helper()
	patterns, err := hyphen.Compile(data.HyphenEnglish)
	if err != nil {
		t.Fatalf("compiling English patterns: %v", err)
	}
	return NewEnglish(dict, patterns)
}

func TestEnglishSyllabifyFallback(t *testing.T) {
	t.Parallel()
	e := newEnglishForTest(t, nil)

	tests := []struct {
		word string
		want []string
	}{
		{"hello", []string{"hel", "lo"}},
		{"letter", []string{"let", "ter"}},
		{"reading", []string{"read", "ing"}},
		{"table", []string{"ta", "ble"}},
		{"syllable", []string{"syl", "la", "ble"}},
		{"cat", []string{"cat"}},
		{"the", []string{"the"}},
		{"", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			got, err := e.Syllabify(tt.word)
			if err != nil {
				t.Fatalf("Syllabify(%q) returned error: %v", tt.word, err)
			}
			if strings.Join(got, ".") != strings.Join(tt.want, ".") {
				t.Errorf("Syllabify(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestEnglishDictionaryDecomposition(t *testing.T) {
	t.Parallel()

	t.Run("accepted when it spells the word and is no longer", func(t *testing.T) {
		t.Parallel()
		e := newEnglishForTest(t, Dictionary{"hello": {"HEL1", "LO0"}})
		got, err := e.Syllabify("hello")
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"HEL", "LO"}
		if strings.Join(got, ".") != strings.Join(want, ".") {
			t.Errorf("Syllabify(hello) = %v, want dictionary groups %v", got, want)
		}
	})

	t.Run("rejected when longer than the pattern split", func(t *testing.T) {
		t.Parallel()
		// The groups spell the word, but the pattern table keeps
		// "banana" whole, so the shorter result wins.
		e := newEnglishForTest(t, Dictionary{"banana": {"BA1", "NA0", "NA0"}})
		got, err := e.Syllabify("banana")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != "banana" {
			t.Errorf("Syllabify(banana) = %v, want [banana]", got)
		}
	})

	t.Run("rejected when groups do not spell the word", func(t *testing.T) {
		t.Parallel()
		// Real phoneme sequences almost never concatenate back to the
		// spelling, which sends the word down the pattern path.
		e := newEnglishForTest(t, Dictionary{"cat": {"K", "AE1", "T"}})
		got, err := e.Syllabify("cat")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0] != "cat" {
			t.Errorf("Syllabify(cat) = %v, want [cat]", got)
		}
	})
}

func TestEnglishCount(t *testing.T) {
	t.Parallel()
	e := newEnglishForTest(t, nil)

	tests := []struct {
		word string
		want int
	}{
		{"hello", 2},
		{"syllable", 3},
		{"cat", 1},
		{"mother-in-law", 3},
		{"", 0},
		{"!!!", 0},
		{"-", 0},
	}

	for _, tt := range tests {
		if got := e.Count(tt.word); got != tt.want {
			t.Errorf("Count(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestEnglishHyphenatedRoundTrip(t *testing.T) {
	t.Parallel()
	e := newEnglishForTest(t, nil)

	for _, word := range []string{"mother-in-law", "well-read", "one--two", "-edge-"} {
		got, err := e.Syllabify(word)
		if err != nil {
			t.Fatal(err)
		}
		if joined := strings.Join(got, ""); joined != word {
			t.Errorf("round trip broken: %q -> %v", word, got)
		}
	}
}

func TestParseDictionary(t *testing.T) {
	t.Parallel()

	src := []byte("% comment\nhello HH AH0 L OW1\nHELLO HH EH0 L OW1\nthe DH AH0\n")
	dict, err := ParseDictionary(src)
	if err != nil {
		t.Fatal(err)
	}
	if len(dict) != 2 {
		t.Fatalf("got %d entries, want 2", len(dict))
	}
	// First pronunciation wins for duplicates.
	if got := strings.Join(dict["hello"], " "); got != "HH AH0 L OW1" {
		t.Errorf("dict[hello] = %q", got)
	}

	if _, err := ParseDictionary([]byte("orphan\n")); err == nil {
		t.Error("ParseDictionary accepted an entry with no phonemes")
	}
}

func TestBundledDictionaryParses(t *testing.T) {
	t.Parallel()

	dict, err := ParseDictionary(data.PronunciationEnglish)
	if err != nil {
		t.Fatalf("bundled dictionary does not parse: %v", err)
	}
	if len(dict) == 0 {
		t.Fatal("bundled dictionary is empty")
	}
	if _, ok := dict["the"]; !ok {
		t.Error(`bundled dictionary is missing "the"`)
	}
}
