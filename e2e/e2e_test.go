// Package e2e exercises the full analysis pipeline end to end:
// environment construction, tokenization, syllabification, character
// statistics, and readability scoring across all supported language
// families. These tests use only the public facade.
package e2e

import (
	"strings"
	"sync"
	"testing"

	"github.com/smoothtext/smoothtext"
	"github.com/smoothtext/smoothtext/language"
	"github.com/smoothtext/smoothtext/readability"
	"github.com/smoothtext/smoothtext/tokenizer"
)

type sample struct {
	lang      language.Language
	text      string
	sentences int
	words     int
	formula   readability.Formula
}

var samples = []sample{
	{
		lang: language.EnglishUS,
		text: "The quick brown fox jumps over the lazy dog. " +
			"It was not in a hurry, e.g. when the rain started. " +
			"Visit https://example.com for details!",
		sentences: 3,
		words:     25,
		formula:   readability.FleschReadingEase,
	},
	{
		lang: language.GermanDE,
		text: "Der Mann las die Zeitung am Morgen. " +
			"Die wissenschaftliche Untersuchung dauerte z.B. drei Jahre. " +
			"Was für ein Tag!",
		sentences: 3,
		words:     19,
		formula:   readability.WienerSachtextformel,
	},
	{
		lang: language.TurkishTR,
		text: "Merhaba dünya. Kitap okumak güzeldir. " +
			"İstanbul çok büyük bir şehir.",
		sentences: 3,
		words:     10,
		formula:   readability.Atesman,
	},
}

func TestPipelineAllFamilies(t *testing.T) {
	env := smoothtext.NewEnv()
	for _, s := range samples {
		st, err := env.Analyzer(s.lang, tokenizer.BackendScanner)
		if err != nil {
			t.Fatalf("Analyzer(%v): %v", s.lang, err)
		}

		if got := st.CountSentences(s.text); got != s.sentences {
			t.Errorf("%v: CountSentences = %d, want %d", s.lang, got, s.sentences)
		}
		if got := st.CountWords(s.text); got != s.words {
			t.Errorf("%v: CountWords = %d, want %d", s.lang, got, s.words)
		}

		// Syllable counts must be at least one per word: every word the
		// tokenizer emits carries at least one vowel or falls back to a
		// single syllable.
		syl := st.CountSyllables(s.text)
		if syl < s.words {
			t.Errorf("%v: CountSyllables = %d, want >= %d", s.lang, syl, s.words)
		}

		// Each supported formula must yield a finite score without
		// tripping the language guard; the sample texts are simple
		// enough that every score lands inside a generous band.
		for _, f := range st.Formulas() {
			score := st.Score(s.text, f)
			if score < -50 || score > 250 {
				t.Errorf("%v: Score(%v) = %v, out of plausible range", s.lang, f, score)
			}
		}
		if !s.formula.Supports(s.lang) {
			t.Errorf("%v: expected %v to be supported", s.lang, s.formula)
		}
	}
}

func TestSyllabifyRoundTrip(t *testing.T) {
	env := smoothtext.NewEnv()
	for _, s := range samples {
		st, err := env.Analyzer(s.lang, tokenizer.BackendScanner)
		if err != nil {
			t.Fatalf("Analyzer(%v): %v", s.lang, err)
		}
		for _, word := range st.Tokenize(s.text) {
			parts, err := st.Syllabify(word)
			if err != nil {
				continue
			}
			if joined := strings.Join(parts, ""); joined != word {
				t.Errorf("%v: Syllabify(%q) joined to %q", s.lang, word, joined)
			}
		}
	}
}

func TestSentenceReconstruction(t *testing.T) {
	env := smoothtext.NewEnv()
	for _, s := range samples {
		st, err := env.Analyzer(s.lang, tokenizer.BackendScanner)
		if err != nil {
			t.Fatalf("Analyzer(%v): %v", s.lang, err)
		}
		// Every sentence must appear verbatim in the input text.
		for _, sent := range st.Sentencize(s.text) {
			if !strings.Contains(s.text, sent) {
				t.Errorf("%v: sentence %q not found in input", s.lang, sent)
			}
		}
	}
}

func TestConcurrentAnalyzers(t *testing.T) {
	env := smoothtext.NewEnv()

	var wg sync.WaitGroup
	errs := make(chan error, len(samples)*8)
	for _, s := range samples {
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(s sample) {
				defer wg.Done()
				st, err := env.Analyzer(s.lang, tokenizer.BackendScanner)
				if err != nil {
					errs <- err
					return
				}
				if got := st.CountSentences(s.text); got != s.sentences {
					t.Errorf("%v: concurrent CountSentences = %d, want %d", s.lang, got, s.sentences)
				}
				_ = st.Score(s.text, s.formula)
				_ = st.CountSyllables(s.text)
			}(s)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent Analyzer: %v", err)
	}
}

func TestDefaultFacade(t *testing.T) {
	st, err := smoothtext.New("en", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if st.Language() != language.EnglishUS {
		t.Errorf("Language = %v, want %v", st.Language(), language.EnglishUS)
	}

	text := "Reading is fun. Reading teaches you things."
	if got := st.CountSentences(text); got != 2 {
		t.Errorf("CountSentences = %d, want 2", got)
	}
	if got := st.Demojize("I like cats 🐈."); !strings.Contains(got, "(cat)") {
		t.Errorf("Demojize = %q, want cat description", got)
	}
	if d := st.SilentReadingTime(text); d <= 0 {
		t.Errorf("SilentReadingTime = %v, want positive", d)
	}
}
