// Package smoothtext measures the readability of English, German, and
// Turkish text.
//
// The package is a facade: it wires a tokenizer, a language-specific
// syllabifier, and a readability engine together behind the Analyzer type.
//
//	st, err := smoothtext.New("tr", "scanner")
//	if err != nil {
//		// ...
//	}
//	score := st.Atesman("Bu metin kolay okunur.")
//
// Supported languages group into three families — English (en, en-GB,
// en-US), German (de, de-DE), and Turkish (tr, tr-TR) — and each family
// carries its validated formulas: Flesch Reading Ease and the
// Flesch-Kincaid grades for English, Flesch Reading Ease (Amstad) and the
// Wiener Sachtextformel variants for German, Ateşman and Bezirci-Yılmaz
// for Turkish.
//
// Beyond scoring, an Analyzer exposes the underlying segmentation and
// counting primitives: sentence and word splitting, syllabification,
// syllable frequencies, vowel and consonant counts, emoji-to-text rewriting,
// and reading-time estimates.
//
// Analyzers built with New share a package-level resource cache. Use NewEnv
// to scope resource loading and warning logging explicitly:
//
//	env := smoothtext.NewEnv(smoothtext.WithLogger(logger))
//	st, err := env.Analyzer(language.GermanDE, tokenizer.BackendScanner)
package smoothtext
