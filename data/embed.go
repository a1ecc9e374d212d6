// Package data embeds the linguistic resources bundled with smoothtext:
// hyphenation pattern sets and the English pronunciation dictionary subset.
//
// The bundled pattern files are compact subsets meant for offline use and
// tests. Full TeX-format pattern sets can be compiled with hyphen.Compile
// and supplied through the facade's environment instead.
package data

import _ "embed"

//go:embed hyphen_en.txt
var HyphenEnglish []byte

//go:embed hyphen_de.txt
var HyphenGerman []byte

//go:embed cmudict.txt
var PronunciationEnglish []byte
