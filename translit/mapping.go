package translit

// latinFold maps non-ASCII Latin letters to a single ASCII rune. These are
// the characters of the supported alphabets (Turkish, German) plus the
// precomposed Latin letters common in loanwords. One rune in, one rune out:
// this table is what keeps the heuristic syllabifier's working copy aligned
// with the original word.
var latinFold = map[rune]rune{
	// Turkish
	'ç': 'c', 'Ç': 'C',
	'ğ': 'g', 'Ğ': 'G',
	'ı': 'i', 'İ': 'I',
	'ö': 'o', 'Ö': 'O',
	'ş': 's', 'Ş': 'S',
	'ü': 'u', 'Ü': 'U',

	// German umlaut a (o and u are covered above)
	'ä': 'a', 'Ä': 'A',

	// Common precomposed Latin
	'à': 'a', 'á': 'a', 'â': 'a', 'ã': 'a', 'å': 'a',
	'À': 'A', 'Á': 'A', 'Â': 'A', 'Ã': 'A', 'Å': 'A',
	'è': 'e', 'é': 'e', 'ê': 'e', 'ë': 'e',
	'È': 'E', 'É': 'E', 'Ê': 'E', 'Ë': 'E',
	'ì': 'i', 'í': 'i', 'î': 'i', 'ï': 'i',
	'Ì': 'I', 'Í': 'I', 'Î': 'I', 'Ï': 'I',
	'ò': 'o', 'ó': 'o', 'ô': 'o', 'õ': 'o', 'ø': 'o',
	'Ò': 'O', 'Ó': 'O', 'Ô': 'O', 'Õ': 'O', 'Ø': 'O',
	'ù': 'u', 'ú': 'u', 'û': 'u',
	'Ù': 'U', 'Ú': 'U', 'Û': 'U',
	'ñ': 'n', 'Ñ': 'N',
	'ý': 'y', 'ÿ': 'y', 'Ý': 'Y',
}

// latinFoldMulti maps Latin letters whose ASCII transcription is longer than
// one character. Folding these inside the heuristic syllabifier would break
// the index alignment between the working copy and the original word, so
// FoldRune rejects them; Fold expands them.
var latinFoldMulti = map[rune]string{
	'ß': "ss", 'ẞ': "SS",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
}
