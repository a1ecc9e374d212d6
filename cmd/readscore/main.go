// Command readscore measures the readability of text from a file or stdin.
//
// Usage:
//
//	readscore -lang tr document.txt
//	echo "The cat sat on the mat." | readscore -lang en -formula flesch
//	readscore -lang de -stats bericht.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smoothtext/smoothtext"
	"github.com/smoothtext/smoothtext/readability"
)

func main() {
	lang := flag.String("lang", "en", "text language (en, en-GB, de, tr, ...)")
	backend := flag.String("backend", "scanner", "tokenizer backend (scanner, prose)")
	formula := flag.String("formula", "", "readability formula (default: every formula the language supports)")
	demojize := flag.Bool("demojize", false, "replace emoji with text descriptions before scoring")
	stats := flag.Bool("stats", false, "also print sentence, word, syllable, and reading-time statistics")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	text, err := readInput(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "readscore: %v\n", err)
		os.Exit(1)
	}

	st, err := smoothtext.New(*lang, *backend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "readscore: %v\n", err)
		os.Exit(1)
	}

	if *demojize {
		text = st.Demojize(text)
	}

	formulas := st.Formulas()
	if *formula != "" {
		f, err := readability.ParseFormula(*formula)
		if err != nil {
			fmt.Fprintf(os.Stderr, "readscore: %v\n", err)
			os.Exit(1)
		}
		formulas = []readability.Formula{f}
	}

	for _, f := range formulas {
		fmt.Printf("%-32s %10.3f\n", f, st.Score(text, f))
	}

	if *stats {
		fmt.Printf("%-32s %10d\n", "Sentences", st.CountSentences(text))
		fmt.Printf("%-32s %10d\n", "Words", st.CountWords(text))
		fmt.Printf("%-32s %10d\n", "Syllables", st.CountSyllables(text))
		fmt.Printf("%-32s %10s\n", "Silent reading time", st.SilentReadingTime(text))
		fmt.Printf("%-32s %10s\n", "Reading aloud time", st.ReadingAloudTime(text))
	}
}

// readInput returns the contents of the file named by the first positional
// argument, or everything from stdin when no file is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}
