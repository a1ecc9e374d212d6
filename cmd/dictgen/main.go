// Command dictgen generates data/cmudict.txt from a full CMU Pronouncing
// Dictionary dump, keeping only the words listed in a frequency word list.
//
// Download the dictionary from https://github.com/cmusphinx/cmudict
// then run:
//
//	go run ./cmd/dictgen -input cmudict.dict -words wordlist.txt
//
// Output: data/cmudict.txt (commit this file). Regenerate when the upstream
// dictionary or the word list changes.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
)

const (
	defaultOutput  = "data/cmudict.txt"
	scannerBufSize = 1 << 20 // 1 MB
)

func main() {
	inputPath := flag.String("input", "", "path to the full cmudict.dict file")
	wordsPath := flag.String("words", "", "path to the word list to keep (one word per line)")
	outputPath := flag.String("output", defaultOutput, "output path for the compact dictionary")
	flag.Parse()

	if *inputPath == "" || *wordsPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: dictgen -input <cmudict.dict> -words <wordlist> [-output <file>]\n")
		os.Exit(1)
	}

	keep, err := readWordList(*wordsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: %v\n", err)
		os.Exit(1)
	}

	entries, err := extractEntries(*inputPath, keep)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: %v\n", err)
		os.Exit(1)
	}

	if err := writeDictionary(*outputPath, entries); err != nil {
		fmt.Fprintf(os.Stderr, "dictgen: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "wrote %d entries to %s (%d requested)\n",
		len(entries), *outputPath, len(keep))
}

// readWordList loads the words to keep, lower-cased. '%' and '#' start
// comment lines.
func readWordList(path string) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	keep := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scannerBufSize), scannerBufSize)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "%") || strings.HasPrefix(word, "#") {
			continue
		}
		keep[strings.ToLower(word)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return keep, nil
}

// extractEntries reads the full dictionary and keeps the primary
// pronunciation of every requested word. Alternate pronunciations are
// marked "word(2)", "word(3)" upstream and are skipped; so are comment
// fragments after ';;;'.
func extractEntries(path string, keep map[string]bool) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	entries := make(map[string]string, len(keep))
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, scannerBufSize), scannerBufSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		if idx := strings.Index(line, " #"); idx > 0 {
			line = strings.TrimSpace(line[:idx])
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		word := strings.ToLower(fields[0])
		if strings.ContainsRune(word, '(') {
			continue // alternate pronunciation
		}
		if !keep[word] {
			continue
		}
		if _, ok := entries[word]; ok {
			continue
		}
		entries[word] = strings.Join(fields[1:], " ")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	return entries, nil
}

// writeDictionary emits the entries sorted by word, in the one-line format
// the syllable package parses.
func writeDictionary(path string, entries map[string]string) error {
	words := make([]string, 0, len(entries))
	for word := range entries {
		words = append(words, word)
	}
	sort.Strings(words)

	var sb strings.Builder
	sb.WriteString("% Compact pronunciation dictionary (ARPAbet), primary pronunciations only.\n")
	sb.WriteString("% Generated by cmd/dictgen; do not edit by hand.\n")
	for _, word := range words {
		sb.WriteString(word)
		sb.WriteByte(' ')
		sb.WriteString(entries[word])
		sb.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
