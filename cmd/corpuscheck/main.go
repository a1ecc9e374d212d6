// Command corpuscheck runs the tokenizer and syllabifier over a directory
// of plain-text files and verifies their invariants at corpus scale:
// token offsets and reconstruction, syllable concatenation round-trips,
// and sentence/word statistics.
//
// Usage:
//
//	corpuscheck -lang tr /path/to/corpus
//
// Files are processed concurrently in newline-aligned chunks, so corpora
// larger than memory are fine.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/smoothtext/smoothtext"
	"github.com/smoothtext/smoothtext/language"
	"github.com/smoothtext/smoothtext/tokenizer"
)

const (
	chunkSize      = 4 << 20 // 4 MB per read chunk
	maxWorkers     = 4
	bytesToMBShift = 20
)

type stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	reconOK         int
	reconFail       int
	sentences       int
	words           int
	syllables       int
	roundTripFails  int
	tokenTypeCounts map[tokenizer.TokenType]int
}

type fileState struct {
	path           string
	tokenCounts    map[tokenizer.TokenType]int
	totalBytes     int64
	sentences      int
	words          int
	syllables      int
	roundTripFails int
	reconFailed    bool
	reconLogged    bool
}

func main() {
	langFlag := "en"
	var dirPath string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-lang":
			i++
			if i >= len(args) {
				usage()
			}
			langFlag = args[i]
		default:
			dirPath = args[i]
		}
	}
	if dirPath == "" {
		usage()
	}

	lang, err := language.Parse(langFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corpuscheck: %v\n", err)
		os.Exit(1)
	}
	scanner, err := tokenizer.NewScanner(lang)
	if err != nil {
		fmt.Fprintf(os.Stderr, "corpuscheck: %v\n", err)
		os.Exit(1)
	}
	// The analyzer route loads the bundled syllable resources for us.
	st, err := smoothtext.New(langFlag, "scanner")
	if err != nil {
		fmt.Fprintf(os.Stderr, "corpuscheck: %v\n", err)
		os.Exit(1)
	}

	var filePaths []string
	err = filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "corpuscheck: walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	total := &stats{tokenTypeCounts: make(map[tokenizer.TokenType]int)}
	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, scanner, st, total)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(total)

	if total.reconFail > 0 || total.roundTripFails > 0 {
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-lang code] <directory>\n", os.Args[0])
	os.Exit(1)
}

func processFile(path string, scanner *tokenizer.Scanner, st *smoothtext.Analyzer, total *stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error stat %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(os.Stderr, "START %s (%d MB)\n", path, info.Size()>>bytesToMBShift)
	fileStart := time.Now()

	state := &fileState{
		path:        path,
		tokenCounts: make(map[tokenizer.TokenType]int),
	}

	buf := make([]byte, chunkSize)
	var leftover []byte

	for {
		n, err := f.Read(buf)
		if n > 0 {
			leftover = append(leftover, buf[:n]...)
			chunk := leftover

			// Cut at the last newline so tokens never straddle chunks.
			if err == nil {
				if idx := bytes.LastIndexByte(chunk, '\n'); idx > 0 {
					leftover = make([]byte, len(chunk)-idx-1)
					copy(leftover, chunk[idx+1:])
					chunk = chunk[:idx+1]
				} else {
					leftover = chunk
					continue
				}
			} else {
				leftover = nil
			}

			state.processChunk(chunk, scanner, st)
		}

		if err != nil {
			break
		}
	}

	if len(leftover) > 0 {
		state.processChunk(leftover, scanner, st)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d MB processed)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.totalBytes>>bytesToMBShift)

	state.merge(total)
}

func (fs *fileState) processChunk(chunk []byte, scanner *tokenizer.Scanner, st *smoothtext.Analyzer) {
	text := string(chunk)
	fs.totalBytes += int64(len(chunk))

	tokens := scanner.WordTokens(text)

	var sb strings.Builder
	if !fs.reconFailed {
		sb.Grow(len(text))
	}
	for _, token := range tokens {
		fs.tokenCounts[token.Type]++
		if !fs.reconFailed {
			sb.WriteString(token.Text)
		}

		if token.Type != tokenizer.Word {
			continue
		}
		fs.words++

		parts, err := st.Syllabify(token.Text)
		if err != nil {
			// Unsyllabifiable tokens still count one syllable, matching
			// the counting path.
			fs.syllables++
			continue
		}
		fs.syllables += len(parts)
		if strings.Join(parts, "") != token.Text {
			fs.roundTripFails++
			fmt.Fprintf(os.Stderr, "ROUND-TRIP FAIL %s: %q -> %v\n", fs.path, token.Text, parts)
		}
	}

	if !fs.reconFailed && sb.String() != text {
		fs.reconFailed = true
		if !fs.reconLogged {
			fmt.Fprintf(os.Stderr, "RECONSTRUCTION FAIL %s (%d bytes in, %d bytes out)\n",
				fs.path, len(text), sb.Len())
			fs.reconLogged = true
		}
	}

	fs.sentences += len(scanner.SentenceTokens(text))
}

func (fs *fileState) merge(total *stats) {
	total.mu.Lock()
	defer total.mu.Unlock()

	total.filesScanned++
	total.totalBytes += fs.totalBytes
	total.sentences += fs.sentences
	total.words += fs.words
	total.syllables += fs.syllables
	total.roundTripFails += fs.roundTripFails

	if fs.reconFailed {
		total.reconFail++
	} else {
		total.reconOK++
	}

	for tokenType, count := range fs.tokenCounts {
		total.tokenTypeCounts[tokenType] += count
	}
}

func printStats(total *stats) {
	fmt.Printf("Files scanned:        %d\n", total.filesScanned)
	fmt.Printf("Bytes processed:      %d MB\n", total.totalBytes>>bytesToMBShift)
	fmt.Printf("Reconstruction OK:    %d\n", total.reconOK)
	fmt.Printf("Reconstruction FAIL:  %d\n", total.reconFail)
	fmt.Printf("Syllable round-trip FAIL: %d\n", total.roundTripFails)
	fmt.Printf("Sentences:            %d\n", total.sentences)
	fmt.Printf("Words:                %d\n", total.words)
	fmt.Printf("Syllables:            %d\n", total.syllables)

	fmt.Println("\nToken types:")
	for _, tt := range []tokenizer.TokenType{
		tokenizer.Word, tokenizer.Number, tokenizer.Punctuation,
		tokenizer.Space, tokenizer.Symbol, tokenizer.URL, tokenizer.Email,
	} {
		fmt.Printf("  %-12s %d\n", tt, total.tokenTypeCounts[tt])
	}
}
