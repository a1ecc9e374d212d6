package syllable

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// Dictionary maps a lower-cased word to its phoneme sequence (ARPAbet-style
// symbols, optionally carrying stress digits such as "AH0").
type Dictionary map[string][]string

// ParseDictionary reads a pronunciation dictionary resource: one entry per
// line, the word followed by its phonemes, separated by whitespace. '%'
// starts a comment line. Words are stored lower-cased; duplicate entries keep
// the first pronunciation, matching the usual dictionary convention of
// listing the primary variant first.
func ParseDictionary(src []byte) (Dictionary, error) {
	dict := make(Dictionary)

	scanner := bufio.NewScanner(bytes.NewReader(src))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("syllable: dictionary line %d: entry %q has no phonemes", lineNo, line)
		}

		word := strings.ToLower(fields[0])
		if _, ok := dict[word]; ok {
			continue
		}
		dict[word] = fields[1:]
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("syllable: reading dictionary: %w", err)
	}

	return dict, nil
}
