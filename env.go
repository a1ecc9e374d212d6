package smoothtext

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/smoothtext/smoothtext/data"
	"github.com/smoothtext/smoothtext/hyphen"
	"github.com/smoothtext/smoothtext/language"
	"github.com/smoothtext/smoothtext/readability"
	"github.com/smoothtext/smoothtext/syllable"
	"github.com/smoothtext/smoothtext/tokenizer"
)

// Env owns the linguistic resources analyzers share: parsed pronunciation
// dictionaries and compiled hyphenation patterns, loaded lazily and cached
// per language family. A single Env can serve many analyzers; all methods
// are safe for concurrent use.
type Env struct {
	mu        sync.Mutex
	logger    zerolog.Logger
	resources map[language.Language]syllable.Resources
}

// EnvOption configures an Env.
type EnvOption func(*Env)

// WithLogger routes warnings from the Env's analyzers through logger
// instead of the global zerolog logger.
func WithLogger(logger zerolog.Logger) EnvOption {
	return func(e *Env) {
		e.logger = logger
	}
}

// NewEnv returns an empty environment. Resources load on first use.
func NewEnv(opts ...EnvOption) *Env {
	e := &Env{
		logger:    log.Logger,
		resources: make(map[language.Language]syllable.Resources),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyzer builds an analyzer for lang on top of the given tokenizer
// backend, loading the language's resources if this is their first use.
func (e *Env) Analyzer(lang language.Language, backend tokenizer.Backend) (*Analyzer, error) {
	tok, err := tokenizer.New(lang, backend)
	if err != nil {
		return nil, err
	}

	res, err := e.load(lang.Family())
	if err != nil {
		return nil, err
	}

	syl, err := syllable.New(lang, res)
	if err != nil {
		return nil, err
	}

	engine, err := readability.NewEngine(lang, tok, syl, readability.WithLogger(e.logger))
	if err != nil {
		return nil, err
	}

	return newAnalyzer(lang, tok, syl, engine), nil
}

// load returns the cached resources for the family, parsing and compiling
// them on first request.
func (e *Env) load(family language.Language) (syllable.Resources, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if res, ok := e.resources[family]; ok {
		return res, nil
	}

	var res syllable.Resources
	switch family {
	case language.English:
		patterns, err := hyphen.Compile(data.HyphenEnglish)
		if err != nil {
			return res, fmt.Errorf("smoothtext: loading English hyphenation patterns: %w", err)
		}
		dict, err := syllable.ParseDictionary(data.PronunciationEnglish)
		if err != nil {
			return res, fmt.Errorf("smoothtext: loading English pronunciation dictionary: %w", err)
		}
		res = syllable.Resources{Dictionary: dict, Patterns: patterns}

	case language.German:
		patterns, err := hyphen.Compile(data.HyphenGerman)
		if err != nil {
			return res, fmt.Errorf("smoothtext: loading German hyphenation patterns: %w", err)
		}
		res = syllable.Resources{Patterns: patterns}

	case language.Turkish:
		// The Turkish syllabifier is self-contained.

	default:
		return res, fmt.Errorf("smoothtext: no resources for %v: %w", family, language.ErrUnknownLanguage)
	}

	e.resources[family] = res
	return res, nil
}

// defaultEnv backs the package-level New convenience constructor, so that
// repeated analyzers share one resource cache.
var defaultEnv = NewEnv()

// New builds an analyzer from string identifiers: lang is any identifier
// language.Parse accepts ("en", "de-DE", "Turkish"), backend a tokenizer
// backend name ("scanner", "prose"; empty selects the scanner). Analyzers
// made this way share a package-wide resource cache; use NewEnv for an
// isolated one.
func New(lang, backend string) (*Analyzer, error) {
	parsedLang, err := language.Parse(lang)
	if err != nil {
		return nil, err
	}
	parsedBackend, err := tokenizer.ParseBackend(backend)
	if err != nil {
		return nil, err
	}
	return defaultEnv.Analyzer(parsedLang, parsedBackend)
}
