// Package lexicon loads flat-file pronunciation dictionaries into an
// immutable in-memory index. File in, read-only Store out; no network,
// no database.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/heartmarshall/phoneme-service/internal/domain"
)

const maxLineSize = 1 << 20

// Stats holds parser statistics for logging and health reporting.
type Stats struct {
	Source       string
	TotalLines   int
	SkippedLines int
	ParsedLines  int
	UniqueWords  int
	LoadDuration time.Duration
}

// Store maps normalized words to their pronunciation variants in file order.
// A Store is never modified after Parse returns, so it is safe for
// concurrent readers.
type Store struct {
	entries map[string][]string
	stats   Stats
}

type options struct {
	splitter LineSplitter
	source   string
}

// Option configures Parse and Load.
type Option func(*options)

// WithSplitter selects the line format. The default is SphinxSplitter.
func WithSplitter(s LineSplitter) Option {
	return func(o *options) {
		if s != nil {
			o.splitter = s
		}
	}
}

// WithSource labels the store with the name it was read from.
func WithSource(name string) Option {
	return func(o *options) { o.source = name }
}

func buildOptions(opts []Option) options {
	o := options{splitter: SphinxSplitter{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Load opens the dictionary at path and parses it. Any failure is reported
// as ErrLoad; open errors additionally keep their fs cause (fs.ErrNotExist,
// fs.ErrPermission) and parse errors their *LineError.
func Load(path string, opts ...Option) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &loadError{path: path, err: fmt.Errorf("open file: %w", err)}
	}
	defer f.Close()

	opts = append([]Option{WithSource(path)}, opts...)
	store, err := Parse(f, opts...)
	if err != nil {
		return nil, &loadError{path: path, err: err}
	}
	return store, nil
}

// Parse reads a dictionary from r. The first line without a separator aborts
// the parse; no partial Store is returned. Blank lines are skipped.
func Parse(r io.Reader, opts ...Option) (*Store, error) {
	o := buildOptions(opts)
	start := time.Now()

	s := &Store{
		entries: make(map[string][]string),
		stats:   Stats{Source: o.source},
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		s.stats.TotalLines++
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			s.stats.SkippedLines++
			continue
		}

		word, phonemes, err := o.splitter.Split(line)
		if errors.Is(err, ErrSkipLine) {
			s.stats.SkippedLines++
			continue
		}
		if err != nil {
			return nil, &LineError{Line: s.stats.TotalLines, Text: line, Err: err}
		}

		key := domain.NormalizeWord(word)
		s.entries[key] = append(s.entries[key], phonemes)
		s.stats.ParsedLines++
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	s.stats.UniqueWords = len(s.entries)
	s.stats.LoadDuration = time.Since(start)
	return s, nil
}

// Lookup returns every variant recorded for an already-normalized word.
// The returned slice is a copy.
func (s *Store) Lookup(word string) ([]string, bool) {
	variants, ok := s.entries[word]
	if !ok {
		return nil, false
	}
	return slices.Clone(variants), true
}

// First returns the canonical (first-seen) variant for a normalized word.
func (s *Store) First(word string) (string, bool) {
	variants := s.entries[word]
	if len(variants) == 0 {
		return "", false
	}
	return variants[0], true
}

// Len returns the number of distinct words.
func (s *Store) Len() int {
	return len(s.entries)
}

// Words returns all normalized words in lexical order.
func (s *Store) Words() []string {
	words := make([]string, 0, len(s.entries))
	for w := range s.entries {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

// Stats returns the statistics collected while parsing.
func (s *Store) Stats() Stats {
	return s.stats
}
