// Package search indexes words in a trie and answers exact and prefix
// queries. A Search keeps the results of its latest query until the next
// Query or Flush.
//
// A Search is not safe for concurrent use. Callers must not run AddWord,
// Query or Flush from more than one goroutine at a time.
package search

import (
	"errors"
	"fmt"
	"strings"

	"wordsearch/pkg/logger"
	"wordsearch/pkg/search/trie"
)

// ErrDestroyed is the panic value for any call on a destroyed Search.
var ErrDestroyed = errors.New("search: use after Destroy")

// MatchType selects how Query compares its text with stored words.
type MatchType int

const (
	// MatchExact finds the query text only if it was added as a word.
	MatchExact MatchType = iota
	// MatchPrefix finds every word starting with the query text.
	MatchPrefix
)

func (m MatchType) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	default:
		return fmt.Sprintf("MatchType(%d)", int(m))
	}
}

// ParseMatchType accepts "exact", "prefix" and its alias "all".
func ParseMatchType(s string) (MatchType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return MatchExact, nil
	case "prefix", "all":
		return MatchPrefix, nil
	}
	return 0, fmt.Errorf("unknown match type %q", s)
}

// Search owns one trie and the result list of the latest query.
type Search struct {
	trie      *trie.Trie
	results   []string
	destroyed bool
}

// New returns an empty index.
func New() *Search {
	return &Search{trie: trie.New()}
}

func (s *Search) mustBeAlive() {
	if s.destroyed {
		panic(ErrDestroyed)
	}
}

// AddWord inserts word. A non-nil error wraps trie.ErrOutOfAlphabet and
// means the word was not indexed; the prefix before the bad byte stays in
// the trie as a non-terminal path.
func (s *Search) AddWord(word string) error {
	s.mustBeAlive()
	if err := s.trie.Insert(word); err != nil {
		logger.DebugLogger.Printf("rejected word %q: %v", word, err)
		return err
	}
	return nil
}

// Query flushes the previous results, runs text in the given mode and
// reports whether anything matched. Matches are read back with Results.
func (s *Search) Query(text string, mode MatchType) bool {
	s.mustBeAlive()
	s.Flush()

	switch mode {
	case MatchExact:
		if s.trie.Contains(text) {
			s.results = append(s.results, text)
		}
	case MatchPrefix:
		if node, ok := s.trie.Navigate(text); ok {
			trie.Walk(node, func(word string) bool {
				s.results = append(s.results, word)
				return true
			})
		}
	default:
		logger.Logger.Printf("query %q: unsupported match type %v", text, mode)
	}

	logger.DebugLogger.Printf("query %q (%v): %d results", text, mode, len(s.results))
	return len(s.results) > 0
}

// Results returns a copy of the latest query's matches in traversal order.
func (s *Search) Results() []string {
	s.mustBeAlive()
	if len(s.results) == 0 {
		return nil
	}
	out := make([]string, len(s.results))
	copy(out, s.results)
	return out
}

// Flush discards the current results.
func (s *Search) Flush() {
	s.mustBeAlive()
	s.results = nil
}

// Complete lists up to limit words starting with prefix without touching
// the query results. limit <= 0 means no limit.
func (s *Search) Complete(prefix string, limit int) []string {
	s.mustBeAlive()
	node, ok := s.trie.Navigate(prefix)
	if !ok {
		return nil
	}
	var words []string
	trie.Walk(node, func(word string) bool {
		words = append(words, word)
		return limit <= 0 || len(words) < limit
	})
	return words
}

// Len returns the number of indexed words.
func (s *Search) Len() int {
	s.mustBeAlive()
	return s.trie.Len()
}

// Nodes returns the number of trie nodes, root included.
func (s *Search) Nodes() int {
	s.mustBeAlive()
	return s.trie.Nodes()
}

// Destroy flushes the results and releases the trie. Every later call on s
// panics with ErrDestroyed.
func (s *Search) Destroy() {
	s.mustBeAlive()
	s.Flush()
	s.trie.Reset()
	s.trie = nil
	s.destroyed = true
}
