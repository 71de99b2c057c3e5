package wordindex

import (
	"fmt"
	"log/slog"

	"github.com/khalid-nowaf/wordindex/pkg/trie"
)

// Index is the set of operations offered by a word index.
// WordIndex and SyncIndex both implement it.
type Index interface {
	Insert(word string) error
	Remove(word string) error
	Search(word string) error
	WordsWithPrefix(prefix string) []string
	WordsWithSuffix(suffix string) []string
	AllWords() []string
	WordCount() int
}

// Source supplies the words a WordIndex is built from, selected by a file like name.
type Source interface {
	Load(selector string) ([]string, error)
}

// WordIndex is a case insensitive set of words stored in a trie.
// It is not safe for concurrent use, see Synchronized.
type WordIndex struct {
	root   *trie.Node
	logger *slog.Logger
}

// New initializes an empty WordIndex.
//
// Returns:
//   - A pointer to a newly initialized WordIndex.
func New(opts ...Option) *WordIndex {
	w := DefaultOptions()
	for _, opt := range opts {
		w = opt(w)
	}
	w.root = trie.New()
	return w
}

// FromWords builds a WordIndex holding every word of words, inserted in order.
// Empty entries, such as blank lines of a word list, are skipped.
func FromWords(words []string, opts ...Option) *WordIndex {
	w := New(opts...)
	skipped := 0
	for _, word := range words {
		if err := w.Insert(word); err != nil {
			skipped++
		}
	}
	w.logger.Debug("word index built", "words", len(words), "skipped", skipped)
	return w
}

// FromSource loads the words selected by selector from src, and builds a WordIndex from them.
func FromSource(src Source, selector string, opts ...Option) (*WordIndex, error) {
	words, err := src.Load(selector)
	if err != nil {
		return nil, fmt.Errorf("load words from %q: %w", selector, err)
	}
	return FromWords(words, opts...), nil
}

// Insert adds word to the index. Inserting a stored word again is a no-op.
//
// Returns:
//   - ErrEmptyWord if word is the empty string.
func (w *WordIndex) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	w.root.Insert(WordToPath(word))
	return nil
}

// Search looks up word, ignoring case.
//
// Returns:
//   - nil if the word is stored, an error matching ErrSearchMiss otherwise.
func (w *WordIndex) Search(word string) error {
	if !w.root.Contains(WordToPath(word)) {
		return fmt.Errorf("%w: %q", ErrSearchMiss, word)
	}
	return nil
}

// Remove deletes word from the index and prunes the nodes only it was using.
//
// Returns:
//   - an error matching ErrSearchMiss if the word is not stored, the index is unchanged.
func (w *WordIndex) Remove(word string) error {
	pruned, ok := w.root.Remove(WordToPath(word))
	if !ok {
		return fmt.Errorf("%w: %q", ErrSearchMiss, word)
	}
	w.logger.Debug("word removed", "word", word, "pruned", pruned)
	return nil
}

// WordsWithPrefix returns every stored word starting with prefix, in ascending order.
// The result is empty, not an error, when no word matches. An empty prefix
// returns every word.
func (w *WordIndex) WordsWithPrefix(prefix string) []string {
	path := WordToPath(prefix)
	words := []string{}

	node := w.root.Descend(path)
	if node == nil {
		return words
	}
	for _, key := range node.Keys(path) {
		words = append(words, PathToWord(key))
	}
	return words
}

// WordsWithSuffix returns every stored word ending with suffix, in ascending order.
//
// A trie keyed by leading runes gives no locality for trailing ones, so every
// stored word is rebuilt and compared from its end: the cost is proportional to
// the total number of stored runes, whatever the suffix.
func (w *WordIndex) WordsWithSuffix(suffix string) []string {
	path := WordToPath(suffix)
	words := []string{}

	w.root.ForEachKey(nil, func(key []rune) bool {
		if hasSuffix(key, path) {
			words = append(words, PathToWord(key))
		}
		return true
	})
	return words
}

// AllWords returns every stored word in ascending order.
func (w *WordIndex) AllWords() []string {
	return w.WordsWithPrefix("")
}

// WordCount returns the number of stored words (not trie nodes).
func (w *WordIndex) WordCount() int {
	return w.root.CountKeys()
}

// String lists the stored words, one per line, in ascending order.
func (w *WordIndex) String() string {
	return w.root.String()
}
