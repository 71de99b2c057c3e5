// Package session rebuilds a word index for every request, from the selected
// word list plus the changes recorded in the ledger.
package session

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/khalid-nowaf/wordindex/pkg/ledger"
	"github.com/khalid-nowaf/wordindex/pkg/wordindex"
	"github.com/khalid-nowaf/wordindex/pkg/wordsource"
)

// DefaultSource is used until another word list is selected.
const DefaultSource = "dictionary.txt"

// ErrAlreadyRemoved is returned when removing a word the session already removed.
// It also matches wordindex.ErrSearchMiss.
var ErrAlreadyRemoved = fmt.Errorf("%w: already removed", wordindex.ErrSearchMiss)

type Option func(*Session) *Session

// WithLogger sets the logger of the session and of the indexes it builds.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) *Session {
		if logger != nil {
			s.logger = logger
		}
		return s
	}
}

// WithSource overrides the selected word list for this session only.
func WithSource(source string) Option {
	return func(s *Session) *Session {
		s.source = source
		return s
	}
}

// Session ties a directory of word lists to the ledger recording what the user changed.
type Session struct {
	words  *wordsource.Directory
	ledger *ledger.Ledger
	logger *slog.Logger
	source string // overrides the ledger selection when set
}

// New creates a session reading word lists from words and its state from l.
func New(words *wordsource.Directory, l *ledger.Ledger, opts ...Option) *Session {
	s := &Session{
		words:  words,
		ledger: l,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

// Source returns the word list in use: the override, else the selected one, else DefaultSource.
func (s *Session) Source() (string, error) {
	if s.source != "" {
		return s.source, nil
	}
	selected, err := s.ledger.Selected()
	if err != nil {
		return "", fmt.Errorf("read selected word list: %w", err)
	}
	if selected == "" {
		return DefaultSource, nil
	}
	return selected, nil
}

// Files returns the word lists available for selection.
func (s *Session) Files() ([]string, error) {
	return s.words.Files()
}

// Index builds a fresh index from the word list in use, then replays the
// recorded insertions and removals on it.
// A recorded change that no longer applies is logged and skipped.
func (s *Session) Index() (*wordindex.WordIndex, error) {
	source, err := s.Source()
	if err != nil {
		return nil, err
	}
	index, err := wordindex.FromSource(s.words, source, wordindex.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	added, err := s.ledger.Words(ledger.Added, source)
	if err != nil {
		return nil, err
	}
	for _, word := range added {
		if err := index.Insert(word); err != nil {
			s.logger.Warn("replay insertion failed", "source", source, "word", word, "error", err)
		}
	}

	removed, err := s.ledger.Words(ledger.Removed, source)
	if err != nil {
		return nil, err
	}
	for _, word := range removed {
		if err := index.Remove(word); err != nil {
			s.logger.Warn("replay removal failed", "source", source, "word", word, "error", err)
		}
	}

	s.logger.Debug("index ready", "source", source, "added", len(added), "removed", len(removed))
	return index, nil
}

// Insert adds word to the word list in use and records it.
// Inserting a word that is already present is a no-op.
func (s *Session) Insert(word string) error {
	if word == "" {
		return wordindex.ErrEmptyWord
	}
	word = wordindex.Normalize(word)

	source, index, err := s.open()
	if err != nil {
		return err
	}
	if index.Search(word) == nil {
		return nil
	}

	wasRemoved, err := s.ledger.Has(ledger.Removed, source, word)
	if err != nil {
		return err
	}
	if wasRemoved {
		err = s.ledger.Delete(ledger.Removed, source, word)
	} else {
		err = s.ledger.Put(ledger.Added, source, word)
	}
	if err != nil {
		return fmt.Errorf("record insertion of %q: %w", word, err)
	}
	s.logger.Info("word inserted", "source", source, "word", word)
	return nil
}

// Remove removes word from the word list in use and records it.
// A word the session inserted is not part of the word list: removing it only
// forgets the insertion, so a later removal of it reports a plain search miss
// rather than ErrAlreadyRemoved.
//
// Returns:
//   - ErrAlreadyRemoved if the session already removed a word of the list.
//   - an error matching wordindex.ErrSearchMiss if the word is not present.
func (s *Session) Remove(word string) error {
	if word == "" {
		return fmt.Errorf("%w: %q", wordindex.ErrSearchMiss, word)
	}
	word = wordindex.Normalize(word)

	source, index, err := s.open()
	if err != nil {
		return err
	}

	removed, err := s.ledger.Has(ledger.Removed, source, word)
	if err != nil {
		return err
	}
	if removed {
		return fmt.Errorf("%w: %q", ErrAlreadyRemoved, word)
	}
	if err := index.Remove(word); err != nil {
		return err
	}

	wasAdded, err := s.ledger.Has(ledger.Added, source, word)
	if err != nil {
		return err
	}
	if wasAdded {
		err = s.ledger.Delete(ledger.Added, source, word)
	} else {
		err = s.ledger.Put(ledger.Removed, source, word)
	}
	if err != nil {
		return fmt.Errorf("record removal of %q: %w", word, err)
	}
	s.logger.Info("word removed", "source", source, "word", word)
	return nil
}

// Select switches to the word list name and forgets the changes recorded for it.
func (s *Session) Select(name string) error {
	ok, err := s.words.Exists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", wordsource.ErrNotFound, name)
	}
	if err := s.ledger.Select(name); err != nil {
		return err
	}
	if err := s.ledger.Clear(name); err != nil {
		return err
	}
	s.source = ""
	s.logger.Info("word list selected", "source", name)
	return nil
}

// Reset forgets every recorded change and the selection.
func (s *Session) Reset() error {
	if err := s.ledger.Reset(); err != nil {
		return fmt.Errorf("reset ledger: %w", err)
	}
	s.source = ""
	return nil
}

func (s *Session) open() (string, *wordindex.WordIndex, error) {
	source, err := s.Source()
	if err != nil {
		return "", nil, err
	}
	index, err := s.Index()
	if err != nil {
		return "", nil, err
	}
	return source, index, nil
}

// IsMiss reports whether err is a search miss, such as an absent or already removed word.
func IsMiss(err error) bool {
	return errors.Is(err, wordindex.ErrSearchMiss)
}
