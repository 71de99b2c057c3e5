package wordindex

import "sync"

// SyncIndex guards a WordIndex with a single lock, held for the whole of
// every call, enumerations included.
type SyncIndex struct {
	mu    sync.Mutex
	index *WordIndex
}

var (
	_ Index = (*WordIndex)(nil)
	_ Index = (*SyncIndex)(nil)
)

// Synchronized wraps index for use by concurrent callers.
// index must not be used directly afterwards.
func Synchronized(index *WordIndex) *SyncIndex {
	return &SyncIndex{index: index}
}

func (s *SyncIndex) Insert(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Insert(word)
}

func (s *SyncIndex) Remove(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Remove(word)
}

func (s *SyncIndex) Search(word string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.Search(word)
}

func (s *SyncIndex) WordsWithPrefix(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.WordsWithPrefix(prefix)
}

func (s *SyncIndex) WordsWithSuffix(suffix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.WordsWithSuffix(suffix)
}

func (s *SyncIndex) AllWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.AllWords()
}

func (s *SyncIndex) WordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index.WordCount()
}
