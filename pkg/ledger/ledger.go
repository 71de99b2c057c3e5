// Package ledger records the state of a word index session on disk: the selected
// word list, and the words removed from or added to each list by the user.
//
// The index itself is never stored; it is rebuilt from its word list and the
// recorded changes are replayed on top of it.
package ledger

import (
	"errors"
	"fmt"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"
)

// List names one of the word lists kept per source.
type List string

const (
	Removed List = "removed" // words removed from the source
	Added   List = "added"   // words inserted on top of the source
)

var (
	// ErrUnknownList is returned for a List other than Removed and Added.
	ErrUnknownList = errors.New("unknown ledger list")

	metaBucket  = []byte("meta")
	selectedKey = []byte("selected")
)

var FileModeRW os.FileMode = 0600

// Ledger is a bbolt backed session store.
type Ledger struct {
	db *bolt.DB
}

// Open opens, or creates, the ledger database at path.
func Open(path string) (*Ledger, error) {
	db, err := bolt.Open(path, FileModeRW, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open ledger %s: %w", path, err)
	}
	return &Ledger{db: db}, nil
}

// Close releases the database.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// Selected returns the selected source, or "" if none was selected.
func (l *Ledger) Selected() (string, error) {
	selected := ""
	err := l.db.View(func(tx *bolt.Tx) error {
		if bucket := tx.Bucket(metaBucket); bucket != nil {
			selected = string(bucket.Get(selectedKey))
		}
		return nil
	})
	return selected, err
}

// Select records source as the selected source.
func (l *Ledger) Select(source string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		return bucket.Put(selectedKey, []byte(source))
	})
}

// Put records word in list for source, along with the time it was recorded.
// Recording a word twice only refreshes that time.
func (l *Ledger) Put(list List, source string, word string) error {
	if err := list.validate(); err != nil {
		return err
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(list))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		words, err := bucket.CreateBucketIfNotExists([]byte(source))
		if err != nil {
			return fmt.Errorf("failed to create bucket for %q: %w", source, err)
		}
		if err := words.Put([]byte(word), []byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
			return fmt.Errorf("failed to insert %q: %w", word, err)
		}
		return nil
	})
}

// Delete forgets word from list for source. Deleting an unknown word is a no-op.
func (l *Ledger) Delete(list List, source string, word string) error {
	if err := list.validate(); err != nil {
		return err
	}
	return l.db.Update(func(tx *bolt.Tx) error {
		words := sourceBucket(tx, list, source)
		if words == nil {
			return nil
		}
		return words.Delete([]byte(word))
	})
}

// Has reports whether word is recorded in list for source.
func (l *Ledger) Has(list List, source string, word string) (bool, error) {
	if err := list.validate(); err != nil {
		return false, err
	}
	found := false
	err := l.db.View(func(tx *bolt.Tx) error {
		words := sourceBucket(tx, list, source)
		found = words != nil && words.Get([]byte(word)) != nil
		return nil
	})
	return found, err
}

// Words returns the words recorded in list for source, in ascending byte order.
func (l *Ledger) Words(list List, source string) ([]string, error) {
	if err := list.validate(); err != nil {
		return nil, err
	}
	words := []string{}
	err := l.db.View(func(tx *bolt.Tx) error {
		bucket := sourceBucket(tx, list, source)
		if bucket == nil {
			return nil
		}
		return bucket.ForEach(func(k, _ []byte) error {
			words = append(words, string(k))
			return nil
		})
	})
	return words, err
}

// Clear forgets every word recorded for source, in both lists.
func (l *Ledger) Clear(source string) error {
	return l.db.Update(func(tx *bolt.Tx) error {
		for _, list := range []List{Removed, Added} {
			bucket := tx.Bucket([]byte(list))
			if bucket == nil || bucket.Bucket([]byte(source)) == nil {
				continue
			}
			if err := bucket.DeleteBucket([]byte(source)); err != nil {
				return fmt.Errorf("failed to clear %s words of %q: %w", list, source, err)
			}
		}
		return nil
	})
}

// Reset forgets everything, the selection included.
func (l *Ledger) Reset() error {
	return l.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{metaBucket, []byte(Removed), []byte(Added)} {
			if tx.Bucket(name) == nil {
				continue
			}
			if err := tx.DeleteBucket(name); err != nil {
				return fmt.Errorf("failed to delete bucket %s: %w", name, err)
			}
		}
		return nil
	})
}

func sourceBucket(tx *bolt.Tx, list List, source string) *bolt.Bucket {
	bucket := tx.Bucket([]byte(list))
	if bucket == nil {
		return nil
	}
	return bucket.Bucket([]byte(source))
}

func (list List) validate() error {
	if list != Removed && list != Added {
		return fmt.Errorf("%w: %q", ErrUnknownList, string(list))
	}
	return nil
}
