// Package wordsource reads word lists: plain text files holding one word per line.
package wordsource

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Extension is the file extension of word list files.
const Extension = ".txt"

var (
	// ErrInvalidName is returned for names that are not plain file names.
	ErrInvalidName = errors.New("invalid word list name")

	// ErrNotFound is returned when a word list does not exist.
	ErrNotFound = errors.New("word list not found")
)

// Directory is a directory of word list files.
type Directory struct {
	Path string
}

// NewDirectory returns the Directory rooted at path.
func NewDirectory(path string) *Directory {
	return &Directory{Path: path}
}

// Files returns the names of the word lists in the directory, sorted.
func (d *Directory) Files() ([]string, error) {
	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil, fmt.Errorf("list word lists in %s: %w", d.Path, err)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), Extension) {
			files = append(files, entry.Name())
		}
	}
	slices.Sort(files)
	return files, nil
}

// Load reads the word list name, one word per line.
// Surrounding white space of each line is trimmed, blank lines are kept as empty strings.
func (d *Directory) Load(name string) ([]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(d.Path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return ReadWords(file)
}

// ReadWords reads one word per line from r.
func ReadWords(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		words = append(words, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}

// Exists reports whether name is one of the word lists of the directory.
func (d *Directory) Exists(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	files, err := d.Files()
	if err != nil {
		return false, err
	}
	return slices.Contains(files, name), nil
}

// names must point inside the directory
func validateName(name string) error {
	if name == "" || name == "." || name == ".." || name != filepath.Base(name) || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
