package wordsource

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "file2.txt", "")
	writeFile(t, dir, "file1.txt", "")
	writeFile(t, dir, "image.png", "")
	writeFile(t, dir, "file3.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0o700))

	files, err := NewDirectory(dir).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{"file1.txt", "file2.txt", "file3.txt"}, files)
}

func TestFilesMissingDirectory(t *testing.T) {
	_, err := NewDirectory(filepath.Join(t.TempDir(), "nope")).Files()
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dictionary.txt", "apple\n  Banana \r\n\ncherry")

	words, err := NewDirectory(dir).Load("dictionary.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Banana", "", "cherry"}, words)
}

func TestLoadFileNotFound(t *testing.T) {
	_, err := NewDirectory(t.TempDir()).Load("invisible-file.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsPaths(t *testing.T) {
	dir := NewDirectory(t.TempDir())

	for _, name := range []string{"", ".", "..", "../secret.txt", "sub/words.txt", `sub\words.txt`} {
		_, err := dir.Load(name)
		assert.ErrorIs(t, err, ErrInvalidName, "load %q", name)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dictionary.txt", "a\n")

	ok, err := NewDirectory(dir).Exists("dictionary.txt")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = NewDirectory(dir).Exists("other.txt")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReadWords(t *testing.T) {
	words, err := ReadWords(strings.NewReader("one\ntwo\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, words)
}
