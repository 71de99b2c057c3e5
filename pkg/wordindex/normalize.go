package wordindex

import (
	"golang.org/x/text/cases"
)

// folding is stateless, one Caser serves every goroutine
var folder = cases.Fold()

// Normalize converts a word to the single case the index stores, using Unicode
// case folding (e.g. "ÉTÉ" becomes "été").
//
// Folding maps each rune on its own, with no regard to its neighbours, so a
// prefix or suffix always folds to a prefix or suffix of the folded word: "Σ",
// "σ" and "ς" all fold to "σ". Full folding also expands some runes, so "ß"
// and "ss" are the same word.
func Normalize(word string) string {
	return folder.String(word)
}

// WordToPath normalizes a word and converts it into the rune path used to walk the trie.
//
// Parameters:
//   - word: the word as given by the caller, in any case.
//
// Returns:
//   - A slice of runes, one per trie level, of the case folded word.
func WordToPath(word string) []rune {
	return []rune(Normalize(word))
}

// PathToWord converts a trie path back into a word.
func PathToWord(path []rune) string {
	return string(path)
}

// hasSuffix compares word and suffix rune by rune starting from the end of both.
func hasSuffix(word []rune, suffix []rune) bool {
	if len(suffix) > len(word) {
		return false
	}
	for i, j := len(word)-1, len(suffix)-1; j >= 0; i, j = i-1, j-1 {
		if word[i] != suffix[j] {
			return false
		}
	}
	return true
}
