package wordindex

import "errors"

var (
	// ErrEmptyWord is returned when inserting the empty string.
	ErrEmptyWord = errors.New("empty word")

	// ErrSearchMiss is returned when a looked up or removed word is not stored.
	ErrSearchMiss = errors.New("word not found")
)
