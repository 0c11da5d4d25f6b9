package domain

import "errors"

var (
	// ErrNoWordsAvailable means neither shared nor personal vocabulary has a word to quiz from
	ErrNoWordsAvailable = errors.New("no words available")

	// ErrInvalidWordPair means add-word input did not parse as "source - target"
	// with both halves non-empty after trimming
	ErrInvalidWordPair = errors.New("invalid word pair")
)
