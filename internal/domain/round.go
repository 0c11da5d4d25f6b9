package domain

// Round is one prepared question: a target word and its shuffled
// translation options. Options contain the correct translation
// exactly once among the distractors.
type Round struct {
	Word    Word
	Options []string
}
