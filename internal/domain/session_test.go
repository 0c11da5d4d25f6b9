package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWord_DisplayForm(t *testing.T) {
	w := Word{SourceText: "кот", TargetText: "cat"}
	assert.Equal(t, "кот - cat", w.DisplayForm())
}

func TestNewRoundSession(t *testing.T) {
	word := Word{SourceText: "кот", TargetText: "cat"}

	sess := NewRoundSession(word, []string{"red", "cat", "blue"})

	assert.Equal(t, StateAwaitingAnswer, sess.State)
	assert.Equal(t, "кот", sess.TargetWord)
	assert.Equal(t, "cat", sess.Expected)
	assert.Len(t, sess.Options, 3)
	for _, opt := range sess.Options {
		assert.Equal(t, VerdictNone, opt.Verdict)
	}
	assert.Empty(t, sess.PendingDeletions)
}
