package domain

// SessionState represents where a (user, chat) pair is in the quiz dialog
type SessionState string

const (
	StateIdle             SessionState = "idle"
	StateAwaitingAnswer   SessionState = "awaiting_answer"
	StateAwaitingNewWord  SessionState = "awaiting_new_word"
	StateAwaitingDeletion SessionState = "awaiting_deletion"
)

// Verdict annotates an answer option once the user has tried it
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictCorrect
	VerdictWrong
)

// AnswerOption is one selectable translation in the current round
type AnswerOption struct {
	Label   string
	Verdict Verdict
}

// Session holds the per-(user, chat) dialog state for one round or sub-dialog.
// It is transient: lost sessions simply restart the round.
type Session struct {
	State      SessionState
	TargetWord string // source-language text being asked
	Expected   string // the correct translation
	Options    []AnswerOption

	// PendingDeletions is the personal-word snapshot shown during deletion
	PendingDeletions []Word
}

// NewRoundSession builds an awaiting-answer session for a fresh round
func NewRoundSession(word Word, options []string) Session {
	opts := make([]AnswerOption, len(options))
	for i, label := range options {
		opts[i] = AnswerOption{Label: label}
	}
	return Session{
		State:      StateAwaitingAnswer,
		TargetWord: word.SourceText,
		Expected:   word.TargetText,
		Options:    opts,
	}
}
