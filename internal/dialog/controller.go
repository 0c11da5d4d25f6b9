// Package dialog implements the quiz state machine: it decides what a
// user's message means given their current session and produces the
// replies and option keyboards to send back.
package dialog

import (
	"errors"
	"fmt"
	"strings"

	"flashbot/internal/domain"
	"flashbot/internal/service"
	"flashbot/internal/session"

	"go.uber.org/zap"
)

// Control buttons shown alongside answer options
const (
	CommandNext       = "Дальше ⏭"
	CommandAddWord    = "Добавить слово ➕"
	CommandDeleteWord = "Удалить слово🔙"
	CommandCancel     = "Отмена"
)

// Reply texts
const (
	msgChooseTranslation = "Выберите правильный перевод слова:\n🇷🇺 %s"
	msgCorrect           = "✅ Правильно!\n%s -> %s"
	msgWrong             = "❌ Ошибка!\nПопробуйте ещё раз: 🇷🇺%s"
	msgNoWords           = "В базе данных нет слов для изучения."
	msgAddPrompt         = "Введите слово в формате: русское - английское\nНапример: машина - car"
	msgAddFormat         = "Используйте формат: русское - английское"
	msgWordAdded         = "✅ Слово '%s - %s' добавлено!"
	msgNoPersonal        = "У вас пока нет пользовательских слов для удаления."
	msgChooseDeletion    = "Выберите слово для удаления:"
	msgDeleted           = "✅ Слово удалено!"
	msgDeleteFailed      = "❌ Ошибка при удалении"
	msgNotFound          = "❌ Слово не найдено"
	msgStorageError      = "Что-то пошло не так. Попробуйте ещё раз."
)

// Inbound is one incoming message from the messaging platform
type Inbound struct {
	PlatformID  int64
	ChatID      int64
	Username    string
	DisplayName string
	Text        string
}

// Reply is one outgoing message with its selectable option labels.
// Empty Options means no further choice is expected.
type Reply struct {
	Text    string
	Options []string
}

// UserService resolves platform identities to internal user ids
type UserService interface {
	GetOrCreateUser(platformID int64, username, displayName string) (int64, error)
}

// QuizService builds quiz rounds
type QuizService interface {
	NewRound(userID int64) (*domain.Round, error)
}

// WordService manages personal vocabulary
type WordService interface {
	AddPersonalWord(userID int64, sourceText, targetText string) (int64, error)
	DeletePersonalWord(userID, wordID int64) (bool, error)
	ListPersonalWords(userID int64) ([]domain.Word, error)
}

// Controller routes inbound messages to session transitions
type Controller struct {
	users    UserService
	quiz     QuizService
	words    WordService
	sessions *session.Store
	logger   *zap.Logger
}

// NewController creates a dialog controller
func NewController(
	users UserService,
	quiz QuizService,
	words WordService,
	sessions *session.Store,
	logger *zap.Logger,
) *Controller {
	return &Controller{
		users:    users,
		quiz:     quiz,
		words:    words,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle applies one inbound message to the pair's session and returns
// the replies to send. Storage failures never escape: they become a
// generic error reply and reset the session.
func (c *Controller) Handle(in Inbound) []Reply {
	text := strings.TrimSpace(in.Text)
	key := session.Key{UserID: in.PlatformID, ChatID: in.ChatID}

	userID, err := c.users.GetOrCreateUser(in.PlatformID, in.Username, in.DisplayName)
	if err != nil {
		return c.storageFailure(key, err)
	}

	// Slash commands restart the round from any state, sub-dialogs included
	if text == "/start" || text == "/cards" {
		return c.startRound(key, userID)
	}

	sess := c.sessions.Get(key)

	switch sess.State {
	case domain.StateAwaitingNewWord:
		return c.handleNewWordInput(key, userID, text)

	case domain.StateAwaitingDeletion:
		return c.handleDeletionChoice(key, userID, sess, text)

	case domain.StateAwaitingAnswer:
		switch text {
		case CommandNext:
			return c.startRound(key, userID)
		case CommandAddWord:
			return c.promptAddWord(key)
		case CommandDeleteWord:
			return c.promptDeletion(key, userID)
		default:
			return c.handleAnswer(key, userID, sess, text)
		}

	default: // idle or no session yet
		switch text {
		case CommandAddWord:
			return c.promptAddWord(key)
		case CommandDeleteWord:
			return c.promptDeletion(key, userID)
		default:
			return c.startRound(key, userID)
		}
	}
}

// startRound rolls a fresh round and replaces the pair's session
func (c *Controller) startRound(key session.Key, userID int64) []Reply {
	round, err := c.quiz.NewRound(userID)
	if errors.Is(err, domain.ErrNoWordsAvailable) {
		c.sessions.Reset(key)
		return []Reply{{Text: msgNoWords}}
	}
	if err != nil {
		return c.storageFailure(key, err)
	}

	sess := domain.NewRoundSession(round.Word, round.Options)
	c.sessions.Put(key, sess)

	return []Reply{{
		Text:    fmt.Sprintf(msgChooseTranslation, round.Word.SourceText),
		Options: roundKeyboard(sess),
	}}
}

// handleAnswer checks the user's text against the round's translation.
// Matching is exact and case-sensitive.
func (c *Controller) handleAnswer(key session.Key, userID int64, sess domain.Session, text string) []Reply {
	if text == sess.Expected {
		sess.Options = annotate(sess.Options, text, domain.VerdictCorrect)
		feedback := Reply{
			Text:    fmt.Sprintf(msgCorrect, sess.Expected, sess.TargetWord),
			Options: roundKeyboard(sess),
		}
		return append([]Reply{feedback}, c.startRound(key, userID)...)
	}

	// Wrong or unknown text: consume the matching option, keep the round
	sess.Options = annotate(sess.Options, text, domain.VerdictWrong)
	c.sessions.Put(key, sess)

	return []Reply{{
		Text:    fmt.Sprintf(msgWrong, sess.TargetWord),
		Options: roundKeyboard(sess),
	}}
}

// promptAddWord opens the add-word sub-dialog
func (c *Controller) promptAddWord(key session.Key) []Reply {
	c.sessions.Put(key, domain.Session{State: domain.StateAwaitingNewWord})
	return []Reply{{Text: msgAddPrompt}}
}

// handleNewWordInput parses "source - target" input or cancels the sub-dialog
func (c *Controller) handleNewWordInput(key session.Key, userID int64, text string) []Reply {
	if strings.EqualFold(text, CommandCancel) {
		c.sessions.Reset(key)
		return c.startRound(key, userID)
	}

	sourceText, targetText, err := service.ParseWordPair(text)
	if err != nil {
		// Malformed input: re-prompt, sub-dialog stays open
		return []Reply{{Text: msgAddFormat}}
	}

	if _, err := c.words.AddPersonalWord(userID, sourceText, targetText); err != nil {
		return c.storageFailure(key, err)
	}

	c.logger.Info("personal word added",
		zap.Int64("user_id", userID),
		zap.String("source", sourceText),
		zap.String("target", targetText),
	)

	c.sessions.Reset(key)
	confirm := Reply{Text: fmt.Sprintf(msgWordAdded, sourceText, targetText)}
	return append([]Reply{confirm}, c.startRound(key, userID)...)
}

// promptDeletion snapshots the user's words into the session and opens
// the deletion sub-dialog. With no personal words the state is unchanged.
func (c *Controller) promptDeletion(key session.Key, userID int64) []Reply {
	words, err := c.words.ListPersonalWords(userID)
	if err != nil {
		return c.storageFailure(key, err)
	}

	if len(words) == 0 {
		return []Reply{{Text: msgNoPersonal}}
	}

	c.sessions.Put(key, domain.Session{
		State:            domain.StateAwaitingDeletion,
		PendingDeletions: words,
	})

	return []Reply{{Text: msgChooseDeletion, Options: deletionKeyboard(words)}}
}

// handleDeletionChoice matches the user's text against the snapshotted words
func (c *Controller) handleDeletionChoice(key session.Key, userID int64, sess domain.Session, text string) []Reply {
	if strings.EqualFold(text, CommandCancel) {
		c.sessions.Reset(key)
		return c.startRound(key, userID)
	}

	for _, w := range sess.PendingDeletions {
		if w.DisplayForm() != text {
			continue
		}

		deleted, err := c.words.DeletePersonalWord(userID, w.ID)
		if err != nil {
			return c.storageFailure(key, err)
		}

		msg := msgDeleted
		if deleted {
			c.logger.Info("personal word deleted",
				zap.Int64("user_id", userID),
				zap.Int64("word_id", w.ID),
			)
		} else {
			msg = msgDeleteFailed
		}

		c.sessions.Reset(key)
		return append([]Reply{{Text: msg}}, c.startRound(key, userID)...)
	}

	return []Reply{{Text: msgNotFound, Options: deletionKeyboard(sess.PendingDeletions)}}
}

// storageFailure converts a storage error into a generic user-visible
// reply and abandons the round
func (c *Controller) storageFailure(key session.Key, err error) []Reply {
	c.logger.Error("storage operation failed",
		zap.Int64("user_id", key.UserID),
		zap.Int64("chat_id", key.ChatID),
		zap.Error(err),
	)
	c.sessions.Reset(key)
	return []Reply{{Text: msgStorageError}}
}

// annotate marks the untried option whose label matches text, returning
// a fresh slice so sessions never share option state
func annotate(options []domain.AnswerOption, text string, verdict domain.Verdict) []domain.AnswerOption {
	updated := make([]domain.AnswerOption, len(options))
	copy(updated, options)
	for i := range updated {
		if updated[i].Label == text && updated[i].Verdict == domain.VerdictNone {
			updated[i].Verdict = verdict
			break
		}
	}
	return updated
}

// roundKeyboard renders the round's options plus the control buttons
func roundKeyboard(sess domain.Session) []string {
	labels := make([]string, 0, len(sess.Options)+3)
	for _, opt := range sess.Options {
		labels = append(labels, displayLabel(opt))
	}
	return append(labels, CommandNext, CommandAddWord, CommandDeleteWord)
}

// deletionKeyboard renders the snapshotted words plus the cancel button
func deletionKeyboard(words []domain.Word) []string {
	labels := make([]string, 0, len(words)+1)
	for _, w := range words {
		labels = append(labels, w.DisplayForm())
	}
	return append(labels, CommandCancel)
}

func displayLabel(opt domain.AnswerOption) string {
	switch opt.Verdict {
	case domain.VerdictCorrect:
		return opt.Label + " ✅"
	case domain.VerdictWrong:
		return opt.Label + " ❌"
	default:
		return opt.Label
	}
}
