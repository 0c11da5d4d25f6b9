package handler

import (
	"flashbot/internal/dialog"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// keyboardRowWidth is how many option buttons sit on one keyboard row
const keyboardRowWidth = 2

// Handler adapts Telegram updates to the dialog controller
type Handler struct {
	bot        *tele.Bot
	controller *dialog.Controller
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(bot *tele.Bot, controller *dialog.Controller, logger *zap.Logger) *Handler {
	return &Handler{
		bot:        bot,
		controller: controller,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.dispatch)
	h.bot.Handle("/cards", h.dispatch)
	h.bot.Handle(tele.OnText, h.dispatch)
}

// dispatch converts the update into an inbound message, runs the state
// machine, and sends every resulting reply
func (h *Handler) dispatch(c tele.Context) error {
	sender := c.Sender()
	if sender == nil || c.Chat() == nil {
		return nil
	}

	replies := h.controller.Handle(dialog.Inbound{
		PlatformID:  sender.ID,
		ChatID:      c.Chat().ID,
		Username:    sender.Username,
		DisplayName: sender.FirstName,
		Text:        c.Text(),
	})

	for _, reply := range replies {
		if err := c.Send(reply.Text, buildMarkup(reply.Options)); err != nil {
			h.logger.Error("failed to send reply",
				zap.Int64("user_id", sender.ID),
				zap.Int64("chat_id", c.Chat().ID),
				zap.Error(err),
			)
			return err
		}
	}

	return nil
}

// buildMarkup renders option labels as a reply keyboard, two buttons per
// row. No options means the previous keyboard gets removed.
func buildMarkup(options []string) *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{ResizeKeyboard: true}

	if len(options) == 0 {
		markup.RemoveKeyboard = true
		return markup
	}

	var rows []tele.Row
	for start := 0; start < len(options); start += keyboardRowWidth {
		end := start + keyboardRowWidth
		if end > len(options) {
			end = len(options)
		}

		row := tele.Row{}
		for _, label := range options[start:end] {
			row = append(row, markup.Text(label))
		}
		rows = append(rows, row)
	}

	markup.Reply(rows...)
	return markup
}
