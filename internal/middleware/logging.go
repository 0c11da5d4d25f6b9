package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging logs every update and recovers panics so one user's message
// can never take down the poller
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("panic while handling update",
						zap.Any("panic", r),
						zap.Int64("user_id", senderID(c)),
					)
				}
			}()

			logger.Debug("update received",
				zap.Int64("user_id", senderID(c)),
				zap.String("text", c.Text()),
			)

			if err := next(c); err != nil {
				logger.Error("handler failed",
					zap.Int64("user_id", senderID(c)),
					zap.Error(err),
				)
				return err
			}
			return nil
		}
	}
}

func senderID(c tele.Context) int64 {
	if sender := c.Sender(); sender != nil {
		return sender.ID
	}
	return 0
}
