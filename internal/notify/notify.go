// Package notify delivers one-line registrar run summaries to operators
// over the Telegram Bot API. Notifications are optional and advisory: the
// caller logs failures and moves on.
package notify

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mymmrac/telego"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// sendTimeout bounds one notification; a slow Bot API must not stall a
// deploy.
const sendTimeout = 10 * time.Second

// Notifier delivers a run summary.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Telegram sends summaries to a fixed chat.
type Telegram struct {
	token  string
	chatID int64
}

// NewTelegram creates a Telegram notifier.
func NewTelegram(token string, chatID int64) *Telegram {
	return &Telegram{token: token, chatID: chatID}
}

// FromEnv returns a Telegram notifier when both TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID are set. Notifications are disabled otherwise and the
// notifier is nil.
func FromEnv() (*Telegram, error) {
	token := os.Getenv(constants.EnvTelegramToken)
	chat := os.Getenv(constants.EnvTelegramChatID)

	if token == "" || chat == "" {
		return nil, nil
	}

	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", constants.EnvTelegramChatID, err)
	}

	return NewTelegram(token, chatID), nil
}

// Notify sends text as a plain message.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	bot, err := telego.NewBot(t.token)
	if err != nil {
		return fmt.Errorf("failed to initialize telegram bot: %w", err)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	params := telego.SendMessageParams{
		ChatID: telego.ChatID{ID: t.chatID},
		Text:   text,
	}

	if _, err := bot.SendMessage(sendCtx, &params); err != nil {
		return fmt.Errorf("failed to send telegram notification: %w", err)
	}

	return nil
}
