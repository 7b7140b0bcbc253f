package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"travelbooker/internal/domain"
)

// TelegramNotifier posts booking lifecycle events to a single operations
// chat. Customers are not reachable over Telegram here, so there is no
// per-user delivery.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == 0 {
		logger.Warn("telegram is not configured, booking notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking*\n\nBooking: %s\nUser: %s\nStatus: %s",
		booking.ID, booking.UserID, booking.Status,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nBooking: %s\nUser: %s",
		booking.ID, booking.UserID,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
