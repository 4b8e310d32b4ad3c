// Package notify sends adoption and sync events to a Telegram chat. It
// formats status transitions into human-readable messages and handles
// delivery with retry logic for reliability.
package notify

import (
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"rehoboam/internal/models"
	"rehoboam/internal/predictions"
)

// Notifier handles Telegram notifications
type Notifier struct {
	bot            *tgbotapi.BotAPI
	chatID         int64
	maxRetries     int
	retryDelayBase time.Duration
}

// NewNotifier creates a new Telegram notifier
func NewNotifier(botToken, chatID string, maxRetries int, retryDelayBase time.Duration) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	chatIDInt, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID: %w", err)
	}

	if maxRetries <= 0 {
		maxRetries = 3
	}
	if retryDelayBase <= 0 {
		retryDelayBase = time.Second
	}

	return &Notifier{
		bot:            bot,
		chatID:         chatIDInt,
		maxRetries:     maxRetries,
		retryDelayBase: retryDelayBase,
	}, nil
}

// StatusChanged announces a node adoption transition.
func (n *Notifier) StatusChanged(node models.TechTreeNode, status models.TechTreeStatus, year, month int) error {
	return n.send(formatStatusChanged(node, status, year, month))
}

// SyncCompleted announces a successful push to the sync backend.
func (n *Notifier) SyncCompleted(pushed, fetched int) error {
	return n.send(formatSyncCompleted(pushed, fetched))
}

// SyncFailed announces a failed sync so the user knows records are still
// waiting in the outbox.
func (n *Notifier) SyncFailed(pending int, cause error) error {
	return n.send(formatSyncFailed(pending, cause))
}

func (n *Notifier) send(message string) error {
	msg := tgbotapi.NewMessage(n.chatID, message)
	msg.ParseMode = "MarkdownV2" // Use MarkdownV2 for better escaping support

	var lastErr error
	for i := 0; i < n.maxRetries; i++ {
		_, err := n.bot.Send(msg)
		if err == nil {
			return nil
		}
		lastErr = err
		time.Sleep(n.retryDelayBase * time.Duration(i+1))
	}

	return fmt.Errorf("failed to send message after %d retries: %w", n.maxRetries, lastErr)
}

func formatStatusChanged(node models.TechTreeNode, status models.TechTreeStatus, year, month int) string {
	monthLabel := escapeMarkdownV2(fmt.Sprintf("%s %d", predictions.MonthName(month), year))
	title := escapeMarkdownV2(node.Title)
	statusLabel := escapeMarkdownV2(status.Label())
	category := escapeMarkdownV2(node.Category.Label())

	message := "🌳 *Tech Tree Update*\n\n"
	message += fmt.Sprintf("%s\n", title)
	message += fmt.Sprintf("   📂 %s\n", category)
	message += fmt.Sprintf("   🚦 Status: *%s*\n", statusLabel)
	message += fmt.Sprintf("   📅 Effective: %s\n", monthLabel)
	return message
}

func formatSyncCompleted(pushed, fetched int) string {
	message := "🔄 *Sync Completed*\n\n"
	message += fmt.Sprintf("   ⬆️ Pushed: %d records\n", pushed)
	message += fmt.Sprintf("   ⬇️ Fetched: %d records\n", fetched)
	return message
}

func formatSyncFailed(pending int, cause error) string {
	message := "⚠️ *Sync Failed*\n\n"
	message += fmt.Sprintf("   📥 Records still pending: %d\n", pending)
	message += fmt.Sprintf("   💬 %s\n", escapeMarkdownV2(cause.Error()))
	return message
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2
func escapeMarkdownV2(text string) string {
	result := ""
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			result += "\\" + string(char)
		default:
			result += string(char)
		}
	}
	return result
}
