package services

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"devgate/internal/logging"
)

// botClient is the part of *tgbotapi.BotAPI the gateway needs.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// TelegramGateway carries out moderation and messaging through the Bot API.
type TelegramGateway struct {
	bot    botClient
	logger *slog.Logger
}

func NewTelegramGateway(bot botClient, logger *slog.Logger) *TelegramGateway {
	if logger == nil {
		logger = logging.Discard()
	}
	return &TelegramGateway{bot: bot, logger: logger}
}

// pendingPermissions keep plain text so the member can answer.
func pendingPermissions() *tgbotapi.ChatPermissions {
	return &tgbotapi.ChatPermissions{
		CanSendMessages:       true,
		CanSendMediaMessages:  false,
		CanSendPolls:          false,
		CanSendOtherMessages:  false,
		CanAddWebPagePreviews: false,
	}
}

func memberPermissions() *tgbotapi.ChatPermissions {
	return &tgbotapi.ChatPermissions{
		CanSendMessages:       true,
		CanSendMediaMessages:  true,
		CanSendPolls:          true,
		CanSendOtherMessages:  true,
		CanAddWebPagePreviews: true,
	}
}

func (g *TelegramGateway) Restrict(ctx context.Context, chatID, userID int64) error {
	return g.restrict(ctx, "restrict", chatID, userID, pendingPermissions())
}

func (g *TelegramGateway) Unrestrict(ctx context.Context, chatID, userID int64) error {
	return g.restrict(ctx, "unrestrict", chatID, userID, memberPermissions())
}

func (g *TelegramGateway) restrict(ctx context.Context, action string, chatID, userID int64, perms *tgbotapi.ChatPermissions) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrGateway, action, err)
	}
	cfg := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
		Permissions:      perms,
	}
	if _, err := g.bot.Request(cfg); err != nil {
		return fmt.Errorf("%w: %s chat=%d user=%d: %w", ErrGateway, action, chatID, userID, err)
	}
	g.logger.DebugContext(ctx, "member permissions updated", "action", action, "chat_id", chatID, "user_id", userID)
	return nil
}

func (g *TelegramGateway) Ban(ctx context.Context, chatID, userID int64, revokeMessages bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: ban: %w", ErrGateway, err)
	}
	cfg := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
		RevokeMessages:   revokeMessages,
	}
	if _, err := g.bot.Request(cfg); err != nil {
		return fmt.Errorf("%w: ban chat=%d user=%d: %w", ErrGateway, chatID, userID, err)
	}
	g.logger.DebugContext(ctx, "member banned", "chat_id", chatID, "user_id", userID, "revoke", revokeMessages)
	return nil
}

func (g *TelegramGateway) SendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%w: send: %w", ErrGateway, err)
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	sent, err := g.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("%w: send chat=%d: %w", ErrGateway, chatID, err)
	}
	return sent.MessageID, nil
}

func (g *TelegramGateway) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: delete: %w", ErrGateway, err)
	}
	if _, err := g.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("%w: delete chat=%d message=%d: %w", ErrGateway, chatID, messageID, err)
	}
	return nil
}
