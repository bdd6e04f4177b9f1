package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"devgate/internal/logging"
	"devgate/internal/models"
	"devgate/internal/services"
)

const statsWindow = 24 * time.Hour

// Verifier is the part of the verification service fed by chat updates.
type Verifier interface {
	HandleJoin(ctx context.Context, ev models.JoinEvent)
	HandleMessage(ctx context.Context, ev models.MessageEvent)
}

type Replier interface {
	SendMessage(ctx context.Context, chatID int64, text string) (int, error)
}

// UpdatesHandler turns Bot API updates into verification events and answers
// the bot's commands. Polling and webhook delivery both end up here.
type UpdatesHandler struct {
	Verifier Verifier
	Replier  Replier
	Outcomes *services.OutcomeService
	Logger   *slog.Logger
}

func NewUpdatesHandler(v Verifier, r Replier, outcomes *services.OutcomeService, logger *slog.Logger) *UpdatesHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &UpdatesHandler{Verifier: v, Replier: r, Outcomes: outcomes, Logger: logger}
}

func (h *UpdatesHandler) Handle(ctx context.Context, up tgbotapi.Update) {
	msg := up.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	if len(msg.NewChatMembers) > 0 {
		h.Verifier.HandleJoin(ctx, joinEvent(msg))
		return
	}
	if msg.From == nil {
		return
	}

	h.Verifier.HandleMessage(ctx, models.MessageEvent{
		ChatID:    msg.Chat.ID,
		UserID:    msg.From.ID,
		MessageID: msg.MessageID,
		Text:      msg.Text,
		IsCommand: msg.IsCommand(),
	})

	if msg.IsCommand() {
		h.command(ctx, msg)
	}
}

func joinEvent(msg *tgbotapi.Message) models.JoinEvent {
	ev := models.JoinEvent{ChatID: msg.Chat.ID}
	for _, u := range msg.NewChatMembers {
		ev.Members = append(ev.Members, models.Member{
			ID:        u.ID,
			Username:  u.UserName,
			FirstName: u.FirstName,
			IsBot:     u.IsBot,
		})
	}
	return ev
}

func (h *UpdatesHandler) command(ctx context.Context, msg *tgbotapi.Message) {
	var text string
	switch msg.Command() {
	case "start":
		text = services.StartText
	case "help":
		text = services.HelpText
	case "stats":
		text = h.statsText(ctx, msg.Chat.ID)
	default:
		return
	}
	if _, err := h.Replier.SendMessage(ctx, msg.Chat.ID, text); err != nil {
		h.Logger.WarnContext(ctx, "command reply failed", "command", msg.Command(), "chat_id", msg.Chat.ID, "error", err)
	}
}

func (h *UpdatesHandler) statsText(ctx context.Context, chatID int64) string {
	if h.Outcomes == nil {
		return "Verification history is not enabled."
	}
	sum, err := h.Outcomes.Summary(ctx, chatID, statsWindow)
	if errors.Is(err, services.ErrHistoryDisabled) {
		return "Verification history is not enabled."
	}
	if err != nil {
		h.Logger.ErrorContext(ctx, "stats summary failed", "chat_id", chatID, "error", err)
		return "Couldn't load verification stats, try again later."
	}
	return services.SummaryText(sum, statsWindow)
}
