package app

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type updateSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type updateHandler interface {
	Handle(ctx context.Context, up tgbotapi.Update)
}

// poll feeds long-polled updates to h one at a time until ctx is done.
func poll(ctx context.Context, src updateSource, timeout int, h updateHandler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = timeout
	updates := src.GetUpdatesChan(u)
	defer src.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case up, ok := <-updates:
			if !ok {
				return
			}
			h.Handle(ctx, up)
		}
	}
}
