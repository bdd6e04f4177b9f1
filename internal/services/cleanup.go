package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"devgate/internal/models"
)

// enqueueCleanup detaches the ledger entry for (chatID, userID) and deletes
// its messages in the background. Callers must have removed the registry
// record first.
func (s *VerificationService) enqueueCleanup(chatID, userID int64) {
	retained := s.ledger.Take(chatID, userID)
	if len(retained.BotMessages) == 0 && len(retained.UserMessages) == 0 {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.cleanup(s.baseCtx, retained)
	}()
}

func (s *VerificationService) cleanup(ctx context.Context, retained models.RetainedMessages) {
	var g errgroup.Group
	g.Go(func() error {
		s.deleteMessages(ctx, retained.ChatID, retained.BotMessages, s.cleanupDelay, "bot")
		return nil
	})
	g.Go(func() error {
		s.deleteMessages(ctx, retained.ChatID, retained.UserMessages, 0, "user")
		return nil
	})
	_ = g.Wait()

	s.logger.DebugContext(ctx, "verification messages cleaned up",
		"chat_id", retained.ChatID,
		"user_id", retained.UserID,
		"bot_messages", len(retained.BotMessages),
		"user_messages", len(retained.UserMessages),
	)
}

// deleteMessages tries each id exactly once. pacing waits before every
// deletion; a cancelled ctx skips the wait but not the deletion.
func (s *VerificationService) deleteMessages(ctx context.Context, chatID int64, ids []int, pacing time.Duration, kind string) {
	deleteCtx := context.WithoutCancel(ctx)
	for _, id := range ids {
		if pacing > 0 {
			wait(ctx, pacing)
		}
		if err := s.gateway.DeleteMessage(deleteCtx, chatID, id); err != nil {
			s.metrics.IncrementDeletionFailures()
			s.logger.WarnContext(ctx, "delete message failed", "kind", kind, "chat_id", chatID, "message_id", id, "error", err)
		}
	}
}

func wait(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
