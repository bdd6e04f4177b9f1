package handlers

import (
	"context"
	"sync"
	"time"

	"devgate/internal/models"
)

type fakeVerifier struct {
	mu       sync.Mutex
	joins    []models.JoinEvent
	messages []models.MessageEvent
	pending  int
}

func (v *fakeVerifier) HandleJoin(_ context.Context, ev models.JoinEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.joins = append(v.joins, ev)
}

func (v *fakeVerifier) HandleMessage(_ context.Context, ev models.MessageEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = append(v.messages, ev)
}

func (v *fakeVerifier) PendingCount() int { return v.pending }

type reply struct {
	chatID int64
	text   string
}

type fakeReplier struct {
	replies []reply
	err     error
}

func (r *fakeReplier) SendMessage(_ context.Context, chatID int64, text string) (int, error) {
	r.replies = append(r.replies, reply{chatID: chatID, text: text})
	return len(r.replies), r.err
}

type fakeOutcomeRepo struct {
	rows   []models.VerificationResult
	counts map[models.Outcome]int
	limit  int
	err    error
}

func (r *fakeOutcomeRepo) EnsureSchema(context.Context) error { return nil }

func (r *fakeOutcomeRepo) Record(context.Context, models.VerificationResult) error { return nil }

func (r *fakeOutcomeRepo) ListByChat(_ context.Context, _ int64, limit int) ([]models.VerificationResult, error) {
	r.limit = limit
	return r.rows, r.err
}

func (r *fakeOutcomeRepo) CountSince(_ context.Context, _ int64, o models.Outcome, _ time.Time) (int, error) {
	return r.counts[o], r.err
}
