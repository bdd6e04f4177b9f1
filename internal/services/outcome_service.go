package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"devgate/internal/models"
	"devgate/internal/repositories"
)

var ErrHistoryDisabled = errors.New("verification history is disabled")

// OutcomeService reads the verification history kept by the repository.
type OutcomeService struct {
	repo repositories.VerificationOutcomeRepository
	now  func() time.Time
}

// NewOutcomeService accepts a nil repo; every read then fails with
// ErrHistoryDisabled.
func NewOutcomeService(repo repositories.VerificationOutcomeRepository) *OutcomeService {
	return &OutcomeService{repo: repo, now: time.Now}
}

type OutcomeSummary struct {
	ChatID   int64                  `json:"chat_id"`
	Since    time.Time              `json:"since"`
	Counts   map[models.Outcome]int `json:"counts"`
	Resolved int                    `json:"resolved"`
}

func (s *OutcomeService) Summary(ctx context.Context, chatID int64, window time.Duration) (*OutcomeSummary, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	since := s.now().Add(-window)
	sum := &OutcomeSummary{ChatID: chatID, Since: since, Counts: map[models.Outcome]int{}}
	for _, o := range []models.Outcome{models.OutcomeVerified, models.OutcomeRejectedWrong, models.OutcomeRejectedTimeout} {
		n, err := s.repo.CountSince(ctx, chatID, o, since)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", o, err)
		}
		sum.Counts[o] = n
		sum.Resolved += n
	}
	return sum, nil
}

func (s *OutcomeService) Recent(ctx context.Context, chatID int64, limit int) ([]models.VerificationResult, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.ListByChat(ctx, chatID, limit)
}

// SummaryText renders a summary for the /stats command.
func SummaryText(sum *OutcomeSummary, window time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>Verifications in the last %d hours</b>\n", int(window.Hours()))
	fmt.Fprintf(&b, "Passed: %d\n", sum.Counts[models.OutcomeVerified])
	fmt.Fprintf(&b, "Wrong answer: %d\n", sum.Counts[models.OutcomeRejectedWrong])
	fmt.Fprintf(&b, "Timed out: %d\n", sum.Counts[models.OutcomeRejectedTimeout])
	return b.String()
}
