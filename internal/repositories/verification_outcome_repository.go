package repositories

import (
	"context"
	"database/sql"
	"time"

	"devgate/internal/models"
)

// VerificationOutcomeRepository keeps an append-only history of resolved
// verifications. In-flight state is never stored here.
type VerificationOutcomeRepository interface {
	EnsureSchema(ctx context.Context) error
	Record(ctx context.Context, res models.VerificationResult) error
	ListByChat(ctx context.Context, chatID int64, limit int) ([]models.VerificationResult, error)
	CountSince(ctx context.Context, chatID int64, outcome models.Outcome, since time.Time) (int, error)
}

type verificationOutcomeRepository struct{ db *sql.DB }

func NewVerificationOutcomeRepository(db *sql.DB) VerificationOutcomeRepository {
	return &verificationOutcomeRepository{db: db}
}

func (r *verificationOutcomeRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS verification_outcomes (
			attempt_id   UUID PRIMARY KEY,
			chat_id      BIGINT      NOT NULL,
			user_id      BIGINT      NOT NULL,
			display_name TEXT        NOT NULL,
			outcome      TEXT        NOT NULL,
			enforced     BOOLEAN     NOT NULL,
			started_at   TIMESTAMPTZ NOT NULL,
			resolved_at  TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (r *verificationOutcomeRepository) Record(ctx context.Context, res models.VerificationResult) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO verification_outcomes
			(attempt_id, chat_id, user_id, display_name, outcome, enforced, started_at, resolved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (attempt_id) DO NOTHING
	`, res.AttemptID, res.ChatID, res.UserID, res.DisplayName, string(res.Outcome), res.Enforced, res.StartedAt, res.ResolvedAt)
	return err
}

func (r *verificationOutcomeRepository) ListByChat(ctx context.Context, chatID int64, limit int) ([]models.VerificationResult, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT attempt_id, chat_id, user_id, display_name, outcome, enforced, started_at, resolved_at
		FROM verification_outcomes
		WHERE chat_id = $1
		ORDER BY resolved_at DESC
		LIMIT $2
	`, chatID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.VerificationResult
	for rows.Next() {
		var (
			res     models.VerificationResult
			outcome string
		)
		if err := rows.Scan(&res.AttemptID, &res.ChatID, &res.UserID, &res.DisplayName, &outcome, &res.Enforced, &res.StartedAt, &res.ResolvedAt); err != nil {
			return nil, err
		}
		res.Outcome = models.Outcome(outcome)
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *verificationOutcomeRepository) CountSince(ctx context.Context, chatID int64, outcome models.Outcome, since time.Time) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM verification_outcomes
		WHERE chat_id = $1 AND outcome = $2 AND resolved_at >= $3
	`, chatID, string(outcome), since).Scan(&n)
	return n, err
}
