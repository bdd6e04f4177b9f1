package models

import (
	"time"

	"github.com/google/uuid"
)

type Outcome string

const (
	OutcomeNone            Outcome = ""
	OutcomePending         Outcome = "pending"
	OutcomeVerified        Outcome = "verified"
	OutcomeRejectedWrong   Outcome = "rejected_wrong"
	OutcomeRejectedTimeout Outcome = "rejected_timeout"
)

// IsTerminal reports whether the outcome ends a verification.
func (o Outcome) IsTerminal() bool {
	switch o {
	case OutcomeVerified, OutcomeRejectedWrong, OutcomeRejectedTimeout:
		return true
	}
	return false
}

// TimerHandle identifies one armed timeout. Zero means "no timer".
type TimerHandle uint64

// PendingVerification is one member mid-challenge.
// Values handed out by the registry are copies.
type PendingVerification struct {
	AttemptID      uuid.UUID   `json:"attempt_id"`
	UserID         int64       `json:"user_id"`
	ChatID         int64       `json:"chat_id"`
	DisplayName    string      `json:"display_name"`
	ExpectedAnswer string      `json:"-"`
	Resolved       bool        `json:"resolved"`
	Outcome        Outcome     `json:"outcome"`
	Timer          TimerHandle `json:"-"`
	StartedAt      time.Time   `json:"started_at"`
}

// VerificationResult is the history row written once a verification resolves.
type VerificationResult struct {
	AttemptID   uuid.UUID `json:"attempt_id"`
	ChatID      int64     `json:"chat_id"`
	UserID      int64     `json:"user_id"`
	DisplayName string    `json:"display_name"`
	Outcome     Outcome   `json:"outcome"`
	Enforced    bool      `json:"enforced"`
	StartedAt   time.Time `json:"started_at"`
	ResolvedAt  time.Time `json:"resolved_at"`
}

type Question struct {
	Prompt string `yaml:"question" json:"question"`
	Answer string `yaml:"answer" json:"answer"`
}
