package repositories

import (
	"errors"
	"sync"

	"devgate/internal/models"
)

var (
	ErrAlreadyPending  = errors.New("verification already pending for user")
	ErrAlreadyResolved = errors.New("verification already resolved")
)

// VerificationRegistry owns every in-flight verification. TryResolve is the
// only way a record leaves the registry.
type VerificationRegistry interface {
	Admit(rec models.PendingVerification) (models.PendingVerification, error)
	AttachTimer(userID int64, h models.TimerHandle) bool
	TryResolve(userID int64, outcome models.Outcome) (models.PendingVerification, error)
	Get(userID int64) (models.PendingVerification, bool)
	Len() int
}

type verificationRegistry struct {
	mu      sync.Mutex
	pending map[int64]*models.PendingVerification
}

func NewVerificationRegistry() VerificationRegistry {
	return &verificationRegistry{
		pending: make(map[int64]*models.PendingVerification),
	}
}

func (r *verificationRegistry) Admit(rec models.PendingVerification) (models.PendingVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[rec.UserID]; ok {
		return models.PendingVerification{}, ErrAlreadyPending
	}
	rec.Resolved = false
	rec.Outcome = models.OutcomePending
	stored := rec
	r.pending[rec.UserID] = &stored
	return stored, nil
}

func (r *verificationRegistry) AttachTimer(userID int64, h models.TimerHandle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.pending[userID]
	if !ok {
		return false
	}
	rec.Timer = h
	return true
}

// TryResolve marks the record resolved and removes it in one critical
// section. Only the first caller for a user gets the record back.
func (r *verificationRegistry) TryResolve(userID int64, outcome models.Outcome) (models.PendingVerification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.pending[userID]
	if !ok || rec.Resolved {
		return models.PendingVerification{}, ErrAlreadyResolved
	}
	rec.Resolved = true
	rec.Outcome = outcome
	delete(r.pending, userID)
	return *rec, nil
}

func (r *verificationRegistry) Get(userID int64) (models.PendingVerification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.pending[userID]
	if !ok {
		return models.PendingVerification{}, false
	}
	return *rec, true
}

func (r *verificationRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}
