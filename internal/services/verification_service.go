package services

//go:generate mockgen -source=verification_service.go -destination=mocks/mocks.go -package=mocks Gateway,QuestionBank,OutcomeRecorder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"devgate/internal/logging"
	"devgate/internal/metrics"
	"devgate/internal/models"
	"devgate/internal/repositories"
)

var (
	ErrGateway           = errors.New("telegram gateway failure")
	ErrInvalidTransition = errors.New("invalid verification transition")
)

const (
	defaultTimeout      = 60 * time.Second
	defaultCleanupDelay = 2 * time.Second
)

// Gateway is the moderation and messaging surface of the chat transport.
type Gateway interface {
	Restrict(ctx context.Context, chatID, userID int64) error
	Unrestrict(ctx context.Context, chatID, userID int64) error
	Ban(ctx context.Context, chatID, userID int64, revokeMessages bool) error
	SendMessage(ctx context.Context, chatID int64, text string) (int, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

type QuestionBank interface {
	Pick() models.Question
}

type OutcomeRecorder interface {
	Record(ctx context.Context, res models.VerificationResult) error
}

// VerificationService drives the join -> challenge -> resolution state machine.
type VerificationService struct {
	registry  repositories.VerificationRegistry
	ledger    repositories.MessageLedger
	gateway   Gateway
	questions QuestionBank
	scheduler TimeoutScheduler
	outcomes  OutcomeRecorder
	metrics   *metrics.Metrics
	logger    *slog.Logger

	botID        int64
	timeout      time.Duration
	cleanupDelay time.Duration
	now          func() time.Time

	baseCtx context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

type Option func(*VerificationService)

func WithLogger(logger *slog.Logger) Option {
	return func(s *VerificationService) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *VerificationService) {
		s.metrics = m
	}
}

func WithOutcomeRecorder(r OutcomeRecorder) Option {
	return func(s *VerificationService) {
		s.outcomes = r
	}
}

func WithScheduler(sched TimeoutScheduler) Option {
	return func(s *VerificationService) {
		s.scheduler = sched
	}
}

func WithTimeout(d time.Duration) Option {
	return func(s *VerificationService) {
		s.timeout = d
	}
}

func WithCleanupDelay(d time.Duration) Option {
	return func(s *VerificationService) {
		s.cleanupDelay = d
	}
}

// WithBotID makes joins of the bot itself invisible to the state machine.
func WithBotID(id int64) Option {
	return func(s *VerificationService) {
		s.botID = id
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *VerificationService) {
		s.now = now
	}
}

func NewVerificationService(
	registry repositories.VerificationRegistry,
	ledger repositories.MessageLedger,
	gateway Gateway,
	questions QuestionBank,
	opts ...Option,
) (*VerificationService, error) {
	if registry == nil {
		return nil, errors.New("verification registry is required")
	}
	if ledger == nil {
		return nil, errors.New("message ledger is required")
	}
	if gateway == nil {
		return nil, errors.New("gateway is required")
	}
	if questions == nil {
		return nil, errors.New("question bank is required")
	}

	s := &VerificationService{
		registry:     registry,
		ledger:       ledger,
		gateway:      gateway,
		questions:    questions,
		timeout:      defaultTimeout,
		cleanupDelay: defaultCleanupDelay,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	if s.scheduler == nil {
		s.scheduler = NewTimeoutScheduler()
	}
	s.baseCtx, s.cancel = context.WithCancel(context.Background())
	return s, nil
}

// HandleJoin challenges every newly joined member of the batch independently.
func (s *VerificationService) HandleJoin(ctx context.Context, ev models.JoinEvent) {
	for _, m := range ev.Members {
		if m.ID == s.botID {
			continue
		}
		s.admit(ctx, ev.ChatID, m)
	}
}

func (s *VerificationService) admit(ctx context.Context, chatID int64, m models.Member) {
	log := s.logger.With("chat_id", chatID, "user_id", m.ID)
	current := models.OutcomeNone
	if rec, ok := s.registry.Get(m.ID); ok {
		current = rec.Outcome
	}
	if !canTransition(current, models.OutcomePending) {
		log.DebugContext(ctx, "join ignored, verification already pending")
		return
	}

	name := m.DisplayName()
	q := s.questions.Pick()

	// no record exists until the member is actually restricted
	if err := s.gateway.Restrict(ctx, chatID, m.ID); err != nil {
		s.metrics.IncrementGatewayFailure("restrict")
		log.ErrorContext(ctx, "restrict new member failed", "error", err)
		if _, err := s.gateway.SendMessage(ctx, chatID, restrictFailedText(name)); err != nil {
			s.metrics.IncrementGatewayFailure("send")
			log.WarnContext(ctx, "restrict failure notice not sent", "error", err)
		}
		return
	}

	rec, err := s.registry.Admit(models.PendingVerification{
		AttemptID:      uuid.New(),
		UserID:         m.ID,
		ChatID:         chatID,
		DisplayName:    name,
		ExpectedAnswer: q.Answer,
		StartedAt:      s.now(),
	})
	if errors.Is(err, repositories.ErrAlreadyPending) {
		log.DebugContext(ctx, "join ignored, verification already pending")
		return
	}
	if err != nil {
		log.ErrorContext(ctx, "admit failed", "error", err)
		return
	}
	s.metrics.IncrementStarted()
	s.metrics.SetPending(s.registry.Len())
	log = log.With("attempt_id", rec.AttemptID)

	msgID, err := s.gateway.SendMessage(ctx, chatID, welcomeText(name, q.Prompt, s.timeout))
	if err != nil {
		s.metrics.IncrementGatewayFailure("send")
		log.ErrorContext(ctx, "challenge not sent", "error", err)
	} else {
		s.ledger.TrackBotMessage(chatID, m.ID, msgID)
	}

	h := s.scheduler.Arm(m.ID, s.timeout, s.onTimeout)
	if !s.registry.AttachTimer(m.ID, h) {
		// resolved while the challenge was being sent
		s.scheduler.Cancel(h)
	}
	log.InfoContext(ctx, "verification started", "timeout", s.timeout)
}

// HandleMessage tracks messages of pending members and evaluates text as an
// answer. Messages from anyone else are ignored.
func (s *VerificationService) HandleMessage(ctx context.Context, ev models.MessageEvent) {
	rec, ok := s.registry.Get(ev.UserID)
	if !ok || rec.ChatID != ev.ChatID {
		return
	}
	s.ledger.TrackUserMessage(ev.ChatID, ev.UserID, ev.MessageID)
	// a resolution between Get and Track has already taken the ledger entry
	if _, ok := s.registry.Get(ev.UserID); !ok {
		s.enqueueCleanup(ev.ChatID, ev.UserID)
		return
	}
	if ev.Text == "" || ev.IsCommand {
		return
	}

	s.scheduler.Cancel(rec.Timer)

	outcome := models.OutcomeRejectedWrong
	if answerMatches(ev.Text, rec.ExpectedAnswer) {
		outcome = models.OutcomeVerified
	}
	if _, err := s.resolve(ctx, ev.UserID, outcome); err != nil && !errors.Is(err, repositories.ErrAlreadyResolved) {
		s.logger.ErrorContext(ctx, "resolve failed", "user_id", ev.UserID, "error", err)
	}
}

func (s *VerificationService) onTimeout(userID int64) {
	if _, err := s.resolve(s.baseCtx, userID, models.OutcomeRejectedTimeout); err != nil && !errors.Is(err, repositories.ErrAlreadyResolved) {
		s.logger.Error("timeout resolve failed", "user_id", userID, "error", err)
	}
}

func answerMatches(given, expected string) bool {
	return strings.EqualFold(strings.TrimSpace(given), strings.TrimSpace(expected))
}

// resolve performs the side effects of outcome only if this call wins the
// race for userID. Losers get ErrAlreadyResolved and touch nothing.
func (s *VerificationService) resolve(ctx context.Context, userID int64, outcome models.Outcome) (models.PendingVerification, error) {
	if !canTransition(models.OutcomePending, outcome) {
		return models.PendingVerification{}, fmt.Errorf("%w: pending -> %q", ErrInvalidTransition, outcome)
	}
	rec, err := s.registry.TryResolve(userID, outcome)
	if err != nil {
		if errors.Is(err, repositories.ErrAlreadyResolved) {
			s.metrics.IncrementLostResolutions()
			s.logger.DebugContext(ctx, "resolution lost the race", "user_id", userID, "outcome", outcome)
		}
		return models.PendingVerification{}, err
	}
	s.metrics.SetPending(s.registry.Len())
	s.scheduler.Cancel(rec.Timer)

	log := s.logger.With("chat_id", rec.ChatID, "user_id", rec.UserID, "attempt_id", rec.AttemptID, "outcome", outcome)
	enforced := s.enforce(ctx, log, rec)
	s.metrics.IncrementResolved(outcome)
	s.recordOutcome(ctx, log, rec, enforced)
	s.enqueueCleanup(rec.ChatID, rec.UserID)

	log.InfoContext(ctx, "verification resolved", "enforced", enforced)
	return rec, nil
}

// enforce applies the moderation action for rec.Outcome and posts exactly one
// result message. It reports whether the moderation action succeeded.
func (s *VerificationService) enforce(ctx context.Context, log *slog.Logger, rec models.PendingVerification) bool {
	var (
		action string
		err    error
		text   string
	)
	switch rec.Outcome {
	case models.OutcomeVerified:
		action = "unrestrict"
		if err = s.gateway.Unrestrict(ctx, rec.ChatID, rec.UserID); err != nil {
			text = restoreFailedText(rec.DisplayName)
		} else {
			text = successText(rec.DisplayName)
		}
	case models.OutcomeRejectedWrong:
		action = "ban"
		if err = s.gateway.Ban(ctx, rec.ChatID, rec.UserID, true); err != nil {
			text = wrongAnswerBanFailedText(rec.DisplayName)
		} else {
			text = wrongAnswerText(rec.DisplayName)
		}
	case models.OutcomeRejectedTimeout:
		action = "ban"
		if err = s.gateway.Ban(ctx, rec.ChatID, rec.UserID, true); err != nil {
			text = timeoutBanFailedText(rec.DisplayName)
		} else {
			text = timeoutText(rec.DisplayName)
		}
	}
	if err != nil {
		s.metrics.IncrementGatewayFailure(action)
		log.WarnContext(ctx, "moderation action failed", "action", action, "error", err)
	}

	msgID, sendErr := s.gateway.SendMessage(ctx, rec.ChatID, text)
	if sendErr != nil {
		s.metrics.IncrementGatewayFailure("send")
		log.WarnContext(ctx, "result message not sent", "error", sendErr)
	} else {
		s.ledger.TrackBotMessage(rec.ChatID, rec.UserID, msgID)
	}
	return err == nil
}

func (s *VerificationService) recordOutcome(ctx context.Context, log *slog.Logger, rec models.PendingVerification, enforced bool) {
	if s.outcomes == nil {
		return
	}
	res := models.VerificationResult{
		AttemptID:   rec.AttemptID,
		ChatID:      rec.ChatID,
		UserID:      rec.UserID,
		DisplayName: rec.DisplayName,
		Outcome:     rec.Outcome,
		Enforced:    enforced,
		StartedAt:   rec.StartedAt,
		ResolvedAt:  s.now(),
	}
	if err := s.outcomes.Record(ctx, res); err != nil {
		log.WarnContext(ctx, "outcome not recorded", "error", err)
	}
}

// IsPending reports whether userID is mid-challenge.
func (s *VerificationService) IsPending(userID int64) bool {
	_, ok := s.registry.Get(userID)
	return ok
}

func (s *VerificationService) PendingCount() int {
	return s.registry.Len()
}

// Wait blocks until every enqueued cleanup has finished.
func (s *VerificationService) Wait() {
	s.wg.Wait()
}

// Shutdown stops all timers, skips remaining cleanup pacing and waits for
// running cleanups until ctx expires.
func (s *VerificationService) Shutdown(ctx context.Context) error {
	s.scheduler.Stop()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
