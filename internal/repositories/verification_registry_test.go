package repositories

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"devgate/internal/models"
)

type VerificationRegistrySuite struct {
	suite.Suite
	registry VerificationRegistry
}

func TestVerificationRegistrySuite(t *testing.T) {
	suite.Run(t, new(VerificationRegistrySuite))
}

func (s *VerificationRegistrySuite) SetupTest() {
	s.registry = NewVerificationRegistry()
}

func pending(userID int64) models.PendingVerification {
	return models.PendingVerification{UserID: userID, ChatID: -1, DisplayName: "user", ExpectedAnswer: "c"}
}

func (s *VerificationRegistrySuite) TestAdmit() {
	s.Run("new user is stored unresolved", func() {
		rec, err := s.registry.Admit(pending(1))
		s.NoError(err)
		s.False(rec.Resolved)
		s.Equal(models.OutcomePending, rec.Outcome)

		got, ok := s.registry.Get(1)
		s.True(ok)
		s.Equal(rec, got)
	})

	s.Run("second admission for the same user fails", func() {
		_, err := s.registry.Admit(pending(1))
		s.ErrorIs(err, ErrAlreadyPending)
		s.Equal(1, s.registry.Len())
	})
}

func (s *VerificationRegistrySuite) TestGetReturnsCopy() {
	_, err := s.registry.Admit(pending(2))
	s.Require().NoError(err)

	rec, _ := s.registry.Get(2)
	rec.Resolved = true
	rec.ExpectedAnswer = "tampered"

	again, _ := s.registry.Get(2)
	s.False(again.Resolved)
	s.Equal("c", again.ExpectedAnswer)
}

func (s *VerificationRegistrySuite) TestAttachTimer() {
	s.Run("attaches to pending record", func() {
		_, err := s.registry.Admit(pending(3))
		s.Require().NoError(err)

		s.True(s.registry.AttachTimer(3, 9))
		rec, _ := s.registry.Get(3)
		s.Equal(models.TimerHandle(9), rec.Timer)
	})

	s.Run("missing record reports false", func() {
		s.False(s.registry.AttachTimer(404, 1))
	})
}

func (s *VerificationRegistrySuite) TestTryResolve() {
	_, err := s.registry.Admit(pending(4))
	s.Require().NoError(err)

	s.Run("first caller wins and the record is removed", func() {
		rec, err := s.registry.TryResolve(4, models.OutcomeVerified)
		s.NoError(err)
		s.True(rec.Resolved)
		s.Equal(models.OutcomeVerified, rec.Outcome)

		_, ok := s.registry.Get(4)
		s.False(ok)
	})

	s.Run("later callers always lose", func() {
		_, err := s.registry.TryResolve(4, models.OutcomeRejectedTimeout)
		s.ErrorIs(err, ErrAlreadyResolved)
		_, err = s.registry.TryResolve(4, models.OutcomeRejectedWrong)
		s.ErrorIs(err, ErrAlreadyResolved)
	})

	s.Run("unknown user loses", func() {
		_, err := s.registry.TryResolve(404, models.OutcomeVerified)
		s.ErrorIs(err, ErrAlreadyResolved)
	})

	s.Run("user can be admitted again after resolution", func() {
		_, err := s.registry.Admit(pending(4))
		s.NoError(err)
	})
}

func (s *VerificationRegistrySuite) TestTryResolveConcurrent() {
	const callers = 64
	_, err := s.registry.Admit(pending(5))
	s.Require().NoError(err)

	var (
		wins  atomic.Int32
		start = make(chan struct{})
		wg    sync.WaitGroup
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			outcome := models.OutcomeVerified
			if i%2 == 0 {
				outcome = models.OutcomeRejectedTimeout
			}
			if _, err := s.registry.TryResolve(5, outcome); err == nil {
				wins.Add(1)
			}
		}(i)
	}
	close(start)
	wg.Wait()

	s.Equal(int32(1), wins.Load())
	s.Equal(0, s.registry.Len())
}
