package services

import (
	"sync"
	"time"

	"devgate/internal/models"
)

// TimeoutScheduler runs one delayed callback per pending verification.
type TimeoutScheduler interface {
	Arm(userID int64, d time.Duration, onExpire func(userID int64)) models.TimerHandle
	// Cancel is a no-op for fired, cancelled or unknown handles.
	Cancel(h models.TimerHandle)
	Stop()
}

type timerScheduler struct {
	mu     sync.Mutex
	next   models.TimerHandle
	timers map[models.TimerHandle]*time.Timer
}

func NewTimeoutScheduler() TimeoutScheduler {
	return &timerScheduler{timers: make(map[models.TimerHandle]*time.Timer)}
}

func (s *timerScheduler) Arm(userID int64, d time.Duration, onExpire func(userID int64)) models.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(d, func() {
		// a handle cancelled after the timer elapsed must not fire
		if !s.claim(h) {
			return
		}
		onExpire(userID)
	})
	return h
}

func (s *timerScheduler) claim(h models.TimerHandle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.timers[h]; !ok {
		return false
	}
	delete(s.timers, h)
	return true
}

func (s *timerScheduler) Cancel(h models.TimerHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

func (s *timerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for h, t := range s.timers {
		t.Stop()
		delete(s.timers, h)
	}
}
