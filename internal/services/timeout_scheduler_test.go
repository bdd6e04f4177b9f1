package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeoutScheduler_Fires(t *testing.T) {
	s := NewTimeoutScheduler()
	defer s.Stop()

	got := make(chan int64, 1)
	s.Arm(42, 10*time.Millisecond, func(userID int64) { got <- userID })

	select {
	case id := <-got:
		assert.Equal(t, int64(42), id)
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTimeoutScheduler_CancelPreventsFiring(t *testing.T) {
	s := NewTimeoutScheduler()
	defer s.Stop()

	var fired atomic.Bool
	h := s.Arm(1, 20*time.Millisecond, func(int64) { fired.Store(true) })
	s.Cancel(h)

	time.Sleep(60 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestTimeoutScheduler_CancelIsIdempotent(t *testing.T) {
	s := NewTimeoutScheduler()
	defer s.Stop()

	var calls atomic.Int32
	h := s.Arm(1, 5*time.Millisecond, func(int64) { calls.Add(1) })
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	assert.NotPanics(t, func() {
		s.Cancel(h)
		s.Cancel(h)
		s.Cancel(h + 100)
	})
	assert.Equal(t, int32(1), calls.Load())
}

func TestTimeoutScheduler_HandlesAreDistinct(t *testing.T) {
	s := NewTimeoutScheduler()
	defer s.Stop()

	a := s.Arm(1, time.Hour, func(int64) {})
	b := s.Arm(1, time.Hour, func(int64) {})
	assert.NotEqual(t, a, b)
}

func TestTimeoutScheduler_StopCancelsEverything(t *testing.T) {
	s := NewTimeoutScheduler()

	var calls atomic.Int32
	for i := int64(0); i < 5; i++ {
		s.Arm(i, 20*time.Millisecond, func(int64) { calls.Add(1) })
	}
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
}
