package app

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

type chanSource struct {
	ch      chan tgbotapi.Update
	timeout int
	stopped bool
}

func (s *chanSource) GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	s.timeout = cfg.Timeout
	return s.ch
}

func (s *chanSource) StopReceivingUpdates() { s.stopped = true }

type recordingHandler struct {
	mu  sync.Mutex
	ids []int
}

func (h *recordingHandler) Handle(_ context.Context, up tgbotapi.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ids = append(h.ids, up.UpdateID)
}

func TestPoll_HandlesInOrderUntilClosed(t *testing.T) {
	src := &chanSource{ch: make(chan tgbotapi.Update, 3)}
	src.ch <- tgbotapi.Update{UpdateID: 1}
	src.ch <- tgbotapi.Update{UpdateID: 2}
	src.ch <- tgbotapi.Update{UpdateID: 3}
	close(src.ch)

	h := &recordingHandler{}
	poll(context.Background(), src, 30, h)

	assert.Equal(t, []int{1, 2, 3}, h.ids)
	assert.Equal(t, 30, src.timeout)
	assert.True(t, src.stopped)
}

func TestPoll_StopsOnContextCancel(t *testing.T) {
	src := &chanSource{ch: make(chan tgbotapi.Update)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		poll(ctx, src, 60, &recordingHandler{})
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poll did not return after cancel")
	}
	assert.True(t, src.stopped)
}
