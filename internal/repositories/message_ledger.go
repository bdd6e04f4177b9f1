package repositories

import (
	"sync"

	"devgate/internal/models"
)

// MessageLedger remembers which chat messages belong to a verification so
// they can be removed in bulk once it resolves.
type MessageLedger interface {
	TrackBotMessage(chatID, userID int64, messageID int)
	TrackUserMessage(chatID, userID int64, messageID int)
	// Take returns the retained ids for (chatID, userID) and discards the entry.
	Take(chatID, userID int64) models.RetainedMessages
	Len() int
}

type ledgerKey struct {
	chatID int64
	userID int64
}

type retainedSet struct {
	bot  []int
	user []int
	seen map[int]struct{}
}

type messageLedger struct {
	mu      sync.Mutex
	entries map[ledgerKey]*retainedSet
}

func NewMessageLedger() MessageLedger {
	return &messageLedger{
		entries: make(map[ledgerKey]*retainedSet),
	}
}

func (l *messageLedger) TrackBotMessage(chatID, userID int64, messageID int) {
	l.track(chatID, userID, messageID, true)
}

func (l *messageLedger) TrackUserMessage(chatID, userID int64, messageID int) {
	l.track(chatID, userID, messageID, false)
}

func (l *messageLedger) track(chatID, userID int64, messageID int, fromBot bool) {
	if messageID == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey{chatID: chatID, userID: userID}
	set := l.entries[key]
	if set == nil {
		set = &retainedSet{seen: make(map[int]struct{})}
		l.entries[key] = set
	}
	if _, dup := set.seen[messageID]; dup {
		return
	}
	set.seen[messageID] = struct{}{}
	if fromBot {
		set.bot = append(set.bot, messageID)
	} else {
		set.user = append(set.user, messageID)
	}
}

func (l *messageLedger) Take(chatID, userID int64) models.RetainedMessages {
	l.mu.Lock()
	defer l.mu.Unlock()

	key := ledgerKey{chatID: chatID, userID: userID}
	out := models.RetainedMessages{ChatID: chatID, UserID: userID}
	set, ok := l.entries[key]
	if !ok {
		return out
	}
	delete(l.entries, key)
	out.BotMessages = set.bot
	out.UserMessages = set.user
	return out
}

func (l *messageLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
