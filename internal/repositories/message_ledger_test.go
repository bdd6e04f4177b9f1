package repositories

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MessageLedgerSuite struct {
	suite.Suite
	ledger MessageLedger
}

func TestMessageLedgerSuite(t *testing.T) {
	suite.Run(t, new(MessageLedgerSuite))
}

func (s *MessageLedgerSuite) SetupTest() {
	s.ledger = NewMessageLedger()
}

func (s *MessageLedgerSuite) TestTrackAndTake() {
	s.ledger.TrackBotMessage(-1, 10, 100)
	s.ledger.TrackUserMessage(-1, 10, 101)
	s.ledger.TrackUserMessage(-1, 10, 102)
	s.ledger.TrackBotMessage(-1, 10, 103)

	got := s.ledger.Take(-1, 10)
	s.Equal(int64(-1), got.ChatID)
	s.Equal(int64(10), got.UserID)
	s.Equal([]int{100, 103}, got.BotMessages)
	s.Equal([]int{101, 102}, got.UserMessages)
	s.Equal(0, s.ledger.Len())
}

func (s *MessageLedgerSuite) TestDuplicatesAreRecordedOnce() {
	s.ledger.TrackUserMessage(-1, 10, 200)
	s.ledger.TrackUserMessage(-1, 10, 200)
	s.ledger.TrackBotMessage(-1, 10, 200)

	got := s.ledger.Take(-1, 10)
	s.Empty(got.BotMessages)
	s.Equal([]int{200}, got.UserMessages)
}

func (s *MessageLedgerSuite) TestZeroIDIsIgnored() {
	s.ledger.TrackBotMessage(-1, 10, 0)
	s.Equal(0, s.ledger.Len())
}

func (s *MessageLedgerSuite) TestEntriesAreScopedByChatAndUser() {
	s.ledger.TrackBotMessage(-1, 10, 1)
	s.ledger.TrackBotMessage(-1, 11, 2)
	s.ledger.TrackBotMessage(-2, 10, 3)

	got := s.ledger.Take(-1, 10)
	s.Equal([]int{1}, got.BotMessages)
	s.Equal(2, s.ledger.Len())
}

func (s *MessageLedgerSuite) TestTakeMissingEntry() {
	got := s.ledger.Take(-1, 99)
	s.Empty(got.BotMessages)
	s.Empty(got.UserMessages)

	s.ledger.TrackUserMessage(-1, 99, 5)
	s.ledger.Take(-1, 99)
	again := s.ledger.Take(-1, 99)
	s.Empty(again.UserMessages, "second take finds nothing")
}
