package models

// Member is a user that just joined a chat.
type Member struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	IsBot     bool   `json:"is_bot"`
}

// DisplayName prefers the @username and falls back to the first name.
func (m Member) DisplayName() string {
	if m.Username != "" {
		return m.Username
	}
	if m.FirstName != "" {
		return m.FirstName
	}
	return "newcomer"
}

type JoinEvent struct {
	ChatID  int64    `json:"chat_id"`
	Members []Member `json:"members"`
}

// MessageEvent is any message posted to a chat. Text is empty for media.
type MessageEvent struct {
	ChatID    int64  `json:"chat_id"`
	UserID    int64  `json:"user_id"`
	MessageID int    `json:"message_id"`
	Text      string `json:"text"`
	IsCommand bool   `json:"is_command"`
}

// RetainedMessages are the message ids kept for deletion once a
// verification for (ChatID, UserID) resolves.
type RetainedMessages struct {
	ChatID       int64 `json:"chat_id"`
	UserID       int64 `json:"user_id"`
	BotMessages  []int `json:"bot_messages"`
	UserMessages []int `json:"user_messages"`
}
