package chat

import "time"

// Sender tags who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ParseSender maps the remote "type" tag onto a Sender. Anything that is
// not explicitly the user counts as the assistant.
func ParseSender(tag string) Sender {
	if tag == string(SenderUser) {
		return SenderUser
	}
	return SenderAI
}

// Message is a single turn inside a conversation. Messages are append-only
// and never mutated after creation.
type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"-"`
	Sender         Sender    `json:"type"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"timestamp"`
}
