package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Status tracks the delivery progression of a user-authored message.
// Assistant replies are created in StatusSent and never advance.
type Status string

const (
	StatusSending   Status = "sending"
	StatusSent      Status = "sent"
	StatusDelivered Status = "delivered"
	StatusRead      Status = "read"
	StatusError     Status = "error"
)

// Reaction is one emoji attached to a message, with a per-symbol count.
type Reaction struct {
	Symbol string `json:"symbol"`
	Count  int    `json:"count"`
}

// Message is one turn in the visible conversation.
type Message struct {
	ID        string     `json:"id"`
	Content   string     `json:"content"`
	Author    string     `json:"author"`
	CreatedAt time.Time  `json:"created_at"`
	Status    Status     `json:"status,omitempty"`
	Reactions []Reaction `json:"reactions,omitempty"`
}

// ChatMessage is the wire shape exchanged with the completion proxy and
// forwarded verbatim to the upstream provider.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// NewMessageID builds a session-unique id like "user-1712345678901-1a2b3c4d".
// The timestamp prefix keeps ids roughly sortable, the random suffix makes
// them collision-free within a session.
func NewMessageID(kind string, at time.Time) string {
	return fmt.Sprintf("%s-%d-%s", kind, at.UnixMilli(), uuid.NewString()[:8])
}
