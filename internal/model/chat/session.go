package chat

import "time"

// DefaultTitle is the placeholder a session carries until its first exchange.
const DefaultTitle = "New chat"

// Session is one titled conversation thread. Turns are append-only and
// chronological.
type Session struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Turns     []Turn    `json:"turns"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Turn is a single message within a session, immutable once created.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Roles a turn can carry.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
