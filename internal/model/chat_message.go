package model

import "time"

// ChatMessage is a single utterance in a user's conversation with the
// assistant. IsUser marks the author: true for the human, false for
// the responder. Messages are append-only.
type ChatMessage struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Message   string    `json:"message"`
	IsUser    bool      `json:"is_user"`
	CreatedAt time.Time `json:"created_at"`

	// Books carries up to five catalog matches attached to an
	// assistant reply. Populated by the chat service, never stored.
	Books []Book `json:"books,omitempty"`
}
