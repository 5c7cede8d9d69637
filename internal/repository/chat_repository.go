package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

// ChatRepository defines conversation-log persistence operations.
// Messages are append-only; nothing is ever mutated or deleted.
type ChatRepository interface {
	Create(ctx context.Context, userID int, message string, isUser bool) (*model.ChatMessage, error)
	ListByUser(ctx context.Context, userID int) ([]model.ChatMessage, error)
}

type chatRepository struct {
	mu       sync.RWMutex
	messages map[int]*model.ChatMessage
	order    []int
	nextID   int
}

// NewChatRepository creates an empty in-memory chat repository.
func NewChatRepository() ChatRepository {
	return &chatRepository{
		messages: make(map[int]*model.ChatMessage),
		nextID:   1,
	}
}

// Create assigns the next sequential id, stamps CreatedAt and stores
// the message.
func (r *chatRepository) Create(_ context.Context, userID int, message string, isUser bool) (*model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &model.ChatMessage{
		ID:        r.nextID,
		UserID:    userID,
		Message:   message,
		IsUser:    isUser,
		CreatedAt: time.Now(),
	}
	r.nextID++

	r.messages[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	out := *stored
	return &out, nil
}

// ListByUser returns the user's messages sorted ascending by CreatedAt.
// The walk is in id order and the sort is stable, so equal timestamps
// keep insertion order.
func (r *chatRepository) ListByUser(_ context.Context, userID int) ([]model.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var history []model.ChatMessage
	for _, id := range r.order {
		m := r.messages[id]
		if m.UserID == userID {
			history = append(history, *m)
		}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].CreatedAt.Before(history[j].CreatedAt)
	})
	return history, nil
}
