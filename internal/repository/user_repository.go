package repository

import (
	"context"
	"sync"

	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

// UserRepository defines user persistence operations. Lookups that
// miss return (nil, nil).
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type userRepository struct {
	mu     sync.RWMutex
	users  map[int]*model.User
	nextID int
}

// NewUserRepository creates an empty in-memory user repository.
func NewUserRepository() UserRepository {
	return &userRepository{
		users:  make(map[int]*model.User),
		nextID: 1,
	}
}

// Create assigns the next sequential id and stores the record.
func (r *userRepository) Create(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

// FindByID looks a user up by id.
func (r *userRepository) FindByID(_ context.Context, id int) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

// FindByUsername looks a user up by unique username.
func (r *userRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}
