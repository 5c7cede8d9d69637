package repository

import (
	"context"
	"sync"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

// BorrowingRepository defines loan-ledger persistence operations.
// Timestamps are the caller's responsibility; the store only assigns
// ids. Lookups that miss return (nil, nil).
type BorrowingRepository interface {
	Create(ctx context.Context, borrowing *model.Borrowing) (*model.Borrowing, error)
	FindByID(ctx context.Context, id int) (*model.Borrowing, error)
	ListActiveByUser(ctx context.Context, userID int) ([]model.Borrowing, error)
	Update(ctx context.Context, borrowing *model.Borrowing) error
}

type borrowingRepository struct {
	mu         sync.RWMutex
	borrowings map[int]*model.Borrowing
	order      []int
	nextID     int
}

// NewBorrowingRepository creates an empty in-memory borrowing repository.
func NewBorrowingRepository() BorrowingRepository {
	return &borrowingRepository{
		borrowings: make(map[int]*model.Borrowing),
		nextID:     1,
	}
}

// Create assigns the next sequential id and stores the record.
func (r *borrowingRepository) Create(_ context.Context, borrowing *model.Borrowing) (*model.Borrowing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *borrowing
	stored.ID = r.nextID
	r.nextID++

	r.borrowings[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

// FindByID looks a borrowing up by id.
func (r *borrowingRepository) FindByID(_ context.Context, id int) (*model.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	borrowing, ok := r.borrowings[id]
	if !ok {
		return nil, nil
	}
	out := *borrowing
	return &out, nil
}

// ListActiveByUser returns the user's non-returned borrowings in
// creation order.
func (r *borrowingRepository) ListActiveByUser(_ context.Context, userID int) ([]model.Borrowing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []model.Borrowing
	for _, id := range r.order {
		b := r.borrowings[id]
		if b.UserID == userID && !b.IsReturned {
			active = append(active, *b)
		}
	}
	return active, nil
}

// Update replaces a stored borrowing record.
func (r *borrowingRepository) Update(_ context.Context, borrowing *model.Borrowing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.borrowings[borrowing.ID]; !ok {
		return errors.ErrBorrowingNotFound
	}
	stored := *borrowing
	r.borrowings[borrowing.ID] = &stored
	return nil
}
