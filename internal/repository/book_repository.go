package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

// BookRepository defines catalog persistence operations. Lookups that
// miss return (nil, nil); callers decide whether absence is an error.
type BookRepository interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	FindByID(ctx context.Context, id int) (*model.Book, error)
	List(ctx context.Context) ([]model.Book, error)
	Search(ctx context.Context, query string) ([]model.Book, error)
	// AdjustAvailability applies delta to a book's available-copy
	// counter, failing with ErrInvariantViolation when the result
	// would leave [0, TotalCopies]. Only the lending service calls it.
	AdjustAvailability(ctx context.Context, id, delta int) error
}

// bookRepository is the in-memory catalog store: an id-keyed map plus a
// monotonic id counter. Storage is process-lifetime only and reseeded
// on start. The order slice keeps listing insertion-stable.
type bookRepository struct {
	mu     sync.RWMutex
	books  map[int]*model.Book
	order  []int
	nextID int
}

// NewBookRepository creates an empty in-memory book repository.
func NewBookRepository() BookRepository {
	return &bookRepository{
		books:  make(map[int]*model.Book),
		nextID: 1,
	}
}

// Create assigns the next sequential id, stamps CreatedAt and stores
// the record. A copy of the stored record is returned.
func (r *bookRepository) Create(_ context.Context, book *model.Book) (*model.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *book
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.books[stored.ID] = &stored
	r.order = append(r.order, stored.ID)

	out := stored
	return &out, nil
}

// FindByID looks a book up by id.
func (r *bookRepository) FindByID(_ context.Context, id int) (*model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, nil
	}
	out := *book
	return &out, nil
}

// List returns all books in insertion order.
func (r *bookRepository) List(_ context.Context) ([]model.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]model.Book, 0, len(r.order))
	for _, id := range r.order {
		books = append(books, *r.books[id])
	}
	return books, nil
}

// Search matches the raw query as a case-insensitive substring against
// title, author, category and description. An empty query returns the
// full catalog. Matches preserve insertion order.
func (r *bookRepository) Search(ctx context.Context, query string) ([]model.Book, error) {
	if query == "" {
		return r.List(ctx)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	q := strings.ToLower(query)
	var matches []model.Book
	for _, id := range r.order {
		book := r.books[id]
		if bookMatches(book, q) {
			matches = append(matches, *book)
		}
	}
	return matches, nil
}

func bookMatches(book *model.Book, q string) bool {
	if strings.Contains(strings.ToLower(book.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(book.Author), q) {
		return true
	}
	if book.Category != nil && strings.Contains(strings.ToLower(*book.Category), q) {
		return true
	}
	if book.Description != nil && strings.Contains(strings.ToLower(*book.Description), q) {
		return true
	}
	return false
}

// AdjustAvailability applies delta atomically under the store lock.
func (r *bookRepository) AdjustAvailability(_ context.Context, id, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return errors.ErrBookNotFound
	}

	next := book.AvailableCopies + delta
	if next < 0 || next > book.TotalCopies {
		return errors.ErrInvariantViolation
	}
	book.AvailableCopies = next
	return nil
}
