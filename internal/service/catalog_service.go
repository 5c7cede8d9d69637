package service

import (
	"context"
	"fmt"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
)

// CreateBookInput describes a catalog entry to be created.
type CreateBookInput struct {
	Title           string
	Author          string
	ISBN            string
	Description     *string
	Category        *string
	ImageURL        *string
	TotalCopies     int
	AvailableCopies int
}

// CatalogService exposes catalog operations.
type CatalogService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	GetBook(ctx context.Context, id int) (*model.Book, error)
	SearchBooks(ctx context.Context, query string) ([]model.Book, error)
	CreateBook(ctx context.Context, input CreateBookInput) (*model.Book, error)
	SeedBooks(ctx context.Context, inputs []CreateBookInput) (int, error)
}

type catalogService struct {
	bookRepo repository.BookRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(bookRepo repository.BookRepository) CatalogService {
	return &catalogService{bookRepo: bookRepo}
}

// ListBooks returns the full catalog in insertion order.
func (s *catalogService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.bookRepo.List(ctx)
}

// GetBook retrieves a book by id.
func (s *catalogService) GetBook(ctx context.Context, id int) (*model.Book, error) {
	book, err := s.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.ErrBookNotFound
	}
	return book, nil
}

// SearchBooks matches the raw query against the catalog. An empty
// query returns every book.
func (s *catalogService) SearchBooks(ctx context.Context, query string) ([]model.Book, error) {
	return s.bookRepo.Search(ctx, query)
}

// CreateBook validates the input and stores a new catalog entry.
func (s *catalogService) CreateBook(ctx context.Context, input CreateBookInput) (*model.Book, error) {
	if input.Title == "" || input.Author == "" || input.ISBN == "" {
		return nil, fmt.Errorf("%w: title, author and isbn are required", errors.ErrInvalidInput)
	}
	if input.TotalCopies < 1 {
		return nil, fmt.Errorf("%w: total_copies must be at least 1", errors.ErrInvalidInput)
	}
	if input.AvailableCopies < 0 || input.AvailableCopies > input.TotalCopies {
		return nil, fmt.Errorf("%w: available_copies must be within [0, total_copies]", errors.ErrInvalidInput)
	}

	book := &model.Book{
		Title:           input.Title,
		Author:          input.Author,
		ISBN:            input.ISBN,
		Description:     input.Description,
		Category:        input.Category,
		ImageURL:        input.ImageURL,
		TotalCopies:     input.TotalCopies,
		AvailableCopies: input.AvailableCopies,
	}
	return s.bookRepo.Create(ctx, book)
}

// SeedBooks imports a batch of catalog entries, failing on the first
// invalid one.
func (s *catalogService) SeedBooks(ctx context.Context, inputs []CreateBookInput) (int, error) {
	count := 0
	for _, input := range inputs {
		if _, err := s.CreateBook(ctx, input); err != nil {
			return count, fmt.Errorf("seed book %q: %w", input.Title, err)
		}
		count++
	}
	return count, nil
}
