package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
)

func validBookInput() CreateBookInput {
	return CreateBookInput{
		Title:           "Python Crash Course",
		Author:          "Eric Matthes",
		ISBN:            "978-1593279288",
		TotalCopies:     5,
		AvailableCopies: 3,
	}
}

func TestCatalogService_CreateBook(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*CreateBookInput)
		expectedError error
	}{
		{
			name:   "valid input",
			mutate: func(in *CreateBookInput) {},
		},
		{
			name:          "missing title",
			mutate:        func(in *CreateBookInput) { in.Title = "" },
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:          "missing author",
			mutate:        func(in *CreateBookInput) { in.Author = "" },
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:          "missing isbn",
			mutate:        func(in *CreateBookInput) { in.ISBN = "" },
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:          "zero total copies",
			mutate:        func(in *CreateBookInput) { in.TotalCopies = 0 },
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:          "negative available copies",
			mutate:        func(in *CreateBookInput) { in.AvailableCopies = -1 },
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:          "available copies above total",
			mutate:        func(in *CreateBookInput) { in.AvailableCopies = 6 },
			expectedError: errors.ErrInvalidInput,
		},
		{
			name:   "available copies equal to total",
			mutate: func(in *CreateBookInput) { in.AvailableCopies = 5 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCatalogService(repository.NewBookRepository())

			input := validBookInput()
			tt.mutate(&input)

			book, err := svc.CreateBook(context.Background(), input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, book)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, book)
			assert.Equal(t, 1, book.ID)
			assert.Equal(t, input.Title, book.Title)
		})
	}
}

func TestCatalogService_CreateBookSequentialIDs(t *testing.T) {
	svc := NewCatalogService(repository.NewBookRepository())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		book, err := svc.CreateBook(ctx, validBookInput())
		assert.NoError(t, err)
		assert.Equal(t, i, book.ID)
	}
}

func TestCatalogService_GetBook(t *testing.T) {
	svc := NewCatalogService(repository.NewBookRepository())
	ctx := context.Background()

	created, err := svc.CreateBook(ctx, validBookInput())
	assert.NoError(t, err)

	book, err := svc.GetBook(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Title, book.Title)

	_, err = svc.GetBook(ctx, 99)
	assert.ErrorIs(t, err, errors.ErrBookNotFound)
}

func TestCatalogService_SeedBooks(t *testing.T) {
	svc := NewCatalogService(repository.NewBookRepository())
	ctx := context.Background()

	count, err := svc.SeedBooks(ctx, []CreateBookInput{validBookInput(), validBookInput()})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	books, err := svc.ListBooks(ctx)
	assert.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestCatalogService_SeedBooksStopsOnInvalid(t *testing.T) {
	svc := NewCatalogService(repository.NewBookRepository())
	ctx := context.Background()

	bad := validBookInput()
	bad.Title = ""

	count, err := svc.SeedBooks(ctx, []CreateBookInput{validBookInput(), bad, validBookInput()})
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
	assert.Equal(t, 1, count)
}
