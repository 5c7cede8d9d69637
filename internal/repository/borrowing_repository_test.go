package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
)

func TestBorrowingRepository_CreatePreservesTimestamps(t *testing.T) {
	repo := NewBorrowingRepository()

	borrowedAt := time.Now().Add(-7 * 24 * time.Hour)
	created, err := repo.Create(context.Background(), &model.Borrowing{
		UserID:     1,
		BookID:     2,
		BorrowedAt: borrowedAt,
		DueAt:      borrowedAt.Add(model.LoanPeriod),
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, borrowedAt, created.BorrowedAt)
	assert.Equal(t, borrowedAt.Add(model.LoanPeriod), created.DueAt)
	assert.False(t, created.IsReturned)
}

func TestBorrowingRepository_FindByIDMiss(t *testing.T) {
	repo := NewBorrowingRepository()

	borrowing, err := repo.FindByID(context.Background(), 99)
	assert.NoError(t, err)
	assert.Nil(t, borrowing)
}

func TestBorrowingRepository_ListActiveByUser(t *testing.T) {
	repo := NewBorrowingRepository()
	ctx := context.Background()
	now := time.Now()

	first, err := repo.Create(ctx, &model.Borrowing{UserID: 1, BookID: 1, BorrowedAt: now, DueAt: now.Add(model.LoanPeriod)})
	assert.NoError(t, err)
	_, err = repo.Create(ctx, &model.Borrowing{UserID: 2, BookID: 1, BorrowedAt: now, DueAt: now.Add(model.LoanPeriod)})
	assert.NoError(t, err)
	second, err := repo.Create(ctx, &model.Borrowing{UserID: 1, BookID: 3, BorrowedAt: now, DueAt: now.Add(model.LoanPeriod)})
	assert.NoError(t, err)

	returnedAt := now
	first.IsReturned = true
	first.ReturnedAt = &returnedAt
	assert.NoError(t, repo.Update(ctx, first))

	active, err := repo.ListActiveByUser(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)
}

func TestBorrowingRepository_UpdateUnknownID(t *testing.T) {
	repo := NewBorrowingRepository()

	err := repo.Update(context.Background(), &model.Borrowing{ID: 7})
	assert.ErrorIs(t, err, errors.ErrBorrowingNotFound)
}
