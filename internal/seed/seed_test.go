package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
	"github.com/rujirapongsn2/ChatLibrary/internal/service"
)

func TestDemo(t *testing.T) {
	ctx := context.Background()
	userRepo := repository.NewUserRepository()
	bookRepo := repository.NewBookRepository()
	borrowingRepo := repository.NewBorrowingRepository()
	catalog := service.NewCatalogService(bookRepo)

	assert.NoError(t, Demo(ctx, userRepo, catalog, borrowingRepo))

	user, err := userRepo.FindByUsername(ctx, "siriporn")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Siriporn Tanaka", user.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))

	books, err := catalog.ListBooks(ctx)
	assert.NoError(t, err)
	assert.Len(t, books, 5)
	assert.Equal(t, "Python Crash Course", books[0].Title)
	assert.Equal(t, 0, books[1].AvailableCopies)

	active, err := borrowingRepo.ListActiveByUser(ctx, user.ID)
	assert.NoError(t, err)
	assert.Len(t, active, 1)
	assert.Equal(t, books[1].ID, active[0].BookID)

	// Borrowed a week ago, so the due date sits about a week out.
	remaining := time.Until(active[0].DueAt)
	assert.Greater(t, remaining, 6*24*time.Hour)
	assert.Less(t, remaining, 8*24*time.Hour)
}
