package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rujirapongsn2/ChatLibrary/internal/cache"
	"github.com/rujirapongsn2/ChatLibrary/internal/errors"
	"github.com/rujirapongsn2/ChatLibrary/internal/model"
	"github.com/rujirapongsn2/ChatLibrary/internal/repository"
)

func TestUserService_GetUser(t *testing.T) {
	repo := repository.NewUserRepository()
	created, err := repo.Create(context.Background(), &model.User{
		Username:     "siriporn",
		PasswordHash: "hash",
		Name:         "Siriporn Tanaka",
		StudentID:    "6234567890",
	})
	assert.NoError(t, err)

	// A nil cache client reads as a permanent miss, so every lookup
	// hits the repository.
	svc := NewUserService(repo, (*cache.Client)(nil))

	user, err := svc.GetUser(context.Background(), created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Siriporn Tanaka", user.Name)
	assert.Equal(t, "6234567890", user.StudentID)
}

func TestUserService_GetUserNotFound(t *testing.T) {
	svc := NewUserService(repository.NewUserRepository(), (*cache.Client)(nil))

	user, err := svc.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	assert.Nil(t, user)
}
