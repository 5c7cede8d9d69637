package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rujirapongsn2/ChatLibrary/internal/cache"
)

const refreshTokenKeyPrefix = "refresh_token:"

// refreshTokenRecord is what gets persisted per refresh token id.
type refreshTokenRecord struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// TokenStoreInterface defines refresh-token storage operations.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID int, username string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (userID int, username string, err error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps refresh tokens in redis behind the fail-safe cache
// wrapper.
type TokenStore struct {
	cache *cache.Client
}

var _ TokenStoreInterface = (*TokenStore)(nil)

// NewTokenStore creates a new token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

// StoreRefreshToken stores a refresh token record with a TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID int, username string, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenRecord{UserID: userID, Username: username})
	if err != nil {
		return fmt.Errorf("marshal token data: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKeyPrefix+tokenID, payload, ttl)
}

// GetRefreshToken retrieves a refresh token record.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (int, string, error) {
	data, err := s.cache.Get(ctx, refreshTokenKeyPrefix+tokenID)
	if err != nil || data == nil {
		return 0, "", fmt.Errorf("refresh token not found")
	}

	var record refreshTokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return 0, "", fmt.Errorf("unmarshal token data: %w", err)
	}
	return record.UserID, record.Username, nil
}

// DeleteRefreshToken removes a refresh token.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKeyPrefix+tokenID)
}
