package sessions

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnauthenticated is returned when a token is missing, unknown or expired.
var ErrUnauthenticated = errors.New("unauthenticated")

// tokenBytes is the entropy of an issued token before encoding.
const tokenBytes = 32

const keyPrefix = "session:"

// Sessions issues and resolves opaque session tokens backed by redis.
type Sessions struct {
	rdb *redis.Client
	ttl time.Duration // Token lifetime
}

// New creates a new Sessions instance.
func New(rdb *redis.Client, ttl time.Duration) *Sessions {
	return &Sessions{
		rdb: rdb,
		ttl: ttl,
	}
}

// Issue generates a new opaque token for userID and stores it with a TTL.
func (s *Sessions) Issue(ctx context.Context, userID int64) (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString(buf)

	if err := s.rdb.Set(ctx, keyPrefix+token, userID, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Resolve maps a token back to the user id it was issued for.
// Returns ErrUnauthenticated for unknown or expired tokens.
func (s *Sessions) Resolve(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrUnauthenticated
	}

	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrUnauthenticated
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, ErrUnauthenticated
	}

	return userID, nil
}

// Revoke deletes a token so it can no longer be resolved.
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}

// GetTokenFromRequest extracts the token string from the X-User-Token header
func (s *Sessions) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	token := r.Header.Get("X-User-Token")
	if token == "" {
		return "", errors.New("x-user-token header missing")
	}
	return token, nil
}
