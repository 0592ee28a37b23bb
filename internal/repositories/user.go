package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"context"

	"github.com/ivanmsk/gw-contacts/internal/logger"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"github.com/jmoiron/sqlx"
)

// searchLimit caps the number of rows returned by a user search.
const searchLimit = 20

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, name, password_hash, google_id, avatar_url, created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByGoogleID(ctx context.Context, googleID string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, name, password_hash, google_id, avatar_url, created_at
		FROM users
		WHERE google_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, googleID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{googleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// Search returns users whose name or email contains query, case-insensitively,
// excluding the user with excludeID.
func (r *UserReadRepository) Search(ctx context.Context, excludeID int64, query string) ([]models.User, error) {
	const q = `
		SELECT id, email, name, avatar_url
		FROM users
		WHERE (name ILIKE $1 OR email ILIKE $1) AND id != $2
		LIMIT $3
	`

	pattern := "%" + query + "%"
	users := make([]models.User, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &users, q, pattern, excludeID, searchLimit)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(q), " "),
		"args", []any{pattern, excludeID, searchLimit},
		"rows", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a password-based user. The email uniqueness constraint is the
// duplicate check: on conflict no row comes back and (nil, nil) is returned.
func (r *UserWriteRepository) Save(ctx context.Context, email, name, passwordHash string) (*models.User, error) {
	const query = `
		INSERT INTO users (email, name, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
		RETURNING id, email, name, avatar_url
	`
	args := []any{email, name, passwordHash}

	var user models.User
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// SaveGoogle inserts a google-bound user without a password hash. Returns
// (nil, nil) when the email or google id is already taken.
func (r *UserWriteRepository) SaveGoogle(ctx context.Context, email, name, googleID string, avatarURL *string) (*models.User, error) {
	const query = `
		INSERT INTO users (email, name, google_id, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
		RETURNING id, email, name, avatar_url
	`
	args := []any{email, name, googleID, avatarURL}

	var user models.User
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, name, googleID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
