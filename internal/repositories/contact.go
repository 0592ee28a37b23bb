package repositories

import (
	"context"
	"strings"

	"github.com/ivanmsk/gw-contacts/internal/logger"
	"github.com/ivanmsk/gw-contacts/internal/models"
	"github.com/jmoiron/sqlx"
)

type ContactReadRepository struct {
	db *sqlx.DB
}

func NewContactReadRepository(db *sqlx.DB) *ContactReadRepository {
	return &ContactReadRepository{db: db}
}

// ListAccepted returns the accepted contacts of userID, newest first.
// Only edges where userID is the requester are selected.
func (r *ContactReadRepository) ListAccepted(ctx context.Context, userID int64) ([]models.Contact, error) {
	const query = `
		SELECT u.id, u.email, u.name, u.avatar_url, c.created_at AS added_at
		FROM contacts c
		JOIN users u ON c.contact_user_id = u.id
		WHERE c.user_id = $1 AND c.status = 'accepted'
		ORDER BY c.created_at DESC
	`

	contacts := make([]models.Contact, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &contacts, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(contacts),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return contacts, nil
}

// ListIncomingPending returns pending requests addressed to userID, newest first.
func (r *ContactReadRepository) ListIncomingPending(ctx context.Context, userID int64) ([]models.IncomingRequest, error) {
	const query = `
		SELECT c.id AS request_id, u.id AS user_id, u.email, u.name, u.avatar_url, c.created_at
		FROM contacts c
		JOIN users u ON c.user_id = u.id
		WHERE c.contact_user_id = $1 AND c.status = 'pending'
		ORDER BY c.created_at DESC
	`

	requests := make([]models.IncomingRequest, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &requests, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(requests),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return requests, nil
}

// ListOutgoingPending returns pending requests sent by userID, newest first.
func (r *ContactReadRepository) ListOutgoingPending(ctx context.Context, userID int64) ([]models.SentRequest, error) {
	const query = `
		SELECT c.id AS request_id, u.id AS user_id, u.email, u.name, u.avatar_url, c.status, c.created_at
		FROM contacts c
		JOIN users u ON c.contact_user_id = u.id
		WHERE c.user_id = $1 AND c.status = 'pending'
		ORDER BY c.created_at DESC
	`

	sent := make([]models.SentRequest, 0)
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &sent, query, userID)

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"rows", len(sent),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return sent, nil
}

type ContactWriteRepository struct {
	db *sqlx.DB
}

func NewContactWriteRepository(db *sqlx.DB) *ContactWriteRepository {
	return &ContactWriteRepository{db: db}
}

// Save inserts a pending edge from userID to contactUserID. The unique
// (user_id, contact_user_id) constraint makes the insert conditional: an edge
// in any status blocks a new request, and false is returned.
func (r *ContactWriteRepository) Save(ctx context.Context, userID, contactUserID int64) (bool, error) {
	const query = `
		INSERT INTO contacts (user_id, contact_user_id, status)
		VALUES ($1, $2, 'pending')
		ON CONFLICT (user_id, contact_user_id) DO NOTHING
	`
	args := []any{userID, contactUserID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// UpdateStatus transitions a pending edge addressed to recipientID. The WHERE
// predicate is the authorization check: only the recipient of a still-pending
// request can act on it. Returns false when no row matched.
func (r *ContactWriteRepository) UpdateStatus(ctx context.Context, requestID, recipientID int64, status string) (bool, error) {
	const query = `
		UPDATE contacts
		SET status = $1
		WHERE id = $2 AND contact_user_id = $3 AND status = 'pending'
	`
	args := []any{status, requestID, recipientID}

	res, err := ext(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
