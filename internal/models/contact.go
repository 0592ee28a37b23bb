package models

import "time"

// Contact edge statuses.
const (
	ContactStatusPending  = "pending"
	ContactStatusAccepted = "accepted"
	ContactStatusRejected = "rejected"
)

// ContactDB represents a contact edge record in the database.
// The edge is directed: user_id sent the request, contact_user_id received it.
type ContactDB struct {
	ID            int64     `json:"id" db:"id"`                           // Primary key
	UserID        int64     `json:"user_id" db:"user_id"`                 // Requester
	ContactUserID int64     `json:"contact_user_id" db:"contact_user_id"` // Recipient
	Status        string    `json:"status" db:"status"`                   // pending, accepted or rejected
	CreatedAt     time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
}

// Contact is an accepted contact as returned by the list action.
type Contact struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	AddedAt   time.Time `json:"added_at" db:"added_at"`
}

// IncomingRequest is a pending request addressed to the caller.
type IncomingRequest struct {
	RequestID int64     `json:"request_id" db:"request_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SentRequest is a pending request sent by the caller.
type SentRequest struct {
	RequestID int64     `json:"request_id" db:"request_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
