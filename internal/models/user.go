package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64     `json:"id" db:"id"`                 // Primary key
	Email        string    `json:"email" db:"email"`           // Unique email
	Name         string    `json:"name" db:"name"`             // Display name
	PasswordHash *string   `json:"-" db:"password_hash"`       // Bcrypt hash, nil for google-only accounts
	GoogleID     *string   `json:"google_id" db:"google_id"`   // Google subject id, nil for password accounts
	AvatarURL    *string   `json:"avatar_url" db:"avatar_url"` // Avatar URL, optional
	CreatedAt    time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// User is the public projection of a user returned by the API.
type User struct {
	ID        int64   `json:"id" db:"id"`
	Email     string  `json:"email" db:"email"`
	Name      string  `json:"name" db:"name"`
	AvatarURL *string `json:"avatar_url" db:"avatar_url"`
}

// Public returns the API projection of the user.
func (u *UserDB) Public() *User {
	return &User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
