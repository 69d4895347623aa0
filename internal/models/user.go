// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account that can author drafts and posts.
// Accounts are provisioned out of band; the API never creates or
// mutates them.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Never serialize the hash
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the view of a user returned by the API: the record
// minus credential material.
type PublicUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// Public returns the API-safe view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}
