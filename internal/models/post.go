package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a published, publicly listable post attached to a category.
type Post struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Title      string    `json:"title"`
	Tags       *string   `json:"tags"` // Nullable; comma-separated labels
	Content    string    `json:"content"`
	CategoryID uuid.UUID `json:"category_id"`
	CreatedAt  time.Time `json:"created_at"`

	// CategoryName is resolved from the category store when listing or
	// fetching posts. Empty if the category row no longer exists.
	CategoryName string `json:"category_name,omitempty"`
}
