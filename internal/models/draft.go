package models

import (
	"time"

	"github.com/google/uuid"
)

// Draft is a per-user scratch post ("temporary post"). Drafts are never
// shown publicly and are superseded or removed once published.
type Draft struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Tags      *string   `json:"tags"` // Nullable; comma-separated labels
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DraftSummary is the listing view of a draft. The content body is
// deliberately omitted — listings only need enough to pick a draft.
type DraftSummary struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Tags      *string   `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
