package models

import (
	"time"

	"github.com/google/uuid"
)

// Category is a name-unique taxonomy entry that published posts attach to.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
