package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// DraftStore manages temporary posts. Every query is scoped by the
// owning user id — drafts are never visible across accounts.
type DraftStore struct {
	db *sql.DB
}

// NewDraftStore returns a new DraftStore.
func NewDraftStore(db *sql.DB) *DraftStore {
	return &DraftStore{db: db}
}

const draftColumns = `id, user_id, title, tags, content, created_at, updated_at`

// Create inserts a new draft owned by userID and returns it.
func (s *DraftStore) Create(userID uuid.UUID, title string, tags *string, content string) (*models.Draft, error) {
	var d models.Draft
	err := s.db.QueryRow(`
		INSERT INTO temporary_posts (user_id, title, tags, content)
		VALUES ($1, $2, $3, $4)
		RETURNING `+draftColumns,
		userID, title, tags, content,
	).Scan(&d.ID, &d.UserID, &d.Title, &d.Tags, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create draft: %w", err)
	}
	return &d, nil
}

// ListByUser returns summaries of the user's drafts, newest-updated
// first. The content body is omitted from summaries.
func (s *DraftStore) ListByUser(userID uuid.UUID) ([]models.DraftSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, title, tags, created_at, updated_at
		FROM temporary_posts
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var items []models.DraftSummary
	for rows.Next() {
		var d models.DraftSummary
		if err := rows.Scan(&d.ID, &d.Title, &d.Tags, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan draft summary: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

// FindByID retrieves a draft by id, scoped to the owning user.
// Returns nil when the draft does not exist or belongs to someone else —
// the two cases are indistinguishable to the caller.
func (s *DraftStore) FindByID(id, userID uuid.UUID) (*models.Draft, error) {
	var d models.Draft
	err := s.db.QueryRow(`
		SELECT `+draftColumns+`
		FROM temporary_posts
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&d.ID, &d.UserID, &d.Title, &d.Tags, &d.Content, &d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find draft by id: %w", err)
	}
	return &d, nil
}

// Delete removes a draft, scoped to the owning user. Returns false when
// no row was affected (absent or not owned).
func (s *DraftStore) Delete(id, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM temporary_posts WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete draft: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete draft rows affected: %w", err)
	}
	return n > 0, nil
}
