package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// PostStore manages published posts. Mutations are scoped by the owning
// user id; reads are public. Category names are not joined here — the
// categories store may be a different database, so handlers resolve them
// through CategoryStore.NamesByID.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, user_id, title, tags, content, category_id, created_at`

// Create inserts a new post owned by userID and returns it.
func (s *PostStore) Create(userID uuid.UUID, title string, tags *string, content string, categoryID uuid.UUID) (*models.Post, error) {
	var p models.Post
	err := s.db.QueryRow(`
		INSERT INTO posts (user_id, title, tags, content, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+postColumns,
		userID, title, tags, content, categoryID,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Tags, &p.Content, &p.CategoryID, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return &p, nil
}

// List returns all posts, newest first.
func (s *PostStore) List() ([]models.Post, error) {
	rows, err := s.db.Query(`
		SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var items []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Tags, &p.Content, &p.CategoryID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a post by ID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	var p models.Post
	err := s.db.QueryRow(`
		SELECT `+postColumns+` FROM posts WHERE id = $1
	`, id).Scan(&p.ID, &p.UserID, &p.Title, &p.Tags, &p.Content, &p.CategoryID, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return &p, nil
}

// Update overwrites a post's editable fields, scoped to the owning user.
// Returns false when no row was affected (absent or not owned).
func (s *PostStore) Update(id, userID uuid.UUID, title string, tags *string, content string, categoryID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE posts
		SET title = $1, tags = $2, content = $3, category_id = $4
		WHERE id = $5 AND user_id = $6
	`, title, tags, content, categoryID, id, userID)
	if err != nil {
		return false, fmt.Errorf("update post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update post rows affected: %w", err)
	}
	return n > 0, nil
}

// Delete removes a post, scoped to the owning user. Returns false when
// no row was affected (absent or not owned).
func (s *PostStore) Delete(id, userID uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM posts WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post rows affected: %w", err)
	}
	return n > 0, nil
}
