package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/models"
)

// CategoryStore manages categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

const categoryColumns = `id, name, created_at`

// List returns all categories, newest first.
func (s *CategoryStore) List() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT ` + categoryColumns + ` FROM categories ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

// FindByID retrieves a category by ID. Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		SELECT `+categoryColumns+` FROM categories WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return &c, nil
}

// Create inserts a new category and returns it. The caller is expected
// to check IsUniqueViolation on error to detect duplicate names.
func (s *CategoryStore) Create(name string) (*models.Category, error) {
	var c models.Category
	err := s.db.QueryRow(`
		INSERT INTO categories (name)
		VALUES ($1)
		RETURNING `+categoryColumns,
		name,
	).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

// Delete removes a category by ID. Returns false if no row was affected.
// Deletion does not cascade to posts; a post may be left pointing at a
// category id that no longer resolves.
func (s *CategoryStore) Delete(id uuid.UUID) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete category rows affected: %w", err)
	}
	return n > 0, nil
}

// NamesByID returns a map of category id to name for resolving post
// listings. Lives here because the posts store may be a different database
// and cannot join this table in SQL.
func (s *CategoryStore) NamesByID() (map[uuid.UUID]string, error) {
	rows, err := s.db.Query(`SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("list category names: %w", err)
	}
	defer rows.Close()

	names := make(map[uuid.UUID]string)
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan category name: %w", err)
		}
		names[id] = name
	}
	return names, rows.Err()
}
