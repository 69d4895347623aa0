package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the databases with initial development data: a default
// user and a starter category. It is a no-op when any users already exist.
func Seed(users, categories *sql.DB) error {
	var count int
	if err := users.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = users.Exec(`
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
	`, "admin", string(hash))
	if err != nil {
		return fmt.Errorf("seed insert user: %w", err)
	}

	_, err = categories.Exec(`
		INSERT INTO categories (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
	`, "General")
	if err != nil {
		return fmt.Errorf("seed insert category: %w", err)
	}

	slog.Info("database seeded with default user",
		"username", "admin",
		"password", "admin",
	)

	return nil
}
