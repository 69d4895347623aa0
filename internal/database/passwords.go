package database

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// UpgradePasswordHashes bcrypt-hashes any password values in the users
// store that are still plaintext, left over from legacy provisioning.
// Rows whose value already looks like a bcrypt hash are skipped, so the
// pass is idempotent and safe to run at every startup.
func UpgradePasswordHashes(users *sql.DB) error {
	rows, err := users.Query(`SELECT id, password_hash FROM users`)
	if err != nil {
		return fmt.Errorf("list user credentials: %w", err)
	}
	defer rows.Close()

	type credential struct {
		id       string
		password string
	}

	var pending []credential
	for rows.Next() {
		var c credential
		if err := rows.Scan(&c.id, &c.password); err != nil {
			return fmt.Errorf("scan user credential: %w", err)
		}
		if isBcryptHash(c.password) {
			continue
		}
		pending = append(pending, c)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate user credentials: %w", err)
	}

	for _, c := range pending {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for user %s: %w", c.id, err)
		}
		if _, err := users.Exec(
			`UPDATE users SET password_hash = $1 WHERE id = $2`,
			string(hash), c.id,
		); err != nil {
			return fmt.Errorf("update password for user %s: %w", c.id, err)
		}
		slog.Info("upgraded plaintext password", "user_id", c.id)
	}

	if len(pending) > 0 {
		slog.Info("password upgrade pass complete", "upgraded", len(pending))
	}

	return nil
}

// isBcryptHash reports whether the value already carries a bcrypt prefix.
func isBcryptHash(v string) bool {
	return strings.HasPrefix(v, "$2a$") ||
		strings.HasPrefix(v, "$2b$") ||
		strings.HasPrefix(v, "$2y$")
}
