package config

import (
	"testing"
	"time"
)

// clearEnv blanks every environment variable Load reads so tests start
// from pure defaults. t.Setenv restores prior values automatically.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"APP_HOST", "APP_PORT", "APP_ENV",
		"DATABASE_URL",
		"USERS_DB_DSN", "CATEGORIES_DB_DSN", "DRAFTS_DB_DSN", "POSTS_DB_DSN",
		"SESSION_SECRET", "SESSION_TTL",
		"ALLOWED_ORIGINS",
		"DELETE_DRAFT_ON_PUBLISH", "UPGRADE_PLAINTEXT_PASSWORDS",
	}
	for _, key := range keys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Env: got %q, want development", cfg.Env)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("Addr: got %q, want 0.0.0.0:8080", cfg.Addr())
	}
	if !cfg.IsDev() {
		t.Error("IsDev should be true by default")
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("SessionTTL: got %v, want 24h", cfg.SessionTTL)
	}
	if cfg.DeleteDraftOnPublish {
		t.Error("DeleteDraftOnPublish should default to false")
	}
	if cfg.UpgradePasswords {
		t.Error("UpgradePasswords should default to false")
	}
}

func TestLoadStoreDSNFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://shared/db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for name, dsn := range map[string]string{
		"users":      cfg.UsersDSN,
		"categories": cfg.CategoriesDSN,
		"drafts":     cfg.DraftsDSN,
		"posts":      cfg.PostsDSN,
	} {
		if dsn != "postgres://shared/db" {
			t.Errorf("%s DSN: got %q, want shared fallback", name, dsn)
		}
	}
}

func TestLoadStoreDSNOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://shared/db")
	t.Setenv("USERS_DB_DSN", "postgres://users-host/users")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.UsersDSN != "postgres://users-host/users" {
		t.Errorf("UsersDSN: got %q, want override", cfg.UsersDSN)
	}
	if cfg.PostsDSN != "postgres://shared/db" {
		t.Errorf("PostsDSN: got %q, want shared fallback", cfg.PostsDSN)
	}
}

func TestLoadAllowedOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", " https://blog.example.com , *.trycloudflare.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := []string{"https://blog.example.com", "*.trycloudflare.com"}
	if len(cfg.AllowedOrigins) != len(want) {
		t.Fatalf("origins: got %v, want %v", cfg.AllowedOrigins, want)
	}
	for i := range want {
		if cfg.AllowedOrigins[i] != want[i] {
			t.Errorf("origin %d: got %q, want %q", i, cfg.AllowedOrigins[i], want[i])
		}
	}
}

func TestLoadInvalidSessionTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_TTL", "soon")

	if _, err := Load(); err == nil {
		t.Error("expected error for unparseable SESSION_TTL")
	}
}

func TestLoadProductionGuards(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://inkwell:strongpass@db:5432/inkwell")

	// Default session secret must be rejected in production.
	if _, err := Load(); err == nil {
		t.Error("expected error for default SESSION_SECRET in production")
	}

	t.Setenv("SESSION_SECRET", "a-real-secret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev should be false in production")
	}
}

func TestLoadProductionRejectsDefaultDSN(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_SECRET", "a-real-secret")

	if _, err := Load(); err == nil {
		t.Error("expected error for default DATABASE_URL in production")
	}
}
