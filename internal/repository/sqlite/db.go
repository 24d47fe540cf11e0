package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/brandkitai/brandkit/internal/config"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// New creates a new database connection
func New(cfg config.DatabaseConfig) (*sql.DB, error) {
	var db *sql.DB
	var err error

	if cfg.Driver == "sqlite" {
		db, err = sql.Open("sqlite", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		// Enable WAL mode for better concurrency
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}

		// SQLite only supports one writer at a time
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(time.Hour)

	} else if cfg.Driver == "postgres" {
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
		)

		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}

		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	} else {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Schema is the full DDL for the development self-migration path. The
// migrations directory carries the same statements for cmd/migrate.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	identity_key VARCHAR(255) NOT NULL UNIQUE,
	email VARCHAR(255) NOT NULL,
	name VARCHAR(255),
	plan VARCHAR(50) NOT NULL DEFAULT 'free',
	brand_kit_count INTEGER NOT NULL DEFAULT 0,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS brand_kits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	business_name VARCHAR(255) NOT NULL,
	industry VARCHAR(255),
	description TEXT,
	vibe TEXT NOT NULL DEFAULT '[]',
	target_audience TEXT,
	tagline TEXT,
	brand_summary TEXT,
	brand_voice TEXT,
	colors TEXT NOT NULL DEFAULT '[]',
	fonts TEXT NOT NULL DEFAULT '[]',
	website_hero TEXT,
	website_subheading TEXT,
	website_about TEXT,
	website_services TEXT,
	website_cta TEXT,
	instagram_bio TEXT,
	tiktok_bio TEXT,
	twitter_bio TEXT,
	logo_image_url TEXT,
	logo_prompt_used TEXT,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_brand_kits_user_created ON brand_kits(user_id, created_at);

CREATE TABLE IF NOT EXISTS subscriptions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL UNIQUE,
	stripe_customer_id VARCHAR(255),
	stripe_subscription_id VARCHAR(255),
	status VARCHAR(50) NOT NULL,
	current_plan VARCHAR(50) NOT NULL,
	renewal_date INTEGER,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_subscriptions_stripe_customer ON subscriptions(stripe_customer_id);
`

// Migrate applies the schema. Used on startup for the sqlite path; the
// postgres path is expected to run cmd/migrate instead.
func Migrate(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
