package main

import (
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/brandkitai/brandkit/internal/config"
	"github.com/brandkitai/brandkit/internal/repository/sqlite"
	"github.com/brandkitai/brandkit/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("Connected to database successfully")

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name VARCHAR(255) NOT NULL UNIQUE,
			executed_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create migrations table: %v\n", err)
		os.Exit(1)
	}

	entries, err := fs.Glob(migrations.GetFS(), "*.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read migrations: %v\n", err)
		os.Exit(1)
	}
	sort.Strings(entries)

	if len(entries) == 0 {
		fmt.Println("No migration files found")
		return
	}

	for _, filename := range entries {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE name = ?", filename).Scan(&count)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to check migration status: %v\n", err)
			os.Exit(1)
		}

		if count > 0 {
			fmt.Printf("Skipping %s (already executed)\n", filename)
			continue
		}

		content, err := fs.ReadFile(migrations.GetFS(), filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read migration file %s: %v\n", filename, err)
			os.Exit(1)
		}

		fmt.Printf("Running migration: %s\n", filename)
		if _, err := db.Exec(string(content)); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to execute migration %s: %v\n", filename, err)
			os.Exit(1)
		}

		if _, err := db.Exec("INSERT INTO migrations (name) VALUES (?)", filename); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to record migration %s: %v\n", filename, err)
			os.Exit(1)
		}

		fmt.Printf("Migration %s completed\n", filename)
	}

	fmt.Println("All migrations completed successfully")
}
