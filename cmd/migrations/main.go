package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/ballot/internal/config"
)

// Applies every *.up.sql migration in lexical order. Statements use
// IF NOT EXISTS so reruns are harmless.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.FromEnv()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	basePath := filepath.Join(".", "internal", "adapters", "repository", "postgres", "migrations")
	files, err := migrationFiles(basePath)
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range files {
		content, err := os.ReadFile(filepath.Join(basePath, name))
		if err != nil {
			log.Fatalf("Failed to read migration %s: %v", name, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			log.Fatalf("Failed to execute migration %s: %v", name, err)
		}
		fmt.Printf("Applied %s\n", name)
	}
}

func migrationFiles(basePath string) ([]string, error) {
	entries, err := os.ReadDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), "up.sql") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
