package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"measurement-intake-service/internal/domain"
)

// Initialize the application state schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS app_state (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create app_state table: %w", err)
	}

	return nil
}

// Populate the projects record from a JSON seed file for local runs. The
// seed replaces whatever projects record exists.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed projects: read %q: %w", jsonPath, err)
	}

	var projects []*domain.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return fmt.Errorf("seed projects: parse json: %w", err)
	}

	for i, p := range projects {
		if p == nil || p.ID == "" {
			return fmt.Errorf("seed projects: project at index %d has no ID", i+1)
		}
		if p.Customer.ID == "" {
			return fmt.Errorf("seed projects: project %q has a customer without an ID", p.ID)
		}
	}

	repo := NewPostgresStateRepository(db)
	if err := repo.putState(context.Background(), projectsStateKey, projects); err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}

	return nil
}
