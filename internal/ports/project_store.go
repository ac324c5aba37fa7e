package ports

import (
	"context"

	"measurement-intake-service/internal/domain"
)

// Port: a boundary for reading and writing the stored project list.
type ProjectStore interface {
	// Return all stored projects.
	ListProjects(ctx context.Context) ([]*domain.Project, error)
	// Insert or replace a project by ID.
	UpsertProject(ctx context.Context, p *domain.Project) error
}
