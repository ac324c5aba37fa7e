package ports

import (
	"context"

	"measurement-intake-service/internal/domain"
)

// Port: a boundary for the persisted settings record.
type SettingsStore interface {
	// Return stored settings, or defaults when nothing has been saved yet.
	GetSettings(ctx context.Context) (domain.Settings, error)
	// Persist settings, replacing the previous record.
	PutSettings(ctx context.Context, s domain.Settings) error
}
