package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"measurement-intake-service/internal/domain"
	"measurement-intake-service/internal/platform/obs"
)

// Fixed keys for the two persisted JSON records. Kept from the field app's
// original storage layout, so existing exports stay readable.
const (
	projectsStateKey = "woonbasis_projects"
	settingsStateKey = "woonbasis_settings"
)

// Postgres-backed implementation of the ProjectStore and SettingsStore ports.
//
// State lives in the app_state table as two independent JSON records keyed by
// fixed identifiers: one holding the full project list, one holding settings.
// There is no schema versioning; optional fields added later are simply
// absent on old records and default on decode.
type PostgresStateRepository struct{ DB *sql.DB }

func NewPostgresStateRepository(db *sql.DB) *PostgresStateRepository {
	return &PostgresStateRepository{DB: db}
}

// Return all stored projects, or an empty list when nothing has been saved.
func (r *PostgresStateRepository) ListProjects(ctx context.Context) (_ []*domain.Project, err error) {
	defer obs.Time(ctx, "state.ListProjects")(&err)

	raw, err := r.getState(ctx, projectsStateKey)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	if raw == nil {
		return []*domain.Project{}, nil
	}

	var projects []*domain.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, fmt.Errorf("list projects: decode state record: %w", err)
	}

	return projects, nil
}

// Insert or replace a project by ID, rewriting the full projects record.
func (r *PostgresStateRepository) UpsertProject(ctx context.Context, p *domain.Project) (err error) {
	defer obs.Time(ctx, "state.UpsertProject")(&err)

	if p == nil {
		return errors.New("upsert project: project must be non-nil")
	}
	if p.ID == "" {
		return errors.New("upsert project: project ID must be non-empty")
	}

	projects, err := r.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}

	replaced := false
	for i, existing := range projects {
		if existing != nil && existing.ID == p.ID {
			projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, p)
	}

	if err := r.putState(ctx, projectsStateKey, projects); err != nil {
		return fmt.Errorf("upsert project: %w", err)
	}

	return nil
}

// Return stored settings. Absent records and absent fields keep defaults, so
// records written before a setting existed stay readable.
func (r *PostgresStateRepository) GetSettings(ctx context.Context) (_ domain.Settings, err error) {
	defer obs.Time(ctx, "state.GetSettings")(&err)

	settings := domain.DefaultSettings()

	raw, err := r.getState(ctx, settingsStateKey)
	if err != nil {
		return settings, fmt.Errorf("get settings: %w", err)
	}
	if raw == nil {
		return settings, nil
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.DefaultSettings(), fmt.Errorf("get settings: decode state record: %w", err)
	}

	return settings, nil
}

// Persist settings, replacing the previous record.
func (r *PostgresStateRepository) PutSettings(ctx context.Context, s domain.Settings) (err error) {
	defer obs.Time(ctx, "state.PutSettings")(&err)

	if err := r.putState(ctx, settingsStateKey, s); err != nil {
		return fmt.Errorf("put settings: %w", err)
	}

	return nil
}

func (r *PostgresStateRepository) getState(ctx context.Context, key string) ([]byte, error) {
	if r.DB == nil {
		return nil, errors.New("state repository: DB is nil")
	}

	query := `
	SELECT value
	FROM app_state
	WHERE key = $1;
	`
	var raw []byte
	err := r.DB.QueryRowContext(ctx, query, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query app_state key=%q: %w", key, err)
	}

	return raw, nil
}

func (r *PostgresStateRepository) putState(ctx context.Context, key string, v any) error {
	if r.DB == nil {
		return errors.New("state repository: DB is nil")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode state record key=%q: %w", key, err)
	}

	query := `
	INSERT INTO app_state (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value, updated_at = now();
	`
	if _, err := r.DB.ExecContext(ctx, query, key, data); err != nil {
		return fmt.Errorf("write app_state key=%q: %w", key, err)
	}

	return nil
}
