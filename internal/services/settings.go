package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"measurement-intake-service/internal/domain"
	"measurement-intake-service/internal/ports"
)

// SettingsService holds the process-wide settings value.
//
// Settings load once at construction and persist on every change. Subscribers
// run after each successful update; the departure scheduler uses this to
// re-evaluate its polling gate without watching the store.
type SettingsService struct {
	store ports.SettingsStore

	mu    sync.Mutex
	value domain.Settings
	subs  []func(domain.Settings)
}

func NewSettingsService(ctx context.Context, store ports.SettingsStore) (*SettingsService, error) {
	value, err := store.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return &SettingsService{store: store, value: value}, nil
}

// Get returns the current settings value.
func (s *SettingsService) Get() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Update validates, persists and applies the new settings, then notifies
// subscribers. The in-memory value only changes after a successful write.
func (s *SettingsService) Update(ctx context.Context, next domain.Settings) error {
	if next.PreparationTime < 0 {
		return errors.New("update settings: preparationTime must not be negative")
	}

	if err := s.store.PutSettings(ctx, next); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	s.mu.Lock()
	s.value = next
	subs := make([]func(domain.Settings), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}

	return nil
}

// Subscribe registers fn to run after every settings change.
func (s *SettingsService) Subscribe(fn func(domain.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
