package services

import (
	"context"
	"sync"

	"measurement-intake-service/internal/domain"
)

type fakeProjectStore struct {
	mu       sync.Mutex
	projects []*domain.Project
	listErr  error
	upserts  int
}

func (f *fakeProjectStore) ListProjects(ctx context.Context) ([]*domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.projects, nil
}

func (f *fakeProjectStore) UpsertProject(ctx context.Context, p *domain.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	for i, existing := range f.projects {
		if existing.ID == p.ID {
			f.projects[i] = p
			return nil
		}
	}
	f.projects = append(f.projects, p)
	return nil
}

type fakeSettingsStore struct {
	value  domain.Settings
	getErr error
	putErr error
	puts   int
}

func (f *fakeSettingsStore) GetSettings(ctx context.Context) (domain.Settings, error) {
	if f.getErr != nil {
		return domain.Settings{}, f.getErr
	}
	return f.value, nil
}

func (f *fakeSettingsStore) PutSettings(ctx context.Context, s domain.Settings) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.puts++
	f.value = s
	return nil
}

type fakeNotifier struct {
	mu      sync.Mutex
	granted bool
	titles  []string
	bodies  []string
}

func (f *fakeNotifier) IsGranted() bool { return f.granted }

func (f *fakeNotifier) RequestPermission(ctx context.Context) (bool, error) {
	return f.granted, nil
}

func (f *fakeNotifier) Notify(title, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.titles = append(f.titles, title)
	f.bodies = append(f.bodies, body)
	return nil
}

func (f *fakeNotifier) sent() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.titles)
}
