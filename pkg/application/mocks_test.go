package application_test

import (
	"sync"

	"github.com/felixgeelhaar/cowork/pkg/domain"
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

// MockRepo is an in-memory SpaceRepository. The same space pointer is handed
// out on every load, so mutations persist across service calls.
type MockRepo struct {
	mu        sync.Mutex
	Space     *space.Space
	Events    []domain.Event
	Saves     int
	LoadError error
	SaveError error
}

func (m *MockRepo) Initialize() error { return nil }

func (m *MockRepo) IsInitialized() bool { return true }

func (m *MockRepo) LoadSpace() (*space.Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Space == nil {
		m.Space = space.New()
	}
	return m.Space, nil
}

func (m *MockRepo) SaveSpace(sp *space.Space) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Space = sp
	m.Saves++
	return nil
}

func (m *MockRepo) RecordEvent(event domain.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveError != nil {
		return m.SaveError
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockRepo) LoadEvents() ([]domain.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return m.Events, nil
}

// MockAudit records logged actions without hashing.
type MockAudit struct {
	Actions []string
}

func (a *MockAudit) Log(action string, actor string, metadata map[string]interface{}) error {
	a.Actions = append(a.Actions, action)
	return nil
}

func (a *MockAudit) Logged(action string) bool {
	for _, got := range a.Actions {
		if got == action {
			return true
		}
	}
	return false
}
