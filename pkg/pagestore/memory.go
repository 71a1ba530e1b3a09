package pagestore

import (
	"context"
	"sort"
	"sync"

	"github.com/faciam-dev/gcms/pkg/content"
)

// Memory is an in-memory Store for tests and local development.
type Memory struct {
	mu    sync.RWMutex
	pages map[string]map[string]content.Page
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{pages: make(map[string]map[string]content.Page)}
}

func (m *Memory) List(_ context.Context, tableID string) ([]content.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []content.Page
	for _, p := range m.pages[tableID] {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Page < out[j].Page })
	return out, nil
}

func (m *Memory) Get(_ context.Context, tableID, pageID string) (content.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.pages[tableID][pageID]
	if !ok {
		return content.Page{}, ErrNotFound
	}
	return p, nil
}

func (m *Memory) Save(_ context.Context, tableID string, p content.Page) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pages[tableID] == nil {
		m.pages[tableID] = make(map[string]content.Page)
	}
	m.pages[tableID][p.Page] = p
	return nil
}

func (m *Memory) Delete(_ context.Context, tableID, pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pages[tableID][pageID]; !ok {
		return ErrNotFound
	}
	delete(m.pages[tableID], pageID)
	return nil
}
