package sheets

import (
	"context"
	"fmt"
	"sync"

	"github.com/seongmin-k/biffplan/internal/model"
	"github.com/seongmin-k/biffplan/internal/service"
)

// MockStore is an in-memory TabularStore for testing.
type MockStore struct {
	LoadFunc      func(ctx context.Context, h service.Handle) (*model.Table, error)
	SaveFunc      func(ctx context.Context, h service.Handle, table *model.Table) error
	tables        map[string]*model.Table
	SaveCalls     []SaveCall
	LoadCallCount int
	mu            sync.Mutex
}

// SaveCall records a single call to Save.
type SaveCall struct {
	Table *model.Table
	Sheet string
}

// NewMockStore creates an empty in-memory store.
func NewMockStore() *MockStore {
	return &MockStore{tables: make(map[string]*model.Table)}
}

var _ service.TabularStore = (*MockStore)(nil)

// Seed installs a table without recording a Save call.
func (m *MockStore) Seed(sheet string, table *model.Table) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables[sheet] = table.Clone()
}

// EnsureTable implements TabularStore.
func (m *MockStore) EnsureTable(_ context.Context, name string, headers []string) (service.Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tables[name]; !ok {
		m.tables[name] = model.NewTable(append([]string(nil), headers...))
	}
	return service.Handle{SpreadsheetID: "mock", Sheet: name}, nil
}

// Load implements TabularStore.
func (m *MockStore) Load(ctx context.Context, h service.Handle) (*model.Table, error) {
	m.mu.Lock()
	m.LoadCallCount++
	fn := m.LoadFunc
	table, ok := m.tables[h.Sheet]
	if ok {
		table = table.Clone()
	}
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, h)
	}
	if !ok {
		return nil, fmt.Errorf("mock: no sheet %q", h.Sheet)
	}
	return table, nil
}

// Save implements TabularStore.
func (m *MockStore) Save(ctx context.Context, h service.Handle, table *model.Table) error {
	m.mu.Lock()
	fn := m.SaveFunc
	m.SaveCalls = append(m.SaveCalls, SaveCall{Sheet: h.Sheet, Table: table.Clone()})
	if fn == nil {
		m.tables[h.Sheet] = table.Clone()
	}
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, h, table)
	}
	return nil
}

// Table returns the stored copy of a sheet, or nil.
func (m *MockStore) Table(sheet string) *model.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[sheet]; ok {
		return t.Clone()
	}
	return nil
}
