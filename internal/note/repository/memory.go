package repository

import (
	"context"
	"sync"

	"github.com/studydesk/go-services/internal/note"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory repository used for local runs and unit tests.
// Ids have the same shape as the Mongo ones.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]*note.Note
	order []string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*note.Note)}
}

func (m *MemoryRepo) Create(ctx context.Context, n *note.Note) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n.ID = primitive.NewObjectID().Hex()
	cp := *n
	m.store[n.ID] = &cp
	m.order = append(m.order, n.ID)
	return n.ID, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id string) (*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if n, ok := m.store[id]; ok {
		cp := *n
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context) ([]*note.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*note.Note, 0, len(m.store))
	for _, id := range m.order {
		cp := *m.store[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Update(ctx context.Context, id, title, content string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.store[id]
	if !ok {
		return ErrNotFound
	}
	n.Title = title
	n.Content = content
	return nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
