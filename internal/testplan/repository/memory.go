package repository

import (
	"context"
	"sync"

	"github.com/studydesk/go-services/internal/testplan"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	records []testplan.Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Create(ctx context.Context, r *testplan.Record) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = primitive.NewObjectID().Hex()
	m.records = append(m.records, *r)
	return r.ID, nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*testplan.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*testplan.Record, 0, len(m.records))
	for i := range m.records {
		cp := m.records[i]
		out = append(out, &cp)
	}
	return out, nil
}
