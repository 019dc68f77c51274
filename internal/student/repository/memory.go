package repository

import (
	"context"
	"sync"

	"github.com/studydesk/go-services/internal/student"
)

// MemoryRepo keeps students in insertion order.
type MemoryRepo struct {
	mu       sync.RWMutex
	students []*student.Student
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func clone(s *student.Student) *student.Student {
	cp := *s
	if s.Age != nil {
		age := *s.Age
		cp.Age = &age
	}
	cp.Courses = append([]student.Course(nil), s.Courses...)
	if cp.Courses == nil {
		cp.Courses = []student.Course{}
	}
	return &cp
}

func (m *MemoryRepo) Create(ctx context.Context, s *student.Student) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.students = append(m.students, clone(s))
	return nil
}

func (m *MemoryRepo) List(ctx context.Context) ([]*student.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*student.Student, 0, len(m.students))
	for _, s := range m.students {
		out = append(out, clone(s))
	}
	return out, nil
}

func (m *MemoryRepo) GetByStudentID(ctx context.Context, studentID string) (*student.Student, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.students {
		if s.StudentID == studentID {
			return clone(s), nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepo) DeleteByStudentID(ctx context.Context, studentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.students {
		if s.StudentID == studentID {
			m.students = append(m.students[:i], m.students[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
