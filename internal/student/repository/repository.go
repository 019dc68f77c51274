package repository

import (
	"context"
	"errors"

	"github.com/studydesk/go-services/internal/student"
)

var ErrNotFound = errors.New("student not found")

// Repository stores students by their natural key. Lookups and deletes act
// on the first stored match.
type Repository interface {
	Create(ctx context.Context, s *student.Student) error
	List(ctx context.Context) ([]*student.Student, error)
	GetByStudentID(ctx context.Context, studentID string) (*student.Student, error)
	DeleteByStudentID(ctx context.Context, studentID string) error
}
