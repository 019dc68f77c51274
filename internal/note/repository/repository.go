package repository

import (
	"context"
	"errors"

	"github.com/studydesk/go-services/internal/note"
)

var (
	ErrNotFound = errors.New("note not found")
)

// Repository persists notes. Create assigns the id; the timestamp is set by
// the caller.
type Repository interface {
	Create(ctx context.Context, n *note.Note) (string, error)
	Get(ctx context.Context, id string) (*note.Note, error)
	List(ctx context.Context) ([]*note.Note, error)
	Update(ctx context.Context, id, title, content string) error
	Delete(ctx context.Context, id string) error
}
