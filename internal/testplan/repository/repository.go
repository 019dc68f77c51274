package repository

import (
	"context"

	"github.com/studydesk/go-services/internal/testplan"
)

// Repository is the append-only log of test-plan generations.
type Repository interface {
	Create(ctx context.Context, r *testplan.Record) (string, error)
	List(ctx context.Context) ([]*testplan.Record, error)
}
