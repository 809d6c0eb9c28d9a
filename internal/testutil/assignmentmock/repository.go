package assignmentmock

import (
	"context"

	domain "casetrack-backend/internal/domain/assignment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	UpsertFn         func(ctx context.Context, supervisorID, technicianID uint64) error
	RemoveFn         func(ctx context.Context, technicianID uint64) error
	TechniciansForFn func(ctx context.Context, supervisorID uint64) ([]uint64, error)
	ListFn           func(ctx context.Context) ([]domain.Assignment, error)
}

func (m *Repo) Upsert(ctx context.Context, supervisorID, technicianID uint64) error {
	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, supervisorID, technicianID)
	}
	return nil
}
func (m *Repo) Remove(ctx context.Context, technicianID uint64) error {
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, technicianID)
	}
	return nil
}
func (m *Repo) TechniciansFor(ctx context.Context, supervisorID uint64) ([]uint64, error) {
	if m.TechniciansForFn != nil {
		return m.TechniciansForFn(ctx, supervisorID)
	}
	return nil, nil
}
func (m *Repo) List(ctx context.Context) ([]domain.Assignment, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}
