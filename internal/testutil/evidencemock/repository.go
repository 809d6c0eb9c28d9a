package evidencemock

import (
	"context"

	domain "casetrack-backend/internal/domain/evidence"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn      func(ctx context.Context, e *domain.Evidence) error
	GetByIDFn     func(ctx context.Context, id uint64) (*domain.Evidence, error)
	SaveFn        func(ctx context.Context, e *domain.Evidence) error
	SoftDeleteFn  func(ctx context.Context, id uint64, deletedBy uint64) error
	NumberInUseFn func(ctx context.Context, caseID uint64, number string, excludeID uint64) (bool, error)
	ListFn        func(ctx context.Context, f domain.ListFilter) ([]domain.Evidence, int64, error)
}

func (m *Repo) Create(ctx context.Context, e *domain.Evidence) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, e)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Evidence, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, e *domain.Evidence) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, e)
	}
	return nil
}
func (m *Repo) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id, deletedBy)
	}
	return nil
}
func (m *Repo) NumberInUse(ctx context.Context, caseID uint64, number string, excludeID uint64) (bool, error) {
	if m.NumberInUseFn != nil {
		return m.NumberInUseFn(ctx, caseID, number, excludeID)
	}
	return false, nil
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Evidence, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}

// StatusRepo mocks domain.StatusRepository.
type StatusRepo struct {
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Status, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Status, error)
}

func (m *StatusRepo) GetByID(ctx context.Context, id uint64) (*domain.Status, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *StatusRepo) GetByName(ctx context.Context, name string) (*domain.Status, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, context.Canceled
}
