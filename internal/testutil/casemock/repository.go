package casemock

import (
	"context"

	domain "casetrack-backend/internal/domain/caserecord"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Case) error
	GetByIDFn          func(ctx context.Context, id uint64) (*domain.Case, error)
	GetByIDForUpdateFn func(ctx context.Context, id uint64) (*domain.Case, error)
	SaveFn             func(ctx context.Context, c *domain.Case) error
	SoftDeleteFn       func(ctx context.Context, id uint64, deletedBy uint64) error
	NumberInUseFn      func(ctx context.Context, number string, excludeID uint64) (bool, error)
	MaxNumberSuffixFn  func(ctx context.Context, year int) (int, error)
	ListFn             func(ctx context.Context, f domain.ListFilter) ([]domain.Case, int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Case) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}
func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Case, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Case, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) Save(ctx context.Context, c *domain.Case) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}
func (m *Repo) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id, deletedBy)
	}
	return nil
}
func (m *Repo) NumberInUse(ctx context.Context, number string, excludeID uint64) (bool, error) {
	if m.NumberInUseFn != nil {
		return m.NumberInUseFn(ctx, number, excludeID)
	}
	return false, nil
}
func (m *Repo) MaxNumberSuffix(ctx context.Context, year int) (int, error) {
	if m.MaxNumberSuffixFn != nil {
		return m.MaxNumberSuffixFn(ctx, year)
	}
	return 0, nil
}
func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Case, int64, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, 0, context.Canceled
}

// StatusRepo mocks domain.StatusRepository.
type StatusRepo struct {
	GetByIDFn   func(ctx context.Context, id uint64) (*domain.Status, error)
	GetByNameFn func(ctx context.Context, name string) (*domain.Status, error)
	LowestFn    func(ctx context.Context) (*domain.Status, error)
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
func (m *StatusRepo) Lowest(ctx context.Context) (*domain.Status, error) {
	if m.LowestFn != nil {
		return m.LowestFn(ctx)
	}
	return nil, context.Canceled
}

// CatalogRepo mocks domain.CatalogRepository. Unset funcs report active,
// which is what most tests want.
type CatalogRepo struct {
	OfficeActiveFn func(ctx context.Context, id uint64) (bool, error)
	UnitActiveFn   func(ctx context.Context, id uint64) (bool, error)
}

func (m *CatalogRepo) OfficeActive(ctx context.Context, id uint64) (bool, error) {
	if m.OfficeActiveFn != nil {
		return m.OfficeActiveFn(ctx, id)
	}
	return true, nil
}
func (m *CatalogRepo) UnitActive(ctx context.Context, id uint64) (bool, error) {
	if m.UnitActiveFn != nil {
		return m.UnitActiveFn(ctx, id)
	}
	return true, nil
}
