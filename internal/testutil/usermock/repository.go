package usermock

import (
	"context"

	domain "casetrack-backend/internal/domain/user"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn    func(ctx context.Context, id uint64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	IsActiveFn   func(ctx context.Context, id uint64) (bool, error)
	ListByRoleFn func(ctx context.Context, role domain.Role) ([]domain.User, error)
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}
func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

// IsActive defaults to true so tests only wire the failing user.
func (m *Repo) IsActive(ctx context.Context, id uint64) (bool, error) {
	if m.IsActiveFn != nil {
		return m.IsActiveFn(ctx, id)
	}
	return true, nil
}

func (m *Repo) ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if m.ListByRoleFn != nil {
		return m.ListByRoleFn(ctx, role)
	}
	return nil, nil
}
