package evidence

import (
	"context"

	"casetrack-backend/internal/domain/visibility"
)

type ListFilter struct {
	CaseID   uint64
	StatusID uint64
	Search   string
	// Applied to the parent case's assigned technician.
	Scope           visibility.Scope
	IncludeInactive bool
	Page            int
	PageSize        int
}

type Repository interface {
	Create(ctx context.Context, e *Evidence) error
	GetByID(ctx context.Context, id uint64) (*Evidence, error)
	Save(ctx context.Context, e *Evidence) error
	SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error
	// NumberInUse checks uniqueness within the parent case among
	// non-deleted evidence, optionally excluding one row.
	NumberInUse(ctx context.Context, caseID uint64, number string, excludeID uint64) (bool, error)
	List(ctx context.Context, f ListFilter) ([]Evidence, int64, error)
}

type StatusRepository interface {
	GetByID(ctx context.Context, id uint64) (*Status, error)
	GetByName(ctx context.Context, name string) (*Status, error)
}
