package caserecord

import (
	"context"

	"casetrack-backend/internal/domain/visibility"
)

type ListFilter struct {
	Search             string
	StatusID           uint64
	UnitID             uint64
	ProsecutorOfficeID uint64
	IncludeInactive    bool
	Scope              visibility.Scope
	Page               int
	PageSize           int
}

type Repository interface {
	Create(ctx context.Context, c *Case) error
	GetByID(ctx context.Context, id uint64) (*Case, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Case, error)
	Save(ctx context.Context, c *Case) error
	SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error
	// NumberInUse checks case-number uniqueness among non-deleted cases,
	// optionally excluding one row (for updates).
	NumberInUse(ctx context.Context, number string, excludeID uint64) (bool, error)
	// MaxNumberSuffix returns the highest numeric suffix already issued
	// for EXP-<year>-NNNN, 0 when the year has no cases yet.
	MaxNumberSuffix(ctx context.Context, year int) (int, error)
	List(ctx context.Context, f ListFilter) ([]Case, int64, error)
}

type StatusRepository interface {
	GetByID(ctx context.Context, id uint64) (*Status, error)
	GetByName(ctx context.Context, name string) (*Status, error)
	// Lowest returns the status with the smallest display order.
	Lowest(ctx context.Context) (*Status, error)
}

type CatalogRepository interface {
	OfficeActive(ctx context.Context, id uint64) (bool, error)
	UnitActive(ctx context.Context, id uint64) (bool, error)
}
