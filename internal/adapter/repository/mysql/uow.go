package mysql

import (
	"context"

	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func txRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Cases:            &CaseRepository{db: tx},
		CaseStatuses:     &CaseStatusRepository{db: tx},
		Catalogs:         &CatalogRepository{db: tx},
		Evidence:         &EvidenceRepository{db: tx},
		EvidenceStatuses: &EvidenceStatusRepository{db: tx},
		Users:            &UserRepository{db: tx},
		Assignments:      &AssignmentRepository{db: tx},
		Audit:            &AuditRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(txRepos(tx))
	})
}

func (u *GormUoW) WithinCaseTx(ctx context.Context, caseID uint64, fn func(r uow.Repos, c *caserecord.Case) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := txRepos(tx)
		// lock the case row up-front to prevent races
		c, err := r.Cases.GetByIDForUpdate(ctx, caseID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
