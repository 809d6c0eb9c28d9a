package uow

import (
	"context"

	"casetrack-backend/internal/domain/assignment"
	"casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/evidence"
	"casetrack-backend/internal/domain/user"
)

type Repos struct {
	Cases            caserecord.Repository
	CaseStatuses     caserecord.StatusRepository
	Catalogs         caserecord.CatalogRepository
	Evidence         evidence.Repository
	EvidenceStatuses evidence.StatusRepository
	Users            user.Repository
	Assignments      assignment.Repository
	Audit            audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the case row first, then pass it in
	WithinCaseTx(ctx context.Context, caseID uint64, fn func(r Repos, c *caserecord.Case) error) error
}
