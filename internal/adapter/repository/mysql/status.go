package mysql

import (
	"context"

	caseDomain "casetrack-backend/internal/domain/caserecord"
	evidenceDomain "casetrack-backend/internal/domain/evidence"

	"gorm.io/gorm"
)

type CaseStatusRepository struct{ db *gorm.DB }

func NewCaseStatusRepository(db *gorm.DB) *CaseStatusRepository {
	return &CaseStatusRepository{db: db}
}

func (r *CaseStatusRepository) GetByID(ctx context.Context, id uint64) (*caseDomain.Status, error) {
	var out caseDomain.Status
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CaseStatusRepository) GetByName(ctx context.Context, name string) (*caseDomain.Status, error) {
	var out caseDomain.Status
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

func (r *CaseStatusRepository) Lowest(ctx context.Context) (*caseDomain.Status, error) {
	var out caseDomain.Status
	res := r.db.WithContext(ctx).Order("display_order ASC").First(&out)
	return &out, res.Error
}

type EvidenceStatusRepository struct{ db *gorm.DB }

func NewEvidenceStatusRepository(db *gorm.DB) *EvidenceStatusRepository {
	return &EvidenceStatusRepository{db: db}
}

func (r *EvidenceStatusRepository) GetByID(ctx context.Context, id uint64) (*evidenceDomain.Status, error) {
	var out evidenceDomain.Status
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *EvidenceStatusRepository) GetByName(ctx context.Context, name string) (*evidenceDomain.Status, error) {
	var out evidenceDomain.Status
	res := r.db.WithContext(ctx).Where("name = ?", name).First(&out)
	return &out, res.Error
}

type CatalogRepository struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{db: db} }

func (r *CatalogRepository) OfficeActive(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&caseDomain.ProsecutorOffice{}).
		Where("id = ? AND active = ?", id, true).
		Count(&n).Error
	return n > 0, err
}

func (r *CatalogRepository) UnitActive(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&caseDomain.ForensicUnit{}).
		Where("id = ? AND active = ?", id, true).
		Count(&n).Error
	return n > 0, err
}
