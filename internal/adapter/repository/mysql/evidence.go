package mysql

import (
	"context"
	"strings"

	evidenceDomain "casetrack-backend/internal/domain/evidence"

	"gorm.io/gorm"
)

type EvidenceRepository struct{ db *gorm.DB }

func NewEvidenceRepository(db *gorm.DB) *EvidenceRepository { return &EvidenceRepository{db: db} }

func (r *EvidenceRepository) Create(ctx context.Context, e *evidenceDomain.Evidence) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EvidenceRepository) Save(ctx context.Context, e *evidenceDomain.Evidence) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EvidenceRepository) GetByID(ctx context.Context, id uint64) (*evidenceDomain.Evidence, error) {
	var out evidenceDomain.Evidence
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *EvidenceRepository) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	tx := r.db.WithContext(ctx).Model(&evidenceDomain.Evidence{}).
		Where("id = ?", id).
		Update("deleted_by_id", deletedBy)
	if tx.Error != nil {
		return tx.Error
	}
	return r.db.WithContext(ctx).Delete(&evidenceDomain.Evidence{}, id).Error
}

func (r *EvidenceRepository) NumberInUse(ctx context.Context, caseID uint64, number string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&evidenceDomain.Evidence{}).
		Where("case_id = ? AND evidence_number = ?", caseID, number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *EvidenceRepository) List(ctx context.Context, f evidenceDomain.ListFilter) ([]evidenceDomain.Evidence, int64, error) {
	q := r.db.WithContext(ctx).Model(&evidenceDomain.Evidence{})
	if f.IncludeInactive {
		q = q.Unscoped()
	}
	if f.CaseID != 0 {
		q = q.Where("case_id = ?", f.CaseID)
	}
	if f.StatusID != 0 {
		q = q.Where("status_id = ?", f.StatusID)
	}
	if f.Search != "" {
		p := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(evidence_number) LIKE ? OR LOWER(description) LIKE ? OR LOWER(object_type) LIKE ?", p, p, p)
	}
	if !f.Scope.IsUnrestricted() {
		// The role scope applies to the parent case's technician.
		sub := r.db.Table("cases").Select("id").Where("deleted_at = 0")
		sub = f.Scope.Apply(sub, "assigned_technician_id")
		q = q.Where("case_id IN (?)", sub)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, size := f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	var out []evidenceDomain.Evidence
	err := q.Order("created_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&out).Error
	return out, total, err
}
