package mysql

import (
	"context"

	auditDomain "casetrack-backend/internal/domain/audit"

	"gorm.io/gorm"
)

type AuditRepository struct{ db *gorm.DB }

func NewAuditRepository(db *gorm.DB) *AuditRepository { return &AuditRepository{db: db} }

func (r *AuditRepository) Insert(ctx context.Context, e *auditDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *AuditRepository) Query(ctx context.Context, f auditDomain.Filter) ([]auditDomain.Entry, int64, error) {
	q := r.db.WithContext(ctx).Model(&auditDomain.Entry{})
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.CaseID != 0 {
		q = q.Where("case_id = ?", f.CaseID)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.EntityType != "" {
		q = q.Where("entity_type = ?", f.EntityType)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
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
	var out []auditDomain.Entry
	err := q.Order("created_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&out).Error
	return out, total, err
}

func (r *AuditRepository) ByCase(ctx context.Context, caseID uint64) ([]auditDomain.Entry, error) {
	var out []auditDomain.Entry
	err := r.db.WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
