package mysql

import (
	"context"
	"strconv"
	"strings"

	caseDomain "casetrack-backend/internal/domain/caserecord"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CaseRepository struct{ db *gorm.DB }

func NewCaseRepository(db *gorm.DB) *CaseRepository { return &CaseRepository{db: db} }

func (r *CaseRepository) Create(ctx context.Context, c *caseDomain.Case) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CaseRepository) Save(ctx context.Context, c *caseDomain.Case) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CaseRepository) GetByID(ctx context.Context, id uint64) (*caseDomain.Case, error) {
	var out caseDomain.Case
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *CaseRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*caseDomain.Case, error) {
	var out caseDomain.Case
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&out)
	return &out, res.Error
}

func (r *CaseRepository) SoftDelete(ctx context.Context, id uint64, deletedBy uint64) error {
	tx := r.db.WithContext(ctx).Model(&caseDomain.Case{}).
		Where("id = ?", id).
		Update("deleted_by_id", deletedBy)
	if tx.Error != nil {
		return tx.Error
	}
	return r.db.WithContext(ctx).Delete(&caseDomain.Case{}, id).Error
}

func (r *CaseRepository) NumberInUse(ctx context.Context, number string, excludeID uint64) (bool, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&caseDomain.Case{}).Where("case_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *CaseRepository) MaxNumberSuffix(ctx context.Context, year int) (int, error) {
	prefix := "EXP-" + strconv.Itoa(year) + "-"
	var numbers []string
	// Unscoped: a soft-deleted case must never get its suffix re-issued,
	// the sequence only moves forward.
	err := r.db.WithContext(ctx).Unscoped().Model(&caseDomain.Case{}).
		Where("case_number LIKE ?", prefix+"%").
		Pluck("case_number", &numbers).Error
	if err != nil {
		return 0, err
	}
	max := 0
	for _, num := range numbers {
		n, err := strconv.Atoi(strings.TrimPrefix(num, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (r *CaseRepository) List(ctx context.Context, f caseDomain.ListFilter) ([]caseDomain.Case, int64, error) {
	q := r.db.WithContext(ctx).Model(&caseDomain.Case{})
	if f.IncludeInactive {
		q = q.Unscoped()
	}
	if f.Search != "" {
		p := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(case_number) LIKE ? OR LOWER(external_case_ref) LIKE ? OR LOWER(case_description) LIKE ?", p, p, p)
	}
	if f.StatusID != 0 {
		q = q.Where("status_id = ?", f.StatusID)
	}
	if f.UnitID != 0 {
		q = q.Where("unit_id = ?", f.UnitID)
	}
	if f.ProsecutorOfficeID != 0 {
		q = q.Where("prosecutor_office_id = ?", f.ProsecutorOfficeID)
	}
	// Role scoping is part of the same query so the count matches the page.
	q = f.Scope.Apply(q, "assigned_technician_id")

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
	var out []caseDomain.Case
	err := q.Order("created_at DESC, id DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&out).Error
	return out, total, err
}
