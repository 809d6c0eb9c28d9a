package mysql

import (
	"context"

	assignmentDomain "casetrack-backend/internal/domain/assignment"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AssignmentRepository struct{ db *gorm.DB }

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Upsert keeps the one-active-supervisor-per-technician invariant at the
// write path: a second assign for the same technician overwrites.
func (r *AssignmentRepository) Upsert(ctx context.Context, supervisorID, technicianID uint64) error {
	a := assignmentDomain.Assignment{SupervisorID: supervisorID, TechnicianID: technicianID}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "technician_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"supervisor_id", "updated_at"}),
	}).Create(&a).Error
}

func (r *AssignmentRepository) Remove(ctx context.Context, technicianID uint64) error {
	res := r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Delete(&assignmentDomain.Assignment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AssignmentRepository) TechniciansFor(ctx context.Context, supervisorID uint64) ([]uint64, error) {
	var ids []uint64
	err := r.db.WithContext(ctx).Model(&assignmentDomain.Assignment{}).
		Where("supervisor_id = ?", supervisorID).
		Pluck("technician_id", &ids).Error
	return ids, err
}

func (r *AssignmentRepository) List(ctx context.Context) ([]assignmentDomain.Assignment, error) {
	var out []assignmentDomain.Assignment
	err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error
	return out, err
}
