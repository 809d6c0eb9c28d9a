package mysql

import (
	"context"

	userDomain "casetrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) IsActive(ctx context.Context, id uint64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&userDomain.User{}).
		Where("id = ? AND active = ?", id, true).
		Count(&n).Error
	return n > 0, err
}

func (r *UserRepository) ListByRole(ctx context.Context, role userDomain.Role) ([]userDomain.User, error) {
	var out []userDomain.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ?", role, true).
		Order("full_name ASC").
		Find(&out).Error
	return out, err
}
