package user

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleSupervisor Role = "SUPERVISOR"
	RoleTechnician Role = "TECHNICIAN"
)

type User struct {
	ID           uint64                `gorm:"primaryKey;column:id" json:"id"`
	FullName     string                `gorm:"size:128;column:full_name" json:"full_name"`
	Email        string                `gorm:"size:128;column:email;uniqueIndex:ux_users_email_active" json:"email"`
	PasswordHash string                `gorm:"size:128;column:password_hash" json:"-"`
	Role         Role                  `gorm:"size:32;column:role" json:"role"`
	Active       bool                  `gorm:"column:active;default:true" json:"active"`
	CreatedAt    time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    soft_delete.DeletedAt `gorm:"column:deleted_at;softDelete:milli;uniqueIndex:ux_users_email_active" json:"-"`
}

func (User) TableName() string { return "users" }
