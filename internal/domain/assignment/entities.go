package assignment

import "time"

// Assignment maps a technician to their single active supervisor.
// Reassigning a technician overwrites the row instead of adding one.
type Assignment struct {
	ID           uint64    `gorm:"primaryKey;column:id" json:"id"`
	SupervisorID uint64    `gorm:"column:supervisor_id;index" json:"supervisor_id"`
	TechnicianID uint64    `gorm:"column:technician_id;uniqueIndex:ux_assignments_technician" json:"technician_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Assignment) TableName() string { return "supervisor_assignments" }
