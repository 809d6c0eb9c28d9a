package evidence

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type Status struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name         string `gorm:"size:64;column:name;uniqueIndex:ux_evidence_statuses_name" json:"name"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
	Color        string `gorm:"size:16;column:color" json:"color"`
}

func (Status) TableName() string { return "evidence_statuses" }

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Evidence numbers are unique per case among live rows only; the
// soft-delete timestamp sits in the composite index so deleting an item
// frees its number within the case.
type Evidence struct {
	ID                uint64                `gorm:"primaryKey;column:id" json:"id"`
	CaseID            uint64                `gorm:"column:case_id;index;uniqueIndex:ux_evidence_case_number" json:"case_id"`
	EvidenceNumber    string                `gorm:"size:32;column:evidence_number;uniqueIndex:ux_evidence_case_number" json:"evidence_number"`
	Description       string                `gorm:"type:text;column:description" json:"description"`
	ObjectType        string                `gorm:"size:64;column:object_type" json:"object_type"`
	Color             string                `gorm:"size:32;column:color" json:"color"`
	Size              string                `gorm:"size:64;column:size" json:"size"`
	Weight            *float64              `gorm:"column:weight" json:"weight"`
	WeightUnit        string                `gorm:"size:16;column:weight_unit" json:"weight_unit"`
	DiscoveryLocation string                `gorm:"size:256;column:discovery_location" json:"discovery_location"`
	TechnicianID      uint64                `gorm:"column:technician_id;index" json:"technician_id"`
	RegistrationDate  time.Time             `gorm:"column:registration_date" json:"registration_date"`
	StatusID          uint64                `gorm:"column:status_id;index" json:"status_id"`
	Notes             string                `gorm:"type:text;column:notes" json:"notes"`
	Quantity          int                   `gorm:"column:quantity;default:1" json:"quantity"`
	CreatedAt         time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt         soft_delete.DeletedAt `gorm:"column:deleted_at;softDelete:milli;uniqueIndex:ux_evidence_case_number" json:"-"`
	DeletedByID       *uint64               `gorm:"column:deleted_by_id" json:"-"`
}

func (Evidence) TableName() string { return "evidence_items" }
