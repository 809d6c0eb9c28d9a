package caserecord

import (
	"time"

	"gorm.io/plugin/soft_delete"
)

type Urgency string

const (
	UrgencyOrdinary   Urgency = "ordinary"
	UrgencyUrgent     Urgency = "urgent"
	UrgencyVeryUrgent Urgency = "very_urgent"
)

// Review-state catalog. Exactly three rows in the current model; the core
// references them by id and never creates new ones.
const (
	StatusPendingReview = "Pending Review"
	StatusApproved      = "Approved"
	StatusRejected      = "Rejected"
)

type Status struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name         string `gorm:"size:64;column:name;uniqueIndex:ux_case_statuses_name" json:"name"`
	DisplayOrder int    `gorm:"column:display_order" json:"display_order"`
	Color        string `gorm:"size:16;column:color" json:"color"`
}

func (Status) TableName() string { return "case_statuses" }

type ProsecutorOffice struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name   string `gorm:"size:128;column:name" json:"name"`
	Active bool   `gorm:"column:active;default:true" json:"active"`
}

func (ProsecutorOffice) TableName() string { return "prosecutor_offices" }

type ForensicUnit struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"id"`
	Name   string `gorm:"size:128;column:name" json:"name"`
	Active bool   `gorm:"column:active;default:true" json:"active"`
}

func (ForensicUnit) TableName() string { return "forensic_units" }

// Case carries a soft-delete timestamp inside its number's unique index
// so a tombstoned row stops occupying the number (live rows all share
// deleted_at 0).
type Case struct {
	ID                   uint64                `gorm:"primaryKey;column:id" json:"id"`
	CaseNumber           string                `gorm:"size:32;column:case_number;uniqueIndex:ux_cases_number_active" json:"case_number"`
	ExternalCaseRef      string                `gorm:"size:64;column:external_case_ref" json:"external_case_ref"`
	RegisteredByID       uint64                `gorm:"column:registered_by_id;index" json:"registered_by_id"`
	AssignedTechnicianID uint64                `gorm:"column:assigned_technician_id;index:idx_cases_technician_active" json:"assigned_technician_id"`
	SupervisorID         *uint64               `gorm:"column:supervisor_id" json:"supervisor_id"`
	ProsecutorOfficeID   uint64                `gorm:"column:prosecutor_office_id;index" json:"prosecutor_office_id"`
	UnitID               uint64                `gorm:"column:unit_id;index" json:"unit_id"`
	StatusID             uint64                `gorm:"column:status_id;index" json:"status_id"`
	Urgency              Urgency               `gorm:"size:16;column:urgency;default:ordinary" json:"urgency"`
	CrimeType            string                `gorm:"size:128;column:crime_type" json:"crime_type"`
	IncidentLocation     string                `gorm:"size:256;column:incident_location" json:"incident_location"`
	IncidentDate         *time.Time            `gorm:"column:incident_date;type:date" json:"incident_date"`
	CaseDescription      string                `gorm:"type:text;column:case_description" json:"case_description"`
	Notes                string                `gorm:"type:text;column:notes" json:"notes"`
	LimitDate            *time.Time            `gorm:"column:limit_date;type:date" json:"limit_date"`
	AnalysisStartDate    *time.Time            `gorm:"column:analysis_start_date;type:date" json:"analysis_start_date"`
	DictumDeliveryDate   *time.Time            `gorm:"column:dictum_delivery_date;type:date" json:"dictum_delivery_date"`
	DepartmentID         *uint64               `gorm:"column:department_id" json:"department_id"`
	MunicipalityID       *uint64               `gorm:"column:municipality_id" json:"municipality_id"`
	CreatedAt            time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            soft_delete.DeletedAt `gorm:"column:deleted_at;softDelete:milli;uniqueIndex:ux_cases_number_active" json:"-"`
	DeletedByID          *uint64               `gorm:"column:deleted_by_id" json:"-"`
}

func (Case) TableName() string { return "cases" }
