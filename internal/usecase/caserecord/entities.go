package caserecord

import (
	"time"

	"casetrack-backend/internal/domain/caserecord"
)

type CreateCaseInput struct {
	CaseNumber           string              `json:"case_number"`
	ExternalCaseRef      string              `json:"external_case_ref"`
	RegisteredByID       uint64              `json:"registered_by_id"`
	AssignedTechnicianID uint64              `json:"assigned_technician_id"`
	SupervisorID         *uint64             `json:"supervisor_id"`
	ProsecutorOfficeID   uint64              `json:"prosecutor_office_id"`
	UnitID               uint64              `json:"unit_id"`
	StatusID             uint64              `json:"status_id"`
	Urgency              caserecord.Urgency  `json:"urgency"`
	CrimeType            string              `json:"crime_type"`
	IncidentLocation     string              `json:"incident_location"`
	IncidentDate         *time.Time          `json:"incident_date"`
	CaseDescription      string              `json:"case_description"`
	Notes                string              `json:"notes"`
	LimitDate            *time.Time          `json:"limit_date"`
	AnalysisStartDate    *time.Time          `json:"analysis_start_date"`
	DictumDeliveryDate   *time.Time          `json:"dictum_delivery_date"`
	DepartmentID         *uint64             `json:"department_id"`
	MunicipalityID       *uint64             `json:"municipality_id"`
}

// UpdateCaseInput replaces every provided field unconditionally; the
// registering user is immutable and therefore absent here.
type UpdateCaseInput struct {
	CaseNumber           string             `json:"case_number"`
	ExternalCaseRef      string             `json:"external_case_ref"`
	AssignedTechnicianID uint64             `json:"assigned_technician_id"`
	SupervisorID         *uint64            `json:"supervisor_id"`
	ProsecutorOfficeID   uint64             `json:"prosecutor_office_id"`
	UnitID               uint64             `json:"unit_id"`
	StatusID             uint64             `json:"status_id"`
	Urgency              caserecord.Urgency `json:"urgency"`
	CrimeType            string             `json:"crime_type"`
	IncidentLocation     string             `json:"incident_location"`
	IncidentDate         *time.Time         `json:"incident_date"`
	CaseDescription      string             `json:"case_description"`
	Notes                string             `json:"notes"`
	LimitDate            *time.Time         `json:"limit_date"`
	AnalysisStartDate    *time.Time         `json:"analysis_start_date"`
	DictumDeliveryDate   *time.Time         `json:"dictum_delivery_date"`
	DepartmentID         *uint64            `json:"department_id"`
	MunicipalityID       *uint64            `json:"municipality_id"`
}

type EvidenceInput struct {
	Description       string   `json:"description"`
	ObjectType        string   `json:"object_type"`
	Color             string   `json:"color"`
	Size              string   `json:"size"`
	Weight            *float64 `json:"weight"`
	WeightUnit        string   `json:"weight_unit"`
	DiscoveryLocation string   `json:"discovery_location"`
	StatusID          uint64   `json:"status_id"`
	Notes             string   `json:"notes"`
	Quantity          int      `json:"quantity"`
}

type CreateWithEvidenceInput struct {
	ExternalCaseRef      string             `json:"external_case_ref"`
	RegisteredByID       uint64             `json:"registered_by_id"`
	AssignedTechnicianID uint64             `json:"assigned_technician_id"`
	ProsecutorOfficeID   uint64             `json:"prosecutor_office_id"`
	UnitID               uint64             `json:"unit_id"`
	StatusID             uint64             `json:"status_id"`
	Urgency              caserecord.Urgency `json:"urgency"`
	CrimeType            string             `json:"crime_type"`
	Notes                string             `json:"notes"`
	Evidence             []EvidenceInput    `json:"evidence"`
}

type CreatedEvidence struct {
	ID             uint64 `json:"id"`
	EvidenceNumber string `json:"evidence_number"`
}

type CreateWithEvidenceResult struct {
	CaseID     uint64            `json:"case_id"`
	CaseNumber string            `json:"case_number"`
	Evidence   []CreatedEvidence `json:"evidence"`
}

type ListInput struct {
	Search             string
	StatusID           uint64
	UnitID             uint64
	ProsecutorOfficeID uint64
	IncludeInactive    bool
	Page               int
	PageSize           int
}

type ListResult struct {
	Items      []caserecord.Case `json:"items"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}
