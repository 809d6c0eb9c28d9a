package evidence

import "casetrack-backend/internal/domain/evidence"

// RegisterInput describes a new item. TechnicianID is the registering
// technician; zero means the case's assigned technician.
type RegisterInput struct {
	CaseID            uint64   `json:"case_id"`
	TechnicianID      uint64   `json:"technician_id"`
	EvidenceNumber    string   `json:"evidence_number"`
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

// UpdateInput replaces every provided field; the parent case and the
// registering technician are immutable once recorded.
type UpdateInput struct {
	EvidenceNumber    string   `json:"evidence_number"`
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

type ListInput struct {
	CaseID          uint64
	StatusID        uint64
	Search          string
	IncludeInactive bool
	Page            int
	PageSize        int
}

type ListResult struct {
	Items      []evidence.Evidence `json:"items"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
}
