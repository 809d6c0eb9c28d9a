package audit

import (
	"context"
	"encoding/json"
	"time"

	"casetrack-backend/internal/domain/fault"
)

type Action string

const (
	ActionCreate  Action = "CREATE"
	ActionUpdate  Action = "UPDATE"
	ActionDelete  Action = "DELETE"
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
	ActionLogin   Action = "LOGIN"
)

type EntityType string

const (
	EntityCase       EntityType = "CASE"
	EntityEvidence   EntityType = "EVIDENCE"
	EntityUser       EntityType = "USER"
	EntityAssignment EntityType = "ASSIGNMENT"
	EntityAuth       EntityType = "AUTH"
)

// CaseID 0 marks entries with no case association (e.g. logins).
const NoCase uint64 = 0

type Entry struct {
	ID          uint64     `gorm:"primaryKey;column:id" json:"id"`
	UserID      uint64     `gorm:"column:user_id;index" json:"user_id"`
	Action      Action     `gorm:"size:32;column:action;index" json:"action"`
	EntityType  EntityType `gorm:"size:32;column:entity_type" json:"entity_type"`
	EntityID    uint64     `gorm:"column:entity_id" json:"entity_id"`
	CaseID      uint64     `gorm:"column:case_id;index" json:"case_id"`
	EvidenceID  *uint64    `gorm:"column:evidence_id" json:"evidence_id"`
	Description string     `gorm:"size:512;column:description" json:"description"`
	IPAddress   string     `gorm:"size:64;column:ip_address" json:"ip_address"`
	RequestID   string     `gorm:"size:64;column:request_id" json:"request_id"`
	DetailsJSON string     `gorm:"type:text;column:details_json" json:"-"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Entry) TableName() string { return "audit_entries" }

// FieldDiff records the before/after values the audit trail keeps for
// updates. Only a handful of fields are diffed per entity.
type FieldDiff struct {
	Before map[string]string `json:"before,omitempty"`
	After  map[string]string `json:"after,omitempty"`
}

type Details struct {
	CaseNumber     string     `json:"case_number,omitempty"`
	ExternalRef    string     `json:"external_ref,omitempty"`
	EvidenceNumber string     `json:"evidence_number,omitempty"`
	Description    string     `json:"description,omitempty"`
	Reason         string     `json:"reason,omitempty"`
	NotifiedEmail  string     `json:"notified_email,omitempty"`
	Urgency        string     `json:"urgency,omitempty"`
	CrimeType      string     `json:"crime_type,omitempty"`
	EvidenceCount  int        `json:"evidence_count,omitempty"`
	Quantity       int        `json:"quantity,omitempty"`
	Email          string     `json:"email,omitempty"`
	Diff           *FieldDiff `json:"diff,omitempty"`
}

func EncodeDetails(d Details) string {
	b, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return string(b)
}

// DecodeDetails parses the stored blob. The store serializes structured
// data as text; a malformed blob is an integrity failure, not an empty
// result.
func DecodeDetails(raw string) (Details, error) {
	var d Details
	if raw == "" {
		return d, nil
	}
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return Details{}, fault.Integrity("malformed audit details: %v", err)
	}
	return d, nil
}

type Filter struct {
	UserID     uint64
	CaseID     uint64
	Action     Action
	EntityType EntityType
	From       *time.Time
	To         *time.Time
	Page       int
	PageSize   int
}

type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	Query(ctx context.Context, f Filter) ([]Entry, int64, error)
	// ByCase returns the full history for one case, oldest first.
	ByCase(ctx context.Context, caseID uint64) ([]Entry, error)
}

// Recorder is the write-side contract consumed by every mutating
// operation. Record must never fail its caller.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}
