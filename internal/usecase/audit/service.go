package audit

import (
	"context"
	"log"
	"math"

	auditDomain "casetrack-backend/internal/domain/audit"
	evidenceDomain "casetrack-backend/internal/domain/evidence"
)

// Service is the audit trail: an append-only recorder plus the read side
// used by the history endpoints.
type Service struct {
	entries  auditDomain.Repository
	evidence evidenceDomain.Repository
}

func NewService(entries auditDomain.Repository, evidence evidenceDomain.Repository) *Service {
	return &Service{entries: entries, evidence: evidence}
}

// Record appends one entry per logical action. It never fails the caller:
// a write error is logged and swallowed. An entry that carries an
// evidence id but no case id gets the case resolved from the evidence
// row; if that lookup fails too, the 0 sentinel stays.
func (s *Service) Record(ctx context.Context, e auditDomain.Entry) {
	if e.CaseID == auditDomain.NoCase && e.EvidenceID != nil {
		if ev, err := s.evidence.GetByID(ctx, *e.EvidenceID); err == nil {
			e.CaseID = ev.CaseID
		}
	}
	if err := s.entries.Insert(ctx, &e); err != nil {
		log.Printf("audit: record %s %s/%d failed: %v", e.Action, e.EntityType, e.EntityID, err)
		return
	}
	log.Printf("audit: %s %s/%d by user %d (case %d)", e.Action, e.EntityType, e.EntityID, e.UserID, e.CaseID)
}

type EntryView struct {
	auditDomain.Entry
	Details auditDomain.Details `json:"details"`
}

type QueryResult struct {
	Items      []EntryView `json:"items"`
	Total      int64       `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func (s *Service) Query(ctx context.Context, f auditDomain.Filter) (*QueryResult, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PageSize < 1 {
		f.PageSize = 10
	}
	entries, total, err := s.entries.Query(ctx, f)
	if err != nil {
		return nil, err
	}
	items, err := toViews(entries)
	if err != nil {
		return nil, err
	}
	return &QueryResult{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: int(math.Ceil(float64(total) / float64(f.PageSize))),
	}, nil
}

// HistoryFor returns the full trail for one case, oldest first.
func (s *Service) HistoryFor(ctx context.Context, caseID uint64) ([]EntryView, error) {
	entries, err := s.entries.ByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return toViews(entries)
}

func toViews(entries []auditDomain.Entry) ([]EntryView, error) {
	out := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		d, err := auditDomain.DecodeDetails(e.DetailsJSON)
		if err != nil {
			return nil, err
		}
		out = append(out, EntryView{Entry: e, Details: d})
	}
	return out, nil
}
