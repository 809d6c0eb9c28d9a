package audit

import (
	"context"
	"errors"
	"testing"

	auditDomain "casetrack-backend/internal/domain/audit"
	evidenceDomain "casetrack-backend/internal/domain/evidence"
	"casetrack-backend/internal/domain/fault"
	"casetrack-backend/internal/testutil/auditmock"
	"casetrack-backend/internal/testutil/evidencemock"
)

func TestRecord_NeverFailsTheCaller(t *testing.T) {
	repo := &auditmock.Repo{
		InsertFn: func(ctx context.Context, e *auditDomain.Entry) error {
			return errors.New("db gone")
		},
	}
	svc := NewService(repo, &evidencemock.Repo{})

	// Record has no error return; reaching the next line is the assertion.
	svc.Record(context.Background(), auditDomain.Entry{
		Action:     auditDomain.ActionCreate,
		EntityType: auditDomain.EntityCase,
	})
}

func TestRecord_ResolvesCaseFromEvidence(t *testing.T) {
	evID := uint64(31)
	items := &evidencemock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*evidenceDomain.Evidence, error) {
			return &evidenceDomain.Evidence{ID: id, CaseID: 5}, nil
		},
	}
	var inserted *auditDomain.Entry
	repo := &auditmock.Repo{
		InsertFn: func(ctx context.Context, e *auditDomain.Entry) error {
			inserted = e
			return nil
		},
	}
	svc := NewService(repo, items)

	svc.Record(context.Background(), auditDomain.Entry{
		Action:     auditDomain.ActionUpdate,
		EntityType: auditDomain.EntityEvidence,
		EvidenceID: &evID,
	})
	if inserted == nil {
		t.Fatalf("nothing inserted")
	}
	if inserted.CaseID != 5 {
		t.Errorf("case id = %d, want 5 resolved from evidence", inserted.CaseID)
	}
}

func TestRecord_KeepsSentinelWhenLookupFails(t *testing.T) {
	evID := uint64(31)
	items := &evidencemock.Repo{
		GetByIDFn: func(ctx context.Context, id uint64) (*evidenceDomain.Evidence, error) {
			return nil, errors.New("gone")
		},
	}
	var inserted *auditDomain.Entry
	repo := &auditmock.Repo{
		InsertFn: func(ctx context.Context, e *auditDomain.Entry) error {
			inserted = e
			return nil
		},
	}
	svc := NewService(repo, items)

	svc.Record(context.Background(), auditDomain.Entry{
		Action:     auditDomain.ActionDelete,
		EntityType: auditDomain.EntityEvidence,
		EvidenceID: &evID,
	})
	if inserted == nil {
		t.Fatalf("nothing inserted")
	}
	if inserted.CaseID != auditDomain.NoCase {
		t.Errorf("case id = %d, want the 0 sentinel", inserted.CaseID)
	}
}

func TestQuery_PaginatesAndDecodesDetails(t *testing.T) {
	raw := auditDomain.EncodeDetails(auditDomain.Details{CaseNumber: "EXP-2026-0005", Reason: "incomplete"})
	repo := &auditmock.Repo{
		QueryFn: func(ctx context.Context, f auditDomain.Filter) ([]auditDomain.Entry, int64, error) {
			if f.Page != 1 || f.PageSize != 10 {
				t.Errorf("defaults not applied: page=%d size=%d", f.Page, f.PageSize)
			}
			return []auditDomain.Entry{
				{ID: 1, Action: auditDomain.ActionReject, DetailsJSON: raw},
			}, 35, nil
		},
	}
	svc := NewService(repo, &evidencemock.Repo{})

	res, err := svc.Query(context.Background(), auditDomain.Filter{})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.TotalPages != 4 {
		t.Errorf("total pages = %d, want 4", res.TotalPages)
	}
	if len(res.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(res.Items))
	}
	d := res.Items[0].Details
	if d.CaseNumber != "EXP-2026-0005" || d.Reason != "incomplete" {
		t.Errorf("details = %+v", d)
	}
}

func TestQuery_MalformedDetailsIsIntegrity(t *testing.T) {
	repo := &auditmock.Repo{
		QueryFn: func(ctx context.Context, f auditDomain.Filter) ([]auditDomain.Entry, int64, error) {
			return []auditDomain.Entry{{ID: 1, DetailsJSON: "{not json"}}, 1, nil
		},
	}
	svc := NewService(repo, &evidencemock.Repo{})

	_, err := svc.Query(context.Background(), auditDomain.Filter{})
	if !errors.Is(err, fault.ErrIntegrity) {
		t.Fatalf("err = %v, want integrity", err)
	}
}

func TestHistoryFor_ReturnsViews(t *testing.T) {
	repo := &auditmock.Repo{
		ByCaseFn: func(ctx context.Context, caseID uint64) ([]auditDomain.Entry, error) {
			return []auditDomain.Entry{
				{ID: 1, Action: auditDomain.ActionCreate, CaseID: caseID},
				{ID: 2, Action: auditDomain.ActionApprove, CaseID: caseID},
			}, nil
		},
	}
	svc := NewService(repo, &evidencemock.Repo{})

	views, err := svc.HistoryFor(context.Background(), 5)
	if err != nil {
		t.Fatalf("HistoryFor: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("views = %d, want 2", len(views))
	}
	if views[0].Action != auditDomain.ActionCreate || views[1].Action != auditDomain.ActionApprove {
		t.Errorf("order changed: %+v", views)
	}
}
