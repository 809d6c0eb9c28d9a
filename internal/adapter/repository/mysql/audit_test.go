package mysql

import (
	"context"
	"testing"
	"time"

	auditDomain "casetrack-backend/internal/domain/audit"
)

func makeEntry(userID uint64, action auditDomain.Action, caseID uint64) *auditDomain.Entry {
	return &auditDomain.Entry{
		UserID:      userID,
		Action:      action,
		EntityType:  auditDomain.EntityCase,
		EntityID:    caseID,
		CaseID:      caseID,
		Description: "test entry",
		IPAddress:   "10.0.0.1",
		RequestID:   "req-1",
	}
}

func TestAudit_InsertAndQueryFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	entries := []*auditDomain.Entry{
		makeEntry(1, auditDomain.ActionCreate, 10),
		makeEntry(1, auditDomain.ActionUpdate, 10),
		makeEntry(2, auditDomain.ActionCreate, 20),
		makeEntry(2, auditDomain.ActionReject, 20),
	}
	for _, e := range entries {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	tests := []struct {
		name   string
		filter auditDomain.Filter
		want   int64
	}{
		{"by user", auditDomain.Filter{UserID: 1}, 2},
		{"by case", auditDomain.Filter{CaseID: 20}, 2},
		{"by action", auditDomain.Filter{Action: auditDomain.ActionCreate}, 2},
		{"by entity type", auditDomain.Filter{EntityType: auditDomain.EntityCase}, 4},
		{"user and action", auditDomain.Filter{UserID: 2, Action: auditDomain.ActionReject}, 1},
		{"no match", auditDomain.Filter{UserID: 7}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := repo.Query(ctx, tt.filter)
			if err != nil {
				t.Fatalf("Query: %v", err)
			}
			if total != tt.want {
				t.Errorf("total = %d, want %d", total, tt.want)
			}
		})
	}
}

func TestAudit_QueryTimeWindow(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	old := makeEntry(1, auditDomain.ActionCreate, 10)
	old.CreatedAt = time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	recent := makeEntry(1, auditDomain.ActionUpdate, 10)
	recent.CreatedAt = time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC)
	for _, e := range []*auditDomain.Entry{old, recent} {
		if err := repo.Insert(ctx, e); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	rows, total, err := repo.Query(ctx, auditDomain.Filter{From: &from})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if total != 1 {
		t.Fatalf("total = %d, want 1", total)
	}
	if rows[0].Action != auditDomain.ActionUpdate {
		t.Errorf("got %s, want the recent entry", rows[0].Action)
	}

	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	_, total, err = repo.Query(ctx, auditDomain.Filter{To: &to})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if total != 1 {
		t.Errorf("total = %d, want 1 before the cutoff", total)
	}
}

func TestAudit_QueryPagination(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if err := repo.Insert(ctx, makeEntry(1, auditDomain.ActionCreate, 10)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	rows, total, err := repo.Query(ctx, auditDomain.Filter{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if total != 25 {
		t.Errorf("total = %d, want 25", total)
	}
	if len(rows) != 5 {
		t.Errorf("page 3 rows = %d, want 5", len(rows))
	}

	// Defaults: page 1, size 10.
	rows, _, err = repo.Query(ctx, auditDomain.Filter{})
	if err != nil {
		t.Fatalf("Query defaults: %v", err)
	}
	if len(rows) != 10 {
		t.Errorf("default page rows = %d, want 10", len(rows))
	}
}

func TestAudit_ByCaseOldestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	actions := []auditDomain.Action{
		auditDomain.ActionCreate,
		auditDomain.ActionUpdate,
		auditDomain.ActionApprove,
	}
	for _, a := range actions {
		if err := repo.Insert(ctx, makeEntry(1, a, 10)); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if err := repo.Insert(ctx, makeEntry(1, auditDomain.ActionDelete, 20)); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	rows, err := repo.ByCase(ctx, 10)
	if err != nil {
		t.Fatalf("ByCase: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i, a := range actions {
		if rows[i].Action != a {
			t.Errorf("rows[%d] = %s, want %s", i, rows[i].Action, a)
		}
	}
}
