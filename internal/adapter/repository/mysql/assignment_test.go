package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestAssignment_UpsertReplacesSupervisor(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, 10, 2); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	// Reassigning the technician overwrites, never duplicates.
	if err := repo.Upsert(ctx, 20, 2); err != nil {
		t.Fatalf("Upsert reassign: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("rows = %d, want 1", len(all))
	}
	if all[0].SupervisorID != 20 || all[0].TechnicianID != 2 {
		t.Errorf("unexpected row: %+v", all[0])
	}
}

func TestAssignment_TechniciansFor(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	for _, tech := range []uint64{2, 3} {
		if err := repo.Upsert(ctx, 10, tech); err != nil {
			t.Fatalf("Upsert: %v", err)
		}
	}
	if err := repo.Upsert(ctx, 20, 4); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	ids, err := repo.TechniciansFor(ctx, 10)
	if err != nil {
		t.Fatalf("TechniciansFor: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("ids = %v, want [2 3]", ids)
	}
	seen := map[uint64]bool{}
	for _, id := range ids {
		seen[id] = true
	}
	if !seen[2] || !seen[3] {
		t.Errorf("ids = %v, want 2 and 3", ids)
	}

	// Supervisor with no team gets an empty slice, not an error.
	ids, err = repo.TechniciansFor(ctx, 30)
	if err != nil {
		t.Fatalf("TechniciansFor empty: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("ids = %v, want none", ids)
	}
}

func TestAssignment_Remove(t *testing.T) {
	db := openTestDB(t)
	repo := NewAssignmentRepository(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, 10, 2); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Remove(ctx, 2); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("rows = %d after remove, want 0", len(all))
	}

	// Removing an unassigned technician reports not-found.
	if err := repo.Remove(ctx, 7); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Remove missing: err = %v, want gorm.ErrRecordNotFound", err)
	}
}
