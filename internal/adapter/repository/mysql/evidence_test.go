package mysql

import (
	"context"
	"errors"
	"testing"

	evidenceDomain "casetrack-backend/internal/domain/evidence"
	"casetrack-backend/internal/domain/user"
	"casetrack-backend/internal/domain/visibility"

	"gorm.io/gorm"
)

func TestEvidence_CreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	parent := makeCase("EXP-2026-0001", 2)
	if err := NewCaseRepository(db).Create(ctx, parent); err != nil {
		t.Fatalf("create parent case: %v", err)
	}

	in := makeEvidence(parent.ID, "IND-001")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, in.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.EvidenceNumber != "IND-001" || got.CaseID != parent.ID {
		t.Errorf("unexpected row: %+v", got)
	}
	if got.Quantity != 1 {
		t.Errorf("quantity = %d, want 1", got.Quantity)
	}
}

func TestEvidence_NumberUniquePerCaseOnly(t *testing.T) {
	db := openTestDB(t)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeEvidence(1, "IND-001")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Same number under another case is fine.
	if err := repo.Create(ctx, makeEvidence(2, "IND-001")); err != nil {
		t.Fatalf("Create under other case: %v", err)
	}

	// Same number under the same case collides.
	err := repo.Create(ctx, makeEvidence(1, "IND-001"))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want gorm.ErrDuplicatedKey", err)
	}
}

func TestEvidence_NumberInUseScopedToCase(t *testing.T) {
	db := openTestDB(t)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	a := makeEvidence(1, "IND-001")
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("Create: %v", err)
	}

	tests := []struct {
		name      string
		caseID    uint64
		number    string
		excludeID uint64
		want      bool
	}{
		{"taken in case", 1, "IND-001", 0, true},
		{"free in other case", 2, "IND-001", 0, false},
		{"own row excluded", 1, "IND-001", a.ID, false},
		{"free number", 1, "IND-002", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.NumberInUse(ctx, tt.caseID, tt.number, tt.excludeID)
			if err != nil {
				t.Fatalf("NumberInUse: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvidence_SoftDelete(t *testing.T) {
	db := openTestDB(t)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	in := makeEvidence(1, "IND-001")
	if err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SoftDelete(ctx, in.ID, 99); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	if _, err := repo.GetByID(ctx, in.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("deleted row still visible, err = %v", err)
	}
	var raw evidenceDomain.Evidence
	if err := db.Unscoped().Where("id = ?", in.ID).First(&raw).Error; err != nil {
		t.Fatalf("unscoped read: %v", err)
	}
	if raw.DeletedByID == nil || *raw.DeletedByID != 99 {
		t.Errorf("deleted_by_id = %v, want 99", raw.DeletedByID)
	}

	// Deletion frees the number within the case.
	used, err := repo.NumberInUse(ctx, 1, "IND-001", 0)
	if err != nil {
		t.Fatalf("NumberInUse: %v", err)
	}
	if used {
		t.Errorf("soft-deleted evidence still blocks its number")
	}

	// And the index lets a fresh row actually take it.
	if err := repo.Create(ctx, makeEvidence(1, "IND-001")); err != nil {
		t.Fatalf("Create with freed number: %v", err)
	}
}

func TestEvidence_ListFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	a := makeEvidence(1, "IND-001")
	a.StatusID = 1
	a.Description = "Samsung phone"
	b := makeEvidence(1, "IND-002")
	b.StatusID = 2
	c := makeEvidence(2, "IND-001")
	c.StatusID = 2
	for _, e := range []*evidenceDomain.Evidence{a, b, c} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	admin := visibility.Unrestricted()

	tests := []struct {
		name   string
		filter evidenceDomain.ListFilter
		want   int64
	}{
		{"by case", evidenceDomain.ListFilter{CaseID: 1, Scope: admin}, 2},
		{"by status", evidenceDomain.ListFilter{StatusID: 2, Scope: admin}, 2},
		{"case and status", evidenceDomain.ListFilter{CaseID: 1, StatusID: 2, Scope: admin}, 1},
		{"search", evidenceDomain.ListFilter{Search: "samsung", Scope: admin}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := repo.List(ctx, tt.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if total != tt.want {
				t.Errorf("total = %d, want %d", total, tt.want)
			}
		})
	}
}

func TestEvidence_ListScopesThroughParentCase(t *testing.T) {
	db := openTestDB(t)
	caseRepo := NewCaseRepository(db)
	repo := NewEvidenceRepository(db)
	ctx := context.Background()

	mine := makeCase("EXP-2026-0001", 2)
	other := makeCase("EXP-2026-0002", 3)
	if err := caseRepo.Create(ctx, mine); err != nil {
		t.Fatalf("create case: %v", err)
	}
	if err := caseRepo.Create(ctx, other); err != nil {
		t.Fatalf("create case: %v", err)
	}
	if err := repo.Create(ctx, makeEvidence(mine.ID, "IND-001")); err != nil {
		t.Fatalf("create evidence: %v", err)
	}
	if err := repo.Create(ctx, makeEvidence(other.ID, "IND-001")); err != nil {
		t.Fatalf("create evidence: %v", err)
	}

	tech := visibility.ScopeFor(user.RoleTechnician, 2, nil)
	rows, total, err := repo.List(ctx, evidenceDomain.ListFilter{Scope: tech})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("technician sees %d rows, want 1", len(rows))
	}
	if rows[0].CaseID != mine.ID {
		t.Errorf("leaked evidence from case %d", rows[0].CaseID)
	}

	// A soft-deleted parent case hides its evidence from scoped reads.
	if err := caseRepo.SoftDelete(ctx, mine.ID, 99); err != nil {
		t.Fatalf("SoftDelete case: %v", err)
	}
	_, total, err = repo.List(ctx, evidenceDomain.ListFilter{Scope: tech})
	if err != nil {
		t.Fatalf("List after case delete: %v", err)
	}
	if total != 0 {
		t.Errorf("evidence of deleted case still visible, total = %d", total)
	}
}
