package visibility

import (
	"testing"

	"casetrack-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestScopeAllows(t *testing.T) {
	tests := []struct {
		name  string
		scope Scope
		tech  uint64
		want  bool
	}{
		{"admin sees everything", ScopeFor(user.RoleAdmin, 99, nil), 7, true},
		{"technician sees own", ScopeFor(user.RoleTechnician, 7, nil), 7, true},
		{"technician blocked from others", ScopeFor(user.RoleTechnician, 7, nil), 8, false},
		{"supervisor sees team member", ScopeFor(user.RoleSupervisor, 50, []uint64{7, 8}), 8, true},
		{"supervisor blocked outside team", ScopeFor(user.RoleSupervisor, 50, []uint64{7, 8}), 9, false},
		{"supervisor without team sees nothing", ScopeFor(user.RoleSupervisor, 50, nil), 7, false},
		{"unknown role sees nothing", ScopeFor(user.Role("GUEST"), 7, nil), 7, false},
		{"unrestricted helper", Unrestricted(), 7, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scope.Allows(tt.tech); got != tt.want {
				t.Errorf("Allows(%d) = %v, want %v", tt.tech, got, tt.want)
			}
		})
	}
}

type scopedRow struct {
	ID           uint64 `gorm:"primaryKey"`
	TechnicianID uint64 `gorm:"column:technician_id"`
}

// Apply must select exactly the rows Allows would accept.
func TestScopeApplyMatchesAllows(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&scopedRow{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	techs := []uint64{7, 8, 9}
	for i, tech := range techs {
		if err := db.Create(&scopedRow{ID: uint64(i + 1), TechnicianID: tech}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	scopes := []struct {
		name  string
		scope Scope
	}{
		{"admin", ScopeFor(user.RoleAdmin, 99, nil)},
		{"technician", ScopeFor(user.RoleTechnician, 8, nil)},
		{"supervisor", ScopeFor(user.RoleSupervisor, 50, []uint64{7, 9})},
		{"empty supervisor", ScopeFor(user.RoleSupervisor, 50, nil)},
		{"unknown role", ScopeFor(user.Role("GUEST"), 8, nil)},
	}
	for _, tt := range scopes {
		t.Run(tt.name, func(t *testing.T) {
			var rows []scopedRow
			q := tt.scope.Apply(db.Model(&scopedRow{}), "technician_id")
			if err := q.Find(&rows).Error; err != nil {
				t.Fatalf("query: %v", err)
			}
			got := map[uint64]bool{}
			for _, r := range rows {
				got[r.TechnicianID] = true
			}
			for _, tech := range techs {
				if got[tech] != tt.scope.Allows(tech) {
					t.Errorf("technician %d: query says %v, Allows says %v",
						tech, got[tech], tt.scope.Allows(tech))
				}
			}
		})
	}
}
