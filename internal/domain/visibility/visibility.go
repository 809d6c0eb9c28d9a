// Package visibility computes which case/evidence rows a caller may see.
// The scope is pure data: it can be evaluated in application code
// (Allows) or pushed into a query (Apply), and both paths must agree.
package visibility

import (
	"casetrack-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Scope struct {
	unrestricted  bool
	technicianIDs []uint64
}

// ScopeFor builds the scope for a caller. Supervisors pass the technician
// ids currently assigned to them; other roles ignore the slice. Unknown
// roles yield a scope that matches no rows.
func ScopeFor(role user.Role, userID uint64, technicianIDs []uint64) Scope {
	switch role {
	case user.RoleAdmin:
		return Scope{unrestricted: true}
	case user.RoleSupervisor:
		return Scope{technicianIDs: technicianIDs}
	case user.RoleTechnician:
		return Scope{technicianIDs: []uint64{userID}}
	default:
		return Scope{}
	}
}

// Unrestricted is the scope for system-internal reads that skip the
// role filter on purpose.
func Unrestricted() Scope { return Scope{unrestricted: true} }

func (s Scope) IsUnrestricted() bool { return s.unrestricted }

// Allows is the application-side predicate: may the caller see a row
// assigned to the given technician?
func (s Scope) Allows(assignedTechnicianID uint64) bool {
	if s.unrestricted {
		return true
	}
	for _, id := range s.technicianIDs {
		if id == assignedTechnicianID {
			return true
		}
	}
	return false
}

// Apply is the query-side equivalent of Allows over the given column.
// An empty restricted scope matches nothing (fail-closed).
func (s Scope) Apply(db *gorm.DB, column string) *gorm.DB {
	if s.unrestricted {
		return db
	}
	if len(s.technicianIDs) == 0 {
		return db.Where("1 = 0")
	}
	return db.Where(column+" IN ?", s.technicianIDs)
}
