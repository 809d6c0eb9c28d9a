package mysql

import (
	"testing"
	"time"

	assignmentDomain "casetrack-backend/internal/domain/assignment"
	auditDomain "casetrack-backend/internal/domain/audit"
	caseDomain "casetrack-backend/internal/domain/caserecord"
	evidenceDomain "casetrack-backend/internal/domain/evidence"
	userDomain "casetrack-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB and migrates the domain schema.
// The domain models carry no engine-specific tags, so they migrate on sqlite
// as-is. TranslateError is on so unique-constraint failures surface as
// gorm.ErrDuplicatedKey like they do against MySQL.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&userDomain.User{},
		&caseDomain.Status{},
		&caseDomain.ProsecutorOffice{},
		&caseDomain.ForensicUnit{},
		&caseDomain.Case{},
		&evidenceDomain.Status{},
		&evidenceDomain.Evidence{},
		&assignmentDomain.Assignment{},
		&auditDomain.Entry{},
	)
	if err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeCase(number string, technicianID uint64) *caseDomain.Case {
	return &caseDomain.Case{
		CaseNumber:           number,
		ExternalCaseRef:      "FGE/2026/" + number,
		RegisteredByID:       1,
		AssignedTechnicianID: technicianID,
		ProsecutorOfficeID:   1,
		UnitID:               1,
		StatusID:             1,
		Urgency:              caseDomain.UrgencyOrdinary,
		CrimeType:            "fraud",
		CaseDescription:      "seized workstation",
	}
}

func makeEvidence(caseID uint64, number string) *evidenceDomain.Evidence {
	return &evidenceDomain.Evidence{
		CaseID:           caseID,
		EvidenceNumber:   number,
		Description:      "laptop",
		ObjectType:       "computer",
		TechnicianID:     2,
		RegistrationDate: time.Now().UTC(),
		StatusID:         1,
		Quantity:         1,
	}
}
