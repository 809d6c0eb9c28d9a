package db

import (
	"gorm.io/gorm"

	"casetrack-backend/internal/domain/assignment"
	"casetrack-backend/internal/domain/audit"
	"casetrack-backend/internal/domain/caserecord"
	"casetrack-backend/internal/domain/evidence"
	"casetrack-backend/internal/domain/user"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.User{},
		&caserecord.Status{},
		&caserecord.ProsecutorOffice{},
		&caserecord.ForensicUnit{},
		&caserecord.Case{},
		&evidence.Status{},
		&evidence.Evidence{},
		&assignment.Assignment{},
		&audit.Entry{},
	)
}

// SeedStatuses inserts the workflow statuses if missing. Existing rows
// are left untouched so color/order edits survive restarts.
func SeedStatuses(db *gorm.DB) error {
	caseStatuses := []caserecord.Status{
		{Name: caserecord.StatusPendingReview, DisplayOrder: 1, Color: "#f0ad4e"},
		{Name: caserecord.StatusApproved, DisplayOrder: 2, Color: "#5cb85c"},
		{Name: caserecord.StatusRejected, DisplayOrder: 3, Color: "#d9534f"},
	}
	for _, st := range caseStatuses {
		var count int64
		if err := db.Model(&caserecord.Status{}).Where("name = ?", st.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&st).Error; err != nil {
				return err
			}
		}
	}

	evidenceStatuses := []evidence.Status{
		{Name: evidence.StatusPending, DisplayOrder: 1, Color: "#f0ad4e"},
		{Name: evidence.StatusApproved, DisplayOrder: 2, Color: "#5cb85c"},
		{Name: evidence.StatusRejected, DisplayOrder: 3, Color: "#d9534f"},
	}
	for _, st := range evidenceStatuses {
		var count int64
		if err := db.Model(&evidence.Status{}).Where("name = ?", st.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&st).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
