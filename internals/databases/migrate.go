package database

import (
	"log"

	"gorm.io/gorm"

	accountModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
	announcementModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/announcements/model"
	contactModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/contact/model"
	evaluationModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/model"
	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
)

// Migrate creates/patches all tables, then creates the case-insensitive
// unique title indexes (LOWER(...) cannot be expressed via tags). The
// advisory guards cover the friendly-error path; these indexes close the
// race between two concurrent creates.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&regionModel.DistrictModel{},
		&regionModel.SchoolModel{},
		&regionModel.SchoolRoleModel{},

		&accountModel.AdminModel{},
		&accountModel.ITAdminModel{},
		&accountModel.EventCoordinatorModel{},
		&accountModel.DistrictCoordinatorModel{},
		&accountModel.SchoolUserModel{},

		&eventModel.EventModel{},
		&eventModel.DistrictEventModel{},
		&eventModel.OtherEventModel{},

		&participantModel.ParticipantModel{},
		&participantModel.DistrictParticipantModel{},
		&participantModel.AccompanyingTeacherModel{},
		&participantModel.DistrictAccompanyingTeacherModel{},

		&evaluationModel.EvaluationFormatModel{},
		&announcementModel.AnnouncementModel{},
		&contactModel.ContactMessageModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	indexes := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_events_title_audience ON events (LOWER(event_title), event_audience)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_district_events_title ON district_events (LOWER(district_event_title))`,
		`CREATE UNIQUE INDEX IF NOT EXISTS ux_other_events_title ON other_events (LOWER(other_event_title))`,
	}
	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			log.Fatalf("❌ Index creation failed: %v", err)
		}
	}

	log.Println("✅ Migration done.")
}
