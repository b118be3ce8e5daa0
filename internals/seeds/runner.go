// file: internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
)

// Run creates the bootstrap rows the application expects. Safe to call on
// every startup: existing rows are left untouched.
func Run(db *gorm.DB) {
	ensureCulturalProgramme(db)
}

// The Cultural Programme is a district event every district reports into. It
// never shows up in the regular listings and cannot be edited or deleted; the
// system key is how the rest of the code finds it.
func ensureCulturalProgramme(db *gorm.DB) {
	key := eventModel.SystemKeyCultural

	var existing eventModel.DistrictEventModel
	err := db.First(&existing, "district_event_system_key = ?", key).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[ERROR] seed lookup cultural programme: %v", err)
		return
	}

	desc := "District-level cultural programme"
	row := eventModel.DistrictEventModel{
		DistrictEventTitle:       "Cultural Programme",
		DistrictEventDescription: &desc,
		DistrictEventSystemKey:   &key,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[ERROR] seed cultural programme: %v", err)
		return
	}
	log.Printf("[INFO] seeded cultural programme event %s", row.DistrictEventID)
}
