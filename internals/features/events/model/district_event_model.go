// file: internals/features/events/model/district_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemKeyCultural marks the seeded "Cultural Programme" row. Rows with a
// non-null system key never appear in listings; district coordinators register
// participants against it directly.
const SystemKeyCultural = "cultural"

type DistrictEventModel struct {
	DistrictEventID          uuid.UUID   `gorm:"type:uuid;primaryKey;column:district_event_id"             json:"district_event_id"`
	DistrictEventTitle       string      `gorm:"type:varchar(160);not null;column:district_event_title"    json:"district_event_title"`
	DistrictEventDescription *string     `gorm:"type:text;column:district_event_description"               json:"district_event_description,omitempty"`
	DistrictEventDate        *time.Time  `gorm:"type:date;column:district_event_date"                      json:"district_event_date,omitempty"`
	DistrictEventVenue       *string     `gorm:"type:varchar(200);column:district_event_venue"             json:"district_event_venue,omitempty"`
	DistrictEventGender      EventGender `gorm:"type:varchar(8);not null;default:'both';column:district_event_gender" json:"district_event_gender"`

	DistrictEventSystemKey *string `gorm:"type:varchar(32);uniqueIndex;column:district_event_system_key" json:"-"`

	DistrictEventCreatedBy *uuid.UUID `gorm:"type:uuid;column:district_event_created_by"      json:"district_event_created_by,omitempty"`
	DistrictEventCreatedAt time.Time  `gorm:"autoCreateTime;column:district_event_created_at" json:"district_event_created_at"`
	DistrictEventUpdatedAt time.Time  `gorm:"autoUpdateTime;column:district_event_updated_at" json:"district_event_updated_at"`
}

func (DistrictEventModel) TableName() string { return "district_events" }

func (m *DistrictEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.DistrictEventID == uuid.Nil {
		m.DistrictEventID = uuid.New()
	}
	return nil
}

// IsSystem reports whether the row is a seeded singleton hidden from listings.
func (m *DistrictEventModel) IsSystem() bool {
	return m.DistrictEventSystemKey != nil && *m.DistrictEventSystemKey != ""
}
