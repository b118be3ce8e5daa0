// file: internals/features/events/model/other_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OtherEventModel covers non-competition happenings (orientation days, parent
// meets). The for_* flags pick which audiences see it.
type OtherEventModel struct {
	OtherEventID          uuid.UUID  `gorm:"type:uuid;primaryKey;column:other_event_id"                       json:"other_event_id"`
	OtherEventTitle       string     `gorm:"type:varchar(160);not null;uniqueIndex;column:other_event_title"  json:"other_event_title"`
	OtherEventDescription *string    `gorm:"type:text;column:other_event_description"                         json:"other_event_description,omitempty"`
	OtherEventDate        *time.Time `gorm:"type:date;column:other_event_date"                                json:"other_event_date,omitempty"`
	OtherEventVenue       *string    `gorm:"type:varchar(200);column:other_event_venue"                       json:"other_event_venue,omitempty"`

	OtherEventForSchool   bool `gorm:"not null;default:false;column:other_event_for_school"   json:"other_event_for_school"`
	OtherEventForDistrict bool `gorm:"not null;default:false;column:other_event_for_district" json:"other_event_for_district"`
	OtherEventForParents  bool `gorm:"not null;default:false;column:other_event_for_parents"  json:"other_event_for_parents"`

	OtherEventCreatedBy *uuid.UUID `gorm:"type:uuid;column:other_event_created_by"      json:"other_event_created_by,omitempty"`
	OtherEventCreatedAt time.Time  `gorm:"autoCreateTime;column:other_event_created_at" json:"other_event_created_at"`
	OtherEventUpdatedAt time.Time  `gorm:"autoUpdateTime;column:other_event_updated_at" json:"other_event_updated_at"`
}

func (OtherEventModel) TableName() string { return "other_events" }

func (m *OtherEventModel) BeforeCreate(tx *gorm.DB) error {
	if m.OtherEventID == uuid.Nil {
		m.OtherEventID = uuid.New()
	}
	return nil
}
