// file: internals/features/events/model/event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventGender string

const (
	GenderBoy  EventGender = "boy"
	GenderGirl EventGender = "girl"
	GenderBoth EventGender = "both"
)

type EventAudience string

const (
	AudienceJunior EventAudience = "junior"
	AudienceSenior EventAudience = "senior"
	AudienceBoth   EventAudience = "both"
)

// EventModel is a school-scope competition event. Title uniqueness is
// case-insensitive per audience; the service guard plus a LOWER() unique
// index enforce it.
type EventModel struct {
	EventID          uuid.UUID     `gorm:"type:uuid;primaryKey;column:event_id"                  json:"event_id"`
	EventTitle       string        `gorm:"type:varchar(160);not null;column:event_title"         json:"event_title"`
	EventDescription *string       `gorm:"type:text;column:event_description"                    json:"event_description,omitempty"`
	EventDate        *time.Time    `gorm:"type:date;column:event_date"                           json:"event_date,omitempty"`
	EventVenue       *string       `gorm:"type:varchar(200);column:event_venue"                  json:"event_venue,omitempty"`
	EventGender      EventGender   `gorm:"type:varchar(8);not null;default:'both';column:event_gender"     json:"event_gender"`
	EventAudience    EventAudience `gorm:"type:varchar(8);not null;default:'both';column:event_audience"   json:"event_audience"`

	// Group events register teams instead of individuals.
	EventIsGroup          bool `gorm:"not null;default:false;column:event_is_group"           json:"event_is_group"`
	EventParticipantCount int  `gorm:"not null;default:1;column:event_participant_count"      json:"event_participant_count"`

	EventCreatedBy *uuid.UUID `gorm:"type:uuid;column:event_created_by"       json:"event_created_by,omitempty"`
	EventCreatedAt time.Time  `gorm:"autoCreateTime;column:event_created_at"  json:"event_created_at"`
	EventUpdatedAt time.Time  `gorm:"autoUpdateTime;column:event_updated_at"  json:"event_updated_at"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
