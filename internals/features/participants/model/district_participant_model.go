// file: internals/features/participants/model/district_participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DistrictParticipantModel is the district-level counterpart of a participant:
// registered by a district coordinator, not tied to any school.
type DistrictParticipantModel struct {
	DistrictParticipantID        uuid.UUID `gorm:"type:uuid;primaryKey;column:district_participant_id"          json:"district_participant_id"`
	DistrictParticipantName      string    `gorm:"type:varchar(120);not null;column:district_participant_name"  json:"district_participant_name"`
	DistrictParticipantClassName string    `gorm:"type:varchar(40);column:district_participant_class_name"      json:"district_participant_class_name"`
	DistrictParticipantGender    string    `gorm:"type:varchar(12);not null;column:district_participant_gender" json:"district_participant_gender"`

	DistrictParticipantEventID    uuid.UUID  `gorm:"type:uuid;not null;index;column:district_participant_event_id"    json:"district_participant_event_id"`
	DistrictParticipantDistrictID uuid.UUID  `gorm:"type:uuid;not null;index;column:district_participant_district_id" json:"district_participant_district_id"`
	DistrictParticipantCreatedBy  *uuid.UUID `gorm:"type:uuid;column:district_participant_created_by"                 json:"district_participant_created_by,omitempty"`

	DistrictParticipantPresent bool `gorm:"not null;default:false;column:district_participant_present" json:"district_participant_present"`
	DistrictParticipantFrozen  bool `gorm:"not null;default:false;column:district_participant_frozen"  json:"district_participant_frozen"`

	DistrictParticipantMarks       *int       `gorm:"column:district_participant_marks"                  json:"district_participant_marks,omitempty"`
	DistrictParticipantEvaluation  *string    `gorm:"type:text;column:district_participant_evaluation"   json:"district_participant_evaluation,omitempty"`
	DistrictParticipantEvaluatedBy *uuid.UUID `gorm:"type:uuid;column:district_participant_evaluated_by" json:"district_participant_evaluated_by,omitempty"`
	DistrictParticipantEvaluatedAt *time.Time `gorm:"column:district_participant_evaluated_at"           json:"district_participant_evaluated_at,omitempty"`

	DistrictParticipantCreatedAt time.Time `gorm:"autoCreateTime;column:district_participant_created_at" json:"district_participant_created_at"`
	DistrictParticipantUpdatedAt time.Time `gorm:"autoUpdateTime;column:district_participant_updated_at" json:"district_participant_updated_at"`
}

func (DistrictParticipantModel) TableName() string { return "district_participants" }

func (m *DistrictParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.DistrictParticipantID == uuid.Nil {
		m.DistrictParticipantID = uuid.New()
	}
	return nil
}
