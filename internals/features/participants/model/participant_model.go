// file: internals/features/participants/model/participant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParticipantModel is a school-scope event registration. Once frozen, the row
// only accepts updates that touch nothing but the frozen flag itself.
type ParticipantModel struct {
	ParticipantID        uuid.UUID `gorm:"type:uuid;primaryKey;column:participant_id"              json:"participant_id"`
	ParticipantName      string    `gorm:"type:varchar(120);not null;column:participant_name"      json:"participant_name"`
	ParticipantClassName string    `gorm:"type:varchar(40);column:participant_class_name"          json:"participant_class_name"`
	ParticipantGender    string    `gorm:"type:varchar(12);not null;column:participant_gender"     json:"participant_gender"`
	ParticipantGroupName *string   `gorm:"type:varchar(120);column:participant_group_name"         json:"participant_group_name,omitempty"`

	ParticipantEventID    uuid.UUID  `gorm:"type:uuid;not null;index;column:participant_event_id"   json:"participant_event_id"`
	ParticipantDistrictID uuid.UUID  `gorm:"type:uuid;not null;index;column:participant_district_id" json:"participant_district_id"`
	ParticipantSchoolName string     `gorm:"type:varchar(160);not null;index;column:participant_school_name" json:"participant_school_name"`
	ParticipantTeacherID  *uuid.UUID `gorm:"type:uuid;column:participant_teacher_id"                json:"participant_teacher_id,omitempty"`
	ParticipantCreatedBy  *uuid.UUID `gorm:"type:uuid;column:participant_created_by"                json:"participant_created_by,omitempty"`

	ParticipantPresent bool `gorm:"not null;default:false;column:participant_present" json:"participant_present"`
	ParticipantFrozen  bool `gorm:"not null;default:false;column:participant_frozen"  json:"participant_frozen"`

	// Scoring fields, written only by the event coordinator flow.
	ParticipantMarks       *int       `gorm:"column:participant_marks"                          json:"participant_marks,omitempty"`
	ParticipantEvaluation  *string    `gorm:"type:text;column:participant_evaluation"           json:"participant_evaluation,omitempty"`
	ParticipantEvaluatedBy *uuid.UUID `gorm:"type:uuid;column:participant_evaluated_by"         json:"participant_evaluated_by,omitempty"`
	ParticipantEvaluatedAt *time.Time `gorm:"column:participant_evaluated_at"                   json:"participant_evaluated_at,omitempty"`

	ParticipantCreatedAt time.Time `gorm:"autoCreateTime;column:participant_created_at" json:"participant_created_at"`
	ParticipantUpdatedAt time.Time `gorm:"autoUpdateTime;column:participant_updated_at" json:"participant_updated_at"`
}

func (ParticipantModel) TableName() string { return "participants" }

func (m *ParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ParticipantID == uuid.Nil {
		m.ParticipantID = uuid.New()
	}
	return nil
}
