// file: internals/features/evaluation/model/evaluation_format_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EvaluationScope string

const (
	ScopeSchool   EvaluationScope = "school"
	ScopeDistrict EvaluationScope = "district"
)

// EvaluationCriterion is one row of the judging rubric.
type EvaluationCriterion struct {
	Label    string `json:"label"`
	MaxMarks int    `json:"maxMarks"`
}

// EvaluationFormatModel stores the judging rubric for one event; one row per
// (scope, event). Criteria and judges live as JSON so admins can reshape the
// rubric without migrations. TotalMarks is recomputed on every upsert.
type EvaluationFormatModel struct {
	EvaluationFormatID      uuid.UUID       `gorm:"type:uuid;primaryKey;column:evaluation_format_id"                                   json:"evaluation_format_id"`
	EvaluationFormatScope   EvaluationScope `gorm:"type:varchar(12);not null;uniqueIndex:uq_eval_scope_event;column:evaluation_format_scope" json:"evaluation_format_scope"`
	EvaluationFormatEventID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_eval_scope_event;column:evaluation_format_event_id"     json:"evaluation_format_event_id"`

	EvaluationFormatCriteria   datatypes.JSON `gorm:"column:evaluation_format_criteria"              json:"evaluation_format_criteria"`
	EvaluationFormatTotalMarks int            `gorm:"not null;default:0;column:evaluation_format_total_marks" json:"evaluation_format_total_marks"`
	EvaluationFormatJudges     datatypes.JSON `gorm:"column:evaluation_format_judges"                json:"evaluation_format_judges"`

	EvaluationFormatCoordinator1 *string `gorm:"type:varchar(120);column:evaluation_format_coordinator1" json:"evaluation_format_coordinator1,omitempty"`
	EvaluationFormatCoordinator2 *string `gorm:"type:varchar(120);column:evaluation_format_coordinator2" json:"evaluation_format_coordinator2,omitempty"`

	EvaluationFormatUpdatedBy *uuid.UUID `gorm:"type:uuid;column:evaluation_format_updated_by"      json:"evaluation_format_updated_by,omitempty"`
	EvaluationFormatCreatedAt time.Time  `gorm:"autoCreateTime;column:evaluation_format_created_at" json:"evaluation_format_created_at"`
	EvaluationFormatUpdatedAt time.Time  `gorm:"autoUpdateTime;column:evaluation_format_updated_at" json:"evaluation_format_updated_at"`
}

func (EvaluationFormatModel) TableName() string { return "evaluation_formats" }

func (m *EvaluationFormatModel) BeforeCreate(tx *gorm.DB) error {
	if m.EvaluationFormatID == uuid.Nil {
		m.EvaluationFormatID = uuid.New()
	}
	return nil
}
