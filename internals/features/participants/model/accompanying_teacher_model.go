// file: internals/features/participants/model/accompanying_teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccompanyingTeacherModel is an adult accompanying a school's contingent.
// Member is a free-text label ("Teacher", "Guru", "Sevadal", ...); the
// reporting layer buckets the raw labels as-is.
type AccompanyingTeacherModel struct {
	AccompanyingTeacherID     uuid.UUID `gorm:"type:uuid;primaryKey;column:accompanying_teacher_id"          json:"accompanying_teacher_id"`
	AccompanyingTeacherName   string    `gorm:"type:varchar(120);not null;column:accompanying_teacher_name"  json:"accompanying_teacher_name"`
	AccompanyingTeacherEmail  *string   `gorm:"type:varchar(160);column:accompanying_teacher_email"          json:"accompanying_teacher_email,omitempty"`
	AccompanyingTeacherMobile *string   `gorm:"type:varchar(20);column:accompanying_teacher_mobile"          json:"accompanying_teacher_mobile,omitempty"`
	AccompanyingTeacherMember string    `gorm:"type:varchar(80);not null;column:accompanying_teacher_member" json:"accompanying_teacher_member"`
	AccompanyingTeacherGender string    `gorm:"type:varchar(12);not null;column:accompanying_teacher_gender" json:"accompanying_teacher_gender"`

	AccompanyingTeacherEventID    *uuid.UUID `gorm:"type:uuid;index;column:accompanying_teacher_event_id"             json:"accompanying_teacher_event_id,omitempty"`
	AccompanyingTeacherDistrictID uuid.UUID  `gorm:"type:uuid;not null;index;column:accompanying_teacher_district_id" json:"accompanying_teacher_district_id"`
	AccompanyingTeacherSchoolName string     `gorm:"type:varchar(160);not null;index;column:accompanying_teacher_school_name" json:"accompanying_teacher_school_name"`
	AccompanyingTeacherCreatedBy  *uuid.UUID `gorm:"type:uuid;column:accompanying_teacher_created_by"                 json:"accompanying_teacher_created_by,omitempty"`

	AccompanyingTeacherPresent bool `gorm:"not null;default:false;column:accompanying_teacher_present" json:"accompanying_teacher_present"`
	AccompanyingTeacherFrozen  bool `gorm:"not null;default:false;column:accompanying_teacher_frozen"  json:"accompanying_teacher_frozen"`

	AccompanyingTeacherCreatedAt time.Time `gorm:"autoCreateTime;column:accompanying_teacher_created_at" json:"accompanying_teacher_created_at"`
	AccompanyingTeacherUpdatedAt time.Time `gorm:"autoUpdateTime;column:accompanying_teacher_updated_at" json:"accompanying_teacher_updated_at"`
}

func (AccompanyingTeacherModel) TableName() string { return "accompanying_teachers" }

func (m *AccompanyingTeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.AccompanyingTeacherID == uuid.Nil {
		m.AccompanyingTeacherID = uuid.New()
	}
	return nil
}
