// file: internals/features/participants/model/district_accompanying_teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistrictAccompanyingTeacherModel struct {
	DistrictAccompanyingTeacherID     uuid.UUID `gorm:"type:uuid;primaryKey;column:district_accompanying_teacher_id"          json:"district_accompanying_teacher_id"`
	DistrictAccompanyingTeacherName   string    `gorm:"type:varchar(120);not null;column:district_accompanying_teacher_name"  json:"district_accompanying_teacher_name"`
	DistrictAccompanyingTeacherEmail  *string   `gorm:"type:varchar(160);column:district_accompanying_teacher_email"          json:"district_accompanying_teacher_email,omitempty"`
	DistrictAccompanyingTeacherMobile *string   `gorm:"type:varchar(20);column:district_accompanying_teacher_mobile"          json:"district_accompanying_teacher_mobile,omitempty"`
	DistrictAccompanyingTeacherMember string    `gorm:"type:varchar(80);not null;column:district_accompanying_teacher_member" json:"district_accompanying_teacher_member"`
	DistrictAccompanyingTeacherGender string    `gorm:"type:varchar(12);not null;column:district_accompanying_teacher_gender" json:"district_accompanying_teacher_gender"`

	DistrictAccompanyingTeacherEventID    *uuid.UUID `gorm:"type:uuid;index;column:district_accompanying_teacher_event_id"             json:"district_accompanying_teacher_event_id,omitempty"`
	DistrictAccompanyingTeacherDistrictID uuid.UUID  `gorm:"type:uuid;not null;index;column:district_accompanying_teacher_district_id" json:"district_accompanying_teacher_district_id"`
	DistrictAccompanyingTeacherCreatedBy  *uuid.UUID `gorm:"type:uuid;column:district_accompanying_teacher_created_by"                 json:"district_accompanying_teacher_created_by,omitempty"`

	DistrictAccompanyingTeacherPresent bool `gorm:"not null;default:false;column:district_accompanying_teacher_present" json:"district_accompanying_teacher_present"`
	DistrictAccompanyingTeacherFrozen  bool `gorm:"not null;default:false;column:district_accompanying_teacher_frozen"  json:"district_accompanying_teacher_frozen"`

	DistrictAccompanyingTeacherCreatedAt time.Time `gorm:"autoCreateTime;column:district_accompanying_teacher_created_at" json:"district_accompanying_teacher_created_at"`
	DistrictAccompanyingTeacherUpdatedAt time.Time `gorm:"autoUpdateTime;column:district_accompanying_teacher_updated_at" json:"district_accompanying_teacher_updated_at"`
}

func (DistrictAccompanyingTeacherModel) TableName() string { return "district_accompanying_teachers" }

func (m *DistrictAccompanyingTeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.DistrictAccompanyingTeacherID == uuid.Nil {
		m.DistrictAccompanyingTeacherID = uuid.New()
	}
	return nil
}
