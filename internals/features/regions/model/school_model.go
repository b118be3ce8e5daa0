// file: internals/features/regions/model/school_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolModel rows start unapproved; an admin flips school_is_approved before
// the school's users may log in.
type SchoolModel struct {
	SchoolID         uuid.UUID `gorm:"type:uuid;primaryKey;column:school_id"                                        json:"school_id"`
	SchoolName       string    `gorm:"type:varchar(160);not null;uniqueIndex:uq_school_name_district;column:school_name" json:"school_name"`
	SchoolDistrictID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_school_name_district;column:school_district_id"  json:"school_district_id"`
	SchoolIsApproved bool      `gorm:"not null;default:false;column:school_is_approved"                             json:"school_is_approved"`

	SchoolCreatedAt time.Time `gorm:"autoCreateTime;column:school_created_at" json:"school_created_at"`
	SchoolUpdatedAt time.Time `gorm:"autoUpdateTime;column:school_updated_at" json:"school_updated_at"`

	District *DistrictModel `gorm:"foreignKey:SchoolDistrictID;references:DistrictID" json:"district,omitempty"`
}

func (SchoolModel) TableName() string { return "schools" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}
