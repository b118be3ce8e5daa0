// file: internals/features/regions/model/district_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DistrictModel struct {
	DistrictID   uuid.UUID `gorm:"type:uuid;primaryKey;column:district_id"              json:"district_id"`
	DistrictName string    `gorm:"type:varchar(120);not null;uniqueIndex;column:district_name" json:"district_name"`

	DistrictCreatedAt time.Time `gorm:"autoCreateTime;column:district_created_at" json:"district_created_at"`
	DistrictUpdatedAt time.Time `gorm:"autoUpdateTime;column:district_updated_at" json:"district_updated_at"`
}

func (DistrictModel) TableName() string { return "districts" }

func (m *DistrictModel) BeforeCreate(tx *gorm.DB) error {
	if m.DistrictID == uuid.Nil {
		m.DistrictID = uuid.New()
	}
	return nil
}
