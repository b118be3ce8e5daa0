// file: internals/features/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID       uuid.UUID `gorm:"type:uuid;primaryKey;column:announcement_id"                  json:"announcement_id"`
	AnnouncementTitle    string    `gorm:"type:varchar(160);not null;column:announcement_title"         json:"announcement_title"`
	AnnouncementMessage  string    `gorm:"type:text;not null;column:announcement_message"               json:"announcement_message"`
	AnnouncementType     string    `gorm:"type:varchar(20);not null;default:'update';column:announcement_type"  json:"announcement_type"`
	AnnouncementAudience string    `gorm:"type:varchar(20);not null;default:'all';column:announcement_audience" json:"announcement_audience"`

	AnnouncementIsActive  bool       `gorm:"not null;default:true;column:announcement_is_active" json:"announcement_is_active"`
	AnnouncementExpiresAt *time.Time `gorm:"column:announcement_expires_at"                      json:"announcement_expires_at,omitempty"`

	AnnouncementCreatedBy *uuid.UUID `gorm:"type:uuid;column:announcement_created_by"      json:"announcement_created_by,omitempty"`
	AnnouncementCreatedAt time.Time  `gorm:"autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time  `gorm:"autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
}

func (AnnouncementModel) TableName() string { return "announcements" }

func (m *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if m.AnnouncementID == uuid.Nil {
		m.AnnouncementID = uuid.New()
	}
	return nil
}
