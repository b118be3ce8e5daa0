// file: internals/features/regions/model/school_role_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SchoolRoleModel is the admin-curated list of job titles that school users
// pick from when registering (principal, teacher, clerk, ...).
type SchoolRoleModel struct {
	SchoolRoleID   uuid.UUID `gorm:"type:uuid;primaryKey;column:school_role_id"                     json:"school_role_id"`
	SchoolRoleName string    `gorm:"type:varchar(80);not null;uniqueIndex;column:school_role_name"  json:"school_role_name"`

	SchoolRoleCreatedAt time.Time `gorm:"autoCreateTime;column:school_role_created_at" json:"school_role_created_at"`
	SchoolRoleUpdatedAt time.Time `gorm:"autoUpdateTime;column:school_role_updated_at" json:"school_role_updated_at"`
}

func (SchoolRoleModel) TableName() string { return "school_roles" }

func (m *SchoolRoleModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolRoleID == uuid.Nil {
		m.SchoolRoleID = uuid.New()
	}
	return nil
}
