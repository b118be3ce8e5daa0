// file: internals/features/accounts/model/account_models.go
package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Admin ===================== */

type AdminModel struct {
	BaseAccount
}

func (AdminModel) TableName() string { return "admins" }

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* ===================== IT Admin ===================== */

type ITAdminModel struct {
	BaseAccount
}

func (ITAdminModel) TableName() string { return "it_admins" }

func (m *ITAdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* ===================== Event Coordinator ===================== */

type EventCoordinatorModel struct {
	BaseAccount
}

func (EventCoordinatorModel) TableName() string { return "event_coordinators" }

func (m *EventCoordinatorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* ===================== District Coordinator ===================== */

// DistrictCoordinatorModel is tied to exactly one district; the district scope
// middleware resolves it per request.
type DistrictCoordinatorModel struct {
	BaseAccount

	DistrictID *uuid.UUID `gorm:"type:uuid;column:district_id" json:"district_id,omitempty"`
}

func (DistrictCoordinatorModel) TableName() string { return "district_coordinators" }

func (m *DistrictCoordinatorModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

/* ===================== School User ===================== */

// SchoolUserModel belongs to one school inside one district. SchoolName is the
// scoping key for everything the user creates.
type SchoolUserModel struct {
	BaseAccount

	DistrictID   *uuid.UUID `gorm:"type:uuid;column:district_id"          json:"district_id,omitempty"`
	SchoolName   string     `gorm:"type:varchar(160);column:school_name"  json:"school_name"`
	RoleInSchool string     `gorm:"type:varchar(80);column:role_in_school" json:"role_in_school"`
}

func (SchoolUserModel) TableName() string { return "school_users" }

func (m *SchoolUserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
