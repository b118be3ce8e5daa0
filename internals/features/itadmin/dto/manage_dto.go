// file: internals/features/itadmin/dto/manage_dto.go
package dto

import (
	"strings"

	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

// ParticipantView is a school participant enriched with resolved names for
// the IT-admin tables.
type ParticipantView struct {
	participantModel.ParticipantModel
	EventTitle   string `json:"event_title"`
	DistrictName string `json:"district_name"`
}

type DistrictParticipantView struct {
	participantModel.DistrictParticipantModel
	EventTitle   string `json:"event_title"`
	DistrictName string `json:"district_name"`
}

type TeacherView struct {
	participantModel.AccompanyingTeacherModel
	EventTitle   string `json:"event_title,omitempty"`
	DistrictName string `json:"district_name"`
}

type DistrictTeacherView struct {
	participantModel.DistrictAccompanyingTeacherModel
	EventTitle   string `json:"event_title,omitempty"`
	DistrictName string `json:"district_name"`
}

// ITParticipantRequest lets an IT admin register a participant on behalf of
// any school or district.
type ITParticipantRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=120"`
	ClassName  string  `json:"class_name" validate:"omitempty,max=40"`
	Gender     string  `json:"gender" validate:"required,oneof=boy girl"`
	GroupName  *string `json:"group_name" validate:"omitempty,max=120"`
	EventID    string  `json:"event_id" validate:"required,uuid"`
	DistrictID string  `json:"district_id" validate:"required,uuid"`
	SchoolName string  `json:"school_name" validate:"omitempty,max=160"`
	Present    *bool   `json:"present"`
}

func (r *ITParticipantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ClassName = strings.TrimSpace(r.ClassName)
	r.SchoolName = strings.TrimSpace(r.SchoolName)
}

type ITTeacherRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=120"`
	Email      *string `json:"email" validate:"omitempty,email,max=160"`
	Mobile     *string `json:"mobile" validate:"omitempty,min=7,max=20"`
	Member     string  `json:"member" validate:"required,max=80"`
	Gender     string  `json:"gender" validate:"required,max=12"`
	EventID    *string `json:"event_id" validate:"omitempty,uuid"`
	DistrictID string  `json:"district_id" validate:"required,uuid"`
	SchoolName string  `json:"school_name" validate:"omitempty,max=160"`
	Present    *bool   `json:"present"`
}

func (r *ITTeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Member = strings.TrimSpace(r.Member)
	r.Gender = strings.TrimSpace(r.Gender)
	r.SchoolName = strings.TrimSpace(r.SchoolName)
}
