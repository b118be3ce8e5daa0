// file: internals/features/participants/dto/participant_dto.go
package dto

import (
	"strings"
)

type ParticipantRequest struct {
	Name      string  `json:"name" validate:"required,min=2,max=120"`
	ClassName string  `json:"class_name" validate:"omitempty,max=40"`
	Gender    string  `json:"gender" validate:"required,oneof=boy girl"`
	GroupName *string `json:"group_name" validate:"omitempty,max=120"`
	EventID   string  `json:"event_id" validate:"required,uuid"`
	TeacherID *string `json:"teacher_id" validate:"omitempty,uuid"`
	Present   *bool   `json:"present"`
}

func (r *ParticipantRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.ClassName = strings.TrimSpace(r.ClassName)
}

type ParticipantUpdateRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2,max=120"`
	ClassName *string `json:"class_name" validate:"omitempty,max=40"`
	Gender    *string `json:"gender" validate:"omitempty,oneof=boy girl"`
	GroupName *string `json:"group_name" validate:"omitempty,max=120"`
	EventID   *string `json:"event_id" validate:"omitempty,uuid"`
	TeacherID *string `json:"teacher_id" validate:"omitempty,uuid"`
	Present   *bool   `json:"present"`
	Frozen    *bool   `json:"frozen"`
}

type TeacherRequest struct {
	Name    string  `json:"name" validate:"required,min=2,max=120"`
	Email   *string `json:"email" validate:"omitempty,email,max=160"`
	Mobile  *string `json:"mobile" validate:"omitempty,min=7,max=20"`
	Member  string  `json:"member" validate:"required,max=80"`
	Gender  string  `json:"gender" validate:"required,max=12"`
	EventID *string `json:"event_id" validate:"omitempty,uuid"`
	Present *bool   `json:"present"`
}

func (r *TeacherRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Member = strings.TrimSpace(r.Member)
	r.Gender = strings.TrimSpace(r.Gender)
}

type TeacherUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2,max=120"`
	Email   *string `json:"email" validate:"omitempty,email,max=160"`
	Mobile  *string `json:"mobile" validate:"omitempty,min=7,max=20"`
	Member  *string `json:"member" validate:"omitempty,max=80"`
	Gender  *string `json:"gender" validate:"omitempty,max=12"`
	EventID *string `json:"event_id" validate:"omitempty,uuid"`
	Present *bool   `json:"present"`
	Frozen  *bool   `json:"frozen"`
}

// FinalizeRequest drives the bulk freeze endpoint. Freeze defaults to true
// and Target to both when omitted.
type FinalizeRequest struct {
	Scope      string  `json:"scope" validate:"required,oneof=all school district"`
	Target     string  `json:"target" validate:"omitempty,oneof=participants teachers both"`
	EventID    *string `json:"event_id" validate:"omitempty,uuid"`
	DistrictID *string `json:"district_id" validate:"omitempty,uuid"`
	SchoolName string  `json:"school_name" validate:"omitempty,max=160"`
	Freeze     *bool   `json:"freeze"`
}

func (r *FinalizeRequest) FreezeValue() bool {
	if r.Freeze == nil {
		return true
	}
	return *r.Freeze
}

func (r *FinalizeRequest) TargetValue() string {
	if r.Target == "" {
		return "both"
	}
	return r.Target
}
