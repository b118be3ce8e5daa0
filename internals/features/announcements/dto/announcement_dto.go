// file: internals/features/announcements/dto/announcement_dto.go
package dto

import "strings"

type AnnouncementRequest struct {
	Title     string  `json:"title" validate:"required,min=2,max=160"`
	Message   string  `json:"message" validate:"required"`
	Type      string  `json:"type" validate:"omitempty,oneof=update alert info"`
	Audience  string  `json:"audience" validate:"omitempty,oneof=all school district"`
	IsActive  *bool   `json:"is_active"`
	ExpiresAt *string `json:"expires_at" validate:"omitempty"`
}

func (r *AnnouncementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Message = strings.TrimSpace(r.Message)
	if r.Type == "" {
		r.Type = "update"
	}
	if r.Audience == "" {
		r.Audience = "all"
	}
}

type AnnouncementUpdateRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=2,max=160"`
	Message   *string `json:"message" validate:"omitempty"`
	Type      *string `json:"type" validate:"omitempty,oneof=update alert info"`
	Audience  *string `json:"audience" validate:"omitempty,oneof=all school district"`
	IsActive  *bool   `json:"is_active"`
	ExpiresAt *string `json:"expires_at" validate:"omitempty"`
}
