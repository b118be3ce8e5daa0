// file: internals/features/events/dto/event_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ParseDate accepts the yyyy-mm-dd wire format used by all event payloads.
func ParseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid date, expected yyyy-mm-dd")
	}
	return &t, nil
}

type EventRequest struct {
	Title            string  `json:"title" validate:"required,min=2,max=160"`
	Description      *string `json:"description"`
	Date             string  `json:"date" validate:"omitempty"`
	Venue            *string `json:"venue" validate:"omitempty"`
	Gender           string  `json:"gender" validate:"required,oneof=boy girl both"`
	Audience         string  `json:"audience" validate:"required,oneof=junior senior both"`
	IsGroup          bool    `json:"is_group"`
	ParticipantCount int     `json:"participant_count"`
}

func (r *EventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.ParticipantCount == 0 {
		r.ParticipantCount = 1
	}
}

type EventUpdateRequest struct {
	Title            *string `json:"title" validate:"omitempty,min=2,max=160"`
	Description      *string `json:"description"`
	Date             *string `json:"date"`
	Venue            *string `json:"venue"`
	Gender           *string `json:"gender" validate:"omitempty,oneof=boy girl both"`
	Audience         *string `json:"audience" validate:"omitempty,oneof=junior senior both"`
	IsGroup          *bool   `json:"is_group"`
	ParticipantCount *int    `json:"participant_count"`
}

type DistrictEventRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=160"`
	Description *string `json:"description"`
	Date        string  `json:"date" validate:"omitempty"`
	Venue       *string `json:"venue"`
	Gender      string  `json:"gender" validate:"required,oneof=boy girl both"`
}

func (r *DistrictEventRequest) Normalize() { r.Title = strings.TrimSpace(r.Title) }

type DistrictEventUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=160"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Venue       *string `json:"venue"`
	Gender      *string `json:"gender" validate:"omitempty,oneof=boy girl both"`
}

type OtherEventRequest struct {
	Title       string  `json:"title" validate:"required,min=2,max=160"`
	Description *string `json:"description"`
	Date        string  `json:"date" validate:"omitempty"`
	Venue       *string `json:"venue"`
	ForSchool   bool    `json:"for_school"`
	ForDistrict bool    `json:"for_district"`
	ForParents  bool    `json:"for_parents"`
}

func (r *OtherEventRequest) Normalize() { r.Title = strings.TrimSpace(r.Title) }

type OtherEventUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=2,max=160"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Venue       *string `json:"venue"`
	ForSchool   *bool   `json:"for_school"`
	ForDistrict *bool   `json:"for_district"`
	ForParents  *bool   `json:"for_parents"`
}
