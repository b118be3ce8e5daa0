// file: internals/features/events/service/duplicate_guard.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
)

// The guards below are advisory: they produce the friendly 409 before the
// insert, while the unique index catches the race. Callers still translate
// SQLSTATE 23505 to the same 409.

// EnsureEventTitleUnique checks (title, audience) case-insensitively,
// excluding excludeID (uuid.Nil on create).
func EnsureEventTitleUnique(db *gorm.DB, title string, audience model.EventAudience, excludeID uuid.UUID) error {
	title = strings.TrimSpace(title)
	var count int64
	db.Model(&model.EventModel{}).
		Where("LOWER(event_title) = LOWER(?) AND event_audience = ? AND event_id <> ?",
			title, audience, excludeID).
		Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "An event with this title already exists for this audience")
	}
	return nil
}

func EnsureDistrictEventTitleUnique(db *gorm.DB, title string, excludeID uuid.UUID) error {
	title = strings.TrimSpace(title)
	var count int64
	db.Model(&model.DistrictEventModel{}).
		Where("LOWER(district_event_title) = LOWER(?) AND district_event_id <> ?", title, excludeID).
		Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "A district event with this title already exists")
	}
	return nil
}

func EnsureOtherEventTitleUnique(db *gorm.DB, title string, excludeID uuid.UUID) error {
	title = strings.TrimSpace(title)
	var count int64
	db.Model(&model.OtherEventModel{}).
		Where("LOWER(other_event_title) = LOWER(?) AND other_event_id <> ?", title, excludeID).
		Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "An event with this title already exists")
	}
	return nil
}
