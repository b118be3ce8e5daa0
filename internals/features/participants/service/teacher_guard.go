// file: internals/features/participants/service/teacher_guard.go
package service

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

// EnsureTeacherUnique blocks a second accompanying-teacher row with the same
// (name, district, event, gender) in the school-source table.
func EnsureTeacherUnique(db *gorm.DB, name string, districtID uuid.UUID, eventID *uuid.UUID, gender string, excludeID uuid.UUID) error {
	name = strings.TrimSpace(name)
	q := db.Model(&model.AccompanyingTeacherModel{}).
		Where("LOWER(accompanying_teacher_name) = LOWER(?)", name).
		Where("accompanying_teacher_district_id = ?", districtID).
		Where("LOWER(accompanying_teacher_gender) = LOWER(?)", gender).
		Where("accompanying_teacher_id <> ?", excludeID)
	if eventID != nil {
		q = q.Where("accompanying_teacher_event_id = ?", *eventID)
	} else {
		q = q.Where("accompanying_teacher_event_id IS NULL")
	}

	var count int64
	q.Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "This teacher is already registered")
	}
	return nil
}

// EnsureDistrictTeacherUnique is the district-source counterpart.
func EnsureDistrictTeacherUnique(db *gorm.DB, name string, districtID uuid.UUID, eventID *uuid.UUID, gender string, excludeID uuid.UUID) error {
	name = strings.TrimSpace(name)
	q := db.Model(&model.DistrictAccompanyingTeacherModel{}).
		Where("LOWER(district_accompanying_teacher_name) = LOWER(?)", name).
		Where("district_accompanying_teacher_district_id = ?", districtID).
		Where("LOWER(district_accompanying_teacher_gender) = LOWER(?)", gender).
		Where("district_accompanying_teacher_id <> ?", excludeID)
	if eventID != nil {
		q = q.Where("district_accompanying_teacher_event_id = ?", *eventID)
	} else {
		q = q.Where("district_accompanying_teacher_event_id IS NULL")
	}

	var count int64
	q.Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "This teacher is already registered")
	}
	return nil
}
