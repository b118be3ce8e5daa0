// file: internals/features/events/controller/other_event_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type OtherEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOtherEventController(db *gorm.DB) *OtherEventController {
	return &OtherEventController{DB: db, Validate: validator.New()}
}

// POST /api/admin/other-events
func (ctrl *OtherEventController) Create(c *fiber.Ctx) error {
	var req dto.OtherEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.EnsureOtherEventTitleUnique(ctrl.DB, req.Title, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ev := model.OtherEventModel{
		OtherEventTitle:       req.Title,
		OtherEventDescription: req.Description,
		OtherEventDate:        date,
		OtherEventVenue:       req.Venue,
		OtherEventForSchool:   req.ForSchool,
		OtherEventForDistrict: req.ForDistrict,
		OtherEventForParents:  req.ForParents,
		OtherEventCreatedBy:   callerID(c),
	}
	if err := ctrl.DB.Create(&ev).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An event with this title already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created", ev)
}

// PATCH /api/admin/other-events/:id
func (ctrl *OtherEventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.OtherEventModel
	if err := ctrl.DB.First(&ev, "other_event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var req dto.OtherEventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if err := service.EnsureOtherEventTitleUnique(ctrl.DB, *req.Title, id); err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["other_event_title"] = *req.Title
	}
	if req.Description != nil {
		updates["other_event_description"] = *req.Description
	}
	if req.Date != nil {
		date, derr := dto.ParseDate(*req.Date)
		if derr != nil {
			return helper.FromFiberError(c, derr)
		}
		updates["other_event_date"] = date
	}
	if req.Venue != nil {
		updates["other_event_venue"] = *req.Venue
	}
	if req.ForSchool != nil {
		updates["other_event_for_school"] = *req.ForSchool
	}
	if req.ForDistrict != nil {
		updates["other_event_for_district"] = *req.ForDistrict
	}
	if req.ForParents != nil {
		updates["other_event_for_parents"] = *req.ForParents
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "An event with this title already exists")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
		}
	}

	return helper.JsonUpdated(c, "Event updated", ev)
}

// DELETE /api/admin/other-events/:id
func (ctrl *OtherEventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	res := ctrl.DB.Delete(&model.OtherEventModel{}, "other_event_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"other_event_id": id})
}

// GET /api/public/other-events — ?audience=school|district|parents
func (ctrl *OtherEventController) List(c *fiber.Ctx) error {
	q := ctrl.DB.Order("other_event_date ASC, other_event_title ASC")
	switch c.Query("audience") {
	case "school":
		q = q.Where("other_event_for_school = ?", true)
	case "district":
		q = q.Where("other_event_for_district = ?", true)
	case "parents":
		q = q.Where("other_event_for_parents = ?", true)
	}

	var events []model.OtherEventModel
	if err := q.Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "Events fetched", events)
}
