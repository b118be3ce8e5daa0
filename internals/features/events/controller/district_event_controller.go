// file: internals/features/events/controller/district_event_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/service"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type DistrictEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDistrictEventController(db *gorm.DB) *DistrictEventController {
	return &DistrictEventController{DB: db, Validate: validator.New()}
}

// POST /api/admin/district-events
func (ctrl *DistrictEventController) Create(c *fiber.Ctx) error {
	var req dto.DistrictEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := service.EnsureDistrictEventTitleUnique(ctrl.DB, req.Title, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ev := model.DistrictEventModel{
		DistrictEventTitle:       req.Title,
		DistrictEventDescription: req.Description,
		DistrictEventDate:        date,
		DistrictEventVenue:       req.Venue,
		DistrictEventGender:      model.EventGender(req.Gender),
		DistrictEventCreatedBy:   callerID(c),
	}
	if err := ctrl.DB.Create(&ev).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "A district event with this title already exists")
		}
		log.Printf("[ERROR] failed to create district event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create district event")
	}

	return helper.JsonCreated(c, "District event created", ev)
}

// PATCH /api/admin/district-events/:id
func (ctrl *DistrictEventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.DistrictEventModel
	if err := ctrl.DB.First(&ev, "district_event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District event not found")
	}
	if ev.IsSystem() {
		return helper.JsonError(c, fiber.StatusForbidden, "This event is managed by the system")
	}

	var req dto.DistrictEventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		if err := service.EnsureDistrictEventTitleUnique(ctrl.DB, *req.Title, id); err != nil {
			return helper.FromFiberError(c, err)
		}
		updates["district_event_title"] = *req.Title
	}
	if req.Description != nil {
		updates["district_event_description"] = *req.Description
	}
	if req.Date != nil {
		date, derr := dto.ParseDate(*req.Date)
		if derr != nil {
			return helper.FromFiberError(c, derr)
		}
		updates["district_event_date"] = date
	}
	if req.Venue != nil {
		updates["district_event_venue"] = *req.Venue
	}
	if req.Gender != nil {
		updates["district_event_gender"] = *req.Gender
	}

	if len(updates) > 0 {
		if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return helper.JsonError(c, fiber.StatusConflict, "A district event with this title already exists")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update district event")
		}
	}

	return helper.JsonUpdated(c, "District event updated", ev)
}

// DELETE /api/admin/district-events/:id
func (ctrl *DistrictEventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.DistrictEventModel
	if err := ctrl.DB.First(&ev, "district_event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District event not found")
	}
	if ev.IsSystem() {
		return helper.JsonError(c, fiber.StatusForbidden, "This event is managed by the system")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&participantModel.DistrictParticipantModel{}, "district_participant_event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&ev).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete district event")
	}

	return helper.JsonDeleted(c, "District event deleted", fiber.Map{"district_event_id": id})
}

// GET /api/public/district-events — system rows (the seeded cultural
// programme) never show up here.
func (ctrl *DistrictEventController) List(c *fiber.Ctx) error {
	var events []model.DistrictEventModel
	if err := ctrl.DB.
		Where("district_event_system_key IS NULL").
		Order("district_event_title ASC").
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load district events")
	}
	return helper.JsonOK(c, "District events fetched", events)
}
