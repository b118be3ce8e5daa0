// file: internals/features/events/controller/event_controller.go
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

type EventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validate: validator.New()}
}

// POST /api/admin/events
func (ctrl *EventController) Create(c *fiber.Ctx) error {
	var req dto.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.IsGroup && req.ParticipantCount < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Group events need a participant count of at least 2")
	}

	if err := service.EnsureEventTitleUnique(ctrl.DB, req.Title, model.EventAudience(req.Audience), uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ev := model.EventModel{
		EventTitle:            req.Title,
		EventDescription:      req.Description,
		EventDate:             date,
		EventVenue:            req.Venue,
		EventGender:           model.EventGender(req.Gender),
		EventAudience:         model.EventAudience(req.Audience),
		EventIsGroup:          req.IsGroup,
		EventParticipantCount: req.ParticipantCount,
		EventCreatedBy:        callerID(c),
	}
	if err := ctrl.DB.Create(&ev).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An event with this title already exists for this audience")
		}
		log.Printf("[ERROR] failed to create event: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created", ev)
}

// PATCH /api/admin/events/:id
func (ctrl *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.EventModel
	if err := ctrl.DB.First(&ev, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	var req dto.EventUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	title := ev.EventTitle
	audience := ev.EventAudience
	if req.Title != nil {
		title = *req.Title
	}
	if req.Audience != nil {
		audience = model.EventAudience(*req.Audience)
	}
	if err := service.EnsureEventTitleUnique(ctrl.DB, title, audience, id); err != nil {
		return helper.FromFiberError(c, err)
	}

	updates := map[string]interface{}{
		"event_title":    title,
		"event_audience": audience,
	}
	if req.Description != nil {
		updates["event_description"] = *req.Description
	}
	if req.Date != nil {
		date, derr := dto.ParseDate(*req.Date)
		if derr != nil {
			return helper.FromFiberError(c, derr)
		}
		updates["event_date"] = date
	}
	if req.Venue != nil {
		updates["event_venue"] = *req.Venue
	}
	if req.Gender != nil {
		updates["event_gender"] = *req.Gender
	}
	isGroup := ev.EventIsGroup
	count := ev.EventParticipantCount
	if req.IsGroup != nil {
		isGroup = *req.IsGroup
		updates["event_is_group"] = isGroup
	}
	if req.ParticipantCount != nil {
		count = *req.ParticipantCount
		updates["event_participant_count"] = count
	}
	if isGroup && count < 2 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Group events need a participant count of at least 2")
	}

	if err := ctrl.DB.Model(&ev).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An event with this title already exists for this audience")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated", ev)
}

// DELETE /api/admin/events/:id — registrations for the event go with it.
func (ctrl *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	var ev model.EventModel
	if err := ctrl.DB.First(&ev, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&participantModel.ParticipantModel{}, "participant_event_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&ev).Error
	})
	if err != nil {
		log.Printf("[ERROR] failed to delete event %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}

// GET /api/public/events
func (ctrl *EventController) List(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.Order("event_title ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "Events fetched", events)
}

// callerID pulls the authenticated user id from locals, nil on public routes.
func callerID(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
