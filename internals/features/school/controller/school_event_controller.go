// file: internals/features/school/controller/school_event_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDTO "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/dto"
	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	eventService "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/service"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// SchoolEventController lets a school user manage events they created.
// Listing shows every school-scope event so registrations can target
// admin-created events too.
type SchoolEventController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolEventController(db *gorm.DB) *SchoolEventController {
	return &SchoolEventController{DB: db, Validate: validator.New()}
}

func scopedUserID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}

// GET /api/school/events
func (ctrl *SchoolEventController) List(c *fiber.Ctx) error {
	var events []eventModel.EventModel
	if err := ctrl.DB.Order("event_title ASC").Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}
	return helper.JsonOK(c, "Events fetched", events)
}

// POST /api/school/events
func (ctrl *SchoolEventController) Create(c *fiber.Ctx) error {
	var req eventDTO.EventRequest
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

	if err := eventService.EnsureEventTitleUnique(ctrl.DB, req.Title, eventModel.EventAudience(req.Audience), uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	date, err := eventDTO.ParseDate(req.Date)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	userID := scopedUserID(c)
	ev := eventModel.EventModel{
		EventTitle:            req.Title,
		EventDescription:      req.Description,
		EventDate:             date,
		EventVenue:            req.Venue,
		EventGender:           eventModel.EventGender(req.Gender),
		EventAudience:         eventModel.EventAudience(req.Audience),
		EventIsGroup:          req.IsGroup,
		EventParticipantCount: req.ParticipantCount,
		EventCreatedBy:        &userID,
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

func (ctrl *SchoolEventController) findOwned(c *fiber.Ctx) (*eventModel.EventModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}
	var ev eventModel.EventModel
	if err := ctrl.DB.First(&ev, "event_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Event not found")
	}
	userID := scopedUserID(c)
	if ev.EventCreatedBy == nil || *ev.EventCreatedBy != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "You can only modify events you created")
	}
	return &ev, nil
}

// PATCH /api/school/events/:id
func (ctrl *SchoolEventController) Update(c *fiber.Ctx) error {
	ev, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req eventDTO.EventUpdateRequest
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
		audience = eventModel.EventAudience(*req.Audience)
	}
	if err := eventService.EnsureEventTitleUnique(ctrl.DB, title, audience, ev.EventID); err != nil {
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
		date, derr := eventDTO.ParseDate(*req.Date)
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
	if req.IsGroup != nil {
		updates["event_is_group"] = *req.IsGroup
	}
	if req.ParticipantCount != nil {
		updates["event_participant_count"] = *req.ParticipantCount
	}

	if err := ctrl.DB.Model(ev).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "An event with this title already exists for this audience")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update event")
	}

	return helper.JsonUpdated(c, "Event updated", ev)
}

// DELETE /api/school/events/:id — the event's registrations go with it.
func (ctrl *SchoolEventController) Delete(c *fiber.Ctx) error {
	ev, err := ctrl.findOwned(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&participantModel.ParticipantModel{}, "participant_event_id = ?", ev.EventID).Error; err != nil {
			return err
		}
		return tx.Delete(ev).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": ev.EventID})
}
