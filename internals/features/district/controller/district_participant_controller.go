// file: internals/features/district/controller/district_participant_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type DistrictParticipantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDistrictParticipantController(db *gorm.DB) *DistrictParticipantController {
	return &DistrictParticipantController{DB: db, Validate: validator.New()}
}

// GET /api/district-user/participants — optionally ?event_id=
func (ctrl *DistrictParticipantController) List(c *fiber.Ctx) error {
	districtID := coordinatorScope(c)

	q := ctrl.DB.
		Where("district_participant_district_id = ?", districtID).
		Order("district_participant_name ASC")
	if raw := c.Query("event_id"); raw != "" {
		eventID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		q = q.Where("district_participant_event_id = ?", eventID)
	}

	var participants []model.DistrictParticipantModel
	if err := q.Find(&participants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
	}
	return helper.JsonOK(c, "Participants fetched", participants)
}

// POST /api/district-user/participants
func (ctrl *DistrictParticipantController) Create(c *fiber.Ctx) error {
	districtID := coordinatorScope(c)

	var req dto.ParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	eventID, _ := uuid.Parse(req.EventID)
	var ev eventModel.DistrictEventModel
	if err := ctrl.DB.First(&ev, "district_event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District event not found")
	}
	if ev.DistrictEventGender != eventModel.GenderBoth && string(ev.DistrictEventGender) != req.Gender {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event is restricted to "+string(ev.DistrictEventGender)+" participants")
	}

	userID := coordinatorID(c)
	p := model.DistrictParticipantModel{
		DistrictParticipantName:       req.Name,
		DistrictParticipantClassName:  req.ClassName,
		DistrictParticipantGender:     req.Gender,
		DistrictParticipantEventID:    eventID,
		DistrictParticipantDistrictID: districtID,
		DistrictParticipantCreatedBy:  &userID,
	}
	if req.Present != nil {
		p.DistrictParticipantPresent = *req.Present
	}

	if err := ctrl.DB.Create(&p).Error; err != nil {
		log.Printf("[ERROR] failed to create district participant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create participant")
	}
	return helper.JsonCreated(c, "Participant registered", p)
}

func (ctrl *DistrictParticipantController) findScoped(c *fiber.Ctx) (*model.DistrictParticipantModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}

	var p model.DistrictParticipantModel
	if err := ctrl.DB.First(&p,
		"district_participant_id = ? AND district_participant_district_id = ?",
		id, coordinatorScope(c),
	).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Participant not found")
	}
	return &p, nil
}

// PATCH /api/district-user/participants/:id
func (ctrl *DistrictParticipantController) Update(c *fiber.Ctx) error {
	p, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ParticipantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["district_participant_name"] = *req.Name
	}
	if req.ClassName != nil {
		updates["district_participant_class_name"] = *req.ClassName
	}
	if req.Gender != nil {
		updates["district_participant_gender"] = *req.Gender
	}
	if req.EventID != nil {
		eventID, perr := uuid.Parse(*req.EventID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		updates["district_participant_event_id"] = eventID
	}
	if req.Present != nil {
		updates["district_participant_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["district_participant_frozen"] = *req.Frozen
	}

	if err := service.GuardFrozenUpdate(p.DistrictParticipantFrozen, updates, "district_participant_frozen"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Nothing to update", p)
	}
	if err := ctrl.DB.Model(p).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update participant")
	}
	return helper.JsonUpdated(c, "Participant updated", p)
}

// DELETE /api/district-user/participants/:id
func (ctrl *DistrictParticipantController) Delete(c *fiber.Ctx) error {
	p, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.GuardFrozenDelete(p.DistrictParticipantFrozen); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete participant")
	}
	return helper.JsonDeleted(c, "Participant deleted", fiber.Map{"district_participant_id": p.DistrictParticipantID})
}
