// file: internals/features/itadmin/controller/finalize_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	participantDTO "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/dto"
	participantService "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type FinalizeController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFinalizeController(db *gorm.DB) *FinalizeController {
	return &FinalizeController{DB: db, Validate: validator.New()}
}

// POST /api/it-admin/finalize — the target field narrows the run to
// participant rosters or accompanying teachers (default both).
func (ctrl *FinalizeController) Finalize(c *fiber.Ctx) error {
	return ctrl.finalize(c, "")
}

// POST /api/it-admin/participants/finalize
func (ctrl *FinalizeController) FinalizeParticipants(c *fiber.Ctx) error {
	return ctrl.finalize(c, participantService.TargetParticipants)
}

// POST /api/it-admin/teachers/finalize
func (ctrl *FinalizeController) FinalizeTeachers(c *fiber.Ctx) error {
	return ctrl.finalize(c, participantService.TargetTeachers)
}

func (ctrl *FinalizeController) finalize(c *fiber.Ctx, forced participantService.FinalizeTarget) error {
	var req participantDTO.FinalizeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	target := participantService.FinalizeTarget(req.TargetValue())
	if forced != "" {
		target = forced
	}

	var filter participantService.FinalizeFilter
	if req.EventID != nil {
		id, err := uuid.Parse(*req.EventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		filter.EventID = &id
	}
	if req.DistrictID != nil {
		id, err := uuid.Parse(*req.DistrictID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
		}
		filter.DistrictID = &id
	}
	filter.SchoolName = req.SchoolName

	result, err := participantService.Finalize(ctrl.DB, participantService.FinalizeScope(req.Scope), target, filter, req.FreezeValue())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Records finalized"
	if !req.FreezeValue() {
		msg = "Records unlocked"
	}
	return helper.JsonOK(c, msg, result)
}
