// file: internals/features/evaluation/controller/evaluation_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type EvaluationController struct {
	Service  *service.EvaluationService
	Validate *validator.Validate
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{Service: service.NewEvaluationService(db), Validate: validator.New()}
}

// GET /evaluation-form?scope=school&event_id=...
func (ctrl *EvaluationController) Get(c *fiber.Ctx) error {
	scope := model.EvaluationScope(c.Query("scope", string(model.ScopeSchool)))
	if scope != model.ScopeSchool && scope != model.ScopeDistrict {
		return helper.JsonError(c, fiber.StatusBadRequest, "scope must be school or district")
	}
	eventID, err := uuid.Parse(c.Query("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	resp, err := ctrl.Service.Get(scope, eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Evaluation format fetched", resp)
}

// PUT /evaluation-form
func (ctrl *EvaluationController) Upsert(c *fiber.Ctx) error {
	var req dto.EvaluationFormatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var updatedBy *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			updatedBy = &id
		}
	}

	row, err := ctrl.Service.Upsert(&req, updatedBy)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Evaluation format saved", row)
}
