// file: internals/features/district/controller/district_event_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// DistrictEventController is the coordinator's read-only view of district
// events.
type DistrictEventController struct {
	DB *gorm.DB
}

func NewDistrictEventController(db *gorm.DB) *DistrictEventController {
	return &DistrictEventController{DB: db}
}

func coordinatorScope(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("district_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}

func coordinatorID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}

// GET /api/district-user/events — system rows stay hidden here too.
func (ctrl *DistrictEventController) List(c *fiber.Ctx) error {
	var events []eventModel.DistrictEventModel
	if err := ctrl.DB.
		Where("district_event_system_key IS NULL").
		Order("district_event_title ASC").
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load district events")
	}
	return helper.JsonOK(c, "District events fetched", events)
}

// GET /api/district-user/events/cultural — the seeded cultural programme,
// addressed by its system key rather than a hardcoded id.
func (ctrl *DistrictEventController) GetCultural(c *fiber.Ctx) error {
	var ev eventModel.DistrictEventModel
	if err := ctrl.DB.First(&ev,
		"district_event_system_key = ?", eventModel.SystemKeyCultural,
	).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Cultural programme not configured")
	}
	return helper.JsonOK(c, "Cultural programme fetched", ev)
}
