// file: internals/features/announcements/controller/announcement_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/announcements/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/announcements/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type AnnouncementController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db, Validate: validator.New()}
}

// parseExpiry accepts RFC3339 or a bare yyyy-mm-dd.
func parseExpiry(raw string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid expiry, expected yyyy-mm-dd or RFC3339")
	}
	return &t, nil
}

// GET /api/admin/announcements
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	var rows []model.AnnouncementModel
	if err := ctrl.DB.Order("announcement_created_at DESC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list announcements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}
	return helper.JsonOK(c, "Announcements fetched", rows)
}

// GET /api/public/announcements — only active, unexpired notices.
func (ctrl *AnnouncementController) PublicList(c *fiber.Ctx) error {
	q := ctrl.DB.
		Where("announcement_is_active = ?", true).
		Where("announcement_expires_at IS NULL OR announcement_expires_at > ?", time.Now())
	if audience := c.Query("audience"); audience != "" {
		q = q.Where("announcement_audience IN ?", []string{"all", audience})
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcement_created_at DESC").Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list public announcements: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}
	return helper.JsonOK(c, "Announcements fetched", rows)
}

// POST /api/admin/announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	var req dto.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.AnnouncementModel{
		AnnouncementTitle:    req.Title,
		AnnouncementMessage:  req.Message,
		AnnouncementType:     req.Type,
		AnnouncementAudience: req.Audience,
		AnnouncementIsActive: true,
	}
	if req.IsActive != nil {
		row.AnnouncementIsActive = *req.IsActive
	}
	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		t, err := parseExpiry(*req.ExpiresAt)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		row.AnnouncementExpiresAt = t
	}
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			row.AnnouncementCreatedBy = &id
		}
	}

	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] create announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement created", row)
}

// PATCH /api/admin/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	var req dto.AnnouncementUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var row model.AnnouncementModel
	if err := ctrl.DB.First(&row, "announcement_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["announcement_title"] = *req.Title
	}
	if req.Message != nil {
		updates["announcement_message"] = *req.Message
	}
	if req.Type != nil {
		updates["announcement_type"] = *req.Type
	}
	if req.Audience != nil {
		updates["announcement_audience"] = *req.Audience
	}
	if req.IsActive != nil {
		updates["announcement_is_active"] = *req.IsActive
	}
	if req.ExpiresAt != nil {
		if *req.ExpiresAt == "" {
			updates["announcement_expires_at"] = nil
		} else {
			t, err := parseExpiry(*req.ExpiresAt)
			if err != nil {
				return helper.FromFiberError(c, err)
			}
			updates["announcement_expires_at"] = t
		}
	}
	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&row).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update announcement: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated", row)
}

// DELETE /api/admin/announcements/:id
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement ID")
	}

	res := ctrl.DB.Delete(&model.AnnouncementModel{}, "announcement_id = ?", id)
	if res.Error != nil {
		log.Printf("[ERROR] delete announcement: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"announcement_id": id})
}
