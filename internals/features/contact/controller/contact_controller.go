// file: internals/features/contact/controller/contact_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/contact/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/contact/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/helpers/mailer"
)

type ContactController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewContactController(db *gorm.DB) *ContactController {
	return &ContactController{DB: db, Validate: validator.New()}
}

// POST /api/public/contact — the row is the durable record, the mail relay
// runs fire-and-forget.
func (ctrl *ContactController) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := model.ContactMessageModel{
		ContactMessageName:    req.Name,
		ContactMessageEmail:   req.Email,
		ContactMessageSubject: req.Subject,
		ContactMessageBody:    req.Message,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		log.Printf("[ERROR] save contact message: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	mailer.RelayContactMessage(req.Name, req.Email, req.Subject, req.Message)

	return helper.JsonCreated(c, "Message sent", fiber.Map{"contact_message_id": row.ContactMessageID})
}

// GET /api/admin/contact-messages?page=&per_page=
func (ctrl *ContactController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ContactMessageModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count contact messages: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load messages")
	}

	var rows []model.ContactMessageModel
	if err := ctrl.DB.
		Order("contact_message_created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list contact messages: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load messages")
	}

	pagination := helper.BuildPagination(paging, total, len(rows))
	return helper.JsonList(c, "Messages fetched", rows, &pagination)
}
