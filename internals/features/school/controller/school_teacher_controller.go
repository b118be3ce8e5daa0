// file: internals/features/school/controller/school_teacher_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type SchoolTeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolTeacherController(db *gorm.DB) *SchoolTeacherController {
	return &SchoolTeacherController{DB: db, Validate: validator.New()}
}

// GET /api/school/teachers
func (ctrl *SchoolTeacherController) List(c *fiber.Ctx) error {
	districtID, schoolName := requestScope(c)

	var teachers []model.AccompanyingTeacherModel
	if err := ctrl.DB.
		Where("accompanying_teacher_district_id = ? AND accompanying_teacher_school_name = ?", districtID, schoolName).
		Order("accompanying_teacher_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teachers")
	}
	return helper.JsonOK(c, "Teachers fetched", teachers)
}

// POST /api/school/teachers
func (ctrl *SchoolTeacherController) Create(c *fiber.Ctx) error {
	districtID, schoolName := requestScope(c)

	var req dto.TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var eventID *uuid.UUID
	if req.EventID != nil {
		parsed, err := uuid.Parse(*req.EventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		eventID = &parsed
	}

	if err := service.EnsureTeacherUnique(ctrl.DB, req.Name, districtID, eventID, req.Gender, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	userID := scopedUserID(c)
	teacher := model.AccompanyingTeacherModel{
		AccompanyingTeacherName:       req.Name,
		AccompanyingTeacherEmail:      req.Email,
		AccompanyingTeacherMobile:     req.Mobile,
		AccompanyingTeacherMember:     req.Member,
		AccompanyingTeacherGender:     req.Gender,
		AccompanyingTeacherEventID:    eventID,
		AccompanyingTeacherDistrictID: districtID,
		AccompanyingTeacherSchoolName: schoolName,
		AccompanyingTeacherCreatedBy:  &userID,
	}
	if req.Present != nil {
		teacher.AccompanyingTeacherPresent = *req.Present
	}

	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		log.Printf("[ERROR] failed to create teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register teacher")
	}
	return helper.JsonCreated(c, "Teacher registered", teacher)
}

func (ctrl *SchoolTeacherController) findScoped(c *fiber.Ctx) (*model.AccompanyingTeacherModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}
	districtID, schoolName := requestScope(c)

	var teacher model.AccompanyingTeacherModel
	if err := ctrl.DB.First(&teacher,
		"accompanying_teacher_id = ? AND accompanying_teacher_district_id = ? AND accompanying_teacher_school_name = ?",
		id, districtID, schoolName,
	).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	return &teacher, nil
}

// PATCH /api/school/teachers/:id
func (ctrl *SchoolTeacherController) Update(c *fiber.Ctx) error {
	teacher, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["accompanying_teacher_name"] = *req.Name
	}
	if req.Email != nil {
		updates["accompanying_teacher_email"] = *req.Email
	}
	if req.Mobile != nil {
		updates["accompanying_teacher_mobile"] = *req.Mobile
	}
	if req.Member != nil {
		updates["accompanying_teacher_member"] = *req.Member
	}
	if req.Gender != nil {
		updates["accompanying_teacher_gender"] = *req.Gender
	}
	if req.EventID != nil {
		eventID, perr := uuid.Parse(*req.EventID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		updates["accompanying_teacher_event_id"] = eventID
	}
	if req.Present != nil {
		updates["accompanying_teacher_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["accompanying_teacher_frozen"] = *req.Frozen
	}

	if err := service.GuardFrozenUpdate(teacher.AccompanyingTeacherFrozen, updates, "accompanying_teacher_frozen"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Nothing to update", teacher)
	}
	if err := ctrl.DB.Model(teacher).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
	}
	return helper.JsonUpdated(c, "Teacher updated", teacher)
}

// DELETE /api/school/teachers/:id
func (ctrl *SchoolTeacherController) Delete(c *fiber.Ctx) error {
	teacher, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.GuardFrozenDelete(teacher.AccompanyingTeacherFrozen); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"accompanying_teacher_id": teacher.AccompanyingTeacherID})
}
