// file: internals/features/district/controller/district_teacher_controller.go
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

type DistrictTeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDistrictTeacherController(db *gorm.DB) *DistrictTeacherController {
	return &DistrictTeacherController{DB: db, Validate: validator.New()}
}

// GET /api/district-user/teachers
func (ctrl *DistrictTeacherController) List(c *fiber.Ctx) error {
	var teachers []model.DistrictAccompanyingTeacherModel
	if err := ctrl.DB.
		Where("district_accompanying_teacher_district_id = ?", coordinatorScope(c)).
		Order("district_accompanying_teacher_name ASC").
		Find(&teachers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teachers")
	}
	return helper.JsonOK(c, "Teachers fetched", teachers)
}

// POST /api/district-user/teachers
func (ctrl *DistrictTeacherController) Create(c *fiber.Ctx) error {
	districtID := coordinatorScope(c)

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

	if err := service.EnsureDistrictTeacherUnique(ctrl.DB, req.Name, districtID, eventID, req.Gender, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}

	userID := coordinatorID(c)
	teacher := model.DistrictAccompanyingTeacherModel{
		DistrictAccompanyingTeacherName:       req.Name,
		DistrictAccompanyingTeacherEmail:      req.Email,
		DistrictAccompanyingTeacherMobile:     req.Mobile,
		DistrictAccompanyingTeacherMember:     req.Member,
		DistrictAccompanyingTeacherGender:     req.Gender,
		DistrictAccompanyingTeacherEventID:    eventID,
		DistrictAccompanyingTeacherDistrictID: districtID,
		DistrictAccompanyingTeacherCreatedBy:  &userID,
	}
	if req.Present != nil {
		teacher.DistrictAccompanyingTeacherPresent = *req.Present
	}

	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		log.Printf("[ERROR] failed to create district teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register teacher")
	}
	return helper.JsonCreated(c, "Teacher registered", teacher)
}

func (ctrl *DistrictTeacherController) findScoped(c *fiber.Ctx) (*model.DistrictAccompanyingTeacherModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var teacher model.DistrictAccompanyingTeacherModel
	if err := ctrl.DB.First(&teacher,
		"district_accompanying_teacher_id = ? AND district_accompanying_teacher_district_id = ?",
		id, coordinatorScope(c),
	).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}
	return &teacher, nil
}

// PATCH /api/district-user/teachers/:id
func (ctrl *DistrictTeacherController) Update(c *fiber.Ctx) error {
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
		updates["district_accompanying_teacher_name"] = *req.Name
	}
	if req.Email != nil {
		updates["district_accompanying_teacher_email"] = *req.Email
	}
	if req.Mobile != nil {
		updates["district_accompanying_teacher_mobile"] = *req.Mobile
	}
	if req.Member != nil {
		updates["district_accompanying_teacher_member"] = *req.Member
	}
	if req.Gender != nil {
		updates["district_accompanying_teacher_gender"] = *req.Gender
	}
	if req.EventID != nil {
		eventID, perr := uuid.Parse(*req.EventID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		updates["district_accompanying_teacher_event_id"] = eventID
	}
	if req.Present != nil {
		updates["district_accompanying_teacher_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["district_accompanying_teacher_frozen"] = *req.Frozen
	}

	if err := service.GuardFrozenUpdate(teacher.DistrictAccompanyingTeacherFrozen, updates, "district_accompanying_teacher_frozen"); err != nil {
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

// DELETE /api/district-user/teachers/:id
func (ctrl *DistrictTeacherController) Delete(c *fiber.Ctx) error {
	teacher, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.GuardFrozenDelete(teacher.DistrictAccompanyingTeacherFrozen); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(teacher).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"district_accompanying_teacher_id": teacher.DistrictAccompanyingTeacherID})
}
