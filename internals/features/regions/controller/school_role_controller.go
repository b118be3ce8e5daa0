// file: internals/features/regions/controller/school_role_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type SchoolRoleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolRoleController(db *gorm.DB) *SchoolRoleController {
	return &SchoolRoleController{DB: db, Validate: validator.New()}
}

// POST /api/admin/school-roles
func (ctrl *SchoolRoleController) Create(c *fiber.Ctx) error {
	var req dto.SchoolRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctrl.DB.Model(&model.SchoolRoleModel{}).
		Where("LOWER(school_role_name) = LOWER(?)", req.Name).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Role already exists")
	}

	role := model.SchoolRoleModel{SchoolRoleName: req.Name}
	if err := ctrl.DB.Create(&role).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Role already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create role")
	}

	return helper.JsonCreated(c, "Role created", role)
}

// PATCH /api/admin/school-roles/:id
func (ctrl *SchoolRoleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role ID")
	}

	var role model.SchoolRoleModel
	if err := ctrl.DB.First(&role, "school_role_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	}

	var req dto.SchoolRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var count int64
	ctrl.DB.Model(&model.SchoolRoleModel{}).
		Where("LOWER(school_role_name) = LOWER(?) AND school_role_id <> ?", req.Name, id).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Role already exists")
	}

	role.SchoolRoleName = req.Name
	if err := ctrl.DB.Save(&role).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Role already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	return helper.JsonUpdated(c, "Role updated", role)
}

// DELETE /api/admin/school-roles/:id
func (ctrl *SchoolRoleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role ID")
	}

	res := ctrl.DB.Delete(&model.SchoolRoleModel{}, "school_role_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
	}

	return helper.JsonDeleted(c, "Role deleted", fiber.Map{"school_role_id": id})
}

// GET /api/public/school-roles
func (ctrl *SchoolRoleController) List(c *fiber.Ctx) error {
	var roles []model.SchoolRoleModel
	if err := ctrl.DB.Order("school_role_name ASC").Find(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roles")
	}
	return helper.JsonOK(c, "Roles fetched", roles)
}
