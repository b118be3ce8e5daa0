// file: internals/features/regions/controller/district_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type DistrictController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDistrictController(db *gorm.DB) *DistrictController {
	return &DistrictController{DB: db, Validate: validator.New()}
}

// POST /api/admin/districts
func (ctrl *DistrictController) CreateDistrict(c *fiber.Ctx) error {
	var req dto.DistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Friendly pre-check; the unique index is the real guard.
	var count int64
	ctrl.DB.Model(&model.DistrictModel{}).
		Where("LOWER(district_name) = LOWER(?)", req.Name).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "District already exists")
	}

	district := model.DistrictModel{DistrictName: req.Name}
	if err := ctrl.DB.Create(&district).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "District already exists")
		}
		log.Printf("[ERROR] failed to create district: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create district")
	}

	return helper.JsonCreated(c, "District created", district)
}

// PATCH /api/admin/districts/:id
func (ctrl *DistrictController) RenameDistrict(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
	}

	var req dto.DistrictRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var district model.DistrictModel
	if err := ctrl.DB.First(&district, "district_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District not found")
	}

	var count int64
	ctrl.DB.Model(&model.DistrictModel{}).
		Where("LOWER(district_name) = LOWER(?) AND district_id <> ?", req.Name, id).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "District already exists")
	}

	district.DistrictName = req.Name
	if err := ctrl.DB.Save(&district).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "District already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to rename district")
	}

	return helper.JsonUpdated(c, "District renamed", district)
}

// DELETE /api/admin/districts/:id
func (ctrl *DistrictController) DeleteDistrict(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
	}

	var district model.DistrictModel
	if err := ctrl.DB.First(&district, "district_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District not found")
	}

	var schools int64
	ctrl.DB.Model(&model.SchoolModel{}).Where("school_district_id = ?", id).Count(&schools)
	if schools > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "District still has schools; remove them first")
	}

	if err := ctrl.DB.Delete(&district).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete district")
	}

	return helper.JsonDeleted(c, "District deleted", fiber.Map{"district_id": id})
}

// GET /api/public/districts
func (ctrl *DistrictController) GetAllDistricts(c *fiber.Ctx) error {
	var districts []model.DistrictModel
	if err := ctrl.DB.Order("district_name ASC").Find(&districts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load districts")
	}
	return helper.JsonOK(c, "Districts fetched", districts)
}
