// file: internals/features/regions/controller/school_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type SchoolController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolController(db *gorm.DB) *SchoolController {
	return &SchoolController{DB: db, Validate: validator.New()}
}

// POST /api/admin/schools
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.SchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	districtID, _ := uuid.Parse(req.DistrictID)
	var district model.DistrictModel
	if err := ctrl.DB.First(&district, "district_id = ?", districtID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District not found")
	}

	var count int64
	ctrl.DB.Model(&model.SchoolModel{}).
		Where("LOWER(school_name) = LOWER(?) AND school_district_id = ?", req.Name, districtID).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "School already exists in this district")
	}

	school := model.SchoolModel{
		SchoolName:       req.Name,
		SchoolDistrictID: districtID,
		SchoolIsApproved: true, // admin-created schools skip the approval queue
	}
	if err := ctrl.DB.Create(&school).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "School already exists in this district")
		}
		log.Printf("[ERROR] failed to create school: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school")
	}

	school.District = &district
	return helper.JsonCreated(c, "School created", dto.ToSchoolResponse(&school))
}

// PATCH /api/admin/schools/:id
func (ctrl *SchoolController) UpdateSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var school model.SchoolModel
	if err := ctrl.DB.First(&school, "school_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	var req dto.SchoolUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	name := school.SchoolName
	districtID := school.SchoolDistrictID
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if req.DistrictID != nil {
		districtID, err = uuid.Parse(*req.DistrictID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
		}
		var district model.DistrictModel
		if err := ctrl.DB.First(&district, "district_id = ?", districtID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "District not found")
		}
	}

	var count int64
	ctrl.DB.Model(&model.SchoolModel{}).
		Where("LOWER(school_name) = LOWER(?) AND school_district_id = ? AND school_id <> ?", name, districtID, id).
		Count(&count)
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "School already exists in this district")
	}

	updates := map[string]interface{}{
		"school_name":        name,
		"school_district_id": districtID,
	}
	if req.Approved != nil {
		updates["school_is_approved"] = *req.Approved
	}
	if err := ctrl.DB.Model(&school).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "School already exists in this district")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update school")
	}

	return helper.JsonUpdated(c, "School updated", dto.ToSchoolResponse(&school))
}

// PATCH /api/admin/schools/:id/approve
func (ctrl *SchoolController) ApproveSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var school model.SchoolModel
	if err := ctrl.DB.First(&school, "school_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	if err := ctrl.DB.Model(&school).Update("school_is_approved", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve school")
	}

	return helper.JsonUpdated(c, "School approved", dto.ToSchoolResponse(&school))
}

// DELETE /api/admin/schools/:id
func (ctrl *SchoolController) DeleteSchool(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school ID")
	}

	var school model.SchoolModel
	if err := ctrl.DB.First(&school, "school_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School not found")
	}

	if err := ctrl.DB.Delete(&school).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school")
	}

	return helper.JsonDeleted(c, "School deleted", fiber.Map{"school_id": id})
}

// GET /api/public/schools  (optionally ?district_id= or ?district=<name>)
func (ctrl *SchoolController) GetAllSchools(c *fiber.Ctx) error {
	q := ctrl.DB.Preload("District").Order("school_name ASC")

	if raw := strings.TrimSpace(c.Query("district_id")); raw != "" {
		districtID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
		}
		q = q.Where("school_district_id = ?", districtID)
	} else if name := strings.TrimSpace(c.Query("district")); name != "" {
		var district model.DistrictModel
		if err := ctrl.DB.First(&district, "LOWER(district_name) = LOWER(?)", name).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "District not found")
		}
		q = q.Where("school_district_id = ?", district.DistrictID)
	}

	var schools []model.SchoolModel
	if err := q.Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schools")
	}

	out := make([]dto.SchoolResponse, 0, len(schools))
	for i := range schools {
		out = append(out, dto.ToSchoolResponse(&schools[i]))
	}
	return helper.JsonOK(c, "Schools fetched", out)
}

// GET /api/district/schools/:districtName
func (ctrl *SchoolController) GetSchoolsByDistrictName(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Params("districtName"))

	var district model.DistrictModel
	if err := ctrl.DB.First(&district, "LOWER(district_name) = LOWER(?)", name).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District not found")
	}

	var schools []model.SchoolModel
	if err := ctrl.DB.Preload("District").
		Where("school_district_id = ?", district.DistrictID).
		Order("school_name ASC").
		Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load schools")
	}

	out := make([]dto.SchoolResponse, 0, len(schools))
	for i := range schools {
		out = append(out, dto.ToSchoolResponse(&schools[i]))
	}
	return helper.JsonOK(c, "Schools fetched", out)
}
