// file: internals/features/itadmin/controller/report_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/itadmin/service"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type ReportController struct {
	DB      *gorm.DB
	Service *service.ReportService
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db, Service: service.NewReportService(db)}
}

// parseFilter reads ?event_id=&district_id=&scope=&frozen=; frozen defaults
// to true so reports cover finalized data unless widened with frozen=false.
func (ctrl *ReportController) parseFilter(c *fiber.Ctx) (service.ReportFilter, error) {
	filter := service.ReportFilter{FrozenOnly: true}

	if raw := c.Query("event_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
		}
		filter.EventID = &id
	}
	if raw := c.Query("district_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "Invalid district ID")
		}
		filter.DistrictID = &id
	}
	switch scope := c.Query("scope"); scope {
	case "", "school", "district":
		filter.Scope = scope
	default:
		return filter, fiber.NewError(fiber.StatusBadRequest, "scope must be school or district")
	}
	if strings.EqualFold(c.Query("frozen"), "false") {
		filter.FrozenOnly = false
	}

	return filter, nil
}

func (ctrl *ReportController) districtNames() (map[uuid.UUID]string, error) {
	var districts []regionModel.DistrictModel
	if err := ctrl.DB.Find(&districts).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(districts))
	for _, d := range districts {
		names[d.DistrictID] = d.DistrictName
	}
	return names, nil
}

// GET /api/it-admin/reports/participants-by-district
func (ctrl *ReportController) ParticipantsByDistrict(c *fiber.Ctx) error {
	filter, err := ctrl.parseFilter(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	names, err := ctrl.districtNames()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load districts")
	}

	report, err := ctrl.Service.ParticipantsByDistrict(filter, names)
	if err != nil {
		log.Printf("[ERROR] participants-by-district report failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonOK(c, "Participants by district", report)
}

// GET /api/it-admin/reports/teachers-by-district
func (ctrl *ReportController) TeachersByDistrict(c *fiber.Ctx) error {
	filter, err := ctrl.parseFilter(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	names, err := ctrl.districtNames()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load districts")
	}

	report, err := ctrl.Service.TeachersByDistrict(filter, names)
	if err != nil {
		log.Printf("[ERROR] teachers-by-district report failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonOK(c, "Teachers by district", report)
}

// GET /api/it-admin/reports/teachers-by-school
func (ctrl *ReportController) TeachersBySchool(c *fiber.Ctx) error {
	filter, err := ctrl.parseFilter(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	names, err := ctrl.districtNames()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load districts")
	}

	report, err := ctrl.Service.TeachersBySchool(filter, names)
	if err != nil {
		log.Printf("[ERROR] teachers-by-school report failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonOK(c, "Teachers by school", report)
}
