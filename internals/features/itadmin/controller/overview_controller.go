// file: internals/features/itadmin/controller/overview_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/itadmin/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type OverviewController struct {
	Service *service.OverviewService
}

func NewOverviewController(db *gorm.DB) *OverviewController {
	return &OverviewController{Service: service.NewOverviewService(db)}
}

// GET /api/it-admin/overview/metrics
func (ctrl *OverviewController) Metrics(c *fiber.Ctx) error {
	metrics, err := ctrl.Service.Metrics()
	if err != nil {
		log.Printf("[ERROR] overview metrics failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute metrics")
	}
	return helper.JsonOK(c, "Overview metrics", metrics)
}

// GET /api/it-admin/overview/not-reported
func (ctrl *OverviewController) NotReported(c *fiber.Ctx) error {
	out, err := ctrl.Service.NotReported()
	if err != nil {
		log.Printf("[ERROR] not-reported overview failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute overview")
	}
	return helper.JsonOK(c, "Not reported", out)
}

// GET /api/it-admin/overview/students-yet-to-report
func (ctrl *OverviewController) StudentsYetToReport(c *fiber.Ctx) error {
	out, err := ctrl.Service.StudentsYetToReport()
	if err != nil {
		log.Printf("[ERROR] yet-to-report overview failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute overview")
	}
	return helper.JsonOK(c, "Students yet to report", out)
}

// GET /api/it-admin/overview/teachers
func (ctrl *OverviewController) Teachers(c *fiber.Ctx) error {
	out, err := ctrl.Service.Teachers()
	if err != nil {
		log.Printf("[ERROR] teachers overview failed: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to compute overview")
	}
	return helper.JsonOK(c, "Teachers overview", out)
}
