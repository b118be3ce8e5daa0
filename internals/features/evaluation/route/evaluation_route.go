// file: internals/features/evaluation/route/evaluation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/controller"
)

// EvaluationAdminRoutes exposes read + upsert of the judging rubric.
func EvaluationAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEvaluationController(db)
	api.Get("/evaluation-form", ctrl.Get)
	api.Put("/evaluation-form", ctrl.Upsert)
}

// EvaluationReadRoutes exposes the rubric read-only, for judging panels.
func EvaluationReadRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEvaluationController(db)
	api.Get("/evaluation-form", ctrl.Get)
}
