// file: internals/features/coordinator/route/coordinator_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/coordinator/controller"
	evaluationRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/route"
)

// CoordinatorRoutes mounts the judging panel under /api/event-coordinator.
func CoordinatorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCoordinatorController(db)

	api.Get("/events/school", ctrl.ListSchoolEvents)
	api.Get("/events/district", ctrl.ListDistrictEvents)
	api.Get("/participants", ctrl.ListParticipants)
	api.Post("/marks", ctrl.SubmitMarks)

	evaluationRoute.EvaluationReadRoutes(api, db)
}
