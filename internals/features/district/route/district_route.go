// file: internals/features/district/route/district_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/district/controller"
)

// DistrictRoutes mounts the district coordinator's surface; auth, role check
// and the district scope middleware are wired by the caller.
func DistrictRoutes(district fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewDistrictEventController(db)
	participantCtrl := controller.NewDistrictParticipantController(db)
	teacherCtrl := controller.NewDistrictTeacherController(db)

	events := district.Group("/events")
	events.Get("/cultural", eventCtrl.GetCultural)
	events.Get("/", eventCtrl.List)

	participants := district.Group("/participants")
	participants.Get("/", participantCtrl.List)
	participants.Post("/", participantCtrl.Create)
	participants.Patch("/:id", participantCtrl.Update)
	participants.Delete("/:id", participantCtrl.Delete)

	teachers := district.Group("/teachers")
	teachers.Get("/", teacherCtrl.List)
	teachers.Post("/", teacherCtrl.Create)
	teachers.Patch("/:id", teacherCtrl.Update)
	teachers.Delete("/:id", teacherCtrl.Delete)
}
