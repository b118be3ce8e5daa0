// file: internals/features/school/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/school/controller"
)

// SchoolRoutes mounts the school user's surface. The caller wires auth, role
// check and the school scope middleware onto the group.
func SchoolRoutes(school fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewSchoolEventController(db)
	participantCtrl := controller.NewSchoolParticipantController(db)
	teacherCtrl := controller.NewSchoolTeacherController(db)

	events := school.Group("/events")
	events.Get("/", eventCtrl.List)
	events.Post("/", eventCtrl.Create)
	events.Patch("/:id", eventCtrl.Update)
	events.Delete("/:id", eventCtrl.Delete)

	participants := school.Group("/participants")
	participants.Get("/", participantCtrl.List)
	participants.Post("/", participantCtrl.Create)
	participants.Patch("/:id/assign-teacher", participantCtrl.AssignTeacher)
	participants.Patch("/:id", participantCtrl.Update)
	participants.Delete("/:id", participantCtrl.Delete)

	teachers := school.Group("/teachers")
	teachers.Get("/", teacherCtrl.List)
	teachers.Post("/", teacherCtrl.Create)
	teachers.Patch("/:id", teacherCtrl.Update)
	teachers.Delete("/:id", teacherCtrl.Delete)
}
