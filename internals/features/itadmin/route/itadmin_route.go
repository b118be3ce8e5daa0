// file: internals/features/itadmin/route/itadmin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/route"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/itadmin/controller"
)

// ITAdminRoutes mounts the operations console: live overview figures,
// pre-aggregated reports, on-behalf record management, and the finalize
// switch. The caller is expected to have gated the group on the it_admin
// role already.
func ITAdminRoutes(api fiber.Router, db *gorm.DB) {
	overviewCtrl := controller.NewOverviewController(db)
	reportCtrl := controller.NewReportController(db)
	participantCtrl := controller.NewManageParticipantController(db)
	teacherCtrl := controller.NewManageTeacherController(db)
	finalizeCtrl := controller.NewFinalizeController(db)

	overview := api.Group("/overview")
	overview.Get("/metrics", overviewCtrl.Metrics)
	overview.Get("/not-reported", overviewCtrl.NotReported)
	overview.Get("/students-yet-to-report", overviewCtrl.StudentsYetToReport)
	overview.Get("/teachers", overviewCtrl.Teachers)

	reports := api.Group("/reports")
	reports.Get("/participants-by-district", reportCtrl.ParticipantsByDistrict)
	reports.Get("/teachers-by-district", reportCtrl.TeachersByDistrict)
	reports.Get("/teachers-by-school", reportCtrl.TeachersBySchool)

	participants := api.Group("/participants")
	participants.Get("/", participantCtrl.List)
	participants.Post("/", participantCtrl.Create)
	participants.Post("/finalize", finalizeCtrl.FinalizeParticipants)
	participants.Patch("/:id", participantCtrl.Update)
	participants.Delete("/:id", participantCtrl.Delete)

	teachers := api.Group("/teachers")
	teachers.Get("/", teacherCtrl.List)
	teachers.Post("/", teacherCtrl.Create)
	teachers.Post("/finalize", finalizeCtrl.FinalizeTeachers)
	teachers.Patch("/:id", teacherCtrl.Update)
	teachers.Delete("/:id", teacherCtrl.Delete)

	// Event listings, needed when registering records on a school's behalf.
	eventRoute.EventPublicRoutes(api, db)

	api.Post("/finalize", finalizeCtrl.Finalize)
}
