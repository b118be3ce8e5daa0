// file: internals/features/events/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/controller"
)

func EventAdminRoutes(admin fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	districtCtrl := controller.NewDistrictEventController(db)
	otherCtrl := controller.NewOtherEventController(db)

	events := admin.Group("/events")
	events.Post("/", eventCtrl.Create)
	events.Patch("/:id", eventCtrl.Update)
	events.Delete("/:id", eventCtrl.Delete)
	events.Get("/", eventCtrl.List)

	districtEvents := admin.Group("/district-events")
	districtEvents.Post("/", districtCtrl.Create)
	districtEvents.Patch("/:id", districtCtrl.Update)
	districtEvents.Delete("/:id", districtCtrl.Delete)
	districtEvents.Get("/", districtCtrl.List)

	otherEvents := admin.Group("/other-events")
	otherEvents.Post("/", otherCtrl.Create)
	otherEvents.Patch("/:id", otherCtrl.Update)
	otherEvents.Delete("/:id", otherCtrl.Delete)
	otherEvents.Get("/", otherCtrl.List)
}
