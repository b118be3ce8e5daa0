// file: internals/features/events/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/controller"
)

func EventPublicRoutes(public fiber.Router, db *gorm.DB) {
	eventCtrl := controller.NewEventController(db)
	districtCtrl := controller.NewDistrictEventController(db)
	otherCtrl := controller.NewOtherEventController(db)

	public.Get("/events", eventCtrl.List)
	public.Get("/district-events", districtCtrl.List)
	public.Get("/other-events", otherCtrl.List)
}
