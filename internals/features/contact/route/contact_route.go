// file: internals/features/contact/route/contact_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/contact/controller"
)

func ContactPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactController(db)
	api.Post("/contact", ctrl.Submit)
}

func ContactAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewContactController(db)
	api.Get("/contact-messages", ctrl.List)
}
