// file: internals/features/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/announcements/controller"
)

func AnnouncementAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)
	announcements := api.Group("/announcements")
	announcements.Get("/", ctrl.List)
	announcements.Post("/", ctrl.Create)
	announcements.Patch("/:id", ctrl.Update)
	announcements.Delete("/:id", ctrl.Delete)
}

func AnnouncementPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)
	api.Get("/announcements", ctrl.PublicList)
}
