// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes exposes the unauthenticated service endpoints.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			dbStatus = "down"
		}

		status := fiber.StatusOK
		if dbStatus == "down" {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"status":      "ok",
			"database":    dbStatus,
			"server_time": time.Now().Format(time.RFC3339),
			"uptime":      time.Since(startedAt).String(),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonOK(c, "Event registration API", fiber.Map{
			"server_time": time.Now().Format(time.RFC3339),
		})
	})
}
