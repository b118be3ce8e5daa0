// file: internals/features/accounts/route/user_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/controller"
)

// UserAdminRoutes mounts per-role user management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	users := admin.Group("/users")
	users.Get("/:role", ctrl.List)
	users.Patch("/:role/:id/approve", ctrl.Approve)
	users.Patch("/:role/:id/reject", ctrl.Reject)
	users.Patch("/:role/:id/reset-password", ctrl.ResetPassword)
	users.Patch("/:role/:id", ctrl.Update)
	users.Delete("/:role/:id", ctrl.Delete)
}
