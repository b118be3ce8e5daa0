// file: internals/features/accounts/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/controller"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/service"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/middlewares"
)

// AuthRoutes mounts register/login/forgot/reset for every registered role:
// /api/admin/login, /api/school/register, /api/district/forgot-password, ...
// with /api/auth/<role>/... aliases for clients that prefer one prefix.
// Login and register sit behind the tighter rate limiter.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	for _, spec := range service.AllSpecs() {
		ctrl := controller.NewAuthController(db, spec)

		for _, grp := range []fiber.Router{
			api.Group("/" + spec.Slug),
			api.Group("/auth/" + spec.Slug),
		} {
			grp.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
			grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
			grp.Post("/forgot-password", middlewares.LoginRateLimiter(), ctrl.ForgotPassword)
			grp.Post("/reset-password", ctrl.ResetPassword)
		}
	}
}
