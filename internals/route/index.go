// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	accountRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/route"
	announcementRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/announcements/route"
	contactRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/contact/route"
	coordinatorRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/coordinator/route"
	districtRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/district/route"
	evaluationRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/route"
	eventRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/route"
	itadminRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/itadmin/route"
	regionRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/route"
	schoolRoute "github.com/Ramashis2004/sri-satyasai-backend/internals/features/school/route"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/constants"
	auth "github.com/Ramashis2004/sri-satyasai-backend/internals/middlewares/auth"
	scope "github.com/Ramashis2004/sri-satyasai-backend/internals/middlewares/scope"
)

// SetupRoutes wires the whole HTTP surface. Order matters: the per-role auth
// endpoints (register/login/...) must be registered before the protected
// groups that share their path prefixes, because group middleware applies to
// every route registered under the prefix afterwards.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// Public auth: /api/admin/login, /api/school/register, ...
	accountRoute.AuthRoutes(api, db)

	public := api.Group("/public")
	eventRoute.EventPublicRoutes(public, db)
	regionRoute.RegionPublicRoutes(public, db)
	announcementRoute.AnnouncementPublicRoutes(public, db)
	contactRoute.ContactPublicRoutes(public, db)

	// Legacy mixed surface under /api/district (public reads, admin writes).
	regionRoute.RegionDistrictRoutes(api, db)

	admin := api.Group("/admin",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorAdminOnly, constants.RoleAdmin),
	)
	accountRoute.UserAdminRoutes(admin, db)
	regionRoute.RegionAdminRoutes(admin, db)
	eventRoute.EventAdminRoutes(admin, db)
	evaluationRoute.EvaluationAdminRoutes(admin, db)
	announcementRoute.AnnouncementAdminRoutes(admin, db)
	contactRoute.ContactAdminRoutes(admin, db)

	school := api.Group("/school",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorSchoolOnly, constants.RoleSchoolUser),
		scope.SchoolScope(db),
	)
	schoolRoute.SchoolRoutes(school, db)

	district := api.Group("/district-user",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorDistrictOnly, constants.RoleDistrictCoordinator),
		scope.DistrictScope(db),
	)
	districtRoute.DistrictRoutes(district, db)

	itadmin := api.Group("/it-admin",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorITAdminOnly, constants.RoleITAdmin),
	)
	itadminRoute.ITAdminRoutes(itadmin, db)

	coordinator := api.Group("/event-coordinator",
		auth.AuthMiddleware(),
		auth.OnlyRoles(constants.RoleErrorCoordinatorOnly, constants.RoleEventCoordinator),
	)
	coordinatorRoute.CoordinatorRoutes(coordinator, db)
}
