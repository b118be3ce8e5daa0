// file: internals/features/regions/route/district_surface_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/constants"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/controller"
	auth "github.com/Ramashis2004/sri-satyasai-backend/internals/middlewares/auth"
)

// RegionDistrictRoutes is the legacy /api/district surface: region reads are
// public, writes are admin-only, and school approval is open to district
// coordinators as well. Middleware sits on the individual routes because the
// group mixes public and protected endpoints (and shares its prefix with the
// district coordinator's auth routes).
func RegionDistrictRoutes(api fiber.Router, db *gorm.DB) {
	districtCtrl := controller.NewDistrictController(db)
	schoolCtrl := controller.NewSchoolController(db)
	roleCtrl := controller.NewSchoolRoleController(db)

	authMW := auth.AuthMiddleware()
	adminMW := auth.OnlyRoles(constants.RoleErrorAdminOnly, constants.RoleAdmin)
	approverMW := auth.OnlyRoles("Access denied: admin or district coordinator only",
		constants.RoleAdmin, constants.RoleDistrictCoordinator)

	district := api.Group("/district")

	district.Get("/districts", districtCtrl.GetAllDistricts)
	district.Get("/schools", schoolCtrl.GetAllSchools)
	district.Get("/schools/:districtName", schoolCtrl.GetSchoolsByDistrictName)
	district.Get("/school-roles", roleCtrl.List)

	district.Post("/districts", authMW, adminMW, districtCtrl.CreateDistrict)
	district.Patch("/districts/:id", authMW, adminMW, districtCtrl.RenameDistrict)
	district.Delete("/districts/:id", authMW, adminMW, districtCtrl.DeleteDistrict)

	district.Post("/schools", authMW, adminMW, schoolCtrl.CreateSchool)
	district.Patch("/schools/:id/approve", authMW, approverMW, schoolCtrl.ApproveSchool)
	district.Patch("/schools/:id", authMW, adminMW, schoolCtrl.UpdateSchool)
	district.Delete("/schools/:id", authMW, adminMW, schoolCtrl.DeleteSchool)
}
