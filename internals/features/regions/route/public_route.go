// file: internals/features/regions/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/controller"
)

// RegionPublicRoutes feeds the registration forms: district and school
// dropdowns plus the school-role list. No auth.
func RegionPublicRoutes(public fiber.Router, db *gorm.DB) {
	districtCtrl := controller.NewDistrictController(db)
	schoolCtrl := controller.NewSchoolController(db)
	roleCtrl := controller.NewSchoolRoleController(db)

	public.Get("/districts", districtCtrl.GetAllDistricts)
	public.Get("/schools", schoolCtrl.GetAllSchools)
	public.Get("/school-roles", roleCtrl.List)
}
