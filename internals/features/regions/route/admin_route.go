// file: internals/features/regions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/controller"
)

// RegionAdminRoutes mounts district/school/role management under the
// admin-only group.
func RegionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	districtCtrl := controller.NewDistrictController(db)
	schoolCtrl := controller.NewSchoolController(db)
	roleCtrl := controller.NewSchoolRoleController(db)

	districts := admin.Group("/districts")
	districts.Post("/", districtCtrl.CreateDistrict)
	districts.Patch("/:id", districtCtrl.RenameDistrict)
	districts.Delete("/:id", districtCtrl.DeleteDistrict)

	schools := admin.Group("/schools")
	schools.Post("/", schoolCtrl.CreateSchool)
	schools.Patch("/:id/approve", schoolCtrl.ApproveSchool)
	schools.Patch("/:id", schoolCtrl.UpdateSchool)
	schools.Delete("/:id", schoolCtrl.DeleteSchool)
	schools.Get("/", schoolCtrl.GetAllSchools)

	roles := admin.Group("/school-roles")
	roles.Post("/", roleCtrl.Create)
	roles.Patch("/:id", roleCtrl.Update)
	roles.Delete("/:id", roleCtrl.Delete)
	roles.Get("/", roleCtrl.List)
}
