// file: internals/features/accounts/service/role_registry.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/constants"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
)

// RoleSpec describes one identity table to the generic auth service. Adding a
// role means adding an entry here, nothing else.
type RoleSpec struct {
	Role string
	Slug string // path segment, e.g. /api/<slug>/login

	// AutoApprove skips the admin approval queue on registration.
	AutoApprove bool

	New  func() model.Account
	List func(db *gorm.DB) ([]model.Account, error)

	// ApplyExtras validates and binds role-specific registration fields.
	ApplyExtras func(db *gorm.DB, acct model.Account, req *dto.RegisterRequest) error

	// CheckUnique enforces role-specific uniqueness beyond email/mobile,
	// excluding excludeID (uuid.Nil on create).
	CheckUnique func(db *gorm.DB, acct model.Account, excludeID uuid.UUID) error
}

func listAs[T any](db *gorm.DB, box func(*T) model.Account) ([]model.Account, error) {
	var rows []T
	if err := db.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Account, 0, len(rows))
	for i := range rows {
		out = append(out, box(&rows[i]))
	}
	return out, nil
}

var roleRegistry = map[string]*RoleSpec{
	constants.RoleAdmin: {
		Role:        constants.RoleAdmin,
		Slug:        "admin",
		AutoApprove: true,
		New:         func() model.Account { return &model.AdminModel{} },
		List: func(db *gorm.DB) ([]model.Account, error) {
			return listAs(db, func(m *model.AdminModel) model.Account { return m })
		},
	},
	constants.RoleITAdmin: {
		Role: constants.RoleITAdmin,
		Slug: "it-admin",
		New:  func() model.Account { return &model.ITAdminModel{} },
		List: func(db *gorm.DB) ([]model.Account, error) {
			return listAs(db, func(m *model.ITAdminModel) model.Account { return m })
		},
	},
	constants.RoleEventCoordinator: {
		Role: constants.RoleEventCoordinator,
		Slug: "event-coordinator",
		New:  func() model.Account { return &model.EventCoordinatorModel{} },
		List: func(db *gorm.DB) ([]model.Account, error) {
			return listAs(db, func(m *model.EventCoordinatorModel) model.Account { return m })
		},
	},
	constants.RoleDistrictCoordinator: {
		Role: constants.RoleDistrictCoordinator,
		Slug: "district",
		New:  func() model.Account { return &model.DistrictCoordinatorModel{} },
		List: func(db *gorm.DB) ([]model.Account, error) {
			return listAs(db, func(m *model.DistrictCoordinatorModel) model.Account { return m })
		},
		ApplyExtras: bindDistrictCoordinator,
		CheckUnique: uniqueDistrictCoordinator,
	},
	constants.RoleSchoolUser: {
		Role: constants.RoleSchoolUser,
		Slug: "school",
		New:  func() model.Account { return &model.SchoolUserModel{} },
		List: func(db *gorm.DB) ([]model.Account, error) {
			return listAs(db, func(m *model.SchoolUserModel) model.Account { return m })
		},
		ApplyExtras: bindSchoolUser,
		CheckUnique: uniqueSchoolUser,
	},
}

// SpecForRole resolves by canonical role name.
func SpecForRole(role string) (*RoleSpec, bool) {
	spec, ok := roleRegistry[role]
	return spec, ok
}

// SpecForSlug resolves by URL path segment.
func SpecForSlug(slug string) (*RoleSpec, bool) {
	for _, spec := range roleRegistry {
		if spec.Slug == slug {
			return spec, true
		}
	}
	return nil, false
}

// AllSpecs returns every registered role, for route mounting.
func AllSpecs() []*RoleSpec {
	out := make([]*RoleSpec, 0, len(roleRegistry))
	for _, spec := range roleRegistry {
		out = append(out, spec)
	}
	return out
}

/* ===================== Role-specific hooks ===================== */

func bindDistrictCoordinator(db *gorm.DB, acct model.Account, req *dto.RegisterRequest) error {
	m, ok := acct.(*model.DistrictCoordinatorModel)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "role registry mismatch")
	}
	if req.DistrictID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "district_id is required")
	}
	districtID, err := uuid.Parse(req.DistrictID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid district ID")
	}
	var district regionModel.DistrictModel
	if err := db.First(&district, "district_id = ?", districtID).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "District not found")
	}
	m.DistrictID = &districtID
	return nil
}

func uniqueDistrictCoordinator(db *gorm.DB, acct model.Account, excludeID uuid.UUID) error {
	m := acct.(*model.DistrictCoordinatorModel)
	if m.DistrictID == nil {
		return nil
	}
	var count int64
	db.Model(&model.DistrictCoordinatorModel{}).
		Where("district_id = ? AND id <> ?", *m.DistrictID, excludeID).
		Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "A coordinator for this district already exists")
	}
	return nil
}

func bindSchoolUser(db *gorm.DB, acct model.Account, req *dto.RegisterRequest) error {
	m, ok := acct.(*model.SchoolUserModel)
	if !ok {
		return fiber.NewError(fiber.StatusInternalServerError, "role registry mismatch")
	}
	if req.DistrictID == "" || req.SchoolName == "" || req.RoleInSchool == "" {
		return fiber.NewError(fiber.StatusBadRequest, "district_id, school_name and role_in_school are required")
	}
	districtID, err := uuid.Parse(req.DistrictID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid district ID")
	}
	var school regionModel.SchoolModel
	if err := db.First(&school,
		"LOWER(school_name) = LOWER(?) AND school_district_id = ?", req.SchoolName, districtID,
	).Error; err != nil {
		return fiber.NewError(fiber.StatusNotFound, "School not found in this district")
	}
	m.DistrictID = &districtID
	m.SchoolName = school.SchoolName
	m.RoleInSchool = req.RoleInSchool
	return nil
}

func uniqueSchoolUser(db *gorm.DB, acct model.Account, excludeID uuid.UUID) error {
	m := acct.(*model.SchoolUserModel)
	if m.DistrictID == nil || m.SchoolName == "" {
		return nil
	}
	var count int64
	db.Model(&model.SchoolUserModel{}).
		Where("district_id = ? AND LOWER(school_name) = LOWER(?) AND id <> ?",
			*m.DistrictID, m.SchoolName, excludeID).
		Count(&count)
	if count > 0 {
		return fiber.NewError(fiber.StatusConflict, "A user for this school already exists")
	}
	return nil
}
