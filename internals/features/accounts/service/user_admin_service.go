// file: internals/features/accounts/service/user_admin_service.go
package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/constants"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// UserAdminService is the admin's view over all identity tables: listing,
// approval, edits, deletes and forced password resets.
type UserAdminService struct {
	DB *gorm.DB
}

func NewUserAdminService(db *gorm.DB) *UserAdminService {
	return &UserAdminService{DB: db}
}

// List returns every account of a role. Admin accounts are never listed to
// other admins; the role yields an empty list instead of an error.
func (s *UserAdminService) List(spec *RoleSpec) ([]dto.AccountResponse, error) {
	if spec.Role == constants.RoleAdmin {
		return []dto.AccountResponse{}, nil
	}
	accounts, err := spec.List(s.DB)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, acct := range accounts {
		out = append(out, dto.ToAccountResponse(spec.Role, acct))
	}
	return out, nil
}

func (s *UserAdminService) find(spec *RoleSpec, id uuid.UUID) (model.Account, error) {
	acct := spec.New()
	if err := s.DB.First(acct, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return nil, err
	}
	return acct, nil
}

// SetApproval approves or rejects an account.
func (s *UserAdminService) SetApproval(spec *RoleSpec, id uuid.UUID, approved bool) (model.Account, error) {
	acct, err := s.find(spec, id)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(acct).Update("approved", approved).Error; err != nil {
		return nil, err
	}
	acct.SetApproved(approved)
	return acct, nil
}

// Update edits an account's identity fields, re-running the uniqueness checks
// against every other row.
func (s *UserAdminService) Update(spec *RoleSpec, id uuid.UUID, req *dto.UserUpdateRequest) (model.Account, error) {
	acct, err := s.find(spec, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		var count int64
		s.DB.Model(spec.New()).
			Where("LOWER(email) = LOWER(?) AND id <> ?", email, id).
			Count(&count)
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		updates["email"] = email
	}
	if req.Mobile != nil {
		mobile := strings.TrimSpace(*req.Mobile)
		var count int64
		s.DB.Model(spec.New()).
			Where("mobile = ? AND id <> ?", mobile, id).
			Count(&count)
		if count > 0 {
			return nil, fiber.NewError(fiber.StatusConflict, "Mobile number already registered")
		}
		updates["mobile"] = mobile
	}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Approved != nil {
		updates["approved"] = *req.Approved
	}

	if err := s.applyRoleUpdates(spec, acct, id, req, updates); err != nil {
		return nil, err
	}

	if len(updates) == 0 {
		return acct, nil
	}
	if err := s.DB.Model(acct).Updates(updates).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Duplicate value for a unique field")
		}
		return nil, err
	}
	return s.find(spec, id)
}

// applyRoleUpdates handles district/school moves for the two scoped roles.
func (s *UserAdminService) applyRoleUpdates(spec *RoleSpec, acct model.Account, id uuid.UUID, req *dto.UserUpdateRequest, updates map[string]interface{}) error {
	switch spec.Role {
	case constants.RoleDistrictCoordinator:
		if req.DistrictID == nil {
			return nil
		}
		districtID, err := uuid.Parse(*req.DistrictID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid district ID")
		}
		var district regionModel.DistrictModel
		if err := s.DB.First(&district, "district_id = ?", districtID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "District not found")
		}
		var count int64
		s.DB.Model(&model.DistrictCoordinatorModel{}).
			Where("district_id = ? AND id <> ?", districtID, id).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "A coordinator for this district already exists")
		}
		updates["district_id"] = districtID

	case constants.RoleSchoolUser:
		current := acct.(*model.SchoolUserModel)
		districtID := current.DistrictID
		schoolName := current.SchoolName
		roleInSchool := current.RoleInSchool

		if req.DistrictID != nil {
			parsed, err := uuid.Parse(*req.DistrictID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid district ID")
			}
			districtID = &parsed
			updates["district_id"] = parsed
		}
		if req.SchoolName != nil {
			schoolName = strings.TrimSpace(*req.SchoolName)
			updates["school_name"] = schoolName
		}
		if req.RoleInSchool != nil {
			roleInSchool = strings.TrimSpace(*req.RoleInSchool)
			updates["role_in_school"] = roleInSchool
		}
		if req.DistrictID == nil && req.SchoolName == nil && req.RoleInSchool == nil {
			return nil
		}
		if districtID == nil || schoolName == "" {
			return fiber.NewError(fiber.StatusBadRequest, "district_id and school_name are required")
		}

		var school regionModel.SchoolModel
		if err := s.DB.First(&school,
			"LOWER(school_name) = LOWER(?) AND school_district_id = ?", schoolName, *districtID,
		).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "School not found in this district")
		}

		var count int64
		s.DB.Model(&model.SchoolUserModel{}).
			Where("district_id = ? AND LOWER(school_name) = LOWER(?) AND LOWER(role_in_school) = LOWER(?) AND id <> ?",
				*districtID, schoolName, roleInSchool, id).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "A user with this role already exists for the school")
		}
	}
	return nil
}

// Delete removes the account row.
func (s *UserAdminService) Delete(spec *RoleSpec, id uuid.UUID) error {
	acct, err := s.find(spec, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(acct).Error
}

// ResetPassword lets an admin set a user's password directly.
func (s *UserAdminService) ResetPassword(spec *RoleSpec, id uuid.UUID, password string) error {
	acct, err := s.find(spec, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	return s.DB.Model(acct).Updates(map[string]interface{}{
		"password":               string(hash),
		"password_reset_token":   nil,
		"password_reset_expires": nil,
	}).Error
}
