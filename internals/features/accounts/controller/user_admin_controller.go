// file: internals/features/accounts/controller/user_admin_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type UserAdminController struct {
	Service  *service.UserAdminService
	Validate *validator.Validate
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{
		Service:  service.NewUserAdminService(db),
		Validate: validator.New(),
	}
}

func (ctrl *UserAdminController) resolve(c *fiber.Ctx) (*service.RoleSpec, uuid.UUID, error) {
	spec, ok := service.SpecForSlug(c.Params("role"))
	if !ok {
		return nil, uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}
	raw := c.Params("id")
	if raw == "" {
		return spec, uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, uuid.Nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	return spec, id, nil
}

// GET /api/admin/users/:role
func (ctrl *UserAdminController) List(c *fiber.Ctx) error {
	spec, _, err := ctrl.resolve(c)
	if err != nil {
		return err
	}
	users, lerr := ctrl.Service.List(spec)
	if lerr != nil {
		return helper.FromFiberError(c, lerr)
	}
	return helper.JsonOK(c, "Users fetched", users)
}

// PATCH /api/admin/users/:role/:id/approve
func (ctrl *UserAdminController) Approve(c *fiber.Ctx) error {
	return ctrl.setApproval(c, true, "User approved")
}

// PATCH /api/admin/users/:role/:id/reject
func (ctrl *UserAdminController) Reject(c *fiber.Ctx) error {
	return ctrl.setApproval(c, false, "User rejected")
}

func (ctrl *UserAdminController) setApproval(c *fiber.Ctx, approved bool, msg string) error {
	spec, id, err := ctrl.resolve(c)
	if err != nil {
		return err
	}
	acct, serr := ctrl.Service.SetApproval(spec, id, approved)
	if serr != nil {
		return helper.FromFiberError(c, serr)
	}
	return helper.JsonUpdated(c, msg, dto.ToAccountResponse(spec.Role, acct))
}

// PATCH /api/admin/users/:role/:id
func (ctrl *UserAdminController) Update(c *fiber.Ctx) error {
	spec, id, err := ctrl.resolve(c)
	if err != nil {
		return err
	}

	var req dto.UserUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	acct, serr := ctrl.Service.Update(spec, id, &req)
	if serr != nil {
		return helper.FromFiberError(c, serr)
	}
	return helper.JsonUpdated(c, "User updated", dto.ToAccountResponse(spec.Role, acct))
}

// DELETE /api/admin/users/:role/:id
func (ctrl *UserAdminController) Delete(c *fiber.Ctx) error {
	spec, id, err := ctrl.resolve(c)
	if err != nil {
		return err
	}
	if serr := ctrl.Service.Delete(spec, id); serr != nil {
		return helper.FromFiberError(c, serr)
	}
	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": id})
}

// PATCH /api/admin/users/:role/:id/reset-password
func (ctrl *UserAdminController) ResetPassword(c *fiber.Ctx) error {
	spec, id, err := ctrl.resolve(c)
	if err != nil {
		return err
	}

	var req dto.AdminResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if serr := ctrl.Service.ResetPassword(spec, id, req.Password); serr != nil {
		return helper.FromFiberError(c, serr)
	}
	return helper.JsonUpdated(c, "Password reset", fiber.Map{"id": id})
}
