// file: internals/features/accounts/controller/auth_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// AuthController serves one role; the route layer creates one per RoleSpec.
type AuthController struct {
	Spec     *service.RoleSpec
	Service  *service.AuthService
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB, spec *service.RoleSpec) *AuthController {
	return &AuthController{
		Spec:     spec,
		Service:  service.NewAuthService(db),
		Validate: validator.New(),
	}
}

// POST /api/<slug>/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	acct, err := ctrl.Service.Register(ctrl.Spec, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	msg := "Registration successful"
	if !ctrl.Spec.AutoApprove {
		msg = "Registration successful, awaiting approval"
	}
	return helper.JsonCreated(c, msg, dto.ToAccountResponse(ctrl.Spec.Role, acct))
}

// POST /api/<slug>/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, acct, err := ctrl.Service.Login(ctrl.Spec, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToAccountResponse(ctrl.Spec.Role, acct),
	})
}

// POST /api/<slug>/forgot-password
func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.ForgotPassword(ctrl.Spec, req.Email); err != nil {
		return helper.FromFiberError(c, err)
	}
	log.Printf("[INFO] password reset requested for %s (%s)", req.Email, ctrl.Spec.Role)
	return helper.JsonOK(c, "Password reset link sent", nil)
}

// POST /api/<slug>/reset-password
func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if err := ctrl.Service.ResetPassword(ctrl.Spec, &req); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Password has been reset", nil)
}
