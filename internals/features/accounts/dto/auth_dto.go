// file: internals/features/accounts/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email,max=160"`
	Mobile   string `json:"mobile" validate:"required,min=7,max=20"`
	Password string `json:"password" validate:"required,min=6,max=72"`

	// Role-specific extras; the role registry decides which are required.
	DistrictID   string `json:"district_id" validate:"omitempty,uuid"`
	SchoolName   string `json:"school_name" validate:"omitempty,max=160"`
	RoleInSchool string `json:"role_in_school" validate:"omitempty,max=80"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.DistrictID = strings.TrimSpace(r.DistrictID)
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.RoleInSchool = strings.TrimSpace(r.RoleInSchool)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type UserUpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=120"`
	Email        *string `json:"email" validate:"omitempty,email,max=160"`
	Mobile       *string `json:"mobile" validate:"omitempty,min=7,max=20"`
	DistrictID   *string `json:"district_id" validate:"omitempty,uuid"`
	SchoolName   *string `json:"school_name" validate:"omitempty,max=160"`
	RoleInSchool *string `json:"role_in_school" validate:"omitempty,max=80"`
	Approved     *bool   `json:"approved"`
}

type AdminResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// AccountResponse is the safe projection of any identity row.
type AccountResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	Approved     bool      `json:"approved"`
	Role         string    `json:"role"`
	DistrictID   string    `json:"district_id,omitempty"`
	SchoolName   string    `json:"school_name,omitempty"`
	RoleInSchool string    `json:"role_in_school,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToAccountResponse(role string, acct model.Account) AccountResponse {
	resp := AccountResponse{
		ID:       acct.GetID().String(),
		Name:     acct.GetName(),
		Email:    acct.GetEmail(),
		Mobile:   acct.GetMobile(),
		Approved: acct.IsApproved(),
		Role:     role,
	}
	switch m := acct.(type) {
	case *model.SchoolUserModel:
		if m.DistrictID != nil {
			resp.DistrictID = m.DistrictID.String()
		}
		resp.SchoolName = m.SchoolName
		resp.RoleInSchool = m.RoleInSchool
		resp.CreatedAt = m.CreatedAt
	case *model.DistrictCoordinatorModel:
		if m.DistrictID != nil {
			resp.DistrictID = m.DistrictID.String()
		}
		resp.CreatedAt = m.CreatedAt
	case *model.AdminModel:
		resp.CreatedAt = m.CreatedAt
	case *model.ITAdminModel:
		resp.CreatedAt = m.CreatedAt
	case *model.EventCoordinatorModel:
		resp.CreatedAt = m.CreatedAt
	}
	return resp
}

type LoginResponse struct {
	Token string          `json:"token"`
	User  AccountResponse `json:"user"`
}
