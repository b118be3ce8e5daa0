// file: internals/features/regions/dto/region_dto.go
package dto

import (
	"strings"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
)

type DistrictRequest struct {
	Name string `json:"name" validate:"required,min=2,max=120"`
}

type SchoolRequest struct {
	Name       string `json:"name" validate:"required,min=2,max=160"`
	DistrictID string `json:"district_id" validate:"required,uuid"`
}

type SchoolUpdateRequest struct {
	Name       *string `json:"name" validate:"omitempty,min=2,max=160"`
	DistrictID *string `json:"district_id" validate:"omitempty,uuid"`
	Approved   *bool   `json:"approved"`
}

type SchoolRoleRequest struct {
	Name string `json:"name" validate:"required,min=2,max=80"`
}

// Normalize trims surrounding whitespace; comparisons downstream are
// case-insensitive on the trimmed value.
func (r *DistrictRequest) Normalize()   { r.Name = strings.TrimSpace(r.Name) }
func (r *SchoolRoleRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }
func (r *SchoolRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.DistrictID = strings.TrimSpace(r.DistrictID)
}

type SchoolResponse struct {
	SchoolID         string `json:"school_id"`
	SchoolName       string `json:"school_name"`
	SchoolDistrictID string `json:"school_district_id"`
	DistrictName     string `json:"district_name,omitempty"`
	SchoolIsApproved bool   `json:"school_is_approved"`
}

func ToSchoolResponse(m *model.SchoolModel) SchoolResponse {
	resp := SchoolResponse{
		SchoolID:         m.SchoolID.String(),
		SchoolName:       m.SchoolName,
		SchoolDistrictID: m.SchoolDistrictID.String(),
		SchoolIsApproved: m.SchoolIsApproved,
	}
	if m.District != nil {
		resp.DistrictName = m.District.DistrictName
	}
	return resp
}
