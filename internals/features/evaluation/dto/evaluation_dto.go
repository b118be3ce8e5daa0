// file: internals/features/evaluation/dto/evaluation_dto.go
package dto

import (
	"strings"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/model"
)

// EvaluationFormatRequest carries the whole rubric; an upsert replaces the
// stored row for the (scope, event) pair wholesale.
type EvaluationFormatRequest struct {
	Scope        string                      `json:"scope" validate:"required,oneof=school district"`
	EventID      string                      `json:"event_id" validate:"required,uuid"`
	Criteria     []model.EvaluationCriterion `json:"criteria" validate:"required,min=1,dive"`
	Judges       []string                    `json:"judges" validate:"omitempty,dive,max=120"`
	Coordinator1 *string                     `json:"coordinator1" validate:"omitempty,max=120"`
	Coordinator2 *string                     `json:"coordinator2" validate:"omitempty,max=120"`
}

func (r *EvaluationFormatRequest) Normalize() {
	r.Scope = strings.ToLower(strings.TrimSpace(r.Scope))
	for i := range r.Criteria {
		r.Criteria[i].Label = strings.TrimSpace(r.Criteria[i].Label)
	}
	for i := range r.Judges {
		r.Judges[i] = strings.TrimSpace(r.Judges[i])
	}
}

// TotalMarks sums the rubric's per-criterion maximums.
func (r *EvaluationFormatRequest) TotalMarks() int {
	total := 0
	for _, c := range r.Criteria {
		total += c.MaxMarks
	}
	return total
}

// EvaluationFormatResponse is the decoded shape handed to clients. When no
// rubric exists yet the API returns this with empty slices rather than 404 so
// form UIs can render a blank template.
type EvaluationFormatResponse struct {
	Scope        string                      `json:"scope"`
	EventID      string                      `json:"event_id"`
	Criteria     []model.EvaluationCriterion `json:"criteria"`
	TotalMarks   int                         `json:"total_marks"`
	Judges       []string                    `json:"judges"`
	Coordinator1 *string                     `json:"coordinator1,omitempty"`
	Coordinator2 *string                     `json:"coordinator2,omitempty"`
}
