// file: internals/features/coordinator/dto/marks_dto.go
package dto

import "strings"

// MarkItem is one participant's score. Marks ride the rubric's 0-30 scale;
// Evaluation is the judges' free-text remark.
type MarkItem struct {
	ParticipantID string  `json:"participant_id" validate:"required,uuid"`
	Marks         int     `json:"marks" validate:"min=0,max=30"`
	Evaluation    *string `json:"evaluation" validate:"omitempty,max=2000"`
}

// MarksRequest submits scores for one event. Items apply in input order, so
// when the same participant appears twice the later entry wins.
type MarksRequest struct {
	Scope   string     `json:"scope" validate:"required,oneof=school district"`
	EventID string     `json:"event_id" validate:"required,uuid"`
	Items   []MarkItem `json:"items" validate:"required,min=1,dive"`
}

func (r *MarksRequest) Normalize() {
	r.Scope = strings.ToLower(strings.TrimSpace(r.Scope))
}

// MarksResponse reports only how many rows were written; unknown participant
// ids are skipped without error.
type MarksResponse struct {
	UpdatedCount int `json:"updatedCount"`
}
