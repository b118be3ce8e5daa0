// file: internals/features/coordinator/service/scoring_service.go
package service

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/coordinator/dto"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

type ScoringService struct {
	DB *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{DB: db}
}

// SubmitMarks writes each item in input order, so a participant listed twice
// keeps the later tuple. Ids that match no row for the event are skipped
// silently; only the count of rows actually written comes back.
func (s *ScoringService) SubmitMarks(req *dto.MarksRequest, evaluatorID *uuid.UUID) (*dto.MarksResponse, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}

	now := time.Now()
	updated := 0
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ParticipantID)
		if err != nil {
			continue
		}

		var res *gorm.DB
		if req.Scope == "district" {
			res = s.DB.Model(&participantModel.DistrictParticipantModel{}).
				Where("district_participant_id = ? AND district_participant_event_id = ?", pid, eventID).
				Updates(map[string]interface{}{
					"district_participant_marks":        item.Marks,
					"district_participant_evaluation":   item.Evaluation,
					"district_participant_evaluated_by": evaluatorID,
					"district_participant_evaluated_at": now,
				})
		} else {
			res = s.DB.Model(&participantModel.ParticipantModel{}).
				Where("participant_id = ? AND participant_event_id = ?", pid, eventID).
				Updates(map[string]interface{}{
					"participant_marks":        item.Marks,
					"participant_evaluation":   item.Evaluation,
					"participant_evaluated_by": evaluatorID,
					"participant_evaluated_at": now,
				})
		}
		if res.Error != nil {
			log.Printf("[ERROR] submit marks for %s: %v", pid, res.Error)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save marks")
		}
		if res.RowsAffected > 0 {
			updated++
		}
	}

	return &dto.MarksResponse{UpdatedCount: updated}, nil
}
