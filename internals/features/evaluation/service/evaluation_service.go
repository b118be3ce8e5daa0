// file: internals/features/evaluation/service/evaluation_service.go
package service

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/evaluation/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type EvaluationService struct {
	DB *gorm.DB
}

func NewEvaluationService(db *gorm.DB) *EvaluationService {
	return &EvaluationService{DB: db}
}

// Get returns the rubric for a (scope, event) pair. Absence is not an error:
// a blank response shape comes back so clients can render an empty form.
func (s *EvaluationService) Get(scope model.EvaluationScope, eventID uuid.UUID) (*dto.EvaluationFormatResponse, error) {
	resp := &dto.EvaluationFormatResponse{
		Scope:    string(scope),
		EventID:  eventID.String(),
		Criteria: []model.EvaluationCriterion{},
		Judges:   []string{},
	}

	var row model.EvaluationFormatModel
	err := s.DB.
		Where("evaluation_format_scope = ? AND evaluation_format_event_id = ?", scope, eventID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return resp, nil
	}
	if err != nil {
		log.Printf("[ERROR] load evaluation format: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load evaluation format")
	}

	if len(row.EvaluationFormatCriteria) > 0 {
		if err := sonic.Unmarshal(row.EvaluationFormatCriteria, &resp.Criteria); err != nil {
			log.Printf("[ERROR] decode evaluation criteria: %v", err)
		}
	}
	if len(row.EvaluationFormatJudges) > 0 {
		if err := sonic.Unmarshal(row.EvaluationFormatJudges, &resp.Judges); err != nil {
			log.Printf("[ERROR] decode evaluation judges: %v", err)
		}
	}
	resp.TotalMarks = row.EvaluationFormatTotalMarks
	resp.Coordinator1 = row.EvaluationFormatCoordinator1
	resp.Coordinator2 = row.EvaluationFormatCoordinator2
	return resp, nil
}

// Upsert replaces the rubric for the (scope, event) pair, recomputing the
// total from the per-criterion maximums.
func (s *EvaluationService) Upsert(req *dto.EvaluationFormatRequest, updatedBy *uuid.UUID) (*model.EvaluationFormatModel, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid event ID")
	}

	criteriaJSON, err := sonic.Marshal(req.Criteria)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid criteria payload")
	}
	judges := req.Judges
	if judges == nil {
		judges = []string{}
	}
	judgesJSON, err := sonic.Marshal(judges)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid judges payload")
	}

	scope := model.EvaluationScope(req.Scope)

	var row model.EvaluationFormatModel
	err = s.DB.
		Where("evaluation_format_scope = ? AND evaluation_format_event_id = ?", scope, eventID).
		First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.EvaluationFormatModel{
			EvaluationFormatScope:        scope,
			EvaluationFormatEventID:      eventID,
			EvaluationFormatCriteria:     criteriaJSON,
			EvaluationFormatTotalMarks:   req.TotalMarks(),
			EvaluationFormatJudges:       judgesJSON,
			EvaluationFormatCoordinator1: req.Coordinator1,
			EvaluationFormatCoordinator2: req.Coordinator2,
			EvaluationFormatUpdatedBy:    updatedBy,
		}
		if err := s.DB.Create(&row).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return nil, fiber.NewError(fiber.StatusConflict, "An evaluation format for this event already exists")
			}
			log.Printf("[ERROR] create evaluation format: %v", err)
			return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save evaluation format")
		}
		return &row, nil
	case err != nil:
		log.Printf("[ERROR] load evaluation format: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save evaluation format")
	}

	updates := map[string]interface{}{
		"evaluation_format_criteria":     criteriaJSON,
		"evaluation_format_total_marks":  req.TotalMarks(),
		"evaluation_format_judges":       judgesJSON,
		"evaluation_format_coordinator1": req.Coordinator1,
		"evaluation_format_coordinator2": req.Coordinator2,
		"evaluation_format_updated_by":   updatedBy,
	}
	if err := s.DB.Model(&row).Updates(updates).Error; err != nil {
		log.Printf("[ERROR] update evaluation format: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save evaluation format")
	}
	return &row, nil
}
