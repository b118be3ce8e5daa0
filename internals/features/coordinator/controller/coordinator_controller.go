// file: internals/features/coordinator/controller/coordinator_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/coordinator/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/coordinator/service"
	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// CoordinatorController serves the judging panel: which events actually have
// contestants, the contestant lists themselves, and the marks intake.
type CoordinatorController struct {
	DB       *gorm.DB
	Scoring  *service.ScoringService
	Validate *validator.Validate
}

func NewCoordinatorController(db *gorm.DB) *CoordinatorController {
	return &CoordinatorController{DB: db, Scoring: service.NewScoringService(db), Validate: validator.New()}
}

// GET /api/event-coordinator/events/school — only events that have at least
// one registered participant are worth judging.
func (ctrl *CoordinatorController) ListSchoolEvents(c *fiber.Ctx) error {
	var ids []uuid.UUID
	if err := ctrl.DB.Model(&participantModel.ParticipantModel{}).
		Distinct("participant_event_id").
		Pluck("participant_event_id", &ids).Error; err != nil {
		log.Printf("[ERROR] list judged school events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	events := []eventModel.EventModel{}
	if len(ids) > 0 {
		if err := ctrl.DB.Where("event_id IN ?", ids).Order("event_title ASC").Find(&events).Error; err != nil {
			log.Printf("[ERROR] list judged school events: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
		}
	}
	return helper.JsonOK(c, "Events fetched", events)
}

// GET /api/event-coordinator/events/district
func (ctrl *CoordinatorController) ListDistrictEvents(c *fiber.Ctx) error {
	var ids []uuid.UUID
	if err := ctrl.DB.Model(&participantModel.DistrictParticipantModel{}).
		Distinct("district_participant_event_id").
		Pluck("district_participant_event_id", &ids).Error; err != nil {
		log.Printf("[ERROR] list judged district events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
	}

	events := []eventModel.DistrictEventModel{}
	if len(ids) > 0 {
		if err := ctrl.DB.Where("district_event_id IN ?", ids).Order("district_event_title ASC").Find(&events).Error; err != nil {
			log.Printf("[ERROR] list judged district events: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load events")
		}
	}
	return helper.JsonOK(c, "Events fetched", events)
}

type participantRow struct {
	participantModel.ParticipantModel
	DistrictName string `json:"district_name"`
}

type districtParticipantRow struct {
	participantModel.DistrictParticipantModel
	DistrictName string `json:"district_name"`
}

// GET /api/event-coordinator/participants?scope=school&event_id=...
func (ctrl *CoordinatorController) ListParticipants(c *fiber.Ctx) error {
	scope := c.Query("scope", "school")
	if scope != "school" && scope != "district" {
		return helper.JsonError(c, fiber.StatusBadRequest, "scope must be school or district")
	}
	eventID, err := uuid.Parse(c.Query("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
	}

	districtNames := map[uuid.UUID]string{}
	var districts []regionModel.DistrictModel
	ctrl.DB.Find(&districts)
	for _, d := range districts {
		districtNames[d.DistrictID] = d.DistrictName
	}

	if scope == "district" {
		var rows []participantModel.DistrictParticipantModel
		if err := ctrl.DB.
			Where("district_participant_event_id = ?", eventID).
			Order("district_participant_name ASC").
			Find(&rows).Error; err != nil {
			log.Printf("[ERROR] coordinator list participants: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
		}
		out := make([]districtParticipantRow, 0, len(rows))
		for _, p := range rows {
			out = append(out, districtParticipantRow{
				DistrictParticipantModel: p,
				DistrictName:             districtNames[p.DistrictParticipantDistrictID],
			})
		}
		return helper.JsonOK(c, "Participants fetched", out)
	}

	var rows []participantModel.ParticipantModel
	if err := ctrl.DB.
		Where("participant_event_id = ?", eventID).
		Order("participant_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] coordinator list participants: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
	}
	out := make([]participantRow, 0, len(rows))
	for _, p := range rows {
		out = append(out, participantRow{
			ParticipantModel: p,
			DistrictName:     districtNames[p.ParticipantDistrictID],
		})
	}
	return helper.JsonOK(c, "Participants fetched", out)
}

// POST /api/event-coordinator/marks
func (ctrl *CoordinatorController) SubmitMarks(c *fiber.Ctx) error {
	var req dto.MarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var evaluatorID *uuid.UUID
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			evaluatorID = &id
		}
	}

	resp, err := ctrl.Scoring.SubmitMarks(&req, evaluatorID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Marks saved", resp)
}
