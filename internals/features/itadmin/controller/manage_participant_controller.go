// file: internals/features/itadmin/controller/manage_participant_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/itadmin/dto"
	participantDTO "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/dto"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	participantService "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/service"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// ManageParticipantController is the IT admin's cross-school view over both
// participant tables. ?source=school|district picks the table (default
// school).
type ManageParticipantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewManageParticipantController(db *gorm.DB) *ManageParticipantController {
	return &ManageParticipantController{DB: db, Validate: validator.New()}
}

func sourceOf(c *fiber.Ctx) string {
	if c.Query("source") == "district" {
		return "district"
	}
	return "school"
}

func (ctrl *ManageParticipantController) nameMaps() (map[uuid.UUID]string, map[uuid.UUID]string, map[uuid.UUID]string) {
	districtNames := map[uuid.UUID]string{}
	var districts []regionModel.DistrictModel
	ctrl.DB.Find(&districts)
	for _, d := range districts {
		districtNames[d.DistrictID] = d.DistrictName
	}

	eventTitles := map[uuid.UUID]string{}
	var events []eventModel.EventModel
	ctrl.DB.Find(&events)
	for _, e := range events {
		eventTitles[e.EventID] = e.EventTitle
	}

	districtEventTitles := map[uuid.UUID]string{}
	var districtEvents []eventModel.DistrictEventModel
	ctrl.DB.Find(&districtEvents)
	for _, e := range districtEvents {
		districtEventTitles[e.DistrictEventID] = e.DistrictEventTitle
	}

	return districtNames, eventTitles, districtEventTitles
}

// GET /api/it-admin/participants — filters: ?source=, ?event_id=, ?district_id=,
// paged with ?page= and ?per_page=.
func (ctrl *ManageParticipantController) List(c *fiber.Ctx) error {
	districtNames, eventTitles, districtEventTitles := ctrl.nameMaps()
	paging := helper.ResolvePaging(c, 50, 200)

	var eventID, districtID *uuid.UUID
	if raw := c.Query("event_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		eventID = &id
	}
	if raw := c.Query("district_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
		}
		districtID = &id
	}

	if sourceOf(c) == "district" {
		q := ctrl.DB.Order("district_participant_name ASC")
		if eventID != nil {
			q = q.Where("district_participant_event_id = ?", *eventID)
		}
		if districtID != nil {
			q = q.Where("district_participant_district_id = ?", *districtID)
		}
		var total int64
		if err := q.Model(&participantModel.DistrictParticipantModel{}).Count(&total).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
		}
		var rows []participantModel.DistrictParticipantModel
		if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
		}
		out := make([]dto.DistrictParticipantView, 0, len(rows))
		for _, p := range rows {
			out = append(out, dto.DistrictParticipantView{
				DistrictParticipantModel: p,
				EventTitle:               districtEventTitles[p.DistrictParticipantEventID],
				DistrictName:             districtNames[p.DistrictParticipantDistrictID],
			})
		}
		pagination := helper.BuildPagination(paging, total, len(out))
		return helper.JsonList(c, "Participants fetched", out, &pagination)
	}

	q := ctrl.DB.Order("participant_name ASC")
	if eventID != nil {
		q = q.Where("participant_event_id = ?", *eventID)
	}
	if districtID != nil {
		q = q.Where("participant_district_id = ?", *districtID)
	}
	var total int64
	if err := q.Model(&participantModel.ParticipantModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
	}
	var rows []participantModel.ParticipantModel
	if err := q.Offset(paging.Offset).Limit(paging.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
	}
	out := make([]dto.ParticipantView, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.ParticipantView{
			ParticipantModel: p,
			EventTitle:       eventTitles[p.ParticipantEventID],
			DistrictName:     districtNames[p.ParticipantDistrictID],
		})
	}
	pagination := helper.BuildPagination(paging, total, len(out))
	return helper.JsonList(c, "Participants fetched", out, &pagination)
}

// POST /api/it-admin/participants — registers on behalf of a school (when
// school_name is set) or a district.
func (ctrl *ManageParticipantController) Create(c *fiber.Ctx) error {
	var req dto.ITParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	eventID, _ := uuid.Parse(req.EventID)
	districtID, _ := uuid.Parse(req.DistrictID)
	userID := itAdminID(c)

	if req.SchoolName != "" {
		var ev eventModel.EventModel
		if err := ctrl.DB.First(&ev, "event_id = ?", eventID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		p := participantModel.ParticipantModel{
			ParticipantName:       req.Name,
			ParticipantClassName:  req.ClassName,
			ParticipantGender:     req.Gender,
			ParticipantGroupName:  req.GroupName,
			ParticipantEventID:    eventID,
			ParticipantDistrictID: districtID,
			ParticipantSchoolName: req.SchoolName,
			ParticipantCreatedBy:  &userID,
		}
		if req.Present != nil {
			p.ParticipantPresent = *req.Present
		}
		if err := ctrl.DB.Create(&p).Error; err != nil {
			log.Printf("[ERROR] it-admin create participant: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create participant")
		}
		return helper.JsonCreated(c, "Participant registered", p)
	}

	var ev eventModel.DistrictEventModel
	if err := ctrl.DB.First(&ev, "district_event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "District event not found")
	}
	p := participantModel.DistrictParticipantModel{
		DistrictParticipantName:       req.Name,
		DistrictParticipantClassName:  req.ClassName,
		DistrictParticipantGender:     req.Gender,
		DistrictParticipantEventID:    eventID,
		DistrictParticipantDistrictID: districtID,
		DistrictParticipantCreatedBy:  &userID,
	}
	if req.Present != nil {
		p.DistrictParticipantPresent = *req.Present
	}
	if err := ctrl.DB.Create(&p).Error; err != nil {
		log.Printf("[ERROR] it-admin create district participant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create participant")
	}
	return helper.JsonCreated(c, "Participant registered", p)
}

// PATCH /api/it-admin/participants/:id — same freeze rules as the scoped
// handlers; IT admins can still flip the frozen flag by itself.
func (ctrl *ManageParticipantController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid participant ID")
	}

	var req participantDTO.ParticipantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if sourceOf(c) == "district" {
		var p participantModel.DistrictParticipantModel
		if err := ctrl.DB.First(&p, "district_participant_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
		}
		updates := districtParticipantUpdates(&req)
		if err := participantService.GuardFrozenUpdate(p.DistrictParticipantFrozen, updates, "district_participant_frozen"); err != nil {
			return helper.FromFiberError(c, err)
		}
		if len(updates) > 0 {
			if err := ctrl.DB.Model(&p).Updates(updates).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update participant")
			}
		}
		return helper.JsonUpdated(c, "Participant updated", p)
	}

	var p participantModel.ParticipantModel
	if err := ctrl.DB.First(&p, "participant_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
	}
	updates := schoolParticipantUpdates(&req)
	if err := participantService.GuardFrozenUpdate(p.ParticipantFrozen, updates, "participant_frozen"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&p).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update participant")
		}
	}
	return helper.JsonUpdated(c, "Participant updated", p)
}

// DELETE /api/it-admin/participants/:id
func (ctrl *ManageParticipantController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid participant ID")
	}

	if sourceOf(c) == "district" {
		var p participantModel.DistrictParticipantModel
		if err := ctrl.DB.First(&p, "district_participant_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
		}
		if err := participantService.GuardFrozenDelete(p.DistrictParticipantFrozen); err != nil {
			return helper.FromFiberError(c, err)
		}
		if err := ctrl.DB.Delete(&p).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete participant")
		}
		return helper.JsonDeleted(c, "Participant deleted", fiber.Map{"district_participant_id": id})
	}

	var p participantModel.ParticipantModel
	if err := ctrl.DB.First(&p, "participant_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Participant not found")
	}
	if err := participantService.GuardFrozenDelete(p.ParticipantFrozen); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(&p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete participant")
	}
	return helper.JsonDeleted(c, "Participant deleted", fiber.Map{"participant_id": id})
}

func itAdminID(c *fiber.Ctx) uuid.UUID {
	raw, _ := c.Locals("user_id").(string)
	id, _ := uuid.Parse(raw)
	return id
}

func schoolParticipantUpdates(req *participantDTO.ParticipantUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["participant_name"] = *req.Name
	}
	if req.ClassName != nil {
		updates["participant_class_name"] = *req.ClassName
	}
	if req.Gender != nil {
		updates["participant_gender"] = *req.Gender
	}
	if req.GroupName != nil {
		updates["participant_group_name"] = *req.GroupName
	}
	if req.EventID != nil {
		if id, err := uuid.Parse(*req.EventID); err == nil {
			updates["participant_event_id"] = id
		}
	}
	if req.TeacherID != nil {
		if id, err := uuid.Parse(*req.TeacherID); err == nil {
			updates["participant_teacher_id"] = id
		}
	}
	if req.Present != nil {
		updates["participant_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["participant_frozen"] = *req.Frozen
	}
	return updates
}

func districtParticipantUpdates(req *participantDTO.ParticipantUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["district_participant_name"] = *req.Name
	}
	if req.ClassName != nil {
		updates["district_participant_class_name"] = *req.ClassName
	}
	if req.Gender != nil {
		updates["district_participant_gender"] = *req.Gender
	}
	if req.EventID != nil {
		if id, err := uuid.Parse(*req.EventID); err == nil {
			updates["district_participant_event_id"] = id
		}
	}
	if req.Present != nil {
		updates["district_participant_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["district_participant_frozen"] = *req.Frozen
	}
	return updates
}
