// file: internals/features/school/controller/school_participant_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type SchoolParticipantController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolParticipantController(db *gorm.DB) *SchoolParticipantController {
	return &SchoolParticipantController{DB: db, Validate: validator.New()}
}

// requestScope reads what the scope middleware resolved.
func requestScope(c *fiber.Ctx) (uuid.UUID, string) {
	rawDistrict, _ := c.Locals("district_id").(string)
	districtID, _ := uuid.Parse(rawDistrict)
	schoolName, _ := c.Locals("school_name").(string)
	return districtID, schoolName
}

// GET /api/school/participants — optionally ?event_id=
func (ctrl *SchoolParticipantController) List(c *fiber.Ctx) error {
	districtID, schoolName := requestScope(c)

	q := ctrl.DB.
		Where("participant_district_id = ? AND participant_school_name = ?", districtID, schoolName).
		Order("participant_name ASC")
	if raw := c.Query("event_id"); raw != "" {
		eventID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		q = q.Where("participant_event_id = ?", eventID)
	}

	var participants []model.ParticipantModel
	if err := q.Find(&participants).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load participants")
	}
	return helper.JsonOK(c, "Participants fetched", participants)
}

// POST /api/school/participants
func (ctrl *SchoolParticipantController) Create(c *fiber.Ctx) error {
	districtID, schoolName := requestScope(c)

	var req dto.ParticipantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	eventID, _ := uuid.Parse(req.EventID)
	var ev eventModel.EventModel
	if err := ctrl.DB.First(&ev, "event_id = ?", eventID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}
	if ev.EventGender != eventModel.GenderBoth && string(ev.EventGender) != req.Gender {
		return helper.JsonError(c, fiber.StatusBadRequest, "Event is restricted to "+string(ev.EventGender)+" participants")
	}

	userID := scopedUserID(c)
	p := model.ParticipantModel{
		ParticipantName:       req.Name,
		ParticipantClassName:  req.ClassName,
		ParticipantGender:     req.Gender,
		ParticipantGroupName:  req.GroupName,
		ParticipantEventID:    eventID,
		ParticipantDistrictID: districtID,
		ParticipantSchoolName: schoolName,
		ParticipantCreatedBy:  &userID,
	}
	if req.Present != nil {
		p.ParticipantPresent = *req.Present
	}
	if req.TeacherID != nil {
		teacherID, err := uuid.Parse(*req.TeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
		}
		p.ParticipantTeacherID = &teacherID
	}

	if err := ctrl.DB.Create(&p).Error; err != nil {
		log.Printf("[ERROR] failed to create participant: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create participant")
	}
	return helper.JsonCreated(c, "Participant registered", p)
}

func (ctrl *SchoolParticipantController) findScoped(c *fiber.Ctx) (*model.ParticipantModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid participant ID")
	}
	districtID, schoolName := requestScope(c)

	var p model.ParticipantModel
	if err := ctrl.DB.First(&p,
		"participant_id = ? AND participant_district_id = ? AND participant_school_name = ?",
		id, districtID, schoolName,
	).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Participant not found")
	}
	return &p, nil
}

// PATCH /api/school/participants/:id
func (ctrl *SchoolParticipantController) Update(c *fiber.Ctx) error {
	p, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.ParticipantUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

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
		eventID, perr := uuid.Parse(*req.EventID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		updates["participant_event_id"] = eventID
	}
	if req.TeacherID != nil {
		teacherID, perr := uuid.Parse(*req.TeacherID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
		}
		updates["participant_teacher_id"] = teacherID
	}
	if req.Present != nil {
		updates["participant_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["participant_frozen"] = *req.Frozen
	}

	if err := service.GuardFrozenUpdate(p.ParticipantFrozen, updates, "participant_frozen"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Nothing to update", p)
	}
	if err := ctrl.DB.Model(p).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update participant")
	}
	return helper.JsonUpdated(c, "Participant updated", p)
}

// PATCH /api/school/participants/:id/assign-teacher
func (ctrl *SchoolParticipantController) AssignTeacher(c *fiber.Ctx) error {
	p, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if p.ParticipantFrozen {
		return helper.JsonError(c, fiber.StatusLocked, "Record is frozen and cannot be modified")
	}

	var req struct {
		TeacherID string `json:"teacher_id" validate:"required,uuid"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	teacherID, _ := uuid.Parse(req.TeacherID)

	districtID, schoolName := requestScope(c)
	var teacher model.AccompanyingTeacherModel
	if err := ctrl.DB.First(&teacher,
		"accompanying_teacher_id = ? AND accompanying_teacher_district_id = ? AND accompanying_teacher_school_name = ?",
		teacherID, districtID, schoolName,
	).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}

	if err := ctrl.DB.Model(p).Update("participant_teacher_id", teacherID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign teacher")
	}
	return helper.JsonUpdated(c, "Teacher assigned", p)
}

// DELETE /api/school/participants/:id
func (ctrl *SchoolParticipantController) Delete(c *fiber.Ctx) error {
	p, err := ctrl.findScoped(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.GuardFrozenDelete(p.ParticipantFrozen); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(p).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete participant")
	}
	return helper.JsonDeleted(c, "Participant deleted", fiber.Map{"participant_id": p.ParticipantID})
}
