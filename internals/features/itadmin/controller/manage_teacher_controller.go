// file: internals/features/itadmin/controller/manage_teacher_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/itadmin/dto"
	participantDTO "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/dto"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	participantService "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/service"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

type ManageTeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewManageTeacherController(db *gorm.DB) *ManageTeacherController {
	return &ManageTeacherController{DB: db, Validate: validator.New()}
}

// GET /api/it-admin/teachers — ?source=, ?district_id=
func (ctrl *ManageTeacherController) List(c *fiber.Ctx) error {
	participantCtrl := ManageParticipantController{DB: ctrl.DB}
	districtNames, eventTitles, districtEventTitles := participantCtrl.nameMaps()

	var districtID *uuid.UUID
	if raw := c.Query("district_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid district ID")
		}
		districtID = &id
	}

	if sourceOf(c) == "district" {
		q := ctrl.DB.Order("district_accompanying_teacher_name ASC")
		if districtID != nil {
			q = q.Where("district_accompanying_teacher_district_id = ?", *districtID)
		}
		var rows []participantModel.DistrictAccompanyingTeacherModel
		if err := q.Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teachers")
		}
		out := make([]dto.DistrictTeacherView, 0, len(rows))
		for _, t := range rows {
			view := dto.DistrictTeacherView{
				DistrictAccompanyingTeacherModel: t,
				DistrictName:                     districtNames[t.DistrictAccompanyingTeacherDistrictID],
			}
			if t.DistrictAccompanyingTeacherEventID != nil {
				view.EventTitle = districtEventTitles[*t.DistrictAccompanyingTeacherEventID]
			}
			out = append(out, view)
		}
		return helper.JsonOK(c, "Teachers fetched", out)
	}

	q := ctrl.DB.Order("accompanying_teacher_name ASC")
	if districtID != nil {
		q = q.Where("accompanying_teacher_district_id = ?", *districtID)
	}
	var rows []participantModel.AccompanyingTeacherModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load teachers")
	}
	out := make([]dto.TeacherView, 0, len(rows))
	for _, t := range rows {
		view := dto.TeacherView{
			AccompanyingTeacherModel: t,
			DistrictName:             districtNames[t.AccompanyingTeacherDistrictID],
		}
		if t.AccompanyingTeacherEventID != nil {
			view.EventTitle = eventTitles[*t.AccompanyingTeacherEventID]
		}
		out = append(out, view)
	}
	return helper.JsonOK(c, "Teachers fetched", out)
}

// POST /api/it-admin/teachers
func (ctrl *ManageTeacherController) Create(c *fiber.Ctx) error {
	var req dto.ITTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	districtID, _ := uuid.Parse(req.DistrictID)
	var eventID *uuid.UUID
	if req.EventID != nil {
		parsed, err := uuid.Parse(*req.EventID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event ID")
		}
		eventID = &parsed
	}
	userID := itAdminID(c)

	if req.SchoolName != "" {
		if err := participantService.EnsureTeacherUnique(ctrl.DB, req.Name, districtID, eventID, req.Gender, uuid.Nil); err != nil {
			return helper.FromFiberError(c, err)
		}
		teacher := participantModel.AccompanyingTeacherModel{
			AccompanyingTeacherName:       req.Name,
			AccompanyingTeacherEmail:      req.Email,
			AccompanyingTeacherMobile:     req.Mobile,
			AccompanyingTeacherMember:     req.Member,
			AccompanyingTeacherGender:     req.Gender,
			AccompanyingTeacherEventID:    eventID,
			AccompanyingTeacherDistrictID: districtID,
			AccompanyingTeacherSchoolName: req.SchoolName,
			AccompanyingTeacherCreatedBy:  &userID,
		}
		if req.Present != nil {
			teacher.AccompanyingTeacherPresent = *req.Present
		}
		if err := ctrl.DB.Create(&teacher).Error; err != nil {
			log.Printf("[ERROR] it-admin create teacher: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register teacher")
		}
		return helper.JsonCreated(c, "Teacher registered", teacher)
	}

	if err := participantService.EnsureDistrictTeacherUnique(ctrl.DB, req.Name, districtID, eventID, req.Gender, uuid.Nil); err != nil {
		return helper.FromFiberError(c, err)
	}
	teacher := participantModel.DistrictAccompanyingTeacherModel{
		DistrictAccompanyingTeacherName:       req.Name,
		DistrictAccompanyingTeacherEmail:      req.Email,
		DistrictAccompanyingTeacherMobile:     req.Mobile,
		DistrictAccompanyingTeacherMember:     req.Member,
		DistrictAccompanyingTeacherGender:     req.Gender,
		DistrictAccompanyingTeacherEventID:    eventID,
		DistrictAccompanyingTeacherDistrictID: districtID,
		DistrictAccompanyingTeacherCreatedBy:  &userID,
	}
	if req.Present != nil {
		teacher.DistrictAccompanyingTeacherPresent = *req.Present
	}
	if err := ctrl.DB.Create(&teacher).Error; err != nil {
		log.Printf("[ERROR] it-admin create district teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register teacher")
	}
	return helper.JsonCreated(c, "Teacher registered", teacher)
}

// PATCH /api/it-admin/teachers/:id
func (ctrl *ManageTeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	var req participantDTO.TeacherUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if sourceOf(c) == "district" {
		var t participantModel.DistrictAccompanyingTeacherModel
		if err := ctrl.DB.First(&t, "district_accompanying_teacher_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		updates := districtTeacherUpdates(&req)
		if err := participantService.GuardFrozenUpdate(t.DistrictAccompanyingTeacherFrozen, updates, "district_accompanying_teacher_frozen"); err != nil {
			return helper.FromFiberError(c, err)
		}
		if len(updates) > 0 {
			if err := ctrl.DB.Model(&t).Updates(updates).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
			}
		}
		return helper.JsonUpdated(c, "Teacher updated", t)
	}

	var t participantModel.AccompanyingTeacherModel
	if err := ctrl.DB.First(&t, "accompanying_teacher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	updates := schoolTeacherUpdates(&req)
	if err := participantService.GuardFrozenUpdate(t.AccompanyingTeacherFrozen, updates, "accompanying_teacher_frozen"); err != nil {
		return helper.FromFiberError(c, err)
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&t).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update teacher")
		}
	}
	return helper.JsonUpdated(c, "Teacher updated", t)
}

// DELETE /api/it-admin/teachers/:id
func (ctrl *ManageTeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher ID")
	}

	if sourceOf(c) == "district" {
		var t participantModel.DistrictAccompanyingTeacherModel
		if err := ctrl.DB.First(&t, "district_accompanying_teacher_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
		}
		if err := participantService.GuardFrozenDelete(t.DistrictAccompanyingTeacherFrozen); err != nil {
			return helper.FromFiberError(c, err)
		}
		if err := ctrl.DB.Delete(&t).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
		}
		return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"district_accompanying_teacher_id": id})
	}

	var t participantModel.AccompanyingTeacherModel
	if err := ctrl.DB.First(&t, "accompanying_teacher_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher not found")
	}
	if err := participantService.GuardFrozenDelete(t.AccompanyingTeacherFrozen); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(&t).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete teacher")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"accompanying_teacher_id": id})
}

func schoolTeacherUpdates(req *participantDTO.TeacherUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["accompanying_teacher_name"] = *req.Name
	}
	if req.Email != nil {
		updates["accompanying_teacher_email"] = *req.Email
	}
	if req.Mobile != nil {
		updates["accompanying_teacher_mobile"] = *req.Mobile
	}
	if req.Member != nil {
		updates["accompanying_teacher_member"] = *req.Member
	}
	if req.Gender != nil {
		updates["accompanying_teacher_gender"] = *req.Gender
	}
	if req.EventID != nil {
		if id, err := uuid.Parse(*req.EventID); err == nil {
			updates["accompanying_teacher_event_id"] = id
		}
	}
	if req.Present != nil {
		updates["accompanying_teacher_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["accompanying_teacher_frozen"] = *req.Frozen
	}
	return updates
}

func districtTeacherUpdates(req *participantDTO.TeacherUpdateRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["district_accompanying_teacher_name"] = *req.Name
	}
	if req.Email != nil {
		updates["district_accompanying_teacher_email"] = *req.Email
	}
	if req.Mobile != nil {
		updates["district_accompanying_teacher_mobile"] = *req.Mobile
	}
	if req.Member != nil {
		updates["district_accompanying_teacher_member"] = *req.Member
	}
	if req.Gender != nil {
		updates["district_accompanying_teacher_gender"] = *req.Gender
	}
	if req.EventID != nil {
		if id, err := uuid.Parse(*req.EventID); err == nil {
			updates["district_accompanying_teacher_event_id"] = id
		}
	}
	if req.Present != nil {
		updates["district_accompanying_teacher_present"] = *req.Present
	}
	if req.Frozen != nil {
		updates["district_accompanying_teacher_frozen"] = *req.Frozen
	}
	return updates
}
