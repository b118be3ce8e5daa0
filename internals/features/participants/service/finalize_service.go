// file: internals/features/participants/service/finalize_service.go
package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

type FinalizeScope string

const (
	FinalizeAll      FinalizeScope = "all"
	FinalizeSchool   FinalizeScope = "school"
	FinalizeDistrict FinalizeScope = "district"
)

// FinalizeTarget picks which tables a run touches: participant rosters,
// accompanying teachers, or both. Rosters can be frozen while teacher lists
// stay editable.
type FinalizeTarget string

const (
	TargetParticipants FinalizeTarget = "participants"
	TargetTeachers     FinalizeTarget = "teachers"
	TargetBoth         FinalizeTarget = "both"
)

// FinalizeFilter narrows which rows a finalize run touches. Zero-value fields
// mean "no filter". SchoolName only applies to the school-source tables.
type FinalizeFilter struct {
	EventID    *uuid.UUID
	DistrictID *uuid.UUID
	SchoolName string
}

// FinalizeResult reports how many rows each table saw change.
type FinalizeResult struct {
	SchoolParticipants   int64 `json:"school_participants"`
	SchoolTeachers       int64 `json:"school_teachers"`
	DistrictParticipants int64 `json:"district_participants"`
	DistrictTeachers     int64 `json:"district_teachers"`
}

func (r FinalizeResult) Total() int64 {
	return r.SchoolParticipants + r.SchoolTeachers + r.DistrictParticipants + r.DistrictTeachers
}

// Finalize flips the frozen flag with one set-based UPDATE per table in scope.
// Re-running with the same arguments converges (rows already in the target
// state simply match zero or all again); there is no cross-table transaction,
// a partial failure leaves earlier tables frozen and is safe to retry.
func Finalize(db *gorm.DB, scope FinalizeScope, target FinalizeTarget, filter FinalizeFilter, freeze bool) (FinalizeResult, error) {
	var result FinalizeResult

	switch scope {
	case FinalizeAll, FinalizeSchool, FinalizeDistrict:
	default:
		return result, fiber.NewError(fiber.StatusBadRequest, "scope must be one of all, school, district")
	}
	switch target {
	case TargetParticipants, TargetTeachers, TargetBoth:
	default:
		return result, fiber.NewError(fiber.StatusBadRequest, "target must be one of participants, teachers, both")
	}

	participants := target == TargetBoth || target == TargetParticipants
	teachers := target == TargetBoth || target == TargetTeachers

	if scope == FinalizeAll || scope == FinalizeSchool {
		if participants {
			n, err := freezeTable(db, &model.ParticipantModel{}, "participant", filter, true, freeze)
			if err != nil {
				return result, err
			}
			result.SchoolParticipants = n
		}
		if teachers {
			n, err := freezeTable(db, &model.AccompanyingTeacherModel{}, "accompanying_teacher", filter, true, freeze)
			if err != nil {
				return result, err
			}
			result.SchoolTeachers = n
		}
	}

	if scope == FinalizeAll || scope == FinalizeDistrict {
		if participants {
			n, err := freezeTable(db, &model.DistrictParticipantModel{}, "district_participant", filter, false, freeze)
			if err != nil {
				return result, err
			}
			result.DistrictParticipants = n
		}
		if teachers {
			n, err := freezeTable(db, &model.DistrictAccompanyingTeacherModel{}, "district_accompanying_teacher", filter, false, freeze)
			if err != nil {
				return result, err
			}
			result.DistrictTeachers = n
		}
	}

	log.Printf("[INFO] finalize scope=%s target=%s freeze=%v rows=%d", scope, target, freeze, result.Total())
	return result, nil
}

func freezeTable(db *gorm.DB, mdl interface{}, prefix string, filter FinalizeFilter, hasSchool, freeze bool) (int64, error) {
	q := db.Model(mdl)
	if filter.EventID != nil {
		q = q.Where(prefix+"_event_id = ?", *filter.EventID)
	}
	if filter.DistrictID != nil {
		q = q.Where(prefix+"_district_id = ?", *filter.DistrictID)
	}
	if hasSchool && filter.SchoolName != "" {
		q = q.Where("LOWER("+prefix+"_school_name) = LOWER(?)", filter.SchoolName)
	}

	res := q.Update(prefix+"_frozen", freeze)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
