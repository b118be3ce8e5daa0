// file: internals/features/participants/service/finalize_service_test.go
package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

// openTestDB returns an isolated in-file SQLite database in a temp directory.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db")
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := gdb.AutoMigrate(
		&model.ParticipantModel{},
		&model.DistrictParticipantModel{},
		&model.AccompanyingTeacherModel{},
		&model.DistrictAccompanyingTeacherModel{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func seedParticipant(t *testing.T, db *gorm.DB, school string, districtID, eventID uuid.UUID) model.ParticipantModel {
	t.Helper()
	p := model.ParticipantModel{
		ParticipantName:       "Student",
		ParticipantGender:     "boy",
		ParticipantEventID:    eventID,
		ParticipantDistrictID: districtID,
		ParticipantSchoolName: school,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return p
}

func seedDistrictParticipant(t *testing.T, db *gorm.DB, districtID, eventID uuid.UUID) model.DistrictParticipantModel {
	t.Helper()
	p := model.DistrictParticipantModel{
		DistrictParticipantName:       "Student",
		DistrictParticipantGender:     "girl",
		DistrictParticipantEventID:    eventID,
		DistrictParticipantDistrictID: districtID,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed district participant: %v", err)
	}
	return p
}

func TestFinalizeSchoolScopeByName(t *testing.T) {
	db := openTestDB(t)
	district := uuid.New()
	event := uuid.New()

	alpha := seedParticipant(t, db, "Alpha High", district, event)
	beta := seedParticipant(t, db, "Beta High", district, event)
	dp := seedDistrictParticipant(t, db, district, event)

	result, err := Finalize(db, FinalizeSchool, TargetBoth, FinalizeFilter{SchoolName: "alpha high"}, true)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.SchoolParticipants != 1 {
		t.Errorf("expected 1 school participant frozen, got %d", result.SchoolParticipants)
	}
	if result.DistrictParticipants != 0 {
		t.Errorf("district rows must be untouched in school scope, got %d", result.DistrictParticipants)
	}

	var got model.ParticipantModel
	db.First(&got, "participant_id = ?", alpha.ParticipantID)
	if !got.ParticipantFrozen {
		t.Error("Alpha High participant should be frozen")
	}
	db.First(&got, "participant_id = ?", beta.ParticipantID)
	if got.ParticipantFrozen {
		t.Error("Beta High participant must stay unfrozen")
	}

	var gotDP model.DistrictParticipantModel
	db.First(&gotDP, "district_participant_id = ?", dp.DistrictParticipantID)
	if gotDP.DistrictParticipantFrozen {
		t.Error("district participant must stay unfrozen")
	}
}

func TestFinalizeAllIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	district := uuid.New()
	event := uuid.New()
	seedParticipant(t, db, "Alpha High", district, event)
	seedDistrictParticipant(t, db, district, event)

	if _, err := Finalize(db, FinalizeAll, TargetBoth, FinalizeFilter{}, true); err != nil {
		t.Fatalf("first finalize: %v", err)
	}
	if _, err := Finalize(db, FinalizeAll, TargetBoth, FinalizeFilter{}, true); err != nil {
		t.Fatalf("second finalize: %v", err)
	}

	var frozen int64
	db.Model(&model.ParticipantModel{}).Where("participant_frozen = ?", true).Count(&frozen)
	if frozen != 1 {
		t.Errorf("expected 1 frozen school participant after re-run, got %d", frozen)
	}
	db.Model(&model.DistrictParticipantModel{}).Where("district_participant_frozen = ?", true).Count(&frozen)
	if frozen != 1 {
		t.Errorf("expected 1 frozen district participant after re-run, got %d", frozen)
	}
}

func TestFinalizeUnfreeze(t *testing.T) {
	db := openTestDB(t)
	district := uuid.New()
	event := uuid.New()
	p := seedParticipant(t, db, "Alpha High", district, event)

	if _, err := Finalize(db, FinalizeAll, TargetBoth, FinalizeFilter{}, true); err != nil {
		t.Fatalf("freeze: %v", err)
	}
	if _, err := Finalize(db, FinalizeAll, TargetBoth, FinalizeFilter{}, false); err != nil {
		t.Fatalf("unfreeze: %v", err)
	}

	var got model.ParticipantModel
	db.First(&got, "participant_id = ?", p.ParticipantID)
	if got.ParticipantFrozen {
		t.Error("participant should be unfrozen again")
	}
}

func TestFinalizeFilterByEventAndDistrict(t *testing.T) {
	db := openTestDB(t)
	d1, d2 := uuid.New(), uuid.New()
	e1, e2 := uuid.New(), uuid.New()

	inScope := seedParticipant(t, db, "Alpha High", d1, e1)
	otherEvent := seedParticipant(t, db, "Alpha High", d1, e2)
	otherDistrict := seedParticipant(t, db, "Gamma High", d2, e1)

	result, err := Finalize(db, FinalizeSchool, TargetBoth, FinalizeFilter{EventID: &e1, DistrictID: &d1}, true)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.SchoolParticipants != 1 {
		t.Fatalf("expected exactly 1 row frozen, got %d", result.SchoolParticipants)
	}

	check := func(id uuid.UUID, want bool) {
		var got model.ParticipantModel
		db.First(&got, "participant_id = ?", id)
		if got.ParticipantFrozen != want {
			t.Errorf("participant %s frozen=%v, want %v", id, got.ParticipantFrozen, want)
		}
	}
	check(inScope.ParticipantID, true)
	check(otherEvent.ParticipantID, false)
	check(otherDistrict.ParticipantID, false)
}

func seedTeacher(t *testing.T, db *gorm.DB, school string, districtID uuid.UUID) model.AccompanyingTeacherModel {
	t.Helper()
	tr := model.AccompanyingTeacherModel{
		AccompanyingTeacherName:       "Teacher",
		AccompanyingTeacherMember:     "Teacher",
		AccompanyingTeacherGender:     "female",
		AccompanyingTeacherDistrictID: districtID,
		AccompanyingTeacherSchoolName: school,
	}
	if err := db.Create(&tr).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
	return tr
}

func TestFinalizeTargetParticipantsLeavesTeachersEditable(t *testing.T) {
	db := openTestDB(t)
	district := uuid.New()
	event := uuid.New()

	p := seedParticipant(t, db, "Alpha High", district, event)
	tr := seedTeacher(t, db, "Alpha High", district)

	result, err := Finalize(db, FinalizeAll, TargetParticipants, FinalizeFilter{}, true)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.SchoolParticipants != 1 {
		t.Errorf("expected 1 participant frozen, got %d", result.SchoolParticipants)
	}
	if result.SchoolTeachers != 0 {
		t.Errorf("teachers must not be touched, got %d", result.SchoolTeachers)
	}

	var gotP model.ParticipantModel
	db.First(&gotP, "participant_id = ?", p.ParticipantID)
	if !gotP.ParticipantFrozen {
		t.Error("participant should be frozen")
	}
	var gotT model.AccompanyingTeacherModel
	db.First(&gotT, "accompanying_teacher_id = ?", tr.AccompanyingTeacherID)
	if gotT.AccompanyingTeacherFrozen {
		t.Error("teacher must stay unfrozen when only rosters are finalized")
	}
}

func TestFinalizeTargetTeachersOnly(t *testing.T) {
	db := openTestDB(t)
	district := uuid.New()
	event := uuid.New()

	p := seedParticipant(t, db, "Alpha High", district, event)
	tr := seedTeacher(t, db, "Alpha High", district)

	result, err := Finalize(db, FinalizeAll, TargetTeachers, FinalizeFilter{}, true)
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if result.SchoolTeachers != 1 {
		t.Errorf("expected 1 teacher frozen, got %d", result.SchoolTeachers)
	}
	if result.SchoolParticipants != 0 {
		t.Errorf("participants must not be touched, got %d", result.SchoolParticipants)
	}

	var gotP model.ParticipantModel
	db.First(&gotP, "participant_id = ?", p.ParticipantID)
	if gotP.ParticipantFrozen {
		t.Error("participant must stay unfrozen when only teachers are finalized")
	}
	var gotT model.AccompanyingTeacherModel
	db.First(&gotT, "accompanying_teacher_id = ?", tr.AccompanyingTeacherID)
	if !gotT.AccompanyingTeacherFrozen {
		t.Error("teacher should be frozen")
	}
}

func TestFinalizeRejectsUnknownTarget(t *testing.T) {
	db := openTestDB(t)
	_, err := Finalize(db, FinalizeAll, FinalizeTarget("rosters"), FinalizeFilter{}, true)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestFinalizeRejectsUnknownScope(t *testing.T) {
	db := openTestDB(t)
	_, err := Finalize(db, FinalizeScope("everything"), TargetBoth, FinalizeFilter{}, true)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}
