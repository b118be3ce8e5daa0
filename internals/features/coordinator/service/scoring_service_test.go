// file: internals/features/coordinator/service/scoring_service_test.go
package service

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/coordinator/dto"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

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
		&participantModel.ParticipantModel{},
		&participantModel.DistrictParticipantModel{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func seedParticipant(t *testing.T, db *gorm.DB, eventID uuid.UUID, name string) participantModel.ParticipantModel {
	t.Helper()
	p := participantModel.ParticipantModel{
		ParticipantName:       name,
		ParticipantGender:     "boy",
		ParticipantEventID:    eventID,
		ParticipantDistrictID: uuid.New(),
		ParticipantSchoolName: "Alpha High",
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	return p
}

func TestSubmitMarksSkipsUnknownIDs(t *testing.T) {
	db := openTestDB(t)
	svc := NewScoringService(db)
	event := uuid.New()

	p1 := seedParticipant(t, db, event, "Rahul")
	p2 := seedParticipant(t, db, event, "Meena")

	evaluator := uuid.New()
	remark := "good stage presence"
	resp, err := svc.SubmitMarks(&dto.MarksRequest{
		Scope:   "school",
		EventID: event.String(),
		Items: []dto.MarkItem{
			{ParticipantID: p1.ParticipantID.String(), Marks: 22, Evaluation: &remark},
			{ParticipantID: p2.ParticipantID.String(), Marks: 18},
			{ParticipantID: uuid.NewString(), Marks: 30}, // unknown, skipped
		},
	}, &evaluator)
	if err != nil {
		t.Fatalf("submit marks: %v", err)
	}
	if resp.UpdatedCount != 2 {
		t.Errorf("expected updatedCount 2, got %d", resp.UpdatedCount)
	}

	var got participantModel.ParticipantModel
	db.First(&got, "participant_id = ?", p1.ParticipantID)
	if got.ParticipantMarks == nil || *got.ParticipantMarks != 22 {
		t.Errorf("expected marks 22, got %v", got.ParticipantMarks)
	}
	if got.ParticipantEvaluation == nil || *got.ParticipantEvaluation != remark {
		t.Errorf("expected evaluation %q, got %v", remark, got.ParticipantEvaluation)
	}
	if got.ParticipantEvaluatedBy == nil || *got.ParticipantEvaluatedBy != evaluator {
		t.Error("evaluator id not stamped")
	}
	if got.ParticipantEvaluatedAt == nil {
		t.Error("evaluation timestamp not stamped")
	}
}

func TestSubmitMarksLaterTupleWins(t *testing.T) {
	db := openTestDB(t)
	svc := NewScoringService(db)
	event := uuid.New()
	p := seedParticipant(t, db, event, "Rahul")

	evaluator := uuid.New()
	if _, err := svc.SubmitMarks(&dto.MarksRequest{
		Scope:   "school",
		EventID: event.String(),
		Items: []dto.MarkItem{
			{ParticipantID: p.ParticipantID.String(), Marks: 10},
			{ParticipantID: p.ParticipantID.String(), Marks: 27},
		},
	}, &evaluator); err != nil {
		t.Fatalf("submit marks: %v", err)
	}

	var got participantModel.ParticipantModel
	db.First(&got, "participant_id = ?", p.ParticipantID)
	if got.ParticipantMarks == nil || *got.ParticipantMarks != 27 {
		t.Errorf("later tuple must win, got %v", got.ParticipantMarks)
	}
}

func TestSubmitMarksDistrictScope(t *testing.T) {
	db := openTestDB(t)
	svc := NewScoringService(db)
	event := uuid.New()

	p := participantModel.DistrictParticipantModel{
		DistrictParticipantName:       "Meena",
		DistrictParticipantGender:     "girl",
		DistrictParticipantEventID:    event,
		DistrictParticipantDistrictID: uuid.New(),
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed district participant: %v", err)
	}

	evaluator := uuid.New()
	resp, err := svc.SubmitMarks(&dto.MarksRequest{
		Scope:   "district",
		EventID: event.String(),
		Items:   []dto.MarkItem{{ParticipantID: p.DistrictParticipantID.String(), Marks: 25}},
	}, &evaluator)
	if err != nil {
		t.Fatalf("submit marks: %v", err)
	}
	if resp.UpdatedCount != 1 {
		t.Errorf("expected updatedCount 1, got %d", resp.UpdatedCount)
	}

	var got participantModel.DistrictParticipantModel
	db.First(&got, "district_participant_id = ?", p.DistrictParticipantID)
	if got.DistrictParticipantMarks == nil || *got.DistrictParticipantMarks != 25 {
		t.Errorf("expected marks 25, got %v", got.DistrictParticipantMarks)
	}
}
