// file: internals/features/itadmin/service/overview_service_test.go
package service

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
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
		&regionModel.DistrictModel{},
		&regionModel.SchoolModel{},
		&participantModel.ParticipantModel{},
		&participantModel.DistrictParticipantModel{},
		&participantModel.AccompanyingTeacherModel{},
		&participantModel.DistrictAccompanyingTeacherModel{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func seedDistrict(t *testing.T, db *gorm.DB, name string) regionModel.DistrictModel {
	t.Helper()
	d := regionModel.DistrictModel{DistrictName: name}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("seed district: %v", err)
	}
	return d
}

func seedSchool(t *testing.T, db *gorm.DB, name string, districtID uuid.UUID) regionModel.SchoolModel {
	t.Helper()
	s := regionModel.SchoolModel{SchoolName: name, SchoolDistrictID: districtID, SchoolIsApproved: true}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	return s
}

func addParticipant(t *testing.T, db *gorm.DB, school string, districtID uuid.UUID, gender string, present, frozen bool) {
	t.Helper()
	p := participantModel.ParticipantModel{
		ParticipantName:       "Student",
		ParticipantGender:     gender,
		ParticipantEventID:    uuid.New(),
		ParticipantDistrictID: districtID,
		ParticipantSchoolName: school,
		ParticipantPresent:    present,
		ParticipantFrozen:     frozen,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
}

func addDistrictParticipant(t *testing.T, db *gorm.DB, districtID uuid.UUID, gender string, present, frozen bool) {
	t.Helper()
	p := participantModel.DistrictParticipantModel{
		DistrictParticipantName:       "Student",
		DistrictParticipantGender:     gender,
		DistrictParticipantEventID:    uuid.New(),
		DistrictParticipantDistrictID: districtID,
		DistrictParticipantPresent:    present,
		DistrictParticipantFrozen:     frozen,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed district participant: %v", err)
	}
}

// Three districts: D1 reports via a school, D2 via district rows only, D3 via
// both. The reported set is the union, withSchools counts D1+D3, and
// withoutSchools counts only D2.
func TestMetricsReportedDistrictSets(t *testing.T) {
	db := openTestDB(t)
	svc := NewOverviewService(db)

	d1 := seedDistrict(t, db, "Alpha")
	d2 := seedDistrict(t, db, "Beta")
	d3 := seedDistrict(t, db, "Gamma")
	seedSchool(t, db, "Alpha High", d1.DistrictID)
	seedSchool(t, db, "Gamma High", d3.DistrictID)

	addParticipant(t, db, "Alpha High", d1.DistrictID, "boy", true, true)
	addDistrictParticipant(t, db, d2.DistrictID, "girl", true, true)
	addParticipant(t, db, "Gamma High", d3.DistrictID, "girl", false, true)
	addDistrictParticipant(t, db, d3.DistrictID, "boy", true, true)

	m, err := svc.Metrics()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if m.Districts.ReportedCount != 3 {
		t.Errorf("reported districts: want 3, got %d", m.Districts.ReportedCount)
	}
	if m.Districts.WithSchoolsCount != 2 {
		t.Errorf("withSchools: want 2, got %d", m.Districts.WithSchoolsCount)
	}
	if m.Districts.WithoutSchoolsCount != 1 {
		t.Errorf("withoutSchools: want 1, got %d", m.Districts.WithoutSchoolsCount)
	}
	if m.Districts.NotReportedCount != 0 {
		t.Errorf("notReported: want 0, got %d", m.Districts.NotReportedCount)
	}
	if m.Schools.ReportedCount != 2 {
		t.Errorf("reported schools: want 2, got %d", m.Schools.ReportedCount)
	}
}

// Total counts every registration; the present split only counts rows marked
// present, bucketed by gender.
func TestMetricsParticipantCounts(t *testing.T) {
	db := openTestDB(t)
	svc := NewOverviewService(db)

	d := seedDistrict(t, db, "Alpha")
	seedSchool(t, db, "Alpha High", d.DistrictID)

	addParticipant(t, db, "Alpha High", d.DistrictID, "boy", true, false)
	addParticipant(t, db, "Alpha High", d.DistrictID, "girl", false, false)
	addDistrictParticipant(t, db, d.DistrictID, "girl", true, false)

	m, err := svc.Metrics()
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}

	if m.Participants.Total != 3 {
		t.Errorf("total: want 3, got %d", m.Participants.Total)
	}
	if m.Participants.Present.Total != 2 {
		t.Errorf("present total: want 2, got %d", m.Participants.Present.Total)
	}
	if m.Participants.Present.Boys != 1 || m.Participants.Present.Girls != 1 {
		t.Errorf("present split: want 1/1, got %d/%d",
			m.Participants.Present.Boys, m.Participants.Present.Girls)
	}
	if m.Participants.School.Total != 2 || m.Participants.District.Total != 1 {
		t.Errorf("per-source totals: want 2/1, got %d/%d",
			m.Participants.School.Total, m.Participants.District.Total)
	}
}

func TestNotReportedLists(t *testing.T) {
	db := openTestDB(t)
	svc := NewOverviewService(db)

	d1 := seedDistrict(t, db, "Alpha")
	d2 := seedDistrict(t, db, "Beta")
	seedSchool(t, db, "Alpha High", d1.DistrictID)
	seedSchool(t, db, "Beta High", d2.DistrictID)

	addParticipant(t, db, "Alpha High", d1.DistrictID, "boy", true, true)

	out, err := svc.NotReported()
	if err != nil {
		t.Fatalf("not reported: %v", err)
	}

	if len(out.Districts) != 1 || out.Districts[0].Name != "Beta" {
		t.Errorf("expected only Beta unreported, got %+v", out.Districts)
	}
	if len(out.Schools) != 1 || out.Schools[0].Name != "Beta High" {
		t.Errorf("expected only Beta High unreported, got %+v", out.Schools)
	}
	if out.Schools[0].District != "Beta" {
		t.Errorf("school row should carry its district name, got %q", out.Schools[0].District)
	}
}

func TestStudentsYetToReportSorting(t *testing.T) {
	db := openTestDB(t)
	svc := NewOverviewService(db)

	d := seedDistrict(t, db, "Alpha")
	addParticipant(t, db, "Beta High", d.DistrictID, "boy", false, false)
	addParticipant(t, db, "Alpha High", d.DistrictID, "boy", false, false)
	addParticipant(t, db, "Alpha High", d.DistrictID, "girl", false, false)
	addParticipant(t, db, "Frozen High", d.DistrictID, "boy", false, true)

	out, err := svc.StudentsYetToReport()
	if err != nil {
		t.Fatalf("yet to report: %v", err)
	}

	if len(out.BySchool) != 2 {
		t.Fatalf("expected 2 school rows, got %d", len(out.BySchool))
	}
	if out.BySchool[0].Name != "Alpha High" || out.BySchool[0].Count != 2 {
		t.Errorf("first row should be Alpha High with 2, got %+v", out.BySchool[0])
	}
	if out.BySchool[1].Name != "Beta High" || out.BySchool[1].Count != 1 {
		t.Errorf("second row should be Beta High with 1, got %+v", out.BySchool[1])
	}
}

func TestGenderBucket(t *testing.T) {
	cases := map[string]string{
		"Male": "male", "m": "male", "BOYS": "male", "men": "male",
		"female": "female", "F": "female", "girls": "female", "Woman": "female",
		"": "other", "prefer not to say": "other",
	}
	for raw, want := range cases {
		if got := GenderBucket(raw); got != want {
			t.Errorf("GenderBucket(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestTeachersOverviewSplitsByFrozen(t *testing.T) {
	db := openTestDB(t)
	svc := NewOverviewService(db)
	d := seedDistrict(t, db, "Alpha")

	db.Create(&participantModel.AccompanyingTeacherModel{
		AccompanyingTeacherName:       "T1",
		AccompanyingTeacherMember:     "Teacher",
		AccompanyingTeacherGender:     "male",
		AccompanyingTeacherDistrictID: d.DistrictID,
		AccompanyingTeacherSchoolName: "Alpha High",
		AccompanyingTeacherFrozen:     true,
	})
	db.Create(&participantModel.DistrictAccompanyingTeacherModel{
		DistrictAccompanyingTeacherName:       "T2",
		DistrictAccompanyingTeacherMember:     "Sevadal",
		DistrictAccompanyingTeacherGender:     "female",
		DistrictAccompanyingTeacherDistrictID: d.DistrictID,
	})

	out, err := svc.Teachers()
	if err != nil {
		t.Fatalf("teachers: %v", err)
	}
	if out.Reported.School.Male != 1 || out.Reported.Combined.Total != 1 {
		t.Errorf("reported buckets wrong: %+v", out.Reported)
	}
	if out.YetToReport.District.Female != 1 || out.YetToReport.Combined.Total != 1 {
		t.Errorf("yet-to-report buckets wrong: %+v", out.YetToReport)
	}
}
