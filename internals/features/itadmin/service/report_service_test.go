// file: internals/features/itadmin/service/report_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

func addTeacher(t *testing.T, db *gorm.DB, school, member string, districtID uuid.UUID, frozen bool) {
	t.Helper()
	row := participantModel.AccompanyingTeacherModel{
		AccompanyingTeacherName:       "T",
		AccompanyingTeacherMember:     member,
		AccompanyingTeacherGender:     "male",
		AccompanyingTeacherDistrictID: districtID,
		AccompanyingTeacherSchoolName: school,
		AccompanyingTeacherFrozen:     frozen,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}
}

func addDistrictTeacher(t *testing.T, db *gorm.DB, member string, districtID uuid.UUID, frozen bool) {
	t.Helper()
	row := participantModel.DistrictAccompanyingTeacherModel{
		DistrictAccompanyingTeacherName:       "T",
		DistrictAccompanyingTeacherMember:     member,
		DistrictAccompanyingTeacherGender:     "female",
		DistrictAccompanyingTeacherDistrictID: districtID,
		DistrictAccompanyingTeacherFrozen:     frozen,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("seed district teacher: %v", err)
	}
}

func TestParticipantsByDistrictReport(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db)

	d1 := seedDistrict(t, db, "Alpha")
	d2 := seedDistrict(t, db, "Beta")

	addParticipant(t, db, "Alpha High", d1.DistrictID, "boy", true, true)
	addParticipant(t, db, "Alpha High", d1.DistrictID, "girl", true, true)
	addDistrictParticipant(t, db, d2.DistrictID, "girl", true, true)
	// Not frozen: excluded by the frozen-only default.
	addParticipant(t, db, "Alpha High", d1.DistrictID, "boy", true, false)

	names := map[uuid.UUID]string{d1.DistrictID: "Alpha", d2.DistrictID: "Beta"}
	report, err := svc.ParticipantsByDistrict(ReportFilter{FrozenOnly: true}, names)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(report.Rows) != 2 {
		t.Fatalf("expected 2 district rows, got %d", len(report.Rows))
	}
	if report.Rows[0].District != "Alpha" || report.Rows[0].Boys != 1 || report.Rows[0].Girls != 1 || report.Rows[0].Total != 2 {
		t.Errorf("Alpha row wrong: %+v", report.Rows[0])
	}
	if report.Rows[1].District != "Beta" || report.Rows[1].Total != 1 {
		t.Errorf("Beta row wrong: %+v", report.Rows[1])
	}
	if report.GrandTotal.District != "Grand Total" || report.GrandTotal.Total != 3 {
		t.Errorf("grand total wrong: %+v", report.GrandTotal)
	}
}

func TestTeachersByDistrictCrossTab(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db)

	d1 := seedDistrict(t, db, "Alpha")

	addTeacher(t, db, "Alpha High", "Teacher", d1.DistrictID, true)
	addTeacher(t, db, "Alpha High", "Sevadal", d1.DistrictID, true)
	addDistrictTeacher(t, db, "Teacher", d1.DistrictID, true)
	addDistrictTeacher(t, db, "", d1.DistrictID, true) // blank label buckets as Unspecified

	names := map[uuid.UUID]string{d1.DistrictID: "Alpha"}
	report, err := svc.TeachersByDistrict(ReportFilter{FrozenOnly: true}, names)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	wantRoles := []string{"Sevadal", "Teacher", "Unspecified"}
	if len(report.Roles) != len(wantRoles) {
		t.Fatalf("roles: want %v, got %v", wantRoles, report.Roles)
	}
	for i, role := range wantRoles {
		if report.Roles[i] != role {
			t.Errorf("roles[%d]: want %q, got %q", i, role, report.Roles[i])
		}
	}

	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 district row, got %d", len(report.Rows))
	}
	row := report.Rows[0]
	if row.Name != "Alpha" || row.Total != 4 {
		t.Errorf("row wrong: %+v", row)
	}
	if row.ByRole["Teacher"] != 2 || row.ByRole["Sevadal"] != 1 || row.ByRole["Unspecified"] != 1 {
		t.Errorf("per-role counts wrong: %+v", row.ByRole)
	}
	if report.GrandTotal != 4 || report.GrandTotals["Teacher"] != 2 {
		t.Errorf("grand totals wrong: total=%d byRole=%+v", report.GrandTotal, report.GrandTotals)
	}
}

func TestTeachersBySchoolExcludesDistrictSource(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db)

	d1 := seedDistrict(t, db, "Alpha")
	addTeacher(t, db, "Alpha High", "Teacher", d1.DistrictID, true)
	addDistrictTeacher(t, db, "Teacher", d1.DistrictID, true)

	names := map[uuid.UUID]string{d1.DistrictID: "Alpha"}
	report, err := svc.TeachersBySchool(ReportFilter{FrozenOnly: true}, names)
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if len(report.Rows) != 1 {
		t.Fatalf("expected 1 school row, got %d", len(report.Rows))
	}
	if report.Rows[0].Name != "Alpha High" || report.Rows[0].District != "Alpha" {
		t.Errorf("row wrong: %+v", report.Rows[0])
	}
	if report.GrandTotal != 1 {
		t.Errorf("district-source teachers leaked in, grand total %d", report.GrandTotal)
	}
}

func TestReportsWidenWhenFrozenOnlyDisabled(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db)

	d1 := seedDistrict(t, db, "Alpha")
	addParticipant(t, db, "Alpha High", d1.DistrictID, "boy", true, false)

	names := map[uuid.UUID]string{d1.DistrictID: "Alpha"}

	frozen, err := svc.ParticipantsByDistrict(ReportFilter{FrozenOnly: true}, names)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if frozen.GrandTotal.Total != 0 {
		t.Errorf("frozen-only should see nothing, got %d", frozen.GrandTotal.Total)
	}

	all, err := svc.ParticipantsByDistrict(ReportFilter{FrozenOnly: false}, names)
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if all.GrandTotal.Total != 1 {
		t.Errorf("widened report should see 1, got %d", all.GrandTotal.Total)
	}
}
