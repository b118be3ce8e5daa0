// file: internals/features/itadmin/service/report_service.go
package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
)

// ReportService builds the cross-tab exports. Default filter is frozen-only:
// reports cover what has been finalized unless explicitly widened.
type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

// ReportFilter narrows a report run. Scope picks the source tables:
// "school", "district" or "" for both. FrozenOnly defaults to true at the
// controller layer.
type ReportFilter struct {
	EventID    *uuid.UUID
	DistrictID *uuid.UUID
	Scope      string
	FrozenOnly bool
}

/* ===================== Participants by district ===================== */

type ParticipantsByDistrictRow struct {
	District string `json:"district"`
	Boys     int64  `json:"boys"`
	Girls    int64  `json:"girls"`
	Total    int64  `json:"total"`
}

type ParticipantsByDistrictReport struct {
	Rows       []ParticipantsByDistrictRow `json:"rows"`
	GrandTotal ParticipantsByDistrictRow   `json:"grandTotal"`
}

// ParticipantsByDistrict emits one row per district with boy/girl/total
// counts plus a grand-total row.
func (s *ReportService) ParticipantsByDistrict(filter ReportFilter, districtNames map[uuid.UUID]string) (*ParticipantsByDistrictReport, error) {
	type bucket struct{ boys, girls, total int64 }
	buckets := map[uuid.UUID]*bucket{}

	tally := func(districtID uuid.UUID, gender string) {
		b := buckets[districtID]
		if b == nil {
			b = &bucket{}
			buckets[districtID] = b
		}
		b.total++
		switch strings.ToLower(gender) {
		case "boy", "boys", "male", "m":
			b.boys++
		case "girl", "girls", "female", "f":
			b.girls++
		}
	}

	if filter.Scope == "" || filter.Scope == "school" {
		var rows []participantModel.ParticipantModel
		q := s.DB.Model(&participantModel.ParticipantModel{})
		if filter.FrozenOnly {
			q = q.Where("participant_frozen = ?", true)
		}
		if filter.EventID != nil {
			q = q.Where("participant_event_id = ?", *filter.EventID)
		}
		if filter.DistrictID != nil {
			q = q.Where("participant_district_id = ?", *filter.DistrictID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, p := range rows {
			tally(p.ParticipantDistrictID, p.ParticipantGender)
		}
	}

	if filter.Scope == "" || filter.Scope == "district" {
		var rows []participantModel.DistrictParticipantModel
		q := s.DB.Model(&participantModel.DistrictParticipantModel{})
		if filter.FrozenOnly {
			q = q.Where("district_participant_frozen = ?", true)
		}
		if filter.EventID != nil {
			q = q.Where("district_participant_event_id = ?", *filter.EventID)
		}
		if filter.DistrictID != nil {
			q = q.Where("district_participant_district_id = ?", *filter.DistrictID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, p := range rows {
			tally(p.DistrictParticipantDistrictID, p.DistrictParticipantGender)
		}
	}

	report := &ParticipantsByDistrictReport{Rows: make([]ParticipantsByDistrictRow, 0, len(buckets))}
	for id, b := range buckets {
		name := districtNames[id]
		if name == "" {
			name = id.String()
		}
		report.Rows = append(report.Rows, ParticipantsByDistrictRow{
			District: name,
			Boys:     b.boys,
			Girls:    b.girls,
			Total:    b.total,
		})
		report.GrandTotal.Boys += b.boys
		report.GrandTotal.Girls += b.girls
		report.GrandTotal.Total += b.total
	}
	report.GrandTotal.District = "Grand Total"

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].District < report.Rows[j].District
	})
	return report, nil
}

/* ===================== Teachers cross-tabs ===================== */

type TeacherCrossTabRow struct {
	Name     string           `json:"name"`
	District string           `json:"district,omitempty"`
	ByRole   map[string]int64 `json:"byRole"`
	Total    int64            `json:"total"`
}

type TeacherCrossTabReport struct {
	Roles       []string           `json:"roles"`
	Rows        []TeacherCrossTabRow `json:"rows"`
	GrandTotals map[string]int64   `json:"grandTotals"`
	GrandTotal  int64              `json:"grandTotal"`
}

type teacherRecord struct {
	districtID uuid.UUID
	schoolName string
	member     string
}

func (s *ReportService) loadTeachers(filter ReportFilter) ([]teacherRecord, error) {
	var out []teacherRecord

	if filter.Scope == "" || filter.Scope == "school" {
		var rows []participantModel.AccompanyingTeacherModel
		q := s.DB.Model(&participantModel.AccompanyingTeacherModel{})
		if filter.FrozenOnly {
			q = q.Where("accompanying_teacher_frozen = ?", true)
		}
		if filter.EventID != nil {
			q = q.Where("accompanying_teacher_event_id = ?", *filter.EventID)
		}
		if filter.DistrictID != nil {
			q = q.Where("accompanying_teacher_district_id = ?", *filter.DistrictID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, t := range rows {
			out = append(out, teacherRecord{
				districtID: t.AccompanyingTeacherDistrictID,
				schoolName: t.AccompanyingTeacherSchoolName,
				member:     t.AccompanyingTeacherMember,
			})
		}
	}

	if filter.Scope == "" || filter.Scope == "district" {
		var rows []participantModel.DistrictAccompanyingTeacherModel
		q := s.DB.Model(&participantModel.DistrictAccompanyingTeacherModel{})
		if filter.FrozenOnly {
			q = q.Where("district_accompanying_teacher_frozen = ?", true)
		}
		if filter.EventID != nil {
			q = q.Where("district_accompanying_teacher_event_id = ?", *filter.EventID)
		}
		if filter.DistrictID != nil {
			q = q.Where("district_accompanying_teacher_district_id = ?", *filter.DistrictID)
		}
		if err := q.Find(&rows).Error; err != nil {
			return nil, err
		}
		for _, t := range rows {
			out = append(out, teacherRecord{
				districtID: t.DistrictAccompanyingTeacherDistrictID,
				member:     t.DistrictAccompanyingTeacherMember,
			})
		}
	}

	return out, nil
}

// crossTab groups records by key, counting per raw member label. Labels are
// free text; whatever spellings exist in the data become the columns.
func crossTab(records []teacherRecord, key func(teacherRecord) (rowKey string, district string)) *TeacherCrossTabReport {
	roleSet := map[string]struct{}{}
	type rowAgg struct {
		district string
		byRole   map[string]int64
		total    int64
	}
	rows := map[string]*rowAgg{}

	for _, rec := range records {
		label := strings.TrimSpace(rec.member)
		if label == "" {
			label = "Unspecified"
		}
		roleSet[label] = struct{}{}

		k, district := key(rec)
		agg := rows[k]
		if agg == nil {
			agg = &rowAgg{district: district, byRole: map[string]int64{}}
			rows[k] = agg
		}
		agg.byRole[label]++
		agg.total++
	}

	report := &TeacherCrossTabReport{
		Roles:       make([]string, 0, len(roleSet)),
		Rows:        make([]TeacherCrossTabRow, 0, len(rows)),
		GrandTotals: map[string]int64{},
	}
	for role := range roleSet {
		report.Roles = append(report.Roles, role)
	}
	sort.Strings(report.Roles)

	for name, agg := range rows {
		report.Rows = append(report.Rows, TeacherCrossTabRow{
			Name:     name,
			District: agg.district,
			ByRole:   agg.byRole,
			Total:    agg.total,
		})
		for role, count := range agg.byRole {
			report.GrandTotals[role] += count
		}
		report.GrandTotal += agg.total
	}
	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].Name < report.Rows[j].Name
	})
	return report
}

// TeachersByDistrict cross-tabs accompanying teachers (both sources) per
// district over the member label.
func (s *ReportService) TeachersByDistrict(filter ReportFilter, districtNames map[uuid.UUID]string) (*TeacherCrossTabReport, error) {
	records, err := s.loadTeachers(filter)
	if err != nil {
		return nil, err
	}
	return crossTab(records, func(rec teacherRecord) (string, string) {
		name := districtNames[rec.districtID]
		if name == "" {
			name = rec.districtID.String()
		}
		return name, ""
	}), nil
}

// TeachersBySchool cross-tabs the school-source teachers per school; the
// district-source rows have no school and are excluded.
func (s *ReportService) TeachersBySchool(filter ReportFilter, districtNames map[uuid.UUID]string) (*TeacherCrossTabReport, error) {
	filter.Scope = "school"
	records, err := s.loadTeachers(filter)
	if err != nil {
		return nil, err
	}
	return crossTab(records, func(rec teacherRecord) (string, string) {
		return rec.schoolName, districtNames[rec.districtID]
	}), nil
}
