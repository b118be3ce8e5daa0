// file: internals/features/itadmin/service/overview_service.go
package service

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
)

// OverviewService computes the IT-admin dashboards. District and school names
// are resolved through in-memory lookup maps, never via storage-level joins.
type OverviewService struct {
	DB *gorm.DB
}

func NewOverviewService(db *gorm.DB) *OverviewService {
	return &OverviewService{DB: db}
}

/* ===================== Shared lookups ===================== */

func (s *OverviewService) districtNames() (map[uuid.UUID]string, error) {
	var districts []regionModel.DistrictModel
	if err := s.DB.Find(&districts).Error; err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(districts))
	for _, d := range districts {
		names[d.DistrictID] = d.DistrictName
	}
	return names, nil
}

func (s *OverviewService) loadParticipants() ([]participantModel.ParticipantModel, []participantModel.DistrictParticipantModel, error) {
	var school []participantModel.ParticipantModel
	if err := s.DB.Find(&school).Error; err != nil {
		return nil, nil, err
	}
	var district []participantModel.DistrictParticipantModel
	if err := s.DB.Find(&district).Error; err != nil {
		return nil, nil, err
	}
	return school, district, nil
}

/* ===================== Metrics ===================== */

type GenderSplit struct {
	Total int64 `json:"total"`
	Boys  int64 `json:"boys"`
	Girls int64 `json:"girls"`
}

type SourceMetrics struct {
	Total   int64       `json:"total"`
	Present GenderSplit `json:"present"`
}

type OverviewMetrics struct {
	Participants struct {
		Total    int64         `json:"total"`
		Present  GenderSplit   `json:"present"`
		School   SourceMetrics `json:"school"`
		District SourceMetrics `json:"district"`
	} `json:"participants"`
	Schools struct {
		Total            int64 `json:"total"`
		ReportedCount    int64 `json:"reportedCount"`
		NotReportedCount int64 `json:"notReportedCount"`
	} `json:"schools"`
	Districts struct {
		Total               int64 `json:"total"`
		ReportedCount       int64 `json:"reportedCount"`
		WithSchoolsCount    int64 `json:"withSchoolsCount"`
		WithoutSchoolsCount int64 `json:"withoutSchoolsCount"`
		NotReportedCount    int64 `json:"notReportedCount"`
	} `json:"districts"`
}

func countPresent(split *GenderSplit, gender string) {
	split.Total++
	switch strings.ToLower(gender) {
	case "boy", "boys", "male", "m":
		split.Boys++
	case "girl", "girls", "female", "f":
		split.Girls++
	}
}

// Metrics counts participants (total and present-by-gender, per source) and
// derives the reported district/school sets. A district or school counts as
// reported once it has at least one frozen participant row; districts split
// further into reporting via schools vs district-only.
func (s *OverviewService) Metrics() (*OverviewMetrics, error) {
	school, district, err := s.loadParticipants()
	if err != nil {
		return nil, err
	}

	var m OverviewMetrics
	reportedSchools := map[string]struct{}{}
	reportedViaSchools := map[uuid.UUID]struct{}{}
	reportedViaDistrict := map[uuid.UUID]struct{}{}

	for _, p := range school {
		m.Participants.School.Total++
		if p.ParticipantPresent {
			countPresent(&m.Participants.School.Present, p.ParticipantGender)
			countPresent(&m.Participants.Present, p.ParticipantGender)
		}
		if p.ParticipantFrozen {
			reportedSchools[strings.ToLower(p.ParticipantSchoolName)] = struct{}{}
			reportedViaSchools[p.ParticipantDistrictID] = struct{}{}
		}
	}
	for _, p := range district {
		m.Participants.District.Total++
		if p.DistrictParticipantPresent {
			countPresent(&m.Participants.District.Present, p.DistrictParticipantGender)
			countPresent(&m.Participants.Present, p.DistrictParticipantGender)
		}
		if p.DistrictParticipantFrozen {
			reportedViaDistrict[p.DistrictParticipantDistrictID] = struct{}{}
		}
	}
	m.Participants.Total = m.Participants.School.Total + m.Participants.District.Total

	var schoolTotal, districtTotal int64
	s.DB.Model(&regionModel.SchoolModel{}).Count(&schoolTotal)
	s.DB.Model(&regionModel.DistrictModel{}).Count(&districtTotal)

	m.Schools.Total = schoolTotal
	m.Schools.ReportedCount = int64(len(reportedSchools))
	m.Schools.NotReportedCount = schoolTotal - m.Schools.ReportedCount
	if m.Schools.NotReportedCount < 0 {
		m.Schools.NotReportedCount = 0
	}

	reported := map[uuid.UUID]struct{}{}
	for id := range reportedViaSchools {
		reported[id] = struct{}{}
	}
	var withoutSchools int64
	for id := range reportedViaDistrict {
		if _, ok := reportedViaSchools[id]; !ok {
			withoutSchools++
		}
		reported[id] = struct{}{}
	}

	m.Districts.Total = districtTotal
	m.Districts.ReportedCount = int64(len(reported))
	m.Districts.WithSchoolsCount = int64(len(reportedViaSchools))
	m.Districts.WithoutSchoolsCount = withoutSchools
	m.Districts.NotReportedCount = districtTotal - m.Districts.ReportedCount
	if m.Districts.NotReportedCount < 0 {
		m.Districts.NotReportedCount = 0
	}

	return &m, nil
}

/* ===================== Not reported ===================== */

type NotReportedEntry struct {
	Name     string `json:"name"`
	District string `json:"district,omitempty"`
}

type NotReportedOverview struct {
	Districts []NotReportedEntry `json:"districts"`
	Schools   []NotReportedEntry `json:"schools"`
}

// NotReported lists every district and school with no frozen participant row.
func (s *OverviewService) NotReported() (*NotReportedOverview, error) {
	school, district, err := s.loadParticipants()
	if err != nil {
		return nil, err
	}
	names, err := s.districtNames()
	if err != nil {
		return nil, err
	}

	reportedSchools := map[string]struct{}{}
	reportedDistricts := map[uuid.UUID]struct{}{}
	for _, p := range school {
		if p.ParticipantFrozen {
			reportedSchools[strings.ToLower(p.ParticipantSchoolName)] = struct{}{}
			reportedDistricts[p.ParticipantDistrictID] = struct{}{}
		}
	}
	for _, p := range district {
		if p.DistrictParticipantFrozen {
			reportedDistricts[p.DistrictParticipantDistrictID] = struct{}{}
		}
	}

	out := &NotReportedOverview{
		Districts: []NotReportedEntry{},
		Schools:   []NotReportedEntry{},
	}

	var allDistricts []regionModel.DistrictModel
	if err := s.DB.Order("district_name ASC").Find(&allDistricts).Error; err != nil {
		return nil, err
	}
	for _, d := range allDistricts {
		if _, ok := reportedDistricts[d.DistrictID]; !ok {
			out.Districts = append(out.Districts, NotReportedEntry{Name: d.DistrictName})
		}
	}

	var allSchools []regionModel.SchoolModel
	if err := s.DB.Order("school_name ASC").Find(&allSchools).Error; err != nil {
		return nil, err
	}
	for _, sc := range allSchools {
		if _, ok := reportedSchools[strings.ToLower(sc.SchoolName)]; !ok {
			out.Schools = append(out.Schools, NotReportedEntry{
				Name:     sc.SchoolName,
				District: names[sc.SchoolDistrictID],
			})
		}
	}

	return out, nil
}

/* ===================== Yet to report ===================== */

type YetToReportRow struct {
	Name     string `json:"name"`
	District string `json:"district,omitempty"`
	Count    int64  `json:"count"`
}

type YetToReportOverview struct {
	BySchool   []YetToReportRow `json:"bySchool"`
	ByDistrict []YetToReportRow `json:"byDistrict"`
}

// StudentsYetToReport groups the non-frozen participants by (school, district)
// and by district (school and district sources merged), sorted by descending
// count then name.
func (s *OverviewService) StudentsYetToReport() (*YetToReportOverview, error) {
	school, district, err := s.loadParticipants()
	if err != nil {
		return nil, err
	}
	names, err := s.districtNames()
	if err != nil {
		return nil, err
	}

	type schoolKey struct {
		school   string
		district uuid.UUID
	}
	bySchool := map[schoolKey]int64{}
	byDistrict := map[uuid.UUID]int64{}

	for _, p := range school {
		if p.ParticipantFrozen {
			continue
		}
		bySchool[schoolKey{p.ParticipantSchoolName, p.ParticipantDistrictID}]++
		byDistrict[p.ParticipantDistrictID]++
	}
	for _, p := range district {
		if p.DistrictParticipantFrozen {
			continue
		}
		byDistrict[p.DistrictParticipantDistrictID]++
	}

	out := &YetToReportOverview{
		BySchool:   make([]YetToReportRow, 0, len(bySchool)),
		ByDistrict: make([]YetToReportRow, 0, len(byDistrict)),
	}
	for key, count := range bySchool {
		out.BySchool = append(out.BySchool, YetToReportRow{
			Name:     key.school,
			District: names[key.district],
			Count:    count,
		})
	}
	for id, count := range byDistrict {
		out.ByDistrict = append(out.ByDistrict, YetToReportRow{
			Name:  names[id],
			Count: count,
		})
	}

	sortYetToReport(out.BySchool)
	sortYetToReport(out.ByDistrict)
	return out, nil
}

func sortYetToReport(rows []YetToReportRow) {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
}

/* ===================== Teachers overview ===================== */

type TeacherBuckets struct {
	Total  int64 `json:"total"`
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
	Other  int64 `json:"other"`
}

type TeachersOverview struct {
	Reported struct {
		School   TeacherBuckets `json:"school"`
		District TeacherBuckets `json:"district"`
		Combined TeacherBuckets `json:"combined"`
	} `json:"reported"`
	YetToReport struct {
		School   TeacherBuckets `json:"school"`
		District TeacherBuckets `json:"district"`
		Combined TeacherBuckets `json:"combined"`
	} `json:"yetToReport"`
}

// GenderBucket folds free-text gender labels into male/female/other using a
// fixed synonym table.
func GenderBucket(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "male", "m", "boy", "boys", "man", "men":
		return "male"
	case "female", "f", "girl", "girls", "woman", "women":
		return "female"
	default:
		return "other"
	}
}

func (b *TeacherBuckets) add(gender string) {
	b.Total++
	switch GenderBucket(gender) {
	case "male":
		b.Male++
	case "female":
		b.Female++
	default:
		b.Other++
	}
}

// Teachers splits accompanying teachers by reporting state, source and gender
// bucket.
func (s *OverviewService) Teachers() (*TeachersOverview, error) {
	var school []participantModel.AccompanyingTeacherModel
	if err := s.DB.Find(&school).Error; err != nil {
		return nil, err
	}
	var district []participantModel.DistrictAccompanyingTeacherModel
	if err := s.DB.Find(&district).Error; err != nil {
		return nil, err
	}

	var out TeachersOverview
	for _, t := range school {
		if t.AccompanyingTeacherFrozen {
			out.Reported.School.add(t.AccompanyingTeacherGender)
			out.Reported.Combined.add(t.AccompanyingTeacherGender)
		} else {
			out.YetToReport.School.add(t.AccompanyingTeacherGender)
			out.YetToReport.Combined.add(t.AccompanyingTeacherGender)
		}
	}
	for _, t := range district {
		if t.DistrictAccompanyingTeacherFrozen {
			out.Reported.District.add(t.DistrictAccompanyingTeacherGender)
			out.Reported.Combined.add(t.DistrictAccompanyingTeacherGender)
		} else {
			out.YetToReport.District.add(t.DistrictAccompanyingTeacherGender)
			out.YetToReport.Combined.add(t.DistrictAccompanyingTeacherGender)
		}
	}
	return &out, nil
}
