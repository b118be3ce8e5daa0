// file: internals/route/index_test.go
package route

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/configs"
	database "github.com/Ramashis2004/sri-satyasai-backend/internals/databases"
	accountModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
	eventModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
	participantModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/participants/model"
	regionModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/regions/model"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/seeds"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	database.Migrate(db)
	seeds.Run(db)

	app := fiber.New()
	SetupRoutes(app, db)
	return app, db
}

// doJSON fires one request and decodes the JSON body into a map.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	decoded := map[string]any{}
	raw, _ := io.ReadAll(resp.Body)
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp.StatusCode, decoded
}

func loginToken(t *testing.T, app *fiber.App, path, email, password string) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, path, "", fiber.Map{
		"email": email, "password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("login %s: status %d body %v", path, status, body)
	}
	data, _ := body["data"].(map[string]any)
	token, _ := data["token"].(string)
	if token == "" {
		t.Fatalf("login %s: no token in %v", path, body)
	}
	return token
}

// Full registration-to-report walkthrough: an admin sets up a district, school
// and event; a school user registers a participant; the IT admin finalizes;
// frozen rows refuse edits and the dashboard reflects the reported school.
func TestRegistrationToReportFlow(t *testing.T) {
	app, db := newTestApp(t)

	// Admin account (auto-approved) and token.
	status, body := doJSON(t, app, http.MethodPost, "/api/admin/register", "", fiber.Map{
		"name": "Root Admin", "email": "admin@example.com",
		"mobile": "9000000001", "password": "secret123",
	})
	if status != http.StatusCreated {
		t.Fatalf("admin register: status %d body %v", status, body)
	}
	adminToken := loginToken(t, app, "/api/admin/login", "admin@example.com", "secret123")

	// District + school.
	if status, body = doJSON(t, app, http.MethodPost, "/api/admin/districts", adminToken,
		fiber.Map{"name": "Alpha"}); status != http.StatusCreated {
		t.Fatalf("create district: status %d body %v", status, body)
	}
	var district regionModel.DistrictModel
	if err := db.First(&district, "district_name = ?", "Alpha").Error; err != nil {
		t.Fatalf("district not persisted: %v", err)
	}

	if status, body = doJSON(t, app, http.MethodPost, "/api/admin/schools", adminToken, fiber.Map{
		"name": "Alpha High", "district_id": district.DistrictID.String(),
	}); status != http.StatusCreated {
		t.Fatalf("create school: status %d body %v", status, body)
	}

	// School user registers, is blocked until approved, then logs in.
	if status, body = doJSON(t, app, http.MethodPost, "/api/school/register", "", fiber.Map{
		"name": "Head Master", "email": "head@example.com",
		"mobile": "9000000002", "password": "secret123",
		"district_id": district.DistrictID.String(), "school_name": "Alpha High",
		"role_in_school": "Principal",
	}); status != http.StatusCreated {
		t.Fatalf("school user register: status %d body %v", status, body)
	}

	status, _ = doJSON(t, app, http.MethodPost, "/api/school/login", "", fiber.Map{
		"email": "head@example.com", "password": "secret123",
	})
	if status != http.StatusForbidden {
		t.Fatalf("unapproved login should 403, got %d", status)
	}

	var schoolUser accountModel.SchoolUserModel
	if err := db.First(&schoolUser, "email = ?", "head@example.com").Error; err != nil {
		t.Fatalf("school user not persisted: %v", err)
	}
	if status, body = doJSON(t, app, http.MethodPatch,
		"/api/admin/users/school/"+schoolUser.ID.String()+"/approve", adminToken, nil); status != http.StatusOK {
		t.Fatalf("approve school user: status %d body %v", status, body)
	}
	schoolToken := loginToken(t, app, "/api/school/login", "head@example.com", "secret123")

	// Event and participant.
	if status, body = doJSON(t, app, http.MethodPost, "/api/admin/events", adminToken, fiber.Map{
		"title": "Quiz", "gender": "both", "audience": "junior",
	}); status != http.StatusCreated {
		t.Fatalf("create event: status %d body %v", status, body)
	}
	var event eventModel.EventModel
	if err := db.First(&event, "event_title = ?", "Quiz").Error; err != nil {
		t.Fatalf("event not persisted: %v", err)
	}

	if status, body = doJSON(t, app, http.MethodPost, "/api/school/participants", schoolToken, fiber.Map{
		"name": "Rahul", "class_name": "VII", "gender": "boy",
		"event_id": event.EventID.String(),
	}); status != http.StatusCreated {
		t.Fatalf("create participant: status %d body %v", status, body)
	}
	var participant participantModel.ParticipantModel
	if err := db.First(&participant, "participant_name = ?", "Rahul").Error; err != nil {
		t.Fatalf("participant not persisted: %v", err)
	}

	// IT admin (approval required) finalizes everything.
	if status, body = doJSON(t, app, http.MethodPost, "/api/it-admin/register", "", fiber.Map{
		"name": "Ops", "email": "ops@example.com",
		"mobile": "9000000003", "password": "secret123",
	}); status != http.StatusCreated {
		t.Fatalf("it admin register: status %d body %v", status, body)
	}
	var itAdmin accountModel.ITAdminModel
	if err := db.First(&itAdmin, "email = ?", "ops@example.com").Error; err != nil {
		t.Fatalf("it admin not persisted: %v", err)
	}
	if status, body = doJSON(t, app, http.MethodPatch,
		"/api/admin/users/it-admin/"+itAdmin.ID.String()+"/approve", adminToken, nil); status != http.StatusOK {
		t.Fatalf("approve it admin: status %d body %v", status, body)
	}
	itToken := loginToken(t, app, "/api/it-admin/login", "ops@example.com", "secret123")

	if status, body = doJSON(t, app, http.MethodPost, "/api/it-admin/finalize", itToken,
		fiber.Map{"scope": "all"}); status != http.StatusOK {
		t.Fatalf("finalize: status %d body %v", status, body)
	}

	// Frozen rows refuse normal edits.
	status, _ = doJSON(t, app, http.MethodPatch,
		"/api/school/participants/"+participant.ParticipantID.String(), schoolToken,
		fiber.Map{"class_name": "VIII"})
	if status != http.StatusLocked {
		t.Fatalf("editing a frozen participant should 423, got %d", status)
	}

	// Dashboard reflects the reported school.
	status, body = doJSON(t, app, http.MethodGet, "/api/it-admin/overview/metrics", itToken, nil)
	if status != http.StatusOK {
		t.Fatalf("metrics: status %d body %v", status, body)
	}
	data, _ := body["data"].(map[string]any)
	participants, _ := data["participants"].(map[string]any)
	if got, _ := participants["total"].(float64); got != 1 {
		t.Errorf("participants.total: want 1, got %v", participants["total"])
	}
	schools, _ := data["schools"].(map[string]any)
	if got, _ := schools["reportedCount"].(float64); got != 1 {
		t.Errorf("schools.reportedCount: want 1, got %v", schools["reportedCount"])
	}
}

// The hidden cultural programme never shows in listings but resolves through
// its dedicated endpoint, and refuses admin edits.
func TestCulturalProgrammeIsHidden(t *testing.T) {
	app, db := newTestApp(t)

	status, body := doJSON(t, app, http.MethodGet, "/api/public/district-events", "", nil)
	if status != http.StatusOK {
		t.Fatalf("public district events: status %d", status)
	}
	if data, ok := body["data"].([]any); ok && len(data) != 0 {
		t.Errorf("cultural programme leaked into the public listing: %v", data)
	}

	var cultural eventModel.DistrictEventModel
	if err := db.First(&cultural, "district_event_system_key = ?", eventModel.SystemKeyCultural).Error; err != nil {
		t.Fatalf("cultural programme not seeded: %v", err)
	}

	// Admin cannot edit or delete the system row.
	if status, _ := doJSON(t, app, http.MethodPost, "/api/admin/register", "", fiber.Map{
		"name": "Root Admin", "email": "admin@example.com",
		"mobile": "9000000001", "password": "secret123",
	}); status != http.StatusCreated {
		t.Fatalf("admin register: status %d", status)
	}
	adminToken := loginToken(t, app, "/api/admin/login", "admin@example.com", "secret123")

	status, _ = doJSON(t, app, http.MethodPatch,
		"/api/admin/district-events/"+cultural.DistrictEventID.String(), adminToken,
		fiber.Map{"title": "Renamed"})
	if status != http.StatusForbidden {
		t.Errorf("editing the system event should 403, got %d", status)
	}
	status, _ = doJSON(t, app, http.MethodDelete,
		"/api/admin/district-events/"+cultural.DistrictEventID.String(), adminToken, nil)
	if status != http.StatusForbidden {
		t.Errorf("deleting the system event should 403, got %d", status)
	}
}

// School approval on the legacy /api/district surface is open to admins and
// district coordinators; event coordinators are shut out.
func TestSchoolApprovalRoles(t *testing.T) {
	app, db := newTestApp(t)

	if status, _ := doJSON(t, app, http.MethodPost, "/api/admin/register", "", fiber.Map{
		"name": "Root Admin", "email": "admin@example.com",
		"mobile": "9000000001", "password": "secret123",
	}); status != http.StatusCreated {
		t.Fatalf("admin register: status %d", status)
	}
	adminToken := loginToken(t, app, "/api/admin/login", "admin@example.com", "secret123")

	if status, _ := doJSON(t, app, http.MethodPost, "/api/admin/districts", adminToken,
		fiber.Map{"name": "Alpha"}); status != http.StatusCreated {
		t.Fatalf("create district: status %d", status)
	}
	var district regionModel.DistrictModel
	if err := db.First(&district, "district_name = ?", "Alpha").Error; err != nil {
		t.Fatalf("district not persisted: %v", err)
	}
	if status, _ := doJSON(t, app, http.MethodPost, "/api/admin/schools", adminToken, fiber.Map{
		"name": "Alpha High", "district_id": district.DistrictID.String(),
	}); status != http.StatusCreated {
		t.Fatalf("create school: status %d", status)
	}
	var school regionModel.SchoolModel
	if err := db.First(&school, "school_name = ?", "Alpha High").Error; err != nil {
		t.Fatalf("school not persisted: %v", err)
	}

	approve := func(token string) int {
		status, _ := doJSON(t, app, http.MethodPatch,
			"/api/district/schools/"+school.SchoolID.String()+"/approve", token, nil)
		return status
	}

	// District coordinator for this district.
	if status, _ := doJSON(t, app, http.MethodPost, "/api/district/register", "", fiber.Map{
		"name": "DC", "email": "dc@example.com",
		"mobile": "9000000002", "password": "secret123",
		"district_id": district.DistrictID.String(),
	}); status != http.StatusCreated {
		t.Fatalf("district coordinator register: status %d", status)
	}
	var dc accountModel.DistrictCoordinatorModel
	if err := db.First(&dc, "email = ?", "dc@example.com").Error; err != nil {
		t.Fatalf("district coordinator not persisted: %v", err)
	}
	if status, _ := doJSON(t, app, http.MethodPatch,
		"/api/admin/users/district/"+dc.ID.String()+"/approve", adminToken, nil); status != http.StatusOK {
		t.Fatalf("approve district coordinator: status %d", status)
	}
	dcToken := loginToken(t, app, "/api/district/login", "dc@example.com", "secret123")

	if status := approve(dcToken); status != http.StatusOK {
		t.Errorf("district coordinator should approve schools, got %d", status)
	}

	// Event coordinator gets refused.
	if status, _ := doJSON(t, app, http.MethodPost, "/api/event-coordinator/register", "", fiber.Map{
		"name": "EC", "email": "ec@example.com",
		"mobile": "9000000003", "password": "secret123",
	}); status != http.StatusCreated {
		t.Fatalf("event coordinator register: status %d", status)
	}
	var ec accountModel.EventCoordinatorModel
	if err := db.First(&ec, "email = ?", "ec@example.com").Error; err != nil {
		t.Fatalf("event coordinator not persisted: %v", err)
	}
	if status, _ := doJSON(t, app, http.MethodPatch,
		"/api/admin/users/event-coordinator/"+ec.ID.String()+"/approve", adminToken, nil); status != http.StatusOK {
		t.Fatalf("approve event coordinator: status %d", status)
	}
	ecToken := loginToken(t, app, "/api/event-coordinator/login", "ec@example.com", "secret123")

	if status := approve(ecToken); status != http.StatusForbidden {
		t.Errorf("event coordinator must not approve schools, got %d", status)
	}

	if status := approve(adminToken); status != http.StatusOK {
		t.Errorf("admin should approve schools, got %d", status)
	}
}

// Finalizing only the rosters must leave teacher records editable.
func TestFinalizeTargetOverRoutes(t *testing.T) {
	app, db := newTestApp(t)

	if status, _ := doJSON(t, app, http.MethodPost, "/api/admin/register", "", fiber.Map{
		"name": "Root Admin", "email": "admin@example.com",
		"mobile": "9000000001", "password": "secret123",
	}); status != http.StatusCreated {
		t.Fatalf("admin register: status %d", status)
	}
	adminToken := loginToken(t, app, "/api/admin/login", "admin@example.com", "secret123")

	if status, _ := doJSON(t, app, http.MethodPost, "/api/it-admin/register", "", fiber.Map{
		"name": "Ops", "email": "ops@example.com",
		"mobile": "9000000002", "password": "secret123",
	}); status != http.StatusCreated {
		t.Fatalf("it admin register: status %d", status)
	}
	var itAdmin accountModel.ITAdminModel
	if err := db.First(&itAdmin, "email = ?", "ops@example.com").Error; err != nil {
		t.Fatalf("it admin not persisted: %v", err)
	}
	if status, _ := doJSON(t, app, http.MethodPatch,
		"/api/admin/users/it-admin/"+itAdmin.ID.String()+"/approve", adminToken, nil); status != http.StatusOK {
		t.Fatalf("approve it admin: status %d", status)
	}
	itToken := loginToken(t, app, "/api/it-admin/login", "ops@example.com", "secret123")

	districtID := uuid.New()
	p := participantModel.ParticipantModel{
		ParticipantName:       "Rahul",
		ParticipantGender:     "boy",
		ParticipantEventID:    uuid.New(),
		ParticipantDistrictID: districtID,
		ParticipantSchoolName: "Alpha High",
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed participant: %v", err)
	}
	tr := participantModel.AccompanyingTeacherModel{
		AccompanyingTeacherName:       "Meera",
		AccompanyingTeacherMember:     "Teacher",
		AccompanyingTeacherGender:     "female",
		AccompanyingTeacherDistrictID: districtID,
		AccompanyingTeacherSchoolName: "Alpha High",
	}
	if err := db.Create(&tr).Error; err != nil {
		t.Fatalf("seed teacher: %v", err)
	}

	if status, body := doJSON(t, app, http.MethodPost, "/api/it-admin/participants/finalize", itToken,
		fiber.Map{"scope": "all"}); status != http.StatusOK {
		t.Fatalf("finalize participants: status %d body %v", status, body)
	}

	var gotP participantModel.ParticipantModel
	db.First(&gotP, "participant_id = ?", p.ParticipantID)
	if !gotP.ParticipantFrozen {
		t.Error("participant should be frozen")
	}
	var gotT participantModel.AccompanyingTeacherModel
	db.First(&gotT, "accompanying_teacher_id = ?", tr.AccompanyingTeacherID)
	if gotT.AccompanyingTeacherFrozen {
		t.Error("teacher must stay unfrozen after a participants-only finalize")
	}

	if status, body := doJSON(t, app, http.MethodPost, "/api/it-admin/teachers/finalize", itToken,
		fiber.Map{"scope": "all"}); status != http.StatusOK {
		t.Fatalf("finalize teachers: status %d body %v", status, body)
	}
	db.First(&gotT, "accompanying_teacher_id = ?", tr.AccompanyingTeacherID)
	if !gotT.AccompanyingTeacherFrozen {
		t.Error("teacher should be frozen after the teachers finalize")
	}
}

func TestHealthEndpoint(t *testing.T) {
	app, _ := newTestApp(t)
	status, body := doJSON(t, app, http.MethodGet, "/health", "", nil)
	if status != http.StatusOK {
		t.Fatalf("health: status %d", status)
	}
	if body["database"] != "up" {
		t.Errorf("expected database up, got %v", body["database"])
	}
}
