// file: internals/features/accounts/service/auth_service_test.go
package service

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/configs"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/constants"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/dto"
	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
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
		&model.AdminModel{},
		&model.ITAdminModel{},
		&model.EventCoordinatorModel{},
		&model.DistrictCoordinatorModel{},
		&model.SchoolUserModel{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func mustSpec(t *testing.T, role string) *RoleSpec {
	t.Helper()
	spec, ok := SpecForRole(role)
	if !ok {
		t.Fatalf("role %q not registered", role)
	}
	return spec
}

func TestRegisterAndLoginAdmin(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := openTestDB(t)
	svc := NewAuthService(db)
	spec := mustSpec(t, constants.RoleAdmin)

	req := &dto.RegisterRequest{
		Name: "Admin", Email: "admin@example.com", Mobile: "9000000001", Password: "secret123",
	}
	acct, err := svc.Register(spec, req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !acct.IsApproved() {
		t.Error("admin accounts must be auto-approved")
	}

	token, _, err := svc.Login(spec, &dto.LoginRequest{Email: "Admin@Example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Error("expected a signed token")
	}

	_, _, err = svc.Login(spec, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusUnauthorized {
		t.Fatalf("wrong password should 401, got %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	spec := mustSpec(t, constants.RoleAdmin)

	if _, err := svc.Register(spec, &dto.RegisterRequest{
		Name: "A", Email: "dup@example.com", Mobile: "9000000002", Password: "secret123",
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(spec, &dto.RegisterRequest{
		Name: "B", Email: "DUP@example.com", Mobile: "9000000003", Password: "secret123",
	})
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusConflict {
		t.Fatalf("duplicate email should 409, got %v", err)
	}
}

func TestApprovalGate(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := openTestDB(t)
	svc := NewAuthService(db)
	spec := mustSpec(t, constants.RoleITAdmin)

	acct, err := svc.Register(spec, &dto.RegisterRequest{
		Name: "IT", Email: "it@example.com", Mobile: "9000000004", Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if acct.IsApproved() {
		t.Fatal("it_admin must start unapproved")
	}

	creds := &dto.LoginRequest{Email: "it@example.com", Password: "secret123"}
	_, _, err = svc.Login(spec, creds)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusForbidden {
		t.Fatalf("unapproved login should 403, got %v", err)
	}

	if err := db.Model(&model.ITAdminModel{}).
		Where("id = ?", acct.GetID()).
		Update("approved", true).Error; err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, _, err := svc.Login(spec, creds); err != nil {
		t.Fatalf("approved login: %v", err)
	}
}

func TestSchoolUserRegistrationBindsSchool(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	spec := mustSpec(t, constants.RoleSchoolUser)

	district := regionModel.DistrictModel{DistrictName: "Alpha"}
	if err := db.Create(&district).Error; err != nil {
		t.Fatalf("seed district: %v", err)
	}
	school := regionModel.SchoolModel{
		SchoolName: "Alpha High", SchoolDistrictID: district.DistrictID, SchoolIsApproved: true,
	}
	if err := db.Create(&school).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}

	req := &dto.RegisterRequest{
		Name: "SU", Email: "su@example.com", Mobile: "9000000005", Password: "secret123",
		DistrictID: district.DistrictID.String(), SchoolName: "alpha HIGH", RoleInSchool: "Principal",
	}
	acct, err := svc.Register(spec, req)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	su := acct.(*model.SchoolUserModel)
	if su.SchoolName != "Alpha High" {
		t.Errorf("school name should be stored canonically, got %q", su.SchoolName)
	}

	// A second user for the same school conflicts at registration time.
	_, err = svc.Register(spec, &dto.RegisterRequest{
		Name: "SU2", Email: "su2@example.com", Mobile: "9000000006", Password: "secret123",
		DistrictID: district.DistrictID.String(), SchoolName: "Alpha High", RoleInSchool: "Teacher",
	})
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusConflict {
		t.Fatalf("second school user should 409, got %v", err)
	}

	// Unknown school in the district is a 404.
	_, err = svc.Register(spec, &dto.RegisterRequest{
		Name: "SU3", Email: "su3@example.com", Mobile: "9000000007", Password: "secret123",
		DistrictID: district.DistrictID.String(), SchoolName: "Nowhere High", RoleInSchool: "Teacher",
	})
	if !errors.As(err, &fe) || fe.Code != fiber.StatusNotFound {
		t.Fatalf("unknown school should 404, got %v", err)
	}
}

func TestForgotAndResetPassword(t *testing.T) {
	configs.JWTSecret = "test-secret"
	db := openTestDB(t)
	svc := NewAuthService(db)
	spec := mustSpec(t, constants.RoleAdmin)

	if _, err := svc.Register(spec, &dto.RegisterRequest{
		Name: "Admin", Email: "reset@example.com", Mobile: "9000000008", Password: "secret123",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ForgotPassword(spec, "reset@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	var admin model.AdminModel
	db.First(&admin, "email = ?", "reset@example.com")
	if admin.PasswordResetToken == nil || *admin.PasswordResetToken == "" {
		t.Fatal("reset token not stored")
	}

	if err := svc.ResetPassword(spec, &dto.ResetPasswordRequest{
		Token: *admin.PasswordResetToken, Password: "newsecret",
	}); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	if _, _, err := svc.Login(spec, &dto.LoginRequest{
		Email: "reset@example.com", Password: "newsecret",
	}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	// Token is single-use.
	err := svc.ResetPassword(spec, &dto.ResetPasswordRequest{
		Token: *admin.PasswordResetToken, Password: "again",
	})
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("reused token should 400, got %v", err)
	}
}
