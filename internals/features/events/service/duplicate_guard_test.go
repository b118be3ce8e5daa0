// file: internals/features/events/service/duplicate_guard_test.go
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

	"github.com/Ramashis2004/sri-satyasai-backend/internals/features/events/model"
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
		&model.EventModel{},
		&model.DistrictEventModel{},
		&model.OtherEventModel{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return gdb
}

func TestEnsureEventTitleUnique(t *testing.T) {
	db := openTestDB(t)

	existing := model.EventModel{
		EventTitle:    "Quiz",
		EventGender:   model.GenderBoth,
		EventAudience: model.AudienceJunior,
	}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}

	// Same title + audience conflicts, case-insensitively.
	err := EnsureEventTitleUnique(db, "  quiz ", model.AudienceJunior, uuid.Nil)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusConflict {
		t.Fatalf("expected 409 for duplicate title, got %v", err)
	}

	// Same title for a different audience is fine.
	if err := EnsureEventTitleUnique(db, "Quiz", model.AudienceSenior, uuid.Nil); err != nil {
		t.Errorf("different audience should not conflict: %v", err)
	}

	// The row being edited is excluded from its own check.
	if err := EnsureEventTitleUnique(db, "Quiz", model.AudienceJunior, existing.EventID); err != nil {
		t.Errorf("self-exclusion failed: %v", err)
	}
}

func TestEnsureDistrictEventTitleUnique(t *testing.T) {
	db := openTestDB(t)

	existing := model.DistrictEventModel{DistrictEventTitle: "Group Song"}
	if err := db.Create(&existing).Error; err != nil {
		t.Fatalf("seed district event: %v", err)
	}

	err := EnsureDistrictEventTitleUnique(db, "GROUP SONG", uuid.Nil)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
	if err := EnsureDistrictEventTitleUnique(db, "Group Song", existing.DistrictEventID); err != nil {
		t.Errorf("self-exclusion failed: %v", err)
	}
}
