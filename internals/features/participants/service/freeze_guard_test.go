// file: internals/features/participants/service/freeze_guard_test.go
package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestGuardFrozenUpdate(t *testing.T) {
	cases := []struct {
		name     string
		frozen   bool
		updates  map[string]interface{}
		wantCode int // 0 means no error
	}{
		{"unfrozen row accepts anything", false,
			map[string]interface{}{"participant_name": "X"}, 0},
		{"frozen row rejects field edits", true,
			map[string]interface{}{"participant_class_name": "VII"}, fiber.StatusLocked},
		{"frozen row rejects mixed edits", true,
			map[string]interface{}{"participant_frozen": false, "participant_name": "X"}, fiber.StatusLocked},
		{"frozen row allows toggling only the flag", true,
			map[string]interface{}{"participant_frozen": false}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := GuardFrozenUpdate(tc.frozen, tc.updates, "participant_frozen")
			if tc.wantCode == 0 {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var fe *fiber.Error
			if !errors.As(err, &fe) || fe.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %v", tc.wantCode, err)
			}
		})
	}
}

func TestGuardFrozenDelete(t *testing.T) {
	if err := GuardFrozenDelete(false); err != nil {
		t.Fatalf("unfrozen row must be deletable, got %v", err)
	}

	err := GuardFrozenDelete(true)
	var fe *fiber.Error
	if !errors.As(err, &fe) || fe.Code != fiber.StatusLocked {
		t.Fatalf("expected 423 for frozen delete, got %v", err)
	}
}
