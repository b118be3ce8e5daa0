// file: internals/features/participants/service/freeze_guard.go
package service

import "github.com/gofiber/fiber/v2"

// GuardFrozenUpdate rejects updates to a frozen row with 423 Locked, unless
// the update touches nothing but the frozen flag itself (so a row can always
// be unfrozen).
func GuardFrozenUpdate(frozen bool, updates map[string]interface{}, frozenColumn string) error {
	if !frozen {
		return nil
	}
	for col := range updates {
		if col != frozenColumn {
			return fiber.NewError(fiber.StatusLocked, "Record is frozen and cannot be modified")
		}
	}
	return nil
}

// GuardFrozenDelete rejects deletes of frozen rows outright.
func GuardFrozenDelete(frozen bool) error {
	if frozen {
		return fiber.NewError(fiber.StatusLocked, "Record is frozen and cannot be deleted")
	}
	return nil
}
