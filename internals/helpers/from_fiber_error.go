// file: internals/helpers/from_fiber_error.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// FromFiberError turns a service error (usually *fiber.Error) into the
// standard JSON error envelope. Anything else becomes a 500.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}
