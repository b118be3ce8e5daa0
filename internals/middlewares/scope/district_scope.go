// file: internals/middlewares/scope/district_scope.go
package scope

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	accountModel "github.com/Ramashis2004/sri-satyasai-backend/internals/features/accounts/model"
	helper "github.com/Ramashis2004/sri-satyasai-backend/internals/helpers"
)

// DistrictScope resolves the district coordinator's district for the request.
func DistrictScope(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rawID, _ := c.Locals("user_id").(string)
		userID, err := uuid.Parse(rawID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: invalid token")
		}

		var user accountModel.DistrictCoordinatorModel
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: account not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load user profile")
		}
		if !user.Approved {
			return helper.JsonError(c, fiber.StatusForbidden, "Account pending approval")
		}
		if user.DistrictID == nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Profile incomplete: district missing")
		}

		c.Locals("district_id", user.DistrictID.String())
		return c.Next()
	}
}
