package validate

import (
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func AssignDriver() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(model.AssignDriverInput)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}
