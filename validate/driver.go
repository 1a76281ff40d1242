package validate

import (
	"errors"

	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateDriver() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(model.CreateDriverInput)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.Phone != "" && !isValidPhone(input.Phone) {
			return utils.ErrorResponse(c, 400, "Số điện thoại không hợp lệ", errors.New("invalid phone"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateDriver() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(model.UpdateDriverInput)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.Phone != "" && !isValidPhone(input.Phone) {
			return utils.ErrorResponse(c, 400, "Số điện thoại không hợp lệ", errors.New("invalid phone"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
