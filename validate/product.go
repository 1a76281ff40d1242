package validate

import (
	"errors"

	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(model.CreateProductInput)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.Price < 0 {
			return utils.ErrorResponse(c, 400, "Giá món không được âm", errors.New("negative price"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(model.UpdateProductInput)
		if err := c.BodyParser(input); err != nil {
			return utils.ErrorResponse(c, 400, "Dữ liệu không hợp lệ", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.Price != nil && *input.Price < 0 {
			return utils.ErrorResponse(c, 400, "Giá món không được âm", errors.New("negative price"))
		}

		c.Locals("input", input)
		return c.Next()
	}
}
