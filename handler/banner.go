package handler

import (
	"errors"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetBanners(c *fiber.Ctx) error {
	var banners []model.HomeBanner
	if err := database.DB.Order("sort_order asc").Find(&banners).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, banners)
}

func CreateBanner(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.BannerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing banner input"))
	}

	banner := new(model.HomeBanner)
	copier.Copy(&banner, &input)
	banner.IsActive = true

	if err := database.DB.Create(&banner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, banner)
}

func UpdateBanner(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("bannerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var banner model.HomeBanner
	if err := database.DB.First(&banner, uint(id)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Banner not found", err)
	}

	input, ok := c.Locals("input").(*model.BannerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing banner input"))
	}

	copier.CopyWithOption(&banner, &input, copier.Option{IgnoreEmpty: true})
	if err := database.DB.Save(&banner).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, banner)
}

// ReorderBanners cập nhật sort_order theo danh sách gửi lên.
func ReorderBanners(c *fiber.Ctx) error {
	var inputs []model.ReorderBannerInput
	if err := c.BodyParser(&inputs); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	for _, in := range inputs {
		if err := database.DB.Model(&model.HomeBanner{}).
			Where("id = ?", in.ID).
			Update("sort_order", in.Order).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
		}
	}

	return GetBanners(c)
}

func DeleteBanner(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("bannerId"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := database.DB.Delete(&model.HomeBanner{}, uint(id)).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
