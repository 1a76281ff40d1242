package handler

import (
	"errors"
	"strconv"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func findUser(c *fiber.Ctx) (*model.User, error) {
	id, err := strconv.ParseUint(c.Params("userId"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid user id")
	}

	var user model.User
	if err := database.DB.First(&user, uint(id)).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func GetUsers(c *fiber.Ctx) error {
	role := c.Query("role")

	query := database.DB.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}

	var users []model.User
	if err := query.Order("created_at desc").Find(&users).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, users)
}

func GetUserById(c *fiber.Ctx) error {
	user, err := findUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func CreateUser(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing user input"))
	}

	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email already exists", nil, "email")
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	user := new(model.User)
	copier.Copy(&user, &input)
	user.PasswordHash = hash
	user.IsActive = true
	if user.Role == "" {
		user.Role = constants.ROLE_USER
	}

	if err := database.DB.Create(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func UpdateUser(c *fiber.Ctx) error {
	user, err := findUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	input, ok := c.Locals("input").(*model.UpdateUserInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing user input"))
	}

	// Đổi email phải kiểm tra trùng trước
	if input.Email != "" && input.Email != user.Email {
		existing, err := helper.GetUserByEmail(input.Email)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if existing != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email already used by another user", nil, "email")
		}
		user.Email = input.Email
	}
	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Password != "" {
		hash, err := helper.HashPassword(input.Password)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
		}
		user.PasswordHash = hash
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

// ToggleUserActive — với user role DRIVER thì đồng bộ cả driver_status
// và mirror legacy như bên driver handler.
func ToggleUserActive(c *fiber.Ctx) error {
	user, err := findUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	user.IsActive = !user.IsActive
	if user.Role == constants.ROLE_DRIVER {
		if user.IsActive {
			user.DriverStatus = constants.DRIVER_AVAILABLE
		} else {
			user.DriverStatus = constants.DRIVER_OFFLINE
		}
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	if user.Role == constants.ROLE_DRIVER {
		helper.SyncDriverStatus(helper.DriverRecords(), user)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, user)
}

func DeleteUser(c *fiber.Ctx) error {
	user, err := findUser(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
	}

	if err := database.DB.Delete(&model.User{}, user.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	if user.Role == constants.ROLE_DRIVER {
		helper.SyncDriverDelete(helper.DriverRecords(), user.Email)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": user.ID})
}
