package handler

import (
	"errors"
	"strconv"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func findDriver(c *fiber.Ctx) (*model.User, error) {
	id, err := strconv.ParseUint(c.Params("driverId"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid driver id")
	}

	var driver model.User
	if err := database.DB.
		Where("id = ? AND role = ?", uint(id), constants.ROLE_DRIVER).
		First(&driver).Error; err != nil {
		return nil, err
	}
	return &driver, nil
}

func GetDrivers(c *fiber.Ctx) error {
	var drivers []model.User
	if err := database.DB.
		Where("role = ?", constants.ROLE_DRIVER).
		Order("created_at desc").
		Find(&drivers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, drivers)
}

func GetDriverById(c *fiber.Ctx) error {
	driver, err := findDriver(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Driver not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, driver)
}

func GetDriverStats(c *fiber.Ctx) error {
	type stats struct {
		TotalDrivers  int64   `json:"totalDrivers"`
		ActiveDrivers int64   `json:"activeDrivers"`
		TotalEarnings float64 `json:"totalEarnings"`
	}
	var s stats

	db := database.DB.Model(&model.User{}).Where("role = ?", constants.ROLE_DRIVER)
	db.Count(&s.TotalDrivers)

	database.DB.Model(&model.User{}).
		Where("role = ? AND driver_status = ?", constants.ROLE_DRIVER, constants.DRIVER_AVAILABLE).
		Count(&s.ActiveDrivers)

	database.DB.Model(&model.User{}).
		Where("role = ?", constants.ROLE_DRIVER).
		Select("COALESCE(SUM(total_earnings), 0)").
		Scan(&s.TotalEarnings)

	return utils.SuccessResponse(c, fiber.StatusOK, s)
}

// CreateDriver — dual write: user canonical trước, mirror sang bảng drivers
// legacy sau. Mirror fail chỉ log, caller vẫn nhận 200 vì bản ghi canonical
// đã là source of truth.
func CreateDriver(c *fiber.Ctx) error {
	input, ok := c.Locals("input").(*model.CreateDriverInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing driver input"))
	}

	// 1. Email phải duy nhất trong users
	existing, err := helper.GetUserByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email already exists", nil, "email")
	}

	// 2. Hash password
	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	// 3. Tạo user canonical
	driver := new(model.User)
	copier.Copy(&driver, &input)
	driver.PasswordHash = hash
	driver.Role = constants.ROLE_DRIVER
	driver.DriverStatus = constants.DRIVER_OFFLINE
	driver.IsActive = true
	driver.Rating = 5

	if err := database.DB.Create(&driver).Error; err != nil {
		if strings.Contains(err.Error(), "duplicate key value violates unique constraint") {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Email already exists", nil, "email")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	// 4. Mirror sang bảng drivers của app legacy (best-effort)
	helper.SyncNewDriver(helper.DriverRecords(), driver, input.Password)

	return utils.SuccessResponse(c, fiber.StatusOK, driver)
}

// UpdateDriver — canonical trước, mirror sau (khớp theo email).
func UpdateDriver(c *fiber.Ctx) error {
	driver, err := findDriver(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Driver not found", err)
	}

	input, ok := c.Locals("input").(*model.UpdateDriverInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing driver input"))
	}

	if input.Name != "" {
		driver.Name = input.Name
	}
	if input.Phone != "" {
		driver.Phone = input.Phone
	}
	if input.VehiclePlate != "" {
		driver.VehiclePlate = input.VehiclePlate
	}
	if input.Area != "" {
		driver.Area = input.Area
	}

	if err := database.DB.Save(&driver).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	helper.SyncDriverProfile(helper.DriverRecords(), driver)

	return utils.SuccessResponse(c, fiber.StatusOK, driver)
}

// ToggleDriverActive — khoá/mở tài xế. isActive=false kéo driver_status
// về OFFLINE, mở lại thì AVAILABLE; trạng thái mới đẩy sang mirror.
func ToggleDriverActive(c *fiber.Ctx) error {
	driver, err := findDriver(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Driver not found", err)
	}

	driver.IsActive = !driver.IsActive
	if driver.IsActive {
		driver.DriverStatus = constants.DRIVER_AVAILABLE
	} else {
		driver.DriverStatus = constants.DRIVER_OFFLINE
	}

	if err := database.DB.Save(&driver).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}

	helper.SyncDriverStatus(helper.DriverRecords(), driver)

	return utils.SuccessResponse(c, fiber.StatusOK, driver)
}

// DeleteDriver — xoá canonical trước, mirror sau.
func DeleteDriver(c *fiber.Ctx) error {
	driver, err := findDriver(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Driver not found", err)
	}

	if err := database.DB.Delete(&model.User{}, driver.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.SyncDriverDelete(helper.DriverRecords(), driver.Email)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": driver.ID})
}
