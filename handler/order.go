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
	"gorm.io/gorm"
)

func findOrder(c *fiber.Ctx) (*model.Order, error) {
	id, err := strconv.ParseUint(c.Params("orderId"), 10, 64)
	if err != nil {
		return nil, errors.New("invalid order id")
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		Preload("AssignedDriver").
		First(&order, uint(id)).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func GetOrders(c *fiber.Ctx) error {
	status := c.Query("status")
	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)

	query := database.DB.Model(&model.Order{}).
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		Preload("AssignedDriver")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	var totalCount int64
	query.Count(&totalCount)

	var orders []model.Order
	if limit > 0 && page > 0 {
		query = utils.ApplyPagination(query, &limit, &page)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      &limit,
		Page:       &page,
		TotalCount: totalCount,
	})
}

func GetOrderById(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// transitionOrder áp một bước chuyển trạng thái bằng conditional update.
// Thua race (bản ghi đã đổi trạng thái dưới chân) cũng trả 400 như sai
// trạng thái nguồn — caller đọc lại để thấy trạng thái thật.
func transitionOrder(c *fiber.Ctx, order *model.Order, from, to, ruleMessage string, extra map[string]interface{}) error {
	applied, err := helper.TransitionOrder(database.DB, order.ID, from, to, extra)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if !applied {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, ruleMessage, nil)
	}

	updated, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	PublishOrderEvent(updated)
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

// ConfirmOrder: chỉ đơn PENDING mới xác nhận được.
func ConfirmOrder(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_PENDING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only PENDING orders can be confirmed", nil)
	}
	return transitionOrder(c, order, constants.ORDER_PENDING, constants.ORDER_CONFIRMED,
		"Only PENDING orders can be confirmed", nil)
}

func PreparingOrder(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_CONFIRMED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only CONFIRMED orders can be set to preparing", nil)
	}
	return transitionOrder(c, order, constants.ORDER_CONFIRMED, constants.ORDER_PREPARING,
		"Only CONFIRMED orders can be set to preparing", nil)
}

func ReadyOrder(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_PREPARING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only PREPARING orders can be set to ready", nil)
	}
	return transitionOrder(c, order, constants.ORDER_PREPARING, constants.ORDER_READY,
		"Only PREPARING orders can be set to ready", nil)
}

// AssignDriver gán tài xế và tự động chuyển DELIVERING trong cùng một UPDATE.
func AssignDriver(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_READY {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only READY orders can have driver assigned", nil)
	}

	input, ok := c.Locals("input").(*model.AssignDriverInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("missing assign-driver input"))
	}

	driver, err := helper.GetDriverByID(input.DriverID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if driver == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid driver", nil)
	}
	if !driver.IsActive {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Driver is not active", nil)
	}

	resp := transitionOrder(c, order, constants.ORDER_READY, constants.ORDER_DELIVERING,
		"Only READY orders can have driver assigned",
		map[string]interface{}{"assigned_driver_id": driver.ID})
	if c.Response().StatusCode() != fiber.StatusOK {
		return resp
	}

	// Tài xế nhận đơn → BUSY, đẩy sang mirror (best-effort)
	database.DB.Model(&model.User{}).Where("id = ?", driver.ID).
		Update("driver_status", constants.DRIVER_BUSY)
	driver.DriverStatus = constants.DRIVER_BUSY
	helper.SyncDriverStatus(helper.DriverRecords(), driver)

	return resp
}

// CompleteOrder: DELIVERING → COMPLETED, cộng counter cho tài xế đã gán.
func CompleteOrder(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status != constants.ORDER_DELIVERING {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only DELIVERING orders can be completed", nil)
	}

	resp := transitionOrder(c, order, constants.ORDER_DELIVERING, constants.ORDER_COMPLETED,
		"Only DELIVERING orders can be completed", nil)
	if c.Response().StatusCode() != fiber.StatusOK {
		return resp
	}

	if order.AssignedDriverID != nil {
		database.DB.Model(&model.User{}).
			Where("id = ?", *order.AssignedDriverID).
			Updates(map[string]interface{}{
				"total_orders":   gorm.Expr("total_orders + 1"),
				"total_earnings": gorm.Expr("total_earnings + ?", order.Total),
				"driver_status":  constants.DRIVER_AVAILABLE,
			})
		if driver := driverToRelease(order); driver != nil {
			helper.SyncDriverStatus(helper.DriverRecords(), driver)
			helper.SyncDriverCompletion(helper.DriverRecords(), driver.Email, order.Total)
		}
	}

	return resp
}

// driverToRelease trả về bản sao tài xế đã gán với trạng thái AVAILABLE,
// nil nếu đơn chưa gán ai. Dùng khi đơn rời DELIVERING (giao xong hoặc huỷ).
func driverToRelease(order *model.Order) *model.User {
	if order.AssignedDriver == nil {
		return nil
	}
	driver := *order.AssignedDriver
	driver.DriverStatus = constants.DRIVER_AVAILABLE
	return &driver
}

// CancelOrder: huỷ được từ mọi trạng thái trừ COMPLETED/CANCELED.
func CancelOrder(c *fiber.Ctx) error {
	order, err := findOrder(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Order not found", err)
	}
	if order.Status == constants.ORDER_COMPLETED || order.Status == constants.ORDER_CANCELED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot cancel completed or already canceled orders", nil)
	}

	resp := transitionOrder(c, order, order.Status, constants.ORDER_CANCELED,
		"Cannot cancel completed or already canceled orders", nil)
	if c.Response().StatusCode() != fiber.StatusOK {
		return resp
	}

	// huỷ đơn đang giao: trả tài xế về AVAILABLE thay vì treo BUSY
	if order.Status == constants.ORDER_DELIVERING {
		if order.AssignedDriverID != nil {
			database.DB.Model(&model.User{}).
				Where("id = ?", *order.AssignedDriverID).
				Update("driver_status", constants.DRIVER_AVAILABLE)
		}
		if driver := driverToRelease(order); driver != nil {
			helper.SyncDriverStatus(helper.DriverRecords(), driver)
		}
	}

	return resp
}
