package handler

import (
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats — số liệu tổng quan cho trang chủ admin.
func GetDashboardStats(c *fiber.Ctx) error {
	from, to := helper.DayWindow(time.Now())

	type orderRow struct {
		Status string `json:"status"`
		N      int64  `json:"n"`
	}
	var ordersToday []orderRow
	database.DB.Model(&model.Order{}).
		Select("status, count(*) as n").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("status").
		Scan(&ordersToday)

	var revenueToday float64
	database.DB.Model(&model.Order{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", constants.ORDER_COMPLETED, from, to).
		Select("COALESCE(SUM(total), 0)").
		Scan(&revenueToday)

	var reservationsToday int64
	database.DB.Model(&model.Reservation{}).
		Where("datetime >= ? AND datetime < ?", from, to).
		Count(&reservationsToday)

	var pendingOrders int64
	database.DB.Model(&model.Order{}).
		Where("status = ?", constants.ORDER_PENDING).
		Count(&pendingOrders)

	var newReservations int64
	database.DB.Model(&model.Reservation{}).
		Where("status = ?", constants.RESERVATION_NEW).
		Count(&newReservations)

	var availableDrivers int64
	database.DB.Model(&model.User{}).
		Where("role = ? AND driver_status = ?", constants.ROLE_DRIVER, constants.DRIVER_AVAILABLE).
		Count(&availableDrivers)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ordersToday":       ordersToday,
		"revenueToday":      revenueToday,
		"reservationsToday": reservationsToday,
		"pendingOrders":     pendingOrders,
		"newReservations":   newReservations,
		"availableDrivers":  availableDrivers,
	})
}
