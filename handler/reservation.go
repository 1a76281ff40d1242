package handler

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func findReservation(c *fiber.Ctx) (*model.Reservation, error) {
	id, err := strconv.ParseUint(c.Params("reservationId"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid reservation id")
	}

	var r model.Reservation
	if err := database.DB.First(&r, uint(id)).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

func GetReservations(c *fiber.Ctx) error {
	status := c.Query("status")
	date := c.Query("date") // YYYY-MM-DD

	query := database.DB.Model(&model.Reservation{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, helper.RestaurantTZ)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		from, to := helper.DayWindow(day)
		query = query.Where("datetime >= ? AND datetime < ?", from, to)
	}

	var reservations []model.Reservation
	if err := query.Order("datetime desc").Find(&reservations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reservations)
}

func GetReservationById(c *fiber.Ctx) error {
	r, err := findReservation(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, r)
}

// transitionReservation áp bước chuyển rồi đẩy trạng thái mới sang booking
// legacy. Reconcile chạy sau khi bản ghi canonical đã commit và không bao
// giờ làm fail response.
func transitionReservation(c *fiber.Ctx, r *model.Reservation, from, to, ruleMessage string) error {
	applied, err := helper.TransitionReservation(database.DB, r.ID, from, to)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_UPDATE, err)
	}
	if !applied {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, ruleMessage, nil)
	}

	r.Status = to
	helper.SyncReservationToBooking(helper.Bookings(), r)

	return utils.SuccessResponse(c, fiber.StatusOK, r)
}

// ConfirmReservation: chỉ đặt bàn NEW mới xác nhận được.
func ConfirmReservation(c *fiber.Ctx) error {
	r, err := findReservation(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}
	if r.Status != constants.RESERVATION_NEW {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only NEW reservations can be confirmed", nil)
	}
	return transitionReservation(c, r, constants.RESERVATION_NEW, constants.RESERVATION_CONFIRMED,
		"Only NEW reservations can be confirmed")
}

// CompleteReservation: chỉ đặt bàn CONFIRMED mới hoàn tất được.
func CompleteReservation(c *fiber.Ctx) error {
	r, err := findReservation(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}
	if r.Status != constants.RESERVATION_CONFIRMED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only CONFIRMED reservations can be completed", nil)
	}
	return transitionReservation(c, r, constants.RESERVATION_CONFIRMED, constants.RESERVATION_COMPLETED,
		"Only CONFIRMED reservations can be completed")
}

// CancelReservation: huỷ được từ NEW hoặc CONFIRMED.
func CancelReservation(c *fiber.Ctx) error {
	r, err := findReservation(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}
	if r.Status != constants.RESERVATION_NEW && r.Status != constants.RESERVATION_CONFIRMED {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Only NEW or CONFIRMED reservations can be canceled", nil)
	}
	return transitionReservation(c, r, r.Status, constants.RESERVATION_CANCELED,
		"Only NEW or CONFIRMED reservations can be canceled")
}

// GetReservationQR trả QR check-in cho đặt bàn (nhân viên quét tại quầy).
func GetReservationQR(c *fiber.Ctx) error {
	r, err := findReservation(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Reservation not found", err)
	}

	qrContent := fmt.Sprintf("RSV-%d", r.ID)
	qrBytes, err := utils.GenerateQRCode(qrContent, 400)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"reservationId": r.ID,
		"qrCode":        "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes),
	})
}
