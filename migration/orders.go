package migration

import (
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// Hệ cũ lưu trạng thái đơn dưới dạng số serialize thành chuỗi.
// Map kín: giá trị ngoài bảng thì giữ nguyên và đếm skip.
var legacyOrderStatus = map[string]string{
	"0": constants.ORDER_PENDING,
	"1": constants.ORDER_CONFIRMED,
	"2": constants.ORDER_PREPARING,
	"3": constants.ORDER_READY,
	"4": constants.ORDER_DELIVERING,
	"5": constants.ORDER_COMPLETED,
	"6": constants.ORDER_CANCELED,

	"pending":    constants.ORDER_PENDING,
	"confirmed":  constants.ORDER_CONFIRMED,
	"preparing":  constants.ORDER_PREPARING,
	"ready":      constants.ORDER_READY,
	"delivering": constants.ORDER_DELIVERING,
	"completed":  constants.ORDER_COMPLETED,
	"done":       constants.ORDER_COMPLETED,
	"cancelled":  constants.ORDER_CANCELED,
	"canceled":   constants.ORDER_CANCELED,
	"cancel":     constants.ORDER_CANCELED,
}

var canonicalOrderStatus = map[string]bool{
	constants.ORDER_PENDING:    true,
	constants.ORDER_CONFIRMED:  true,
	constants.ORDER_PREPARING:  true,
	constants.ORDER_READY:      true,
	constants.ORDER_DELIVERING: true,
	constants.ORDER_COMPLETED:  true,
	constants.ORDER_CANCELED:   true,
}

// NormalizeOrderStatus đổi giá trị legacy về vocab canonical.
// Trả về ("", false) nếu không nhận ra.
func NormalizeOrderStatus(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if canonicalOrderStatus[trimmed] {
		return trimmed, true
	}
	if mapped, ok := legacyOrderStatus[strings.ToLower(trimmed)]; ok {
		return mapped, true
	}
	return "", false
}

// FixOrderStatuses quét bảng orders canonical, sửa các đơn mang trạng
// thái kiểu cũ (số, chữ thường) về vocab chuẩn. Idempotent.
func FixOrderStatuses(db *gorm.DB) Report {
	var report Report

	var orders []model.Order
	if err := db.Find(&orders).Error; err != nil {
		logger.Error("fix order statuses: read failed", "err", err)
		report.Errors++
		return report
	}

	for _, o := range orders {
		report.Scanned++

		normalized, ok := NormalizeOrderStatus(o.Status)
		if !ok {
			logger.Warn("fix order statuses: unknown status", "orderId", o.ID, "status", o.Status)
			report.Skipped++
			continue
		}
		if normalized == o.Status {
			report.Skipped++
			continue
		}

		if err := db.Model(&model.Order{}).
			Where("id = ? AND status = ?", o.ID, o.Status).
			Update("status", normalized).Error; err != nil {
			logger.Error("fix order statuses: update failed", "orderId", o.ID, "err", err)
			report.Errors++
			continue
		}
		report.Updated++
	}

	logger.Info("fix order statuses done",
		"scanned", report.Scanned, "updated", report.Updated,
		"skipped", report.Skipped, "errors", report.Errors)
	return report
}
