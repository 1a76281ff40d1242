package migration

import (
	"fmt"
	"strings"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

const defaultDriverPassword = "123456"

// DriverSource đọc bảng drivers của app legacy.
type DriverSource interface {
	All() ([]model.LegacyDriver, error)
}

// UserSink ghi vào bảng users canonical.
type UserSink interface {
	EmailExists(email string) (bool, error)
	Create(u *model.User) error
}

type gormDriverSource struct{ db *gorm.DB }

func (s gormDriverSource) All() ([]model.LegacyDriver, error) {
	var drivers []model.LegacyDriver
	err := s.db.Find(&drivers).Error
	return drivers, err
}

type gormUserSink struct{ db *gorm.DB }

func (s gormUserSink) EmailExists(email string) (bool, error) {
	var n int64
	err := s.db.Model(&model.User{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

func (s gormUserSink) Create(u *model.User) error {
	return s.db.Create(u).Error
}

func MigrateDrivers(db, legacy *gorm.DB) Report {
	return ImportDrivers(gormUserSink{db}, gormDriverSource{legacy})
}

// ImportDrivers nhập driver legacy thành user role DRIVER.
// Dedupe theo email; password plaintext cũ bị bỏ, thay bằng hash của
// mật khẩu mặc định (tài xế đổi sau lần đăng nhập đầu).
func ImportDrivers(dst UserSink, src DriverSource) Report {
	var report Report

	drivers, err := src.All()
	if err != nil {
		logger.Error("migrate drivers: read legacy failed", "err", err)
		report.Errors++
		return report
	}

	for _, d := range drivers {
		report.Scanned++

		email := strings.TrimSpace(strings.ToLower(d.Email))
		if email == "" {
			username := d.Username
			if username == "" {
				username = fmt.Sprintf("driver%d", d.ID)
			}
			email = username + "@example.com"
		}

		exists, err := dst.EmailExists(email)
		if err != nil {
			logger.Error("migrate drivers: lookup failed", "driverId", d.ID, "err", err)
			report.Errors++
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		hash, err := helper.HashPassword(defaultDriverPassword)
		if err != nil {
			logger.Error("migrate drivers: hash failed", "driverId", d.ID, "err", err)
			report.Errors++
			continue
		}

		status := constants.DRIVER_OFFLINE
		if d.Status == constants.DRIVER_AVAILABLE {
			status = constants.DRIVER_AVAILABLE
		}

		name := d.Name
		if name == "" {
			name = d.Username
		}

		// rating legacy giữ nguyên, chỉ default khi chưa từng được chấm
		rating := d.Rating
		if rating == 0 {
			rating = 5
		}

		user := model.User{
			Name:          name,
			Email:         email,
			PasswordHash:  hash,
			Role:          constants.ROLE_DRIVER,
			IsActive:      true,
			Phone:         d.Phone,
			Avatar:        d.Avatar,
			VehiclePlate:  d.VehiclePlate,
			Area:          d.Area,
			DriverStatus:  status,
			Rating:        rating,
			TotalOrders:   d.CompletedOrders,
			TotalEarnings: d.TotalEarnings,
		}
		if err := dst.Create(&user); err != nil {
			logger.Error("migrate drivers: create failed", "driverId", d.ID, "err", err)
			report.Errors++
			continue
		}
		report.Created++
	}

	logger.Info("migrate drivers done",
		"scanned", report.Scanned, "created", report.Created,
		"skipped", report.Skipped, "errors", report.Errors)
	return report
}
