package helper

import (
	"strings"
	"time"

	"restaurant_manager/database"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// DriverMirror là cửa ngõ sang bảng drivers của app tài xế cũ.
// Khớp theo email (bảng legacy không có khoá ngoại về users).
type DriverMirror interface {
	CountByEmail(email string) (int64, error)
	Create(d *model.LegacyDriver) error
	UpdateByEmail(email string, fields map[string]interface{}) (int64, error)
	DeleteByEmail(email string) (int64, error)
}

type gormDrivers struct {
	db *gorm.DB
}

func DriverRecords() DriverMirror { return gormDrivers{database.LegacyDB} }

func (s gormDrivers) CountByEmail(email string) (int64, error) {
	var n int64
	err := s.db.Model(&model.LegacyDriver{}).Where("email = ?", email).Count(&n).Error
	return n, err
}

func (s gormDrivers) Create(d *model.LegacyDriver) error {
	return s.db.Create(d).Error
}

func (s gormDrivers) UpdateByEmail(email string, fields map[string]interface{}) (int64, error) {
	result := s.db.Model(&model.LegacyDriver{}).Where("email = ?", email).Updates(fields)
	return result.RowsAffected, result.Error
}

func (s gormDrivers) DeleteByEmail(email string) (int64, error) {
	result := s.db.Where("email = ?", email).Delete(&model.LegacyDriver{})
	return result.RowsAffected, result.Error
}

// updateDriverMirror cập nhật đúng một bản ghi legacy khớp email.
// Đếm lại ngay trước khi ghi: 0 hoặc >1 ứng viên thì bỏ qua, không đoán.
func updateDriverMirror(mirror DriverMirror, email, action string, fields map[string]interface{}) {
	n, err := mirror.CountByEmail(email)
	if err != nil {
		logger.Error("driver sync failed: count", "email", email, "action", action, "error", err)
		return
	}
	if n != 1 {
		logger.Warn("driver sync skipped: no confident match", "email", email, "action", action, "candidates", n)
		return
	}

	if _, err := mirror.UpdateByEmail(email, fields); err != nil {
		logger.Error("driver sync failed: update", "email", email, "action", action, "error", err)
		return
	}
	logger.Info("driver mirror synced", "email", email, "action", action)
}

// SyncNewDriver tạo bản ghi mirror cho tài xế mới. App legacy đăng nhập
// bằng username/password riêng nên mirror giữ password thô như hệ cũ.
// Best-effort: lỗi chỉ log, user canonical đã được tạo thành công.
func SyncNewDriver(mirror DriverMirror, u *model.User, rawPassword string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("driver sync panicked", "email", u.Email, "panic", rec)
		}
	}()

	record := &model.LegacyDriver{
		Username:     strings.Split(u.Email, "@")[0],
		Password:     rawPassword,
		Name:         u.Name,
		Phone:        u.Phone,
		Email:        u.Email,
		VehiclePlate: u.VehiclePlate,
		Area:         u.Area,
		Status:       u.DriverStatus,
		Rating:       u.Rating,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := mirror.Create(record); err != nil {
		logger.Error("driver sync failed: create", "email", u.Email, "error", err)
		return
	}
	logger.Info("driver mirror created", "email", u.Email)
}

// SyncDriverProfile đẩy các trường hồ sơ do phía canonical sở hữu.
// Không đụng tới password/earnings của app legacy.
func SyncDriverProfile(mirror DriverMirror, u *model.User) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("driver sync panicked", "email", u.Email, "panic", rec)
		}
	}()

	updateDriverMirror(mirror, u.Email, "profile", map[string]interface{}{
		"name":          u.Name,
		"phone":         u.Phone,
		"vehicle_plate": u.VehiclePlate,
		"area":          u.Area,
	})
}

// SyncDriverStatus đẩy driver_status canonical sang cột status legacy.
func SyncDriverStatus(mirror DriverMirror, u *model.User) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("driver sync panicked", "email", u.Email, "panic", rec)
		}
	}()

	updateDriverMirror(mirror, u.Email, "status", map[string]interface{}{
		"status": u.DriverStatus,
	})
}

// SyncDriverCompletion cộng dồn counter bên mirror khi đơn giao xong.
func SyncDriverCompletion(mirror DriverMirror, email string, amount float64) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("driver sync panicked", "email", email, "panic", rec)
		}
	}()

	updateDriverMirror(mirror, email, "completion", map[string]interface{}{
		"completed_orders": gorm.Expr("completed_orders + 1"),
		"total_earnings":   gorm.Expr("total_earnings + ?", amount),
		"daily_earnings":   gorm.Expr("daily_earnings + ?", amount),
	})
}

// SyncDriverDelete xoá bản ghi mirror sau khi đã xoá user canonical.
func SyncDriverDelete(mirror DriverMirror, email string) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("driver sync panicked", "email", email, "panic", rec)
		}
	}()

	n, err := mirror.DeleteByEmail(email)
	if err != nil {
		logger.Error("driver sync failed: delete", "email", email, "error", err)
		return
	}
	logger.Info("driver mirror deleted", "email", email, "rows", n)
}
