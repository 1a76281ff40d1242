package migration

import (
	"restaurant_manager/constants"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// UserPatchStore đọc và vá bảng users canonical.
type UserPatchStore interface {
	All() ([]model.User, error)
	Patch(id uint, fields map[string]interface{}) error
}

type gormUserPatch struct{ db *gorm.DB }

func (s gormUserPatch) All() ([]model.User, error) {
	var users []model.User
	err := s.db.Find(&users).Error
	return users, err
}

func (s gormUserPatch) Patch(id uint, fields map[string]interface{}) error {
	return s.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error
}

func FixLegacyUsers(db *gorm.DB) Report {
	return PatchLegacyUsers(gormUserPatch{db})
}

// PatchLegacyUsers vá các user nhập từ hệ cũ còn thiếu trường: role rỗng
// thành USER kèm kích hoạt lại (hệ cũ không có cờ is_active nên các bản
// ghi nhập về mang giá trị zero), driver thiếu driver_status về OFFLINE.
func PatchLegacyUsers(store UserPatchStore) Report {
	var report Report

	users, err := store.All()
	if err != nil {
		logger.Error("fix legacy users: read failed", "err", err)
		report.Errors++
		return report
	}

	for _, u := range users {
		report.Scanned++

		fields := map[string]interface{}{}
		if u.Role == "" {
			fields["role"] = constants.ROLE_USER
			fields["is_active"] = true
		}
		if u.Role == constants.ROLE_DRIVER && u.DriverStatus == "" {
			fields["driver_status"] = constants.DRIVER_OFFLINE
		}
		if len(fields) == 0 {
			report.Skipped++
			continue
		}

		if err := store.Patch(u.ID, fields); err != nil {
			logger.Error("fix legacy users: update failed", "userId", u.ID, "err", err)
			report.Errors++
			continue
		}
		report.Updated++
	}

	logger.Info("fix legacy users done",
		"scanned", report.Scanned, "updated", report.Updated,
		"skipped", report.Skipped, "errors", report.Errors)
	return report
}
