package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// orderFlow định nghĩa các bước chuyển trạng thái hợp lệ của đơn hàng.
// COMPLETED và CANCELED là trạng thái cuối.
var orderFlow = map[string][]string{
	constants.ORDER_PENDING:    {constants.ORDER_CONFIRMED, constants.ORDER_CANCELED},
	constants.ORDER_CONFIRMED:  {constants.ORDER_PREPARING, constants.ORDER_CANCELED},
	constants.ORDER_PREPARING:  {constants.ORDER_READY, constants.ORDER_CANCELED},
	constants.ORDER_READY:      {constants.ORDER_DELIVERING, constants.ORDER_CANCELED},
	constants.ORDER_DELIVERING: {constants.ORDER_COMPLETED, constants.ORDER_CANCELED},
	constants.ORDER_COMPLETED:  {},
	constants.ORDER_CANCELED:   {},
}

func CanTransitionOrder(from, to string) bool {
	allowed, ok := orderFlow[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// TransitionOrder đổi trạng thái đơn bằng conditional update
// (WHERE id = ? AND status = ?) để hai request đồng thời không cùng
// áp một bước chuyển. extra cho phép ghi kèm cột khác trong cùng câu UPDATE
// (ví dụ assigned_driver_id khi gán tài xế).
func TransitionOrder(db *gorm.DB, orderID uint, from, to string, extra map[string]interface{}) (bool, error) {
	if !CanTransitionOrder(from, to) {
		return false, nil
	}

	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}

	result := db.Model(&model.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
