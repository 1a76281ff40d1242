package helper

import (
	"restaurant_manager/constants"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// reservationFlow: NEW → CONFIRMED → COMPLETED, huỷ được từ NEW/CONFIRMED.
var reservationFlow = map[string][]string{
	constants.RESERVATION_NEW:       {constants.RESERVATION_CONFIRMED, constants.RESERVATION_CANCELED},
	constants.RESERVATION_CONFIRMED: {constants.RESERVATION_COMPLETED, constants.RESERVATION_CANCELED},
	constants.RESERVATION_COMPLETED: {},
	constants.RESERVATION_CANCELED:  {},
}

func CanTransitionReservation(from, to string) bool {
	allowed, ok := reservationFlow[from]
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

// TransitionReservation — conditional update như TransitionOrder.
func TransitionReservation(db *gorm.DB, reservationID uint, from, to string) (bool, error) {
	if !CanTransitionReservation(from, to) {
		return false, nil
	}

	result := db.Model(&model.Reservation{}).
		Where("id = ? AND status = ?", reservationID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
