package helper

import (
	"strings"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// Múi giờ vận hành của nhà hàng; cửa sổ "cùng ngày" tính theo giờ này.
var RestaurantTZ = time.FixedZone("ICT", 7*3600)

// bookingStatusByReservation dịch trạng thái canonical sang từ vựng của
// app legacy. Legacy viết CANCELLED (2 chữ L) — giữ nguyên, không "sửa".
var bookingStatusByReservation = map[string]string{
	constants.RESERVATION_NEW:       constants.BOOKING_PENDING,
	constants.RESERVATION_CONFIRMED: constants.BOOKING_CONFIRMED,
	constants.RESERVATION_COMPLETED: constants.BOOKING_COMPLETED,
	constants.RESERVATION_CANCELED:  constants.BOOKING_CANCELLED,
}

// reservationStatusByBooking là bảng ngược, so khớp không phân biệt hoa
// thường vì dữ liệu cũ trộn nhiều cách viết.
var reservationStatusByBooking = map[string]string{
	"pending":   constants.RESERVATION_NEW,
	"new":       constants.RESERVATION_NEW,
	"confirmed": constants.RESERVATION_CONFIRMED,
	"accept":    constants.RESERVATION_CONFIRMED,
	"completed": constants.RESERVATION_COMPLETED,
	"done":      constants.RESERVATION_COMPLETED,
	"cancelled": constants.RESERVATION_CANCELED,
	"canceled":  constants.RESERVATION_CANCELED,
	"cancel":    constants.RESERVATION_CANCELED,
}

func BookingStatusFor(reservationStatus string) (string, bool) {
	s, ok := bookingStatusByReservation[reservationStatus]
	return s, ok
}

// ReservationStatusFrom dịch status legacy về canonical; không nhận ra
// thì trả về trạng thái khởi đầu NEW.
func ReservationStatusFrom(raw string) string {
	if s, ok := reservationStatusByBooking[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return s
	}
	return constants.RESERVATION_NEW
}

// DayWindow trả về [đầu ngày, đầu ngày kế tiếp) của t theo giờ nhà hàng.
func DayWindow(t time.Time) (time.Time, time.Time) {
	local := t.In(RestaurantTZ)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, RestaurantTZ)
	return start, start.Add(24 * time.Hour)
}

// BookingStore là cửa ngõ sang bảng bookings của app legacy.
// Mọi câu UPDATE lặp lại điều kiện khớp trong WHERE vì app cũ có thể
// sửa bản ghi giữa bước tìm và bước ghi.
type BookingStore interface {
	ByReservation(reservationID uint) (*model.LegacyBooking, error)
	ByPhoneAndWindow(phone string, from, to time.Time) ([]model.LegacyBooking, error)
	UpdateStatusByReservation(bookingID, reservationID uint, status string) (int64, error)
	UpdateStatusMatched(bookingID uint, status string, reservationID uint, phone string, from, to time.Time) (int64, error)
}

type gormBookings struct {
	db *gorm.DB
}

// Bookings trả về store trỏ vào database legacy đang kết nối.
func Bookings() BookingStore { return gormBookings{database.LegacyDB} }

func (s gormBookings) ByReservation(reservationID uint) (*model.LegacyBooking, error) {
	var b model.LegacyBooking
	err := s.db.Where("reservation_id = ?", reservationID).First(&b).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s gormBookings) ByPhoneAndWindow(phone string, from, to time.Time) ([]model.LegacyBooking, error) {
	var bookings []model.LegacyBooking
	err := s.db.
		Where("phone = ? AND booking_date >= ? AND booking_date < ?", phone, from, to).
		Find(&bookings).Error
	return bookings, err
}

func (s gormBookings) UpdateStatusByReservation(bookingID, reservationID uint, status string) (int64, error) {
	result := s.db.Model(&model.LegacyBooking{}).
		Where("id = ? AND reservation_id = ?", bookingID, reservationID).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (s gormBookings) UpdateStatusMatched(bookingID uint, status string, reservationID uint, phone string, from, to time.Time) (int64, error) {
	result := s.db.Model(&model.LegacyBooking{}).
		Where("id = ? AND phone = ? AND booking_date >= ? AND booking_date < ?", bookingID, phone, from, to).
		Updates(map[string]interface{}{
			"status":         status,
			"reservation_id": reservationID,
		})
	return result.RowsAffected, result.Error
}

// SyncReservationToBooking đẩy trạng thái reservation sang bản ghi booking
// tương ứng bên app legacy. Best-effort: bản ghi canonical đã commit nên mọi
// lỗi phía mirror chỉ được log, không bao giờ trả về caller.
//
// Khớp theo reservation_id đã ghi nhớ nếu có; không thì theo natural key
// (phone + cùng ngày). Không đúng một ứng viên → bỏ qua, không đoán.
func SyncReservationToBooking(store BookingStore, r *model.Reservation) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("booking sync panicked", "reservationId", r.ID, "panic", rec)
		}
	}()

	target, ok := BookingStatusFor(r.Status)
	if !ok {
		logger.Warn("booking sync skipped: unknown reservation status", "reservationId", r.ID, "status", r.Status)
		return
	}

	// 1. Đã từng khớp → dùng khoá ngoại ghi nhớ, khỏi dò lại natural key
	booking, err := store.ByReservation(r.ID)
	if err != nil {
		logger.Error("booking sync failed: lookup by reservation_id", "reservationId", r.ID, "error", err)
		return
	}
	if booking != nil {
		n, err := store.UpdateStatusByReservation(booking.ID, r.ID, target)
		if err != nil {
			logger.Error("booking sync failed: update by reservation_id", "reservationId", r.ID, "bookingId", booking.ID, "error", err)
			return
		}
		if n == 0 {
			logger.Warn("booking sync skipped: memoized booking changed underneath", "reservationId", r.ID, "bookingId", booking.ID)
			return
		}
		logger.Info("booking status synced", "reservationId", r.ID, "bookingId", booking.ID, "status", target)
		return
	}

	// 2. Natural key: phone + trong cùng ngày đặt bàn
	from, to := DayWindow(r.Datetime)
	matches, err := store.ByPhoneAndWindow(r.Phone, from, to)
	if err != nil {
		logger.Error("booking sync failed: natural-key lookup", "reservationId", r.ID, "phone", r.Phone, "error", err)
		return
	}
	if len(matches) != 1 {
		logger.Warn("booking sync skipped: no confident match", "reservationId", r.ID, "phone", r.Phone, "candidates", len(matches))
		return
	}

	n, err := store.UpdateStatusMatched(matches[0].ID, target, r.ID, r.Phone, from, to)
	if err != nil {
		logger.Error("booking sync failed: update", "reservationId", r.ID, "bookingId", matches[0].ID, "error", err)
		return
	}
	if n == 0 {
		logger.Warn("booking sync skipped: booking changed underneath", "reservationId", r.ID, "bookingId", matches[0].ID)
		return
	}
	logger.Info("booking status synced", "reservationId", r.ID, "bookingId", matches[0].ID, "status", target)
}
