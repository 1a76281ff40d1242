package migration

import (
	"time"

	"restaurant_manager/helper"
	"restaurant_manager/logger"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// BookingSource đọc bảng bookings của app legacy.
type BookingSource interface {
	All() ([]model.LegacyBooking, error)
	Memoize(bookingID, reservationID uint) error
}

// ReservationSink ghi vào bảng reservations canonical.
type ReservationSink interface {
	ExistsInWindow(phone string, from, to time.Time) (bool, error)
	Create(r *model.Reservation) error
}

type gormBookingSource struct{ db *gorm.DB }

func (s gormBookingSource) All() ([]model.LegacyBooking, error) {
	var bookings []model.LegacyBooking
	err := s.db.Find(&bookings).Error
	return bookings, err
}

func (s gormBookingSource) Memoize(bookingID, reservationID uint) error {
	return s.db.Model(&model.LegacyBooking{}).
		Where("id = ?", bookingID).
		Update("reservation_id", reservationID).Error
}

type gormReservationSink struct{ db *gorm.DB }

func (s gormReservationSink) ExistsInWindow(phone string, from, to time.Time) (bool, error) {
	var n int64
	err := s.db.Model(&model.Reservation{}).
		Where("phone = ? AND datetime >= ? AND datetime < ?", phone, from, to).
		Count(&n).Error
	return n > 0, err
}

func (s gormReservationSink) Create(r *model.Reservation) error {
	return s.db.Create(r).Error
}

func MigrateBookings(db, legacy *gorm.DB) Report {
	return ImportBookings(gormReservationSink{db}, gormBookingSource{legacy})
}

// ImportBookings nhập booking legacy thành reservation canonical.
// Dedupe theo natural key (phone + cửa sổ ngày của booking_date):
// đã có reservation trong cửa sổ thì bỏ qua, chạy lại không tạo trùng.
func ImportBookings(dst ReservationSink, src BookingSource) Report {
	var report Report

	bookings, err := src.All()
	if err != nil {
		logger.Error("migrate bookings: read legacy failed", "err", err)
		report.Errors++
		return report
	}

	for _, b := range bookings {
		report.Scanned++

		date := b.BookingDate
		if date.IsZero() {
			date = time.Now().In(helper.RestaurantTZ)
		}
		guests := b.GuestCount
		if guests < 1 {
			guests = 2
		}
		name := b.FullName
		if name == "" {
			name = "Unknown"
		}

		from, to := helper.DayWindow(date)

		exists, err := dst.ExistsInWindow(b.Phone, from, to)
		if err != nil {
			logger.Error("migrate bookings: lookup failed", "bookingId", b.ID, "err", err)
			report.Errors++
			continue
		}
		if exists {
			report.Skipped++
			continue
		}

		r := model.Reservation{
			CustomerName: name,
			Phone:        b.Phone,
			Datetime:     date,
			Guests:       guests,
			Status:       helper.ReservationStatusFrom(b.Status),
		}
		if err := dst.Create(&r); err != nil {
			logger.Error("migrate bookings: create failed", "bookingId", b.ID, "err", err)
			report.Errors++
			continue
		}

		// memoize luôn để reconcile sau này khỏi dò natural key
		if err := src.Memoize(b.ID, r.ID); err != nil {
			logger.Warn("migrate bookings: memoize failed", "bookingId", b.ID, "err", err)
		}
		report.Created++
	}

	logger.Info("migrate bookings done",
		"scanned", report.Scanned, "created", report.Created,
		"skipped", report.Skipped, "errors", report.Errors)
	return report
}
