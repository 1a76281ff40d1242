package helper

import (
	"errors"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookings ghi lại các lời gọi để kiểm tra sync không ghi bừa.
type stubBookings struct {
	memoized *model.LegacyBooking
	matches  []model.LegacyBooking

	lookupErr error
	updateErr error
	rows      int64
	panicOn   string

	updatedByReservation []uint
	updatedMatched       []uint
	lastStatus           string
	lastMemoizedID       uint
}

func (s *stubBookings) ByReservation(reservationID uint) (*model.LegacyBooking, error) {
	if s.panicOn == "lookup" {
		panic("legacy db gone")
	}
	return s.memoized, s.lookupErr
}

func (s *stubBookings) ByPhoneAndWindow(phone string, from, to time.Time) ([]model.LegacyBooking, error) {
	if s.panicOn == "lookup" {
		panic("legacy db gone")
	}
	return s.matches, s.lookupErr
}

func (s *stubBookings) UpdateStatusByReservation(bookingID, reservationID uint, status string) (int64, error) {
	if s.panicOn == "update" {
		panic("legacy db gone")
	}
	s.updatedByReservation = append(s.updatedByReservation, bookingID)
	s.lastStatus = status
	return s.rows, s.updateErr
}

func (s *stubBookings) UpdateStatusMatched(bookingID uint, status string, reservationID uint, phone string, from, to time.Time) (int64, error) {
	if s.panicOn == "update" {
		panic("legacy db gone")
	}
	s.updatedMatched = append(s.updatedMatched, bookingID)
	s.lastStatus = status
	s.lastMemoizedID = reservationID
	return s.rows, s.updateErr
}

func reservation(status string) *model.Reservation {
	r := &model.Reservation{
		CustomerName: "Nguyễn Văn A",
		Phone:        "0901234567",
		Datetime:     time.Date(2026, 3, 14, 19, 0, 0, 0, RestaurantTZ),
		Guests:       4,
		Status:       status,
	}
	r.ID = 42
	return r
}

func TestSyncUsesMemoizedBookingFirst(t *testing.T) {
	store := &stubBookings{
		memoized: &model.LegacyBooking{ID: 7},
		matches:  []model.LegacyBooking{{ID: 99}}, // không được đụng tới
		rows:     1,
	}

	SyncReservationToBooking(store, reservation(constants.RESERVATION_CONFIRMED))

	assert.Equal(t, []uint{7}, store.updatedByReservation)
	assert.Empty(t, store.updatedMatched)
	assert.Equal(t, constants.BOOKING_CONFIRMED, store.lastStatus)
}

func TestSyncMatchesNaturalKeyAndMemoizes(t *testing.T) {
	store := &stubBookings{
		matches: []model.LegacyBooking{{ID: 12}},
		rows:    1,
	}

	SyncReservationToBooking(store, reservation(constants.RESERVATION_CANCELED))

	require.Equal(t, []uint{12}, store.updatedMatched)
	assert.Equal(t, uint(42), store.lastMemoizedID)
	// vocab legacy: CANCELLED 2 chữ L
	assert.Equal(t, constants.BOOKING_CANCELLED, store.lastStatus)
}

func TestSyncSkipsOnAmbiguousMatch(t *testing.T) {
	store := &stubBookings{
		matches: []model.LegacyBooking{{ID: 1}, {ID: 2}},
		rows:    1,
	}

	SyncReservationToBooking(store, reservation(constants.RESERVATION_CONFIRMED))

	assert.Empty(t, store.updatedByReservation)
	assert.Empty(t, store.updatedMatched)
}

func TestSyncSkipsOnNoMatch(t *testing.T) {
	store := &stubBookings{rows: 1}

	SyncReservationToBooking(store, reservation(constants.RESERVATION_COMPLETED))

	assert.Empty(t, store.updatedByReservation)
	assert.Empty(t, store.updatedMatched)
}

func TestSyncSkipsUnknownStatus(t *testing.T) {
	store := &stubBookings{
		memoized: &model.LegacyBooking{ID: 7},
		rows:     1,
	}

	SyncReservationToBooking(store, reservation("WAITLIST"))

	assert.Empty(t, store.updatedByReservation)
}

func TestSyncNeverReturnsErrorToCaller(t *testing.T) {
	// store lỗi: hàm vẫn trả về bình thường
	assert.NotPanics(t, func() {
		SyncReservationToBooking(&stubBookings{lookupErr: errors.New("mysql down")},
			reservation(constants.RESERVATION_CONFIRMED))
	})
	assert.NotPanics(t, func() {
		SyncReservationToBooking(&stubBookings{
			memoized:  &model.LegacyBooking{ID: 7},
			updateErr: errors.New("mysql down"),
		}, reservation(constants.RESERVATION_CONFIRMED))
	})

	// store panic: recover trong sync, không lan ra handler
	assert.NotPanics(t, func() {
		SyncReservationToBooking(&stubBookings{panicOn: "lookup"},
			reservation(constants.RESERVATION_CONFIRMED))
	})
	assert.NotPanics(t, func() {
		SyncReservationToBooking(&stubBookings{
			memoized: &model.LegacyBooking{ID: 7},
			panicOn:  "update",
		}, reservation(constants.RESERVATION_CONFIRMED))
	})
}

func TestDayWindow(t *testing.T) {
	// 01:30 sáng 15/3 giờ ICT nằm trong ngày 15/3
	at := time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC) // = 01:30 15/3 ICT
	from, to := DayWindow(at)

	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, RestaurantTZ).Unix(), from.Unix())
	assert.Equal(t, 24*time.Hour, to.Sub(from))
}

func TestReservationStatusFrom(t *testing.T) {
	assert.Equal(t, constants.RESERVATION_NEW, ReservationStatusFrom("PENDING"))
	assert.Equal(t, constants.RESERVATION_CONFIRMED, ReservationStatusFrom(" Accept "))
	assert.Equal(t, constants.RESERVATION_COMPLETED, ReservationStatusFrom("done"))
	assert.Equal(t, constants.RESERVATION_CANCELED, ReservationStatusFrom("CANCELLED"))
	assert.Equal(t, constants.RESERVATION_CANCELED, ReservationStatusFrom("canceled"))
	// không nhận ra thì về trạng thái khởi đầu
	assert.Equal(t, constants.RESERVATION_NEW, ReservationStatusFrom("???"))
}

func TestBookingStatusFor(t *testing.T) {
	s, ok := BookingStatusFor(constants.RESERVATION_CANCELED)
	require.True(t, ok)
	assert.Equal(t, "CANCELLED", s)

	_, ok = BookingStatusFor("WAITLIST")
	assert.False(t, ok)
}
