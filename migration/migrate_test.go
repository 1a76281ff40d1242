package migration

import (
	"strings"
	"testing"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/helper"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBookingSource / fakeReservationSink giả lập hai database để kiểm tra
// tính idempotent của job mà không cần MySQL/Postgres thật.
type fakeBookingSource struct {
	bookings []model.LegacyBooking
	memoized map[uint]uint
}

func (s *fakeBookingSource) All() ([]model.LegacyBooking, error) { return s.bookings, nil }

func (s *fakeBookingSource) Memoize(bookingID, reservationID uint) error {
	if s.memoized == nil {
		s.memoized = map[uint]uint{}
	}
	s.memoized[bookingID] = reservationID
	return nil
}

type fakeReservationSink struct {
	created []model.Reservation
}

func (s *fakeReservationSink) ExistsInWindow(phone string, from, to time.Time) (bool, error) {
	for _, r := range s.created {
		if r.Phone == phone && !r.Datetime.Before(from) && r.Datetime.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeReservationSink) Create(r *model.Reservation) error {
	r.ID = uint(len(s.created) + 1)
	s.created = append(s.created, *r)
	return nil
}

func TestImportBookingsIsIdempotent(t *testing.T) {
	day := time.Date(2026, 5, 10, 18, 0, 0, 0, helper.RestaurantTZ)
	src := &fakeBookingSource{bookings: []model.LegacyBooking{
		{ID: 1, FullName: "Nguyễn Văn A", Phone: "0901111111", GuestCount: 4, BookingDate: day, Status: "CONFIRMED"},
		{ID: 2, FullName: "Trần Thị B", Phone: "0902222222", GuestCount: 2, BookingDate: day, Status: "CANCELLED"},
		{ID: 3, FullName: "Lê Văn C", Phone: "0903333333", GuestCount: 6, BookingDate: day.Add(2 * time.Hour), Status: "pending"},
	}}
	dst := &fakeReservationSink{}

	first := ImportBookings(dst, src)
	assert.Equal(t, 3, first.Created)
	assert.Equal(t, 0, first.Skipped)
	require.Len(t, dst.created, 3)

	// chạy lại: không tạo thêm bản ghi nào
	second := ImportBookings(dst, src)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Skipped)
	assert.Len(t, dst.created, 3)

	// mỗi booking được memoize reservation_id ngay trong lượt nhập
	assert.Len(t, src.memoized, 3)
	assert.Equal(t, constants.RESERVATION_CONFIRMED, dst.created[0].Status)
	assert.Equal(t, constants.RESERVATION_CANCELED, dst.created[1].Status)
	assert.Equal(t, constants.RESERVATION_NEW, dst.created[2].Status)
}

func TestImportBookingsAppliesDefaults(t *testing.T) {
	src := &fakeBookingSource{bookings: []model.LegacyBooking{
		{ID: 1, Phone: "0904444444", GuestCount: 0},
	}}
	dst := &fakeReservationSink{}

	r := ImportBookings(dst, src)
	assert.Equal(t, 1, r.Created)
	require.Len(t, dst.created, 1)

	got := dst.created[0]
	assert.Equal(t, "Unknown", got.CustomerName)
	assert.Equal(t, 2, got.Guests)
	assert.False(t, got.Datetime.IsZero())
}

type fakeUserSink struct {
	users map[string]model.User
}

func (s *fakeUserSink) EmailExists(email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *fakeUserSink) Create(u *model.User) error {
	if s.users == nil {
		s.users = map[string]model.User{}
	}
	s.users[u.Email] = *u
	return nil
}

func TestImportDriversIsIdempotent(t *testing.T) {
	src := &fakeDriverSource{drivers: []model.LegacyDriver{
		{ID: 1, Username: "hungxe", Password: "plain123", Name: "Hùng", Email: "Hung@Example.com", Rating: 4.2, Status: "AVAILABLE", CompletedOrders: 17, TotalEarnings: 350000},
		{ID: 2, Username: "tam", Password: "plain456", Rating: 0, Status: "BUSY"},
	}}
	dst := &fakeUserSink{}

	first := ImportDrivers(dst, src)
	assert.Equal(t, 2, first.Created)
	require.Len(t, dst.users, 2)

	second := ImportDrivers(dst, src)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 2, second.Skipped)
	assert.Len(t, dst.users, 2)

	hung, ok := dst.users["hung@example.com"]
	require.True(t, ok, "email phải được chuẩn hoá chữ thường")
	// rating legacy giữ nguyên, không ghi đè mặc định
	assert.Equal(t, 4.2, hung.Rating)
	assert.Equal(t, constants.DRIVER_AVAILABLE, hung.DriverStatus)
	assert.Equal(t, 17, hung.TotalOrders)
	// password plaintext của hệ cũ không được mang sang
	assert.NotEmpty(t, hung.PasswordHash)
	assert.NotContains(t, hung.PasswordHash, "plain123")

	// thiếu email → fallback username@example.com; thiếu rating → 5;
	// status ngoài AVAILABLE về OFFLINE
	tam, ok := dst.users["tam@example.com"]
	require.True(t, ok)
	assert.Equal(t, float64(5), tam.Rating)
	assert.Equal(t, constants.DRIVER_OFFLINE, tam.DriverStatus)
}

type fakeDriverSource struct {
	drivers []model.LegacyDriver
}

func (s *fakeDriverSource) All() ([]model.LegacyDriver, error) { return s.drivers, nil }

type fakeCatalogSink struct {
	products   map[string]model.Product
	categories map[string]uint
}

func (s *fakeCatalogSink) ProductExists(name string) (bool, error) {
	_, ok := s.products[strings.ToLower(name)]
	return ok, nil
}

func (s *fakeCatalogSink) EnsureCategory(name string) (uint, error) {
	if s.categories == nil {
		s.categories = map[string]uint{}
	}
	key := strings.ToLower(name)
	if id, ok := s.categories[key]; ok {
		return id, nil
	}
	id := uint(len(s.categories) + 1)
	s.categories[key] = id
	return id, nil
}

func (s *fakeCatalogSink) Slug(name string) string { return strings.ToLower(name) }

func (s *fakeCatalogSink) Create(p *model.Product) error {
	if s.products == nil {
		s.products = map[string]model.Product{}
	}
	s.products[strings.ToLower(p.Name)] = *p
	return nil
}

func TestImportProductsIsIdempotent(t *testing.T) {
	src := &fakeProductSource{products: []model.LegacyProduct{
		{ID: 1, Name: "Phở bò", Price: 60000, Category: "Soup", IsBestSeller: true},
		{ID: 2, Name: "Bún chả", Price: 55000, Category: "soup"},
		{ID: 3, Name: "", Price: 10000}, // thiếu tên: bỏ qua, không tính lỗi
	}}
	dst := &fakeCatalogSink{}

	first := ImportProducts(dst, src)
	assert.Equal(t, 2, first.Created)
	assert.Equal(t, 1, first.Skipped)
	require.Len(t, dst.products, 2)
	// "Soup" và "soup" là một category
	assert.Len(t, dst.categories, 1)

	second := ImportProducts(dst, src)
	assert.Equal(t, 0, second.Created)
	assert.Equal(t, 3, second.Skipped)
	assert.Len(t, dst.products, 2)

	pho := dst.products["phở bò"]
	assert.True(t, pho.IsFeatured)
	assert.True(t, pho.IsActive)
}

type fakeProductSource struct {
	products []model.LegacyProduct
}

func (s *fakeProductSource) All() ([]model.LegacyProduct, error) { return s.products, nil }

type fakeUserPatch struct {
	users   []model.User
	patches map[uint]map[string]interface{}
}

func (s *fakeUserPatch) All() ([]model.User, error) { return s.users, nil }

func (s *fakeUserPatch) Patch(id uint, fields map[string]interface{}) error {
	if s.patches == nil {
		s.patches = map[uint]map[string]interface{}{}
	}
	s.patches[id] = fields
	return nil
}

func TestPatchLegacyUsers(t *testing.T) {
	noRole := model.User{}
	noRole.ID = 1

	driverNoStatus := model.User{Role: constants.ROLE_DRIVER}
	driverNoStatus.ID = 2

	complete := model.User{Role: constants.ROLE_USER, IsActive: true}
	complete.ID = 3

	store := &fakeUserPatch{users: []model.User{noRole, driverNoStatus, complete}}

	r := PatchLegacyUsers(store)
	assert.Equal(t, 2, r.Updated)
	assert.Equal(t, 1, r.Skipped)

	// user thiếu role: backfill role kèm kích hoạt lại
	require.Contains(t, store.patches, uint(1))
	assert.Equal(t, constants.ROLE_USER, store.patches[1]["role"])
	assert.Equal(t, true, store.patches[1]["is_active"])

	require.Contains(t, store.patches, uint(2))
	assert.Equal(t, constants.DRIVER_OFFLINE, store.patches[2]["driver_status"])

	assert.NotContains(t, store.patches, uint(3))
}
