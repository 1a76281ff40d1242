package helper

import (
	"errors"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDrivers struct {
	count    int64
	countErr error
	panics   bool

	created []model.LegacyDriver
	updates []map[string]interface{}
	deleted []string
}

func (s *stubDrivers) CountByEmail(email string) (int64, error) {
	if s.panics {
		panic("legacy db gone")
	}
	return s.count, s.countErr
}

func (s *stubDrivers) Create(d *model.LegacyDriver) error {
	if s.panics {
		panic("legacy db gone")
	}
	s.created = append(s.created, *d)
	return nil
}

func (s *stubDrivers) UpdateByEmail(email string, fields map[string]interface{}) (int64, error) {
	if s.panics {
		panic("legacy db gone")
	}
	s.updates = append(s.updates, fields)
	return 1, nil
}

func (s *stubDrivers) DeleteByEmail(email string) (int64, error) {
	if s.panics {
		panic("legacy db gone")
	}
	s.deleted = append(s.deleted, email)
	return 1, nil
}

func driverUser() *model.User {
	return &model.User{
		Name:         "Trần Văn B",
		Email:        "tranb@example.com",
		Role:         constants.ROLE_DRIVER,
		Phone:        "0912345678",
		VehiclePlate: "59A-123.45",
		Area:         "Quận 1",
		DriverStatus: constants.DRIVER_OFFLINE,
		Rating:       5,
	}
}

func TestSyncNewDriverCreatesMirrorRecord(t *testing.T) {
	mirror := &stubDrivers{}

	SyncNewDriver(mirror, driverUser(), "secret123")

	require.Len(t, mirror.created, 1)
	rec := mirror.created[0]
	// app cũ đăng nhập bằng username + password thô
	assert.Equal(t, "tranb", rec.Username)
	assert.Equal(t, "secret123", rec.Password)
	assert.Equal(t, constants.DRIVER_OFFLINE, rec.Status)
}

func TestSyncDriverStatusRequiresExactlyOneMatch(t *testing.T) {
	for _, n := range []int64{0, 2} {
		mirror := &stubDrivers{count: n}
		SyncDriverStatus(mirror, driverUser())
		assert.Empty(t, mirror.updates, "candidates=%d", n)
	}

	mirror := &stubDrivers{count: 1}
	SyncDriverStatus(mirror, driverUser())
	require.Len(t, mirror.updates, 1)
	assert.Equal(t, constants.DRIVER_OFFLINE, mirror.updates[0]["status"])
}

func TestSyncDriverProfileDoesNotTouchLegacyOwnedFields(t *testing.T) {
	mirror := &stubDrivers{count: 1}

	SyncDriverProfile(mirror, driverUser())

	require.Len(t, mirror.updates, 1)
	fields := mirror.updates[0]
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "vehicle_plate")
	assert.NotContains(t, fields, "password")
	assert.NotContains(t, fields, "daily_earnings")
}

func TestDriverSyncNeverPropagatesFailures(t *testing.T) {
	u := driverUser()

	assert.NotPanics(t, func() { SyncNewDriver(&stubDrivers{panics: true}, u, "x") })
	assert.NotPanics(t, func() { SyncDriverProfile(&stubDrivers{panics: true}, u) })
	assert.NotPanics(t, func() { SyncDriverStatus(&stubDrivers{panics: true}, u) })
	assert.NotPanics(t, func() { SyncDriverCompletion(&stubDrivers{panics: true}, u.Email, 50000) })
	assert.NotPanics(t, func() { SyncDriverDelete(&stubDrivers{panics: true}, u.Email) })

	assert.NotPanics(t, func() {
		SyncDriverStatus(&stubDrivers{countErr: errors.New("mysql down")}, u)
	})
}

func TestSyncDriverDelete(t *testing.T) {
	mirror := &stubDrivers{}
	SyncDriverDelete(mirror, "tranb@example.com")
	assert.Equal(t, []string{"tranb@example.com"}, mirror.deleted)
}
