package handler

import (
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDriverToRelease(t *testing.T) {
	driver := &model.User{
		Name:         "Trần Văn B",
		Email:        "tranb@example.com",
		Role:         constants.ROLE_DRIVER,
		DriverStatus: constants.DRIVER_BUSY,
	}
	driver.ID = 9

	driverID := driver.ID
	order := &model.Order{
		Status:           constants.ORDER_DELIVERING,
		AssignedDriverID: &driverID,
		AssignedDriver:   driver,
	}

	released := driverToRelease(order)
	require.NotNil(t, released)
	assert.Equal(t, constants.DRIVER_AVAILABLE, released.DriverStatus)
	assert.Equal(t, "tranb@example.com", released.Email)
	// bản gốc trên order không bị sửa tại chỗ
	assert.Equal(t, constants.DRIVER_BUSY, order.AssignedDriver.DriverStatus)
}

func TestDriverToReleaseWithoutAssignment(t *testing.T) {
	order := &model.Order{Status: constants.ORDER_DELIVERING}
	assert.Nil(t, driverToRelease(order))
}
