package helper

import (
	"testing"

	"restaurant_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionOrder(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending to confirmed", constants.ORDER_PENDING, constants.ORDER_CONFIRMED, true},
		{"pending to canceled", constants.ORDER_PENDING, constants.ORDER_CANCELED, true},
		{"confirmed to preparing", constants.ORDER_CONFIRMED, constants.ORDER_PREPARING, true},
		{"preparing to ready", constants.ORDER_PREPARING, constants.ORDER_READY, true},
		{"ready to delivering", constants.ORDER_READY, constants.ORDER_DELIVERING, true},
		{"delivering to completed", constants.ORDER_DELIVERING, constants.ORDER_COMPLETED, true},
		{"delivering to canceled", constants.ORDER_DELIVERING, constants.ORDER_CANCELED, true},

		{"pending cannot skip to preparing", constants.ORDER_PENDING, constants.ORDER_PREPARING, false},
		{"pending cannot complete", constants.ORDER_PENDING, constants.ORDER_COMPLETED, false},
		{"ready cannot complete directly", constants.ORDER_READY, constants.ORDER_COMPLETED, false},
		{"completed is terminal", constants.ORDER_COMPLETED, constants.ORDER_CANCELED, false},
		{"canceled is terminal", constants.ORDER_CANCELED, constants.ORDER_PENDING, false},
		{"no backwards step", constants.ORDER_PREPARING, constants.ORDER_CONFIRMED, false},
		{"unknown from", "WAITING", constants.ORDER_CONFIRMED, false},
		{"unknown to", constants.ORDER_PENDING, "WAITING", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionOrder(tc.from, tc.to))
		})
	}
}

func TestOrderTerminalStatesHaveNoExits(t *testing.T) {
	for _, to := range []string{
		constants.ORDER_PENDING, constants.ORDER_CONFIRMED, constants.ORDER_PREPARING,
		constants.ORDER_READY, constants.ORDER_DELIVERING, constants.ORDER_COMPLETED,
		constants.ORDER_CANCELED,
	} {
		assert.False(t, CanTransitionOrder(constants.ORDER_COMPLETED, to), "COMPLETED -> %s", to)
		assert.False(t, CanTransitionOrder(constants.ORDER_CANCELED, to), "CANCELED -> %s", to)
	}
}
