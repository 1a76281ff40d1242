package helper

import (
	"testing"

	"restaurant_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionReservation(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"new to confirmed", constants.RESERVATION_NEW, constants.RESERVATION_CONFIRMED, true},
		{"new to canceled", constants.RESERVATION_NEW, constants.RESERVATION_CANCELED, true},
		{"confirmed to completed", constants.RESERVATION_CONFIRMED, constants.RESERVATION_COMPLETED, true},
		{"confirmed to canceled", constants.RESERVATION_CONFIRMED, constants.RESERVATION_CANCELED, true},

		{"new cannot complete directly", constants.RESERVATION_NEW, constants.RESERVATION_COMPLETED, false},
		{"completed is terminal", constants.RESERVATION_COMPLETED, constants.RESERVATION_CANCELED, false},
		{"canceled is terminal", constants.RESERVATION_CANCELED, constants.RESERVATION_NEW, false},
		{"no backwards step", constants.RESERVATION_CONFIRMED, constants.RESERVATION_NEW, false},
		{"unknown status", "WAITLIST", constants.RESERVATION_CONFIRMED, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CanTransitionReservation(tc.from, tc.to))
		})
	}
}
