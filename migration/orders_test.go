package migration

import (
	"testing"

	"restaurant_manager/constants"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOrderStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		// hệ cũ serialize enum số thành chuỗi
		{"0", constants.ORDER_PENDING, true},
		{"3", constants.ORDER_READY, true},
		{"5", constants.ORDER_COMPLETED, true},
		{"6", constants.ORDER_CANCELED, true},

		// tên chữ thường / vocab cũ
		{"pending", constants.ORDER_PENDING, true},
		{"Done", constants.ORDER_COMPLETED, true},
		{"CANCELLED", constants.ORDER_CANCELED, true},
		{" delivering ", constants.ORDER_DELIVERING, true},

		// đã chuẩn thì giữ nguyên
		{constants.ORDER_CONFIRMED, constants.ORDER_CONFIRMED, true},

		// ngoài bảng map: không đoán
		{"7", "", false},
		{"refunded", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := NormalizeOrderStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}
