package database

import (
	"strings"
	"testing"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCode(t *testing.T) {
	code := NewOrderCode()
	assert.True(t, strings.HasPrefix(code, "ORD-"))
	assert.Len(t, code, 12)
	assert.Equal(t, code, strings.ToUpper(code))
}

func TestNewDemoOrderUsesPersistedProductIDs(t *testing.T) {
	banhXeo := model.Product{Name: "Bánh xèo", Price: 65000}
	banhXeo.ID = 7
	boKho := model.Product{Name: "Bò kho", Price: 95000}
	boKho.ID = 8

	order, ok := newDemoOrder([]model.Product{banhXeo, boKho})
	require.True(t, ok)

	require.Len(t, order.Items, 2)
	assert.Equal(t, uint(7), order.Items[0].ProductID)
	assert.Equal(t, uint(8), order.Items[1].ProductID)
	assert.Equal(t, float64(160000), order.Total)
	assert.Equal(t, constants.ORDER_PENDING, order.Status)
}

func TestNewDemoOrderRefusesUnpersistedProducts(t *testing.T) {
	// món chưa ghi DB (ID zero) không được trỏ tới — sẽ vỡ khoá ngoại
	fresh := []model.Product{{Name: "Bánh xèo"}, {Name: "Bò kho"}}
	_, ok := newDemoOrder(fresh)
	assert.False(t, ok)

	_, ok = newDemoOrder(nil)
	assert.False(t, ok)
}
