package order_test

import (
	"testing"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderItem(t *testing.T) {
	validID := kernel.NewUUID()
	validBookID := kernel.NewUUID()

	t.Run("should create valid item", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validBookID, 3, price("9.99"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(validID))
		assert.True(t, item.BookID().IsEqual(validBookID))
		assert.Equal(t, 3, item.Quantity())
		assert.True(t, item.UnitPrice().Equal(price("9.99")))
	})

	t.Run("should allow zero unit price", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validBookID, 1, price("0"))

		require.NoError(t, err)
		assert.True(t, item.TotalPrice().IsZero())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validBookID, 0, price("9.99"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validBookID, -2, price("9.99"))

		require.Error(t, err)
		assert.Nil(t, item)
	})

	t.Run("should fail with negative unit price", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, validBookID, 1, price("-0.01"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "unitPrice")
	})

	t.Run("should fail with unset book ID", func(t *testing.T) {
		item, err := order.NewOrderItem(validID, kernel.UUID{}, 1, price("9.99"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "bookID")
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		item, err := order.NewOrderItem(kernel.UUID{}, kernel.UUID{}, 0, price("-1"))

		require.Error(t, err)
		assert.Nil(t, item)
		assert.Contains(t, err.Error(), "bookID")
		assert.Contains(t, err.Error(), "quantity")
		assert.Contains(t, err.Error(), "unitPrice")
	})
}

func TestOrderItem_TotalPrice(t *testing.T) {
	item, err := order.NewOrderItem(kernel.NewUUID(), kernel.NewUUID(), 3, price("9.99"))
	require.NoError(t, err)

	assert.True(t, item.TotalPrice().Equal(price("29.97")))
}

func TestOrderItem_Validate(t *testing.T) {
	t.Run("should fail for nil item", func(t *testing.T) {
		var item *order.OrderItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderItemIsNotConstructed, err)
	})

	t.Run("should fail for zero-value item", func(t *testing.T) {
		var item order.OrderItem

		require.Error(t, item.Validate())
	})
}

func TestRestoreOrderItem(t *testing.T) {
	t.Run("should apply the same validation as NewOrderItem", func(t *testing.T) {
		item, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewUUID(), 0, price("9.99"))

		require.Error(t, err)
		assert.Nil(t, item)
	})
}
