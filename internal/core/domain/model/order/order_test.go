package order_test

import (
	"testing"

	"myfood/internal/core/domain/model/kernel"
	"myfood/internal/core/domain/model/order"
	"myfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id kernel.ProductID, name string, price float64) order.Item {
	t.Helper()
	item, err := order.NewItem(id, name, price)
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	t.Run("should create an open order with empty basket", func(t *testing.T) {
		o, err := order.NewOrder(1, 10, 20)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, kernel.OrderNumber(1), o.Number())
		assert.Equal(t, kernel.UserID(10), o.CustomerID())
		assert.Equal(t, kernel.CompanyID(20), o.CompanyID())
		assert.Equal(t, order.Open, o.Status())
		assert.Empty(t, o.Items())
		assert.InDelta(t, 0, o.Total(), 0.001)
	})

	t.Run("should fail with unassigned number", func(t *testing.T) {
		o, err := order.NewOrder(0, 10, 20)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order number")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		o, err := order.NewOrder(0, 0, 0)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "order number")
		assert.Contains(t, err.Error(), "user id")
		assert.Contains(t, err.Error(), "company id")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should pass for properly constructed order", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)

		require.NoError(t, o.Validate())
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_AddItem(t *testing.T) {
	t.Run("should append item and grow total", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)

		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))

		require.Len(t, o.Items(), 2)
		assert.InDelta(t, 25.00, o.Total(), 0.001)
	})

	t.Run("should keep insertion order", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)

		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))
		require.NoError(t, o.AddItem(mustItem(t, 6, "Suco", 4.00)))

		items := o.Items()
		assert.Equal(t, "Pizza", items[0].Name())
		assert.Equal(t, "Suco", items[1].Name())
	})

	t.Run("should reject additions after closing", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))
		require.NoError(t, o.Close())

		err := o.AddItem(mustItem(t, 6, "Suco", 4.00))

		require.ErrorIs(t, err, order.ErrOrderNotOpen)
		require.Len(t, o.Items(), 1)
		assert.InDelta(t, 12.50, o.Total(), 0.001)
	})

	t.Run("should reject unconstructed items", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		var item order.Item

		err := o.AddItem(item)

		require.Error(t, err)
		assert.Empty(t, o.Items())
		assert.InDelta(t, 0, o.Total(), 0.001)
	})
}

func TestOrder_RemoveItem(t *testing.T) {
	t.Run("should remove first match by name and shrink total", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))
		require.NoError(t, o.AddItem(mustItem(t, 6, "Suco", 4.00)))

		require.NoError(t, o.RemoveItem("Pizza"))

		require.Len(t, o.Items(), 1)
		assert.Equal(t, "Suco", o.Items()[0].Name())
		assert.InDelta(t, 4.00, o.Total(), 0.001)
	})

	t.Run("should remove only one instance of a duplicate", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))

		require.NoError(t, o.RemoveItem("Pizza"))

		require.Len(t, o.Items(), 1)
		assert.InDelta(t, 12.50, o.Total(), 0.001)
	})

	t.Run("should fail with not found and keep total unchanged", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))

		err := o.RemoveItem("Sushi")

		require.ErrorIs(t, err, order.ErrItemNotFound)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		require.Len(t, o.Items(), 1)
		assert.InDelta(t, 12.50, o.Total(), 0.001)
	})

	t.Run("should reject removals after closing", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.AddItem(mustItem(t, 5, "Pizza", 12.50)))
		require.NoError(t, o.Close())

		err := o.RemoveItem("Pizza")

		require.ErrorIs(t, err, order.ErrOrderNotOpen)
		require.Len(t, o.Items(), 1)
		assert.InDelta(t, 12.50, o.Total(), 0.001)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("should walk the full forward path", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)

		require.NoError(t, o.Close())
		assert.Equal(t, order.Preparing, o.Status())

		require.NoError(t, o.MarkReady())
		assert.Equal(t, order.Ready, o.Status())

		require.NoError(t, o.StartDelivery())
		assert.Equal(t, order.Delivering, o.Status())

		require.NoError(t, o.MarkDelivered())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should never re-enter an earlier state", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.Close())
		require.NoError(t, o.MarkReady())

		require.Error(t, o.Close())
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should keep delivered terminal", func(t *testing.T) {
		o, _ := order.NewOrder(1, 10, 20)
		require.NoError(t, o.Close())
		require.NoError(t, o.MarkReady())
		require.NoError(t, o.StartDelivery())
		require.NoError(t, o.MarkDelivered())

		require.Error(t, o.Close())
		require.Error(t, o.MarkReady())
		require.Error(t, o.StartDelivery())
		require.NoError(t, o.MarkDelivered()) // re-running completion is allowed
		assert.Equal(t, order.Delivered, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state verbatim", func(t *testing.T) {
		items := []order.Item{mustItem(t, 5, "Pizza", 12.50), mustItem(t, 5, "Pizza", 12.50)}

		o, err := order.RestoreOrder(3, 10, 20, order.Ready, items, 25.00)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Ready, o.Status())
		require.Len(t, o.Items(), 2)
		assert.InDelta(t, 25.00, o.Total(), 0.001)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 10, 20, order.Unknown, nil, 0)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should reject negative total", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 10, 20, order.Open, nil, -1)

		require.Error(t, err)
		assert.Nil(t, o)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	o1, _ := order.NewOrder(1, 10, 20)
	o2, _ := order.NewOrder(1, 11, 21)
	o3, _ := order.NewOrder(2, 10, 20)

	assert.True(t, o1.IsEqual(o2))
	assert.False(t, o1.IsEqual(o3))
	assert.False(t, o1.IsEqual(nil))
}

func TestNewItem(t *testing.T) {
	t.Run("should snapshot product data", func(t *testing.T) {
		item, err := order.NewItem(5, "Pizza", 12.50)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, kernel.ProductID(5), item.ProductID())
		assert.Equal(t, "Pizza", item.Name())
		assert.InDelta(t, 12.50, item.Price(), 0.001)
	})

	t.Run("should accept zero price", func(t *testing.T) {
		_, err := order.NewItem(5, "Brinde", 0)

		require.NoError(t, err)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem(5, "", 12.50)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewItem(5, "Pizza", -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail validation for zero value item", func(t *testing.T) {
		var item order.Item

		require.Error(t, item.Validate())
	})
}
