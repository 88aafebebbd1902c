package order_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, name string, price float64, quantity int) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), name, mustMoney(t, price), quantity)
	require.NoError(t, err)
	return item
}

func mustGuest(t *testing.T) order.GuestContact {
	t.Helper()
	guest, err := order.NewGuestContact("Dana", "+15550100", "dana@example.com")
	require.NoError(t, err)
	return guest
}

func newTestOrder(t *testing.T, items ...order.Item) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.Item{mustItem(t, "Margherita", 10.00, 1)}
	}
	o, err := order.NewOrder(kernel.NewUUID(), mustGuest(t), "1 Main St", "", items)
	require.NoError(t, err)
	return o
}

// advanceTo walks the order forward along the canonical chain, attaching a
// driver at Ready when the target requires one.
func advanceTo(t *testing.T, o *order.Order, target order.Status) {
	t.Helper()
	for o.Status() != target {
		if o.Status() == order.Ready && o.Driver() == nil {
			require.NoError(t, o.AssignDriver(kernel.NewUUID()))
		}
		next, err := o.Status().Next()
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(next))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []order.Item{mustItem(t, "Margherita", 10.00, 2)}

		o, err := order.NewOrder(id, mustGuest(t), "1 Main St", "ring twice", items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Driver())
		assert.Equal(t, "1 Main St", o.DeliveryAddress())
		assert.Equal(t, "ring twice", o.Notes())
		assert.Len(t, o.Items(), 1)
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should accept authenticated customer", func(t *testing.T) {
		accountID := kernel.NewUUID()
		customer, err := order.NewAuthenticatedCustomer(accountID)
		require.NoError(t, err)

		o, err := order.NewOrder(kernel.NewUUID(), customer, "1 Main St", "",
			[]order.Item{mustItem(t, "Margherita", 10.00, 1)})

		require.NoError(t, err)
		require.NotNil(t, o.CustomerID())
		assert.True(t, o.CustomerID().IsEqual(accountID))
	})

	t.Run("guest order has no customer id", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Nil(t, o.CustomerID())
	})

	t.Run("should reject missing customer", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), nil, "1 Main St", "",
			[]order.Item{mustItem(t, "Margherita", 10.00, 1)})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustGuest(t), "1 Main St", "", nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject blank delivery address", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), mustGuest(t), "   ", "",
			[]order.Item{mustItem(t, "Margherita", 10.00, 1)})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Margherita", mustMoney(t, 10.00), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), " ", mustMoney(t, 10.00), 1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestGuestContact(t *testing.T) {
	t.Run("should require name and phone", func(t *testing.T) {
		_, err := order.NewGuestContact("", "+15550100", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = order.NewGuestContact("Dana", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("email is optional but validated", func(t *testing.T) {
		_, err := order.NewGuestContact("Dana", "+15550100", "")
		require.NoError(t, err)

		_, err = order.NewGuestContact("Dana", "+15550100", "not-an-email")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Total(t *testing.T) {
	t.Run("should sum line totals", func(t *testing.T) {
		// The worked example: 2 x 10.00 + 1 x 3.50 = 23.50.
		o := newTestOrder(t,
			mustItem(t, "Margherita", 10.00, 2),
			mustItem(t, "Garlic Bread", 3.50, 1),
		)

		assert.Equal(t, int64(2350), o.Total().Cents())
		assert.Equal(t, "23.50", o.Total().String())
	})

	t.Run("should be independent of item ordering", func(t *testing.T) {
		a := mustItem(t, "Margherita", 10.00, 2)
		b := mustItem(t, "Garlic Bread", 3.50, 1)
		c := mustItem(t, "Cola", 1.99, 3)

		forward := newTestOrder(t, a, b, c)
		backward := newTestOrder(t, c, b, a)

		assert.True(t, forward.Total().IsEqual(backward.Total()))
	})

	t.Run("should be idempotent across lifecycle stages", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, "Margherita", 10.00, 2))
		initial := o.Total()

		advanceTo(t, o, order.Delivered)

		assert.True(t, o.Total().IsEqual(initial))
		assert.True(t, o.Total().IsEqual(o.Total()))
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should advance one step at a time", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cooking))
		assert.Equal(t, order.Cooking, o.Status())

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should reject skipping states", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cooking))

		err := o.ChangeStatus(order.Delivered)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cooking, o.Status(), "failed transition must not change state")
	})

	t.Run("should reject backward moves", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Ready)

		err := o.ChangeStatus(order.Cooking)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("should reject transitions out of Delivered", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Delivered)

		for _, next := range canonicalChain() {
			err := o.ChangeStatus(next)

			require.Error(t, err, "delivered -> %s must fail", next)
		}
	})

	t.Run("should require driver before pickup", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Ready)
		require.Nil(t, o.Driver())

		err := o.ChangeStatus(order.PickedUp)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrDriverRequired)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("should not touch any other field", func(t *testing.T) {
		o := newTestOrder(t, mustItem(t, "Margherita", 10.00, 2))
		total := o.Total()
		address := o.DeliveryAddress()

		require.NoError(t, o.ChangeStatus(order.Cooking))

		assert.True(t, o.Total().IsEqual(total))
		assert.Equal(t, address, o.DeliveryAddress())
		assert.Nil(t, o.Driver())
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	t.Run("should attach driver to ready order without advancing status", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Ready)
		driverID := kernel.NewUUID()

		err := o.AssignDriver(driverID)

		require.NoError(t, err)
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.Equal(t, order.Ready, o.Status(), "assignment is a field mutation, not a transition")
	})

	t.Run("should fail with AlreadyAssigned on second attempt", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Ready)
		first := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(first))

		err := o.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.Driver().IsEqual(first), "original assignment must survive")
	})

	t.Run("should fail with InvalidState unless ready", func(t *testing.T) {
		pending := newTestOrder(t)

		err := pending.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidState)
	})

	t.Run("should reject invalid driver id", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Ready)
		var zero kernel.UUID

		require.Error(t, o.AssignDriver(zero))
		assert.Nil(t, o.Driver())
	})
}

func TestOrder_ProgressFraction(t *testing.T) {
	t.Run("should raise ready fraction once driver attached", func(t *testing.T) {
		o := newTestOrder(t)
		advanceTo(t, o, order.Ready)
		assert.InDelta(t, 0.50, o.ProgressFraction(), 0.0001)

		require.NoError(t, o.AssignDriver(kernel.NewUUID()))

		assert.InDelta(t, 0.60, o.ProgressFraction(), 0.0001)
	})

	t.Run("should never decrease over the full lifecycle", func(t *testing.T) {
		o := newTestOrder(t)
		previous := o.ProgressFraction()

		for !o.IsDelivered() {
			if o.Status() == order.Ready && o.Driver() == nil {
				require.NoError(t, o.AssignDriver(kernel.NewUUID()))
			} else {
				next, err := o.Status().Next()
				require.NoError(t, err)
				require.NoError(t, o.ChangeStatus(next))
			}

			current := o.ProgressFraction()
			assert.GreaterOrEqual(t, current, previous)
			previous = current
		}

		assert.InDelta(t, 1.00, o.ProgressFraction(), 0.0001)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore full state", func(t *testing.T) {
		id := kernel.NewUUID()
		driverID := kernel.NewUUID()
		createdAt := time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)
		items := []order.Item{mustItem(t, "Margherita", 10.00, 2)}

		o, err := order.RestoreOrder(id, mustGuest(t), "1 Main St", "", items,
			order.PickedUp, &driverID, createdAt)

		require.NoError(t, err)
		assert.Equal(t, order.PickedUp, o.Status())
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.Equal(t, createdAt, o.CreatedAt())
	})

	t.Run("should reject picked up order without driver", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Margherita", 10.00, 2)}

		_, err := order.RestoreOrder(kernel.NewUUID(), mustGuest(t), "1 Main St", "", items,
			order.PickedUp, nil, time.Now())

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrDriverRequired)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		items := []order.Item{mustItem(t, "Margherita", 10.00, 2)}

		_, err := order.RestoreOrder(kernel.NewUUID(), mustGuest(t), "1 Main St", "", items,
			order.Unknown, nil, time.Now())

		require.Error(t, err)
	})
}
