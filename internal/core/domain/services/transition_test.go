package services_test

import (
	"testing"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(10.00)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", price, 2)
	require.NoError(t, err)
	guest, err := order.NewGuestContact("Dana", "+15550100", "")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), guest, "1 Main St", "", []order.Item{item})
	require.NoError(t, err)
	return o
}

func mustDriver(t *testing.T) *account.User {
	t.Helper()
	driver, err := account.NewUser(kernel.NewUUID(), "Riley", "riley@example.com", "hash", account.Driver)
	require.NoError(t, err)
	return driver
}

func TestTransitionOrder(t *testing.T) {
	t.Run("kitchen staff moves pending to cooking", func(t *testing.T) {
		o := newPendingOrder(t)
		kitchen := mustActor(t, account.KitchenStaff)

		err := services.TransitionOrder(o, order.Cooking, kitchen)

		require.NoError(t, err)
		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("admin moves pending to cooking", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, services.TransitionOrder(o, order.Cooking, mustActor(t, account.Admin)))
	})

	t.Run("driver attempting pending to cooking fails with Forbidden", func(t *testing.T) {
		o := newPendingOrder(t)
		driver := mustActor(t, account.Driver)

		err := services.TransitionOrder(o, order.Cooking, driver)

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("kitchen staff skipping cooking to delivered fails with InvalidTransition", func(t *testing.T) {
		o := newPendingOrder(t)
		kitchen := mustActor(t, account.KitchenStaff)
		require.NoError(t, services.TransitionOrder(o, order.Cooking, kitchen))

		err := services.TransitionOrder(o, order.Delivered, kitchen)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Cooking, o.Status())
	})

	t.Run("invalid transition wins over missing permission", func(t *testing.T) {
		// A driver skipping pending -> delivered is both forbidden and
		// illegal; the state machine answers first.
		o := newPendingOrder(t)

		err := services.TransitionOrder(o, order.Delivered, mustActor(t, account.Driver))

		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("assigned driver picks up and delivers", func(t *testing.T) {
		o := newPendingOrder(t)
		admin := mustActor(t, account.Admin)
		require.NoError(t, services.TransitionOrder(o, order.Cooking, admin))
		require.NoError(t, services.TransitionOrder(o, order.Ready, admin))

		driver := mustDriver(t)
		require.NoError(t, services.AssignDriverToOrder(o, driver, admin))

		actor := driver.Actor()
		require.NoError(t, services.TransitionOrder(o, order.PickedUp, actor))
		require.NoError(t, services.TransitionOrder(o, order.Delivered, actor))
		assert.True(t, o.IsDelivered())
	})

	t.Run("driver may not pick up an order assigned to someone else", func(t *testing.T) {
		o := newPendingOrder(t)
		admin := mustActor(t, account.Admin)
		require.NoError(t, services.TransitionOrder(o, order.Cooking, admin))
		require.NoError(t, services.TransitionOrder(o, order.Ready, admin))
		require.NoError(t, services.AssignDriverToOrder(o, mustDriver(t), admin))

		err := services.TransitionOrder(o, order.PickedUp, mustActor(t, account.Driver))

		require.Error(t, err)
		require.ErrorIs(t, err, services.ErrForbidden)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("driver pickup before any assignment does not silently succeed", func(t *testing.T) {
		o := newPendingOrder(t)
		admin := mustActor(t, account.Admin)
		require.NoError(t, services.TransitionOrder(o, order.Cooking, admin))
		require.NoError(t, services.TransitionOrder(o, order.Ready, admin))

		err := services.TransitionOrder(o, order.PickedUp, mustActor(t, account.Driver))

		require.Error(t, err)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("admin pickup without driver fails with DriverRequired", func(t *testing.T) {
		o := newPendingOrder(t)
		admin := mustActor(t, account.Admin)
		require.NoError(t, services.TransitionOrder(o, order.Cooking, admin))
		require.NoError(t, services.TransitionOrder(o, order.Ready, admin))

		err := services.TransitionOrder(o, order.PickedUp, admin)

		require.ErrorIs(t, err, order.ErrDriverRequired)
	})
}

func TestAssignDriverToOrder(t *testing.T) {
	readyOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := newPendingOrder(t)
		admin := mustActor(t, account.Admin)
		require.NoError(t, services.TransitionOrder(o, order.Cooking, admin))
		require.NoError(t, services.TransitionOrder(o, order.Ready, admin))
		return o
	}

	t.Run("kitchen staff assigns a driver", func(t *testing.T) {
		o := readyOrder(t)
		driver := mustDriver(t)

		err := services.AssignDriverToOrder(o, driver, mustActor(t, account.KitchenStaff))

		require.NoError(t, err)
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driver.ID()))
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("second assignment fails with AlreadyAssigned regardless of actor", func(t *testing.T) {
		o := readyOrder(t)
		admin := mustActor(t, account.Admin)
		require.NoError(t, services.AssignDriverToOrder(o, mustDriver(t), admin))

		actors := []account.Actor{
			admin,
			mustActor(t, account.KitchenStaff),
			mustActor(t, account.Driver),
			mustActor(t, account.Customer),
			account.NewGuestActor(),
		}
		for _, actor := range actors {
			err := services.AssignDriverToOrder(o, mustDriver(t), actor)

			require.Error(t, err)
			require.ErrorIs(t, err, order.ErrAlreadyAssigned, "role %s", actor.Role())
			require.NotErrorIs(t, err, services.ErrForbidden, "role %s", actor.Role())
		}
	})

	t.Run("driver and customer may not assign", func(t *testing.T) {
		o := readyOrder(t)

		for _, role := range []account.Role{account.Driver, account.Customer} {
			err := services.AssignDriverToOrder(o, mustDriver(t), mustActor(t, role))

			require.ErrorIs(t, err, services.ErrForbidden, "role %s", role)
		}
	})

	t.Run("assignment to a pending order fails with InvalidState", func(t *testing.T) {
		o := newPendingOrder(t)

		err := services.AssignDriverToOrder(o, mustDriver(t), mustActor(t, account.Admin))

		require.ErrorIs(t, err, order.ErrInvalidState)
	})

	t.Run("assignee must hold the driver role", func(t *testing.T) {
		o := readyOrder(t)
		notADriver, err := account.NewUser(kernel.NewUUID(), "Sam", "sam@example.com", "hash", account.Customer)
		require.NoError(t, err)

		err = services.AssignDriverToOrder(o, notADriver, mustActor(t, account.Admin))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o.Driver())
	})
}
