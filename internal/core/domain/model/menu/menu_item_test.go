package menu_test

import (
	"testing"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T) *menu.MenuItem {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(10.00)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), "Margherita", "Tomato and mozzarella", price, "Pizza", "")
	require.NoError(t, err)
	return item
}

func TestNewMenuItem(t *testing.T) {
	t.Run("should create available item", func(t *testing.T) {
		item := newTestItem(t)

		require.NoError(t, item.Validate())
		assert.Equal(t, "Margherita", item.Name())
		assert.Equal(t, "Pizza", item.Category())
		assert.True(t, item.IsAvailable())
		assert.False(t, item.IsDeleted())
	})

	t.Run("should default empty category to Main", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(5.00)

		item, err := menu.NewMenuItem(kernel.NewUUID(), "Cola", "", price, "", "")

		require.NoError(t, err)
		assert.Equal(t, menu.DefaultCategory, item.Category())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(5.00)

		_, err := menu.NewMenuItem(kernel.NewUUID(), "  ", "", price, "", "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var id kernel.UUID
		price, _ := kernel.NewMoneyFromFloat(5.00)

		_, err := menu.NewMenuItem(id, "Cola", "", price, "", "")

		require.Error(t, err)
	})
}

func TestMenuItem_Validate(t *testing.T) {
	t.Run("should reject item not created via constructor", func(t *testing.T) {
		var item menu.MenuItem

		err := item.Validate()

		require.Error(t, err)
		assert.Equal(t, menu.ErrMenuItemIsNotConstructed, err)
	})
}

func TestMenuItem_UpdateDetails(t *testing.T) {
	t.Run("should update mutable fields", func(t *testing.T) {
		item := newTestItem(t)
		newPrice, _ := kernel.NewMoneyFromFloat(12.50)

		err := item.UpdateDetails("Margherita XL", "Bigger", newPrice, "http://img/xl.png")

		require.NoError(t, err)
		assert.Equal(t, "Margherita XL", item.Name())
		assert.Equal(t, int64(1250), item.Price().Cents())
		assert.Equal(t, "http://img/xl.png", item.ImageURL())
	})

	t.Run("should keep validation on update", func(t *testing.T) {
		item := newTestItem(t)
		newPrice, _ := kernel.NewMoneyFromFloat(12.50)

		require.Error(t, item.UpdateDetails("", "", newPrice, ""))
	})
}

func TestMenuItem_Categories(t *testing.T) {
	t.Run("should move between categories", func(t *testing.T) {
		item := newTestItem(t)

		item.MoveToCategory("Specials")

		assert.Equal(t, "Specials", item.Category())
	})

	t.Run("should fall back to default on empty label", func(t *testing.T) {
		item := newTestItem(t)

		item.MoveToCategory("  ")

		assert.Equal(t, menu.DefaultCategory, item.Category())
	})
}

func TestMenuItem_Lifecycle(t *testing.T) {
	t.Run("availability can be toggled", func(t *testing.T) {
		item := newTestItem(t)

		item.SetAvailability(false)
		assert.False(t, item.IsAvailable())

		item.SetAvailability(true)
		assert.True(t, item.IsAvailable())
	})

	t.Run("deletion is soft and makes item unavailable", func(t *testing.T) {
		item := newTestItem(t)

		item.MarkDeleted()

		assert.True(t, item.IsDeleted())
		assert.False(t, item.IsAvailable())
	})

	t.Run("restore preserves flags", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromFloat(5.00)

		item, err := menu.RestoreMenuItem(kernel.NewUUID(), "Cola", "", price, "Drinks", "", false, true)

		require.NoError(t, err)
		assert.False(t, item.IsAvailable())
		assert.True(t, item.IsDeleted())
	})
}
