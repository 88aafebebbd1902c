package account_test

import (
	"testing"
	"time"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role account.Role) *account.User {
	t.Helper()
	user, err := account.NewUser(kernel.NewUUID(), "Alex", "alex@example.com", "bcrypt-hash", role)
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		user, err := account.NewUser(id, "Alex", "alex@example.com", "bcrypt-hash", account.Customer)

		require.NoError(t, err)
		require.NoError(t, user.Validate())
		assert.True(t, user.ID().IsEqual(id))
		assert.Equal(t, "Alex", user.Name())
		assert.Equal(t, "alex@example.com", user.Email())
		assert.Equal(t, account.Customer, user.Role())
		assert.False(t, user.CreatedAt().IsZero())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "  ", "alex@example.com", "hash", account.Customer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed email", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "Alex", "not-an-email", "hash", account.Customer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject missing password hash", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "Alex", "alex@example.com", "", account.Customer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject guest role", func(t *testing.T) {
		_, err := account.NewUser(kernel.NewUUID(), "Alex", "alex@example.com", "hash", account.Guest)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		var id kernel.UUID

		_, err := account.NewUser(id, "Alex", "alex@example.com", "hash", account.Customer)

		require.Error(t, err)
	})
}

func TestRestoreUser(t *testing.T) {
	t.Run("should preserve creation time", func(t *testing.T) {
		createdAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		user, err := account.RestoreUser(
			kernel.NewUUID(), "Alex", "alex@example.com", "hash", account.Driver, createdAt)

		require.NoError(t, err)
		assert.Equal(t, createdAt, user.CreatedAt())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("should reject user not created via constructor", func(t *testing.T) {
		var user account.User

		err := user.Validate()

		require.Error(t, err)
		assert.Equal(t, account.ErrUserIsNotConstructed, err)
	})

	t.Run("should reject nil user", func(t *testing.T) {
		var user *account.User

		require.Error(t, user.Validate())
	})
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Run("should update name and email", func(t *testing.T) {
		user := newTestUser(t, account.Customer)

		err := user.UpdateProfile("Sam", "sam@example.com")

		require.NoError(t, err)
		assert.Equal(t, "Sam", user.Name())
		assert.Equal(t, "sam@example.com", user.Email())
	})

	t.Run("should keep validation on update", func(t *testing.T) {
		user := newTestUser(t, account.Customer)

		require.Error(t, user.UpdateProfile("", "sam@example.com"))
	})
}

func TestUser_ChangeRole(t *testing.T) {
	t.Run("should move user between roles", func(t *testing.T) {
		user := newTestUser(t, account.Customer)

		require.NoError(t, user.ChangeRole(account.Driver))
		assert.Equal(t, account.Driver, user.Role())
	})

	t.Run("should reject guest", func(t *testing.T) {
		user := newTestUser(t, account.Customer)

		require.Error(t, user.ChangeRole(account.Guest))
	})
}

func TestActor(t *testing.T) {
	t.Run("authenticated actor carries id and role", func(t *testing.T) {
		id := kernel.NewUUID()

		actor, err := account.NewActor(id, account.Driver)

		require.NoError(t, err)
		require.NoError(t, actor.Validate())
		assert.Equal(t, account.Driver, actor.Role())
		assert.True(t, actor.IsSame(id))
		assert.False(t, actor.IsSame(kernel.NewUUID()))
	})

	t.Run("guest actor has no id", func(t *testing.T) {
		actor := account.NewGuestActor()

		require.NoError(t, actor.Validate())
		assert.Equal(t, account.Guest, actor.Role())
		assert.Nil(t, actor.ID())
		assert.False(t, actor.IsSame(kernel.NewUUID()))
	})

	t.Run("should reject guest role with id", func(t *testing.T) {
		_, err := account.NewActor(kernel.NewUUID(), account.Guest)

		require.Error(t, err)
	})

	t.Run("user exposes its own actor", func(t *testing.T) {
		user := newTestUser(t, account.KitchenStaff)

		actor := user.Actor()

		assert.Equal(t, account.KitchenStaff, actor.Role())
		assert.True(t, actor.IsSame(user.ID()))
	})
}
