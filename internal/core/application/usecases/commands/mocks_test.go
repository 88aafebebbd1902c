package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllForDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllReadyUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, previous order.Status) error {
	args := m.Called(ctx, aggregate, previous)
	return args.Error(0)
}

func (m *MockOrderRepository) AttachDriver(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Update(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetAll(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) GetAllAvailable(ctx context.Context) ([]*menu.MenuItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *MockMenuItemRepository) RenameCategory(ctx context.Context, from, to string) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*account.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*account.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*account.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*account.User), args.Error(1)
}

func (m *MockUserRepository) GetDriverWorkloads(ctx context.Context) ([]services.DriverWorkload, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]services.DriverWorkload), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package. Repository
// accessors hand out the embedded mocks; transaction calls are recorded.
type MockUoW struct {
	mock.Mock

	orders    *MockOrderRepository
	menuItems *MockMenuItemRepository
	users     *MockUserRepository
}

func NewMockUoW() *MockUoW {
	return &MockUoW{
		orders:    &MockOrderRepository{},
		menuItems: &MockMenuItemRepository{},
		users:     &MockUserRepository{},
	}
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository       { return m.orders }
func (m *MockUoW) MenuItemRepository() ports.MenuItemRepository { return m.menuItems }
func (m *MockUoW) UserRepository() ports.UserRepository         { return m.users }

// expectTx arms the usual Begin/Rollback expectations, plus Commit when the
// scenario is expected to reach it.
func (m *MockUoW) expectTx(commits bool) {
	m.On("Begin", mock.Anything).Return(nil)
	m.On("Rollback", mock.Anything).Return(nil)
	if commits {
		m.On("Commit", mock.Anything).Return(nil)
	}
}

type orderUoWFactoryStub struct{ uow *MockUoW }

func (f orderUoWFactoryStub) Create() commands.OrderUoW { return f.uow }

type menuUoWFactoryStub struct{ uow *MockUoW }

func (f menuUoWFactoryStub) Create() commands.MenuUoW { return f.uow }

type userUoWFactoryStub struct{ uow *MockUoW }

func (f userUoWFactoryStub) Create() commands.UserUoW { return f.uow }

type checkoutUoWFactoryStub struct{ uow *MockUoW }

func (f checkoutUoWFactoryStub) Create() commands.CheckoutUoW { return f.uow }

type dispatchUoWFactoryStub struct{ uow *MockUoW }

func (f dispatchUoWFactoryStub) Create() commands.DispatchUoW { return f.uow }

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

func mustActor(t *testing.T, role account.Role) account.Actor {
	t.Helper()
	actor, err := account.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func mustMenuItem(t *testing.T, name string, priceCents int64) *menu.MenuItem {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(priceCents)
	require.NoError(t, err)
	item, err := menu.NewMenuItem(kernel.NewUUID(), name, "", price, "Main", "")
	require.NoError(t, err)
	return item
}

func mustDriver(t *testing.T, name string) *account.User {
	t.Helper()
	driver, err := account.NewUser(kernel.NewUUID(), name, name+"@example.com", "x", account.Driver)
	require.NoError(t, err)
	return driver
}

// testOrder builds a guest order advanced to the wanted status, optionally
// with a driver attached once it reaches ready.
func testOrder(t *testing.T, status order.Status, driverID *kernel.UUID) *order.Order {
	t.Helper()

	guest, err := order.NewGuestContact("Dana", "+15550100", "")
	require.NoError(t, err)

	price, err := kernel.NewMoneyFromCents(1250)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Margherita", price, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), guest, "12 Oak Ave", "", []order.Item{item})
	require.NoError(t, err)

	steps := []order.Status{order.Cooking, order.Ready, order.PickedUp, order.Delivered}
	for _, step := range steps {
		if o.Status() == status {
			break
		}
		if step == order.PickedUp && driverID != nil && o.Driver() == nil {
			require.NoError(t, o.AssignDriver(*driverID))
		}
		require.NoError(t, o.ChangeStatus(step))
	}
	if driverID != nil && o.Driver() == nil {
		require.NoError(t, o.AssignDriver(*driverID))
	}
	require.Equal(t, status, o.Status())

	return o
}
