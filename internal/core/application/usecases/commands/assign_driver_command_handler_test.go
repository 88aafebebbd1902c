package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriverCommandHandler_AttachesDriverToReadyOrder(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(true)

	aggregate := testOrder(t, order.Ready, nil)
	driver := mustDriver(t, "sam")

	uow.orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	uow.users.On("Get", mock.Anything, driver.ID()).Return(driver, nil)
	uow.orders.On("AttachDriver", mock.Anything, aggregate).Return(nil)

	publisher := &MockPublisher{}
	publisher.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil)

	cmd, err := commands.NewAssignDriverCommand(
		aggregate.ID(), driver.ID(), mustActor(t, account.KitchenStaff),
	)
	require.NoError(t, err)

	handler := commands.NewAssignDriverCommandHandler(dispatchUoWFactoryStub{uow: uow}, publisher)
	require.NoError(t, handler.Handle(context.Background(), cmd))

	require.NotNil(t, aggregate.Driver())
	require.True(t, aggregate.Driver().IsEqual(driver.ID()))
	require.Equal(t, order.Ready, aggregate.Status())
}

func TestAssignDriverCommandHandler_SecondAssignmentRejected(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(false)

	first := kernel.NewUUID()
	aggregate := testOrder(t, order.Ready, &first)
	driver := mustDriver(t, "sam")

	uow.orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	uow.users.On("Get", mock.Anything, driver.ID()).Return(driver, nil)

	cmd, err := commands.NewAssignDriverCommand(
		aggregate.ID(), driver.ID(), mustActor(t, account.Admin),
	)
	require.NoError(t, err)

	handler := commands.NewAssignDriverCommandHandler(dispatchUoWFactoryStub{uow: uow}, &MockPublisher{})
	err = handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	require.True(t, aggregate.Driver().IsEqual(first))
}

func TestAssignDriverCommandHandler_OrderMustBeReady(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(false)

	aggregate := testOrder(t, order.Cooking, nil)
	driver := mustDriver(t, "sam")

	uow.orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	uow.users.On("Get", mock.Anything, driver.ID()).Return(driver, nil)

	cmd, err := commands.NewAssignDriverCommand(
		aggregate.ID(), driver.ID(), mustActor(t, account.Admin),
	)
	require.NoError(t, err)

	handler := commands.NewAssignDriverCommandHandler(dispatchUoWFactoryStub{uow: uow}, &MockPublisher{})
	err = handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, order.ErrInvalidState)
}

func TestAssignDriverCommandHandler_DriversMayNotAssign(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(false)

	aggregate := testOrder(t, order.Ready, nil)
	driver := mustDriver(t, "sam")

	uow.orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	uow.users.On("Get", mock.Anything, driver.ID()).Return(driver, nil)

	cmd, err := commands.NewAssignDriverCommand(
		aggregate.ID(), driver.ID(), driver.Actor(),
	)
	require.NoError(t, err)

	handler := commands.NewAssignDriverCommandHandler(dispatchUoWFactoryStub{uow: uow}, &MockPublisher{})
	err = handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, services.ErrForbidden)
	require.Nil(t, aggregate.Driver())
}

func TestAssignDriverCommandHandler_TargetMustBeDriver(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(false)

	aggregate := testOrder(t, order.Ready, nil)
	cook, err := account.NewUser(kernel.NewUUID(), "casey", "casey@example.com", "x", account.KitchenStaff)
	require.NoError(t, err)

	uow.orders.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil)
	uow.users.On("Get", mock.Anything, cook.ID()).Return(cook, nil)

	cmd, err := commands.NewAssignDriverCommand(
		aggregate.ID(), cook.ID(), mustActor(t, account.Admin),
	)
	require.NoError(t, err)

	handler := commands.NewAssignDriverCommandHandler(dispatchUoWFactoryStub{uow: uow}, &MockPublisher{})
	err = handler.Handle(context.Background(), cmd)

	require.Error(t, err)
	require.Nil(t, aggregate.Driver())
}
