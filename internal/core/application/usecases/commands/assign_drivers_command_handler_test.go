package commands_test

import (
	"context"
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignDriversCommandHandler_PicksLeastLoadedDriver(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(true)

	aggregate := testOrder(t, order.Ready, nil)
	busy := mustDriver(t, "busy")
	idle := mustDriver(t, "idle")

	uow.orders.On("GetAllReadyUnassigned", mock.Anything).
		Return([]*order.Order{aggregate}, nil)
	uow.users.On("GetDriverWorkloads", mock.Anything).Return([]services.DriverWorkload{
		{Driver: busy, ActiveDeliveries: 2},
		{Driver: idle, ActiveDeliveries: 0},
	}, nil)
	uow.orders.On("AttachDriver", mock.Anything, aggregate).Return(nil)

	publisher := &MockPublisher{}
	publisher.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil)

	cmd := commands.NewAssignDriversCommand()
	handler := commands.NewAssignDriversCommandHandler(dispatchUoWFactoryStub{uow: uow}, publisher)
	require.NoError(t, handler.Handle(context.Background(), cmd))

	require.NotNil(t, aggregate.Driver())
	require.True(t, aggregate.Driver().IsEqual(idle.ID()))
	require.Equal(t, order.Ready, aggregate.Status())
}

func TestAssignDriversCommandHandler_NothingToDispatch(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(false)

	uow.orders.On("GetAllReadyUnassigned", mock.Anything).Return([]*order.Order{}, nil)

	cmd := commands.NewAssignDriversCommand()
	handler := commands.NewAssignDriversCommandHandler(dispatchUoWFactoryStub{uow: uow}, &MockPublisher{})
	err := handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, commands.ErrNoReadyOrderFound)
}

func TestAssignDriversCommandHandler_NoDrivers(t *testing.T) {
	uow := NewMockUoW()
	uow.expectTx(false)

	aggregate := testOrder(t, order.Ready, nil)
	uow.orders.On("GetAllReadyUnassigned", mock.Anything).
		Return([]*order.Order{aggregate}, nil)
	uow.users.On("GetDriverWorkloads", mock.Anything).
		Return([]services.DriverWorkload{}, nil)

	cmd := commands.NewAssignDriversCommand()
	handler := commands.NewAssignDriversCommandHandler(dispatchUoWFactoryStub{uow: uow}, &MockPublisher{})
	err := handler.Handle(context.Background(), cmd)

	require.ErrorIs(t, err, commands.ErrNoFreeDriversFound)
	require.Nil(t, aggregate.Driver())
}

func TestAssignDriversCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.AssignDriversCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrAssignDriversCommandIsNotConstructed)
}
