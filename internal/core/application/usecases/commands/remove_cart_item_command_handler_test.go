package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
)

func TestRemoveCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	cmd, err := commands.NewRemoveCartItemCommand("sess-1", productID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Remove", ctx, "sess-1", productID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveCartItemCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCartUoWFactory)

	handler := commands.NewRemoveCartItemCommandHandler(factory)
	err := handler.Handle(ctx, commands.RemoveCartItemCommand{})

	require.ErrorIs(t, err, commands.ErrRemoveCartItemCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestRemoveCartItemCommandHandler_Handle_RemoveError(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()

	cmd, err := commands.NewRemoveCartItemCommand("sess-1", productID)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Remove", ctx, "sess-1", productID).Return(errors.New("database error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRemoveCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "database error")
}
