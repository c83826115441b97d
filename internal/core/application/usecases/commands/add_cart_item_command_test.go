package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
)

func TestNewAddCartItemCommand(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAddCartItemCommand("sess-1", productID, 3)
		require.NoError(t, err)

		assert.NoError(t, cmd.Validate())
		assert.Equal(t, "sess-1", cmd.SessionID())
		assert.True(t, cmd.ProductID().IsEqual(productID))
		assert.Equal(t, 3, cmd.Quantity())
	})

	t.Run("empty session", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("", productID, 1)
		require.ErrorIs(t, err, commands.ErrSessionIDIsRequired)
	})

	t.Run("zero product id", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("sess-1", kernel.UUID{}, 1)
		require.Error(t, err)
	})

	t.Run("non positive quantity", func(t *testing.T) {
		_, err := commands.NewAddCartItemCommand("sess-1", productID, 0)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

		_, err = commands.NewAddCartItemCommand("sess-1", productID, -2)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var cmd commands.AddCartItemCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrAddCartItemCommandIsNotConstructed)
	})
}
