package commands_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoveBookCommand(t *testing.T) {
	orderID := kernel.NewUUID()
	bookID := kernel.NewUUID()

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewRemoveBookCommand(orderID, bookID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		assert.True(t, cmd.BookID().IsEqual(bookID))
	})

	t.Run("should fail with unset IDs", func(t *testing.T) {
		_, err := commands.NewRemoveBookCommand(kernel.UUID{}, bookID)
		require.Error(t, err)

		_, err = commands.NewRemoveBookCommand(orderID, kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero-value command fails validation", func(t *testing.T) {
		var cmd commands.RemoveBookCommand

		require.Error(t, cmd.Validate())
	})
}
