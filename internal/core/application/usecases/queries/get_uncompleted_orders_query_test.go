package queries_test

import (
	"testing"

	"bookstore/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/require"
)

func TestNewGetUncompletedOrdersQuery(t *testing.T) {
	t.Run("should create valid query", func(t *testing.T) {
		query := queries.NewGetUncompletedOrdersQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("zero-value query fails validation", func(t *testing.T) {
		var query queries.GetUncompletedOrdersQuery

		require.Error(t, query.Validate())
	})
}
