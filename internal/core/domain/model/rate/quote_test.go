package rate_test

import (
	"testing"

	"shiplabel/internal/core/domain/model/rate"
	"shiplabel/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuote(t *testing.T) {
	r1, _ := rate.NewRate("r1", "USPS", "Priority", "12.50", "USD")
	r2, _ := rate.NewRate("r2", "UPS", "Ground", "8.10", "USD")

	t.Run("keeps provider order", func(t *testing.T) {
		q, err := rate.NewQuote("shp_1", []rate.Rate{r1, r2})

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, "shp_1", q.ShipmentID())
		require.Len(t, q.Rates(), 2)
		assert.Equal(t, "r1", q.Rates()[0].ID())
		assert.Equal(t, "r2", q.Rates()[1].ID())
		assert.True(t, q.Contains("r2"))
		assert.False(t, q.Contains("r9"))
	})

	t.Run("allows empty rate set", func(t *testing.T) {
		q, err := rate.NewQuote("shp_1", nil)

		require.NoError(t, err)
		assert.Empty(t, q.Rates())
	})

	t.Run("rates are copied", func(t *testing.T) {
		input := []rate.Rate{r1}
		q, _ := rate.NewQuote("shp_1", input)

		input[0] = r2
		q.Rates()[0] = r2

		assert.Equal(t, "r1", q.Rates()[0].ID())
	})

	t.Run("requires shipment id", func(t *testing.T) {
		_, err := rate.NewQuote(" ", []rate.Rate{r1})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed rate", func(t *testing.T) {
		_, err := rate.NewQuote("shp_1", []rate.Rate{r1, {}})

		require.ErrorIs(t, err, rate.ErrRateIsNotConstructed)
		assert.Contains(t, err.Error(), "rate 1")
	})
}
