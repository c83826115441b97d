package product_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/product"
	"fulfillment/internal/pkg/errs"
)

func newTestProduct(t *testing.T) *product.Product {
	t.Helper()

	p, err := product.NewProduct(kernel.NewUUID(), kernel.NewUUID(),
		"Akara beans", "black-eyed peas, 5kg bag", 12.5, 40, time.Now())
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		p := newTestProduct(t)

		assert.NoError(t, p.Validate())
		assert.Equal(t, product.StatusPending, p.Status())
		assert.False(t, p.IsPurchasable())
	})

	t.Run("rejects bad fields", func(t *testing.T) {
		id := kernel.NewUUID()
		vendorID := kernel.NewUUID()
		now := time.Now()

		_, err := product.NewProduct(kernel.UUID{}, vendorID, "x", "", 1, 0, now)
		require.Error(t, err)

		_, err = product.NewProduct(id, kernel.UUID{}, "x", "", 1, 0, now)
		require.Error(t, err)

		_, err = product.NewProduct(id, vendorID, "", "", 1, 0, now)
		require.Error(t, err)

		_, err = product.NewProduct(id, vendorID, "x", "", 0, 0, now)
		require.Error(t, err)

		_, err = product.NewProduct(id, vendorID, "x", "", -5, 0, now)
		require.Error(t, err)

		_, err = product.NewProduct(id, vendorID, "x", "", 1, -1, now)
		require.Error(t, err)
	})
}

func TestProductModeration(t *testing.T) {
	t.Run("approve makes purchasable", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Approve())
		assert.Equal(t, product.StatusApproved, p.Status())
		assert.True(t, p.IsPurchasable())
	})

	t.Run("reject hides listing", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Reject())
		assert.Equal(t, product.StatusRejected, p.Status())
		assert.False(t, p.IsPurchasable())
	})

	t.Run("repeated decision conflicts", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Approve())
		assert.ErrorIs(t, p.Approve(), errs.ErrConflict)
	})

	t.Run("rejected listing may be approved later", func(t *testing.T) {
		p := newTestProduct(t)

		require.NoError(t, p.Reject())
		require.NoError(t, p.Approve())
		assert.True(t, p.IsPurchasable())
	})
}

func TestRestoreProduct(t *testing.T) {
	p, err := product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
		"Gari", "", 4.2, 10, product.StatusApproved, time.Now())
	require.NoError(t, err)
	assert.True(t, p.IsPurchasable())

	_, err = product.RestoreProduct(kernel.NewUUID(), kernel.NewUUID(),
		"Gari", "", 4.2, 10, product.StatusUnknown, time.Now())
	require.Error(t, err)
}

func TestStatusFromString(t *testing.T) {
	for _, name := range []string{"pending", "approved", "rejected"} {
		status, err := product.StatusFromString(name)
		require.NoError(t, err)
		assert.Equal(t, name, status.String())
	}

	_, err := product.StatusFromString("banana")
	require.Error(t, err)
}
