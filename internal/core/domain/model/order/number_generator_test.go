package order_test

import (
	"strings"
	"sync"
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberGenerator_Next(t *testing.T) {
	t.Run("formats as ORD plus 14-digit timestamp", func(t *testing.T) {
		g := order.NewNumberGenerator()
		at := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)

		assert.Equal(t, "ORD-20240102150405", g.Next(at))
	})

	t.Run("uses UTC regardless of input zone", func(t *testing.T) {
		g := order.NewNumberGenerator()
		zone := time.FixedZone("WAT", 3600)
		at := time.Date(2024, 1, 2, 16, 4, 5, 0, zone) // 15:04:05 UTC

		assert.Equal(t, "ORD-20240102150405", g.Next(at))
	})

	t.Run("same-second checkouts get disambiguating suffixes", func(t *testing.T) {
		g := order.NewNumberGenerator()
		at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

		assert.Equal(t, "ORD-20240601100000", g.Next(at))
		assert.Equal(t, "ORD-20240601100000-2", g.Next(at))
		assert.Equal(t, "ORD-20240601100000-3", g.Next(at))
	})

	t.Run("suffix resets on a new second", func(t *testing.T) {
		g := order.NewNumberGenerator()
		at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

		g.Next(at)
		g.Next(at)

		assert.Equal(t, "ORD-20240601100001", g.Next(at.Add(time.Second)))
	})

	t.Run("concurrent issuance yields unique numbers", func(t *testing.T) {
		g := order.NewNumberGenerator()
		at := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

		const n = 100
		var wg sync.WaitGroup
		numbers := make([]string, n)
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				numbers[i] = g.Next(at)
			}()
		}
		wg.Wait()

		seen := make(map[string]struct{}, n)
		for _, number := range numbers {
			require.True(t, strings.HasPrefix(number, "ORD-20240601100000"))
			_, dup := seen[number]
			require.False(t, dup, number)
			seen[number] = struct{}{}
		}
	})
}
