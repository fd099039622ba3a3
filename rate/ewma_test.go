package rate_test

import (
	"testing"
	"time"

	"github.com/teenjuna/pace/internal/testing/require"
	"github.com/teenjuna/pace/rate"
)

func TestNewEWMA(t *testing.T) {
	run(t, "Valid alpha", func(t *testing.T) {
		require.NotNil(t, rate.NewEWMA(0.001))
		require.NotNil(t, rate.NewEWMA(1))
	})

	run(t, "Invalid alpha", func(t *testing.T) {
		require.PanicWithError(t, "alpha can't be <= 0", func() {
			_ = rate.NewEWMA(0)
		})
		require.PanicWithError(t, "alpha can't be <= 0", func() {
			_ = rate.NewEWMA(-0.5)
		})
		require.PanicWithError(t, "alpha can't be > 1", func() {
			_ = rate.NewEWMA(1.5)
		})
	})
}

func TestEWMARate(t *testing.T) {
	base := time.Unix(0, 0)

	run(t, "Not enough samples", func(t *testing.T) {
		e := rate.NewEWMA(0.5)
		require.Equal(t, e.Rate(), float64(0))
		e.Observe(base, 1)
		require.Equal(t, e.Rate(), float64(0))
	})

	run(t, "Steady rate", func(t *testing.T) {
		e := rate.NewEWMA(0.5)
		for i := range 10 {
			e.Observe(base.Add(time.Duration(i)*time.Second), uint64(i+1))
		}
		require.InDelta(t, e.Rate(), 1, 1e-9)
	})

	run(t, "Favors recent throughput", func(t *testing.T) {
		e := rate.NewEWMA(0.5)

		tt := base
		done := uint64(0)
		for range 10 { // 1 item/sec
			tt = tt.Add(time.Second)
			done++
			e.Observe(tt, done)
		}
		for range 10 { // 100 items/sec
			tt = tt.Add(10 * time.Millisecond)
			done++
			e.Observe(tt, done)
		}

		// A lifetime average would sit near 2/sec here.
		require.Equal(t, e.Rate() > 90, true)
	})

	run(t, "Zero time delta folds into next sample", func(t *testing.T) {
		e := rate.NewEWMA(0.5)
		e.Observe(base, 1)
		e.Observe(base, 2)
		e.Observe(base.Add(time.Second), 3)
		require.InDelta(t, e.Rate(), 2, 1e-9)
	})
}
