//go:build unit

package payment_test

import (
	"testing"
	"time"

	"payment-intention-service/internal/domain/payment"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateWindow(t *testing.T) {
	now := time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("rolling window ends now", func(t *testing.T) {
		w, err := payment.NewRateWindow(payment.WindowRolling, 24*time.Hour)
		require.NoError(t, err)

		start, end := w.Bounds(now)
		assert.Equal(t, time.Date(2025, 3, 9, 15, 30, 0, 0, time.UTC), start)
		assert.Equal(t, now, end)
	})

	t.Run("fixed window is aligned to the period", func(t *testing.T) {
		w, err := payment.NewRateWindow(payment.WindowFixed, 24*time.Hour)
		require.NoError(t, err)

		start, end := w.Bounds(now)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 3, 10, 23, 59, 59, 999999999, time.UTC), end)
	})

	t.Run("fixed hourly window", func(t *testing.T) {
		w, err := payment.NewRateWindow(payment.WindowFixed, time.Hour)
		require.NoError(t, err)

		start, _ := w.Bounds(now)
		assert.Equal(t, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC), start)
	})

	t.Run("invalid configuration", func(t *testing.T) {
		_, err := payment.NewRateWindow("calendar-month", time.Hour)
		assert.Error(t, err)

		_, err = payment.NewRateWindow(payment.WindowRolling, 0)
		assert.Error(t, err)
	})
}

func TestValueWindow(t *testing.T) {
	w, err := payment.NewValueWindow(decimal.NewFromInt(1), decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.True(t, w.Contains(payment.NewAmountFromFloat(1)))
	assert.True(t, w.Contains(payment.NewAmountFromFloat(10000)))
	assert.True(t, w.Contains(payment.NewAmountFromFloat(99.95)))
	assert.False(t, w.Contains(payment.NewAmountFromFloat(0.99)))
	assert.False(t, w.Contains(payment.NewAmountFromFloat(10000.01)))
	assert.False(t, w.Contains(payment.NewAmountFromFloat(-5)))

	_, err = payment.NewValueWindow(decimal.NewFromInt(10), decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestPolicy(t *testing.T) {
	values, _ := payment.NewValueWindow(decimal.NewFromInt(1), decimal.NewFromInt(10))
	rate, _ := payment.NewRateWindow(payment.WindowRolling, time.Hour)

	_, err := payment.NewPolicy(values, rate, 0)
	assert.Error(t, err)

	p, err := payment.NewPolicy(values, rate, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.MaxPerWindow)
}

func TestAmountScale(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "100.005", want: "100.01"},
		{in: "100.004", want: "100"},
		{in: "-2.345", want: "-2.35"},
		{in: "150.25", want: "150.25"},
		{in: "0.004", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := payment.NewAmount(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("rounding happens before the window check", func(t *testing.T) {
		w, err := payment.NewValueWindow(decimal.RequireFromString("0.001"), decimal.NewFromInt(10))
		require.NoError(t, err)

		assert.False(t, w.Contains(payment.NewAmount(decimal.RequireFromString("0.004"))))
		assert.True(t, w.Contains(payment.NewAmount(decimal.RequireFromString("0.005"))))
	})
}
