package booking

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name          string
		checkIn       string
		checkOut      string
		pricePerNight string
		rooms         int
		want          string
	}{
		{name: "two nights two rooms", checkIn: "2026-09-01", checkOut: "2026-09-03", pricePerNight: "100.00", rooms: 2, want: "400.00"},
		{name: "single night single room", checkIn: "2026-09-01", checkOut: "2026-09-02", pricePerNight: "89.99", rooms: 1, want: "89.99"},
		{name: "rate with cents never drifts", checkIn: "2026-09-01", checkOut: "2026-09-04", pricePerNight: "33.33", rooms: 3, want: "299.97"},
		{name: "week long stay", checkIn: "2026-09-01", checkOut: "2026-09-08", pricePerNight: "120.50", rooms: 1, want: "843.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := decimal.NewFromString(tt.pricePerNight)
			require.NoError(t, err)

			got := Quote(mustRange(t, tt.checkIn, tt.checkOut), rate, tt.rooms)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}

func TestQuoteIsDeterministic(t *testing.T) {
	r := mustRange(t, "2026-09-01", "2026-09-03")
	rate := decimal.RequireFromString("75.25")

	first := Quote(r, rate, 2)
	second := Quote(r, rate, 2)
	assert.True(t, first.Equal(second))
	assert.Equal(t, "301.00", first.StringFixed(2))
}
