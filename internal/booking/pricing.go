package booking

import "github.com/shopspring/decimal"

// Quote computes the total price for a stay: nights x per-night rate x number
// of rooms, in exact decimal arithmetic. The rate always comes from the
// authoritative room record; client-supplied prices are never trusted.
func Quote(r DateRange, pricePerNight decimal.Decimal, rooms int) decimal.Decimal {
	return pricePerNight.
		Mul(decimal.NewFromInt(int64(r.Nights()))).
		Mul(decimal.NewFromInt(int64(rooms)))
}
