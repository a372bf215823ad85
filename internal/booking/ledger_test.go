package booking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

func TestLedgerCheck(t *testing.T) {
	ledger := NewLedger(10)

	tests := []struct {
		name          string
		booked        int
		requested     int
		wantAvailable int
		wantErr       bool
	}{
		{name: "fits with room to spare", booked: 3, requested: 2},
		{name: "fills exactly to capacity", booked: 8, requested: 2},
		{name: "empty room takes full capacity", booked: 0, requested: 10},
		{name: "one over capacity", booked: 8, requested: 3, wantAvailable: 2, wantErr: true},
		{name: "fully booked rejects any request", booked: 10, requested: 1, wantAvailable: 0, wantErr: true},
		{name: "overbooked data never reports negative", booked: 12, requested: 1, wantAvailable: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ledger.Check(tt.booked, tt.requested)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)

			var capErr *CapacityError
			require.ErrorAs(t, err, &capErr)
			assert.Equal(t, tt.wantAvailable, capErr.Available)

			var appErr *apperror.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.Code)
		})
	}
}

func TestLedgerAvailable(t *testing.T) {
	ledger := NewLedger(10)
	assert.Equal(t, 10, ledger.Capacity())
	assert.Equal(t, 10, ledger.Available(0))
	assert.Equal(t, 2, ledger.Available(8))
	assert.Equal(t, 0, ledger.Available(10))
	assert.Equal(t, 0, ledger.Available(15))
}

func TestLedgerCapacityIsConfigurable(t *testing.T) {
	small := NewLedger(2)
	assert.NoError(t, small.Check(0, 2))
	assert.Error(t, small.Check(1, 2))

	large := NewLedger(50)
	assert.NoError(t, large.Check(40, 10))
}

func TestCapacityErrorDetails(t *testing.T) {
	capErr := &CapacityError{Available: 2}
	assert.Equal(t, "only 2 room(s) available for the selected dates", capErr.Error())
	assert.Equal(t, map[string]any{"available": 2}, capErr.ErrorDetails())
	assert.True(t, isCapacityErr(capErr))
	assert.False(t, isCapacityErr(errors.New("boom")))
}
