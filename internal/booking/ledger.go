package booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nekogravitycat/hotel-booking-backend/internal/pkg/apperror"
)

// CapacityError reports a capacity-check failure together with how many units
// remain, so a client can retry with a smaller quantity.
type CapacityError struct {
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d room(s) available for the selected dates", e.Available)
}

// ErrorDetails surfaces the remaining count in the error response body.
func (e *CapacityError) ErrorDetails() map[string]any {
	return map[string]any{"available": e.Available}
}

// isCapacityErr reports whether err originated from a capacity check.
func isCapacityErr(err error) bool {
	var capErr *CapacityError
	return errors.As(err, &capErr)
}

// Ledger checks requested quantities against the fixed per-room unit
// capacity. The capacity is configuration, not a structural constant.
type Ledger struct {
	capacity int
}

func NewLedger(capacity int) Ledger {
	return Ledger{capacity: capacity}
}

func (l Ledger) Capacity() int { return l.capacity }

// Available returns how many units remain given the committed count.
func (l Ledger) Available(booked int) int {
	avail := l.capacity - booked
	if avail < 0 {
		avail = 0
	}
	return avail
}

// Check validates that requested units fit alongside the already committed
// ones. On violation it returns a client error carrying the remaining count.
func (l Ledger) Check(booked, requested int) error {
	if booked+requested > l.capacity {
		capErr := &CapacityError{Available: l.Available(booked)}
		return apperror.Wrap(capErr, http.StatusBadRequest, capErr.Error())
	}
	return nil
}
