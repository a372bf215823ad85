package booking

// Status is the booking axis of the lifecycle. It is independent of the
// payment axis: a cancelled booking may still move to refunded.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Terminal reports whether the status forbids further modification.
func (s Status) Terminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// PaymentStatus is the payment axis, driven by the payment collaborator.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// CanModify guards date/room/guest/quantity changes.
func CanModify(s Status) error {
	if s.Terminal() {
		return ErrTerminal
	}
	return nil
}

// CanCancel guards the transition to cancelled.
func CanCancel(s Status) error {
	if s == StatusCancelled {
		return ErrAlreadyCancelled
	}
	if s == StatusCompleted {
		return ErrTerminal
	}
	return nil
}

// CanTransition guards an explicit administrative status update. Terminal
// states are never left; completed is reachable only from pending/confirmed.
func CanTransition(from, to Status) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if from == to {
		return nil
	}
	if to == StatusCancelled {
		return CanCancel(from)
	}
	if from.Terminal() {
		return ErrTerminal
	}
	return nil
}

// ApplyCapture applies a payment capture result reported by the payment
// collaborator. A successful capture confirms the booking.
func (b *Booking) ApplyCapture(succeeded bool) error {
	if b.PaymentStatus == PaymentPaid || b.PaymentStatus == PaymentRefunded {
		return ErrNotCapturable
	}
	if !succeeded {
		b.PaymentStatus = PaymentFailed
		return nil
	}
	if b.Status.Terminal() {
		return ErrTerminal
	}
	b.PaymentStatus = PaymentPaid
	b.Status = StatusConfirmed
	return nil
}

// ApplyRefund applies a refund result. A successful full refund forces the
// payment status to refunded regardless of booking status.
func (b *Booking) ApplyRefund(succeeded bool) error {
	if b.PaymentStatus != PaymentPaid {
		return ErrNotRefundable
	}
	if succeeded {
		b.PaymentStatus = PaymentRefunded
	}
	return nil
}
