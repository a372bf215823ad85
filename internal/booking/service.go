package booking

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nekogravitycat/hotel-booking-backend/internal/access"
	"github.com/nekogravitycat/hotel-booking-backend/internal/notification"
	"github.com/nekogravitycat/hotel-booking-backend/internal/observability"
	"github.com/nekogravitycat/hotel-booking-backend/internal/room"
)

type CreateRequest struct {
	HotelID  string
	RoomID   string
	CheckIn  string
	CheckOut string
	Guests   int
	Rooms    int
}

type ModifyRequest struct {
	CheckIn  *string
	CheckOut *string
	Guests   *int
	Rooms    *int
	RoomID   *string
}

type StatusUpdateRequest struct {
	Status        *string
	PaymentStatus *string
}

type ListRequest struct {
	UserID        string
	HotelID       string
	Status        string
	PaymentStatus string
	Limit         int
	Offset        int
}

// Availability is the public capacity report for a room and date range.
type Availability struct {
	RoomID    string
	CheckIn   string
	CheckOut  string
	Capacity  int
	Booked    int
	Available int
}

type Service interface {
	Create(ctx context.Context, p access.Principal, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, p access.Principal, id string) (*Booking, error)
	List(ctx context.Context, p access.Principal, req ListRequest) ([]*Booking, int, error)
	ListMine(ctx context.Context, p access.Principal, status string, limit, offset int) ([]*Booking, int, error)
	Modify(ctx context.Context, p access.Principal, id string, req ModifyRequest) (*Booking, error)
	Cancel(ctx context.Context, p access.Principal, id string) (*Booking, error)
	UpdateStatus(ctx context.Context, p access.Principal, id string, req StatusUpdateRequest) (*Booking, error)
	ApplyCapture(ctx context.Context, p access.Principal, id string, succeeded bool) (*Booking, error)
	ApplyRefund(ctx context.Context, p access.Principal, id string, succeeded bool) (*Booking, error)
	CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (*Availability, error)
}

type service struct {
	repo        Repository
	roomService room.Service
	ledger      Ledger
	notifier    notification.Notifier
	horizonDays int
}

func NewService(repo Repository, roomService room.Service, ledger Ledger, notifier notification.Notifier, horizonDays int) Service {
	return &service{
		repo:        repo,
		roomService: roomService,
		ledger:      ledger,
		notifier:    notifier,
		horizonDays: horizonDays,
	}
}

// emit hands an event to the notification sink. Sink failures are logged and
// swallowed; they never fail or roll back the booking operation.
func (s *service) emit(ctx context.Context, b *Booking, kind string) {
	evt := notification.Event{
		UserID:    b.UserID,
		BookingID: b.ID,
		HotelName: b.HotelName,
		Kind:      kind,
		Status:    string(b.Status),
	}
	if err := s.notifier.Notify(ctx, evt); err != nil {
		observability.NotificationFailures.Inc()
		log.Warn().Err(err).
			Str("booking_id", b.ID).
			Str("kind", kind).
			Msg("notification sink failed")
	}
}

func validateQuantities(guests, rooms int) error {
	if guests < MinGuests || guests > MaxGuests {
		return ErrInvalidGuests
	}
	if rooms < MinRooms || rooms > MaxRooms {
		return ErrInvalidRoomCount
	}
	return nil
}

// bookableRoom loads a room and checks it belongs to the expected hotel and
// is operationally open for booking.
func (s *service) bookableRoom(ctx context.Context, roomID, hotelID string) (*room.Room, error) {
	rm, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if hotelID != "" && rm.HotelID != hotelID {
		return nil, ErrRoomHotelMismatch
	}
	if rm.AvailabilityStatus != room.StatusAvailable {
		return nil, ErrRoomUnavailable
	}
	return rm, nil
}

func (s *service) Create(ctx context.Context, p access.Principal, req CreateRequest) (*Booking, error) {
	if req.Guests == 0 {
		req.Guests = 1
	}
	if req.Rooms == 0 {
		req.Rooms = 1
	}
	if err := validateQuantities(req.Guests, req.Rooms); err != nil {
		return nil, err
	}

	rng, err := ParseDateRange(req.CheckIn, req.CheckOut, s.horizonDays, false)
	if err != nil {
		return nil, err
	}

	rm, err := s.bookableRoom(ctx, req.RoomID, req.HotelID)
	if err != nil {
		return nil, err
	}

	b := &Booking{
		UserID:        p.UserID,
		HotelID:       rm.HotelID,
		HotelName:     rm.HotelName,
		RoomID:        rm.ID,
		RoomType:      rm.RoomType,
		CheckIn:       rng.Start(),
		CheckOut:      rng.End(),
		Guests:        req.Guests,
		Rooms:         req.Rooms,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		TotalPrice:    Quote(rng, rm.PricePerNight, req.Rooms),
	}

	// Capacity read and insert share one transaction under the room lock, so
	// concurrent requests cannot jointly exceed the capacity invariant.
	err = s.repo.WithRoomLock(ctx, rm.ID, func(tx Tx) error {
		booked, err := tx.BookedUnits(ctx, rm.ID, rng, "")
		if err != nil {
			return err
		}
		if err := s.ledger.Check(booked, req.Rooms); err != nil {
			return err
		}
		return tx.Insert(ctx, b)
	})
	if err != nil {
		observability.ObserveBookingWrite("create", writeOutcome(err))
		return nil, err
	}

	observability.ObserveBookingWrite("create", "ok")
	s.emit(ctx, b, notification.KindBookingCreated)
	return b, nil
}

func (s *service) GetByID(ctx context.Context, p access.Principal, id string) (*Booking, error) {
	// Booking-scoped: lookup first, so a missing booking is 404 and an
	// out-of-scope one is 403.
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireBookingAccess(b.UserID, b.HotelID); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) List(ctx context.Context, p access.Principal, req ListRequest) ([]*Booking, int, error) {
	if req.HotelID != "" {
		if err := p.RequireHotelAccess(req.HotelID); err != nil {
			return nil, 0, err
		}
	}
	if p.EmptyScope() {
		return []*Booking{}, 0, nil
	}

	scope, _ := p.HotelPredicate("b.hotel_id")
	filter := Filter{
		UserID:        req.UserID,
		HotelID:       req.HotelID,
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		Scope:         scope,
		Limit:         req.Limit,
		Offset:        req.Offset,
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListMine(ctx context.Context, p access.Principal, status string, limit, offset int) ([]*Booking, int, error) {
	filter := Filter{
		UserID: p.UserID,
		Status: status,
		Limit:  limit,
		Offset: offset,
	}
	return s.repo.List(ctx, filter)
}

func (s *service) Modify(ctx context.Context, p access.Principal, id string, req ModifyRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireBookingAccess(b.UserID, b.HotelID); err != nil {
		return nil, err
	}
	if err := CanModify(b.Status); err != nil {
		return nil, err
	}

	checkIn := b.CheckIn.Format(DateLayout)
	checkOut := b.CheckOut.Format(DateLayout)
	datesChanged := req.CheckIn != nil || req.CheckOut != nil
	if req.CheckIn != nil {
		checkIn = *req.CheckIn
	}
	if req.CheckOut != nil {
		checkOut = *req.CheckOut
	}

	// An unchanged range may legitimately start in the past for an ongoing
	// stay; only newly supplied dates are held to the forward-looking rules.
	rng, err := ParseDateRange(checkIn, checkOut, s.horizonDays, !datesChanged)
	if err != nil {
		return nil, err
	}

	guests := b.Guests
	rooms := b.Rooms
	if req.Guests != nil {
		guests = *req.Guests
	}
	if req.Rooms != nil {
		rooms = *req.Rooms
	}
	if err := validateQuantities(guests, rooms); err != nil {
		return nil, err
	}

	roomID := b.RoomID
	if req.RoomID != nil {
		roomID = *req.RoomID
	}
	rm, err := s.bookableRoom(ctx, roomID, b.HotelID)
	if err != nil {
		return nil, err
	}

	b.RoomID = rm.ID
	b.RoomType = rm.RoomType
	b.CheckIn = rng.Start()
	b.CheckOut = rng.End()
	b.Guests = guests
	b.Rooms = rooms
	// Price is always recomputed from the authoritative rate.
	b.TotalPrice = Quote(rng, rm.PricePerNight, rooms)

	err = s.repo.WithRoomLock(ctx, rm.ID, func(tx Tx) error {
		// The booking's own prior allocation is excluded so it cannot
		// conflict with itself.
		booked, err := tx.BookedUnits(ctx, rm.ID, rng, b.ID)
		if err != nil {
			return err
		}
		if err := s.ledger.Check(booked, rooms); err != nil {
			return err
		}
		return tx.Update(ctx, b)
	})
	if err != nil {
		observability.ObserveBookingWrite("modify", writeOutcome(err))
		return nil, err
	}

	observability.ObserveBookingWrite("modify", "ok")
	s.emit(ctx, b, notification.KindBookingModified)
	return b, nil
}

func (s *service) Cancel(ctx context.Context, p access.Principal, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireBookingAccess(b.UserID, b.HotelID); err != nil {
		return nil, err
	}
	if err := CanCancel(b.Status); err != nil {
		return nil, err
	}

	b.Status = StatusCancelled
	if err := s.repo.Update(ctx, b); err != nil {
		observability.ObserveBookingWrite("cancel", "error")
		return nil, err
	}

	observability.ObserveBookingWrite("cancel", "ok")
	s.emit(ctx, b, notification.KindBookingCancelled)
	return b, nil
}

func (s *service) UpdateStatus(ctx context.Context, p access.Principal, id string, req StatusUpdateRequest) (*Booking, error) {
	if !p.Role.IsAdmin() {
		return nil, access.ErrAccessDenied
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireBookingAccess(b.UserID, b.HotelID); err != nil {
		return nil, err
	}

	if req.Status != nil {
		to := Status(*req.Status)
		if err := CanTransition(b.Status, to); err != nil {
			return nil, err
		}
		b.Status = to
	}
	if req.PaymentStatus != nil {
		ps := PaymentStatus(*req.PaymentStatus)
		if !ps.Valid() {
			return nil, ErrInvalidPayStatus
		}
		b.PaymentStatus = ps
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.emit(ctx, b, notification.KindStatusUpdated)
	return b, nil
}

func (s *service) ApplyCapture(ctx context.Context, p access.Principal, id string, succeeded bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireBookingAccess(b.UserID, b.HotelID); err != nil {
		return nil, err
	}

	if err := b.ApplyCapture(succeeded); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.emit(ctx, b, notification.KindPaymentCaptured)
	return b, nil
}

func (s *service) ApplyRefund(ctx context.Context, p access.Principal, id string, succeeded bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := p.RequireBookingAccess(b.UserID, b.HotelID); err != nil {
		return nil, err
	}

	if err := b.ApplyRefund(succeeded); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.emit(ctx, b, notification.KindPaymentRefunded)
	return b, nil
}

func (s *service) CheckAvailability(ctx context.Context, roomID, checkIn, checkOut string) (*Availability, error) {
	rm, err := s.roomService.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}

	rng, err := ParseDateRange(checkIn, checkOut, s.horizonDays, false)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.BookedUnits(ctx, rm.ID, rng, "")
	if err != nil {
		return nil, err
	}

	return &Availability{
		RoomID:    rm.ID,
		CheckIn:   rng.Start().Format(DateLayout),
		CheckOut:  rng.End().Format(DateLayout),
		Capacity:  s.ledger.Capacity(),
		Booked:    booked,
		Available: s.ledger.Available(booked),
	}, nil
}

// writeOutcome maps a booking write error onto a metrics label.
func writeOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case isCapacityErr(err):
		return "conflict"
	default:
		return "error"
	}
}
