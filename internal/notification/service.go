package notification

import "context"

// Notifier is the sink contract the booking core emits to.
type Notifier interface {
	Notify(ctx context.Context, evt Event) error
}

type Service interface {
	Notifier
	ListMine(ctx context.Context, userID string, limit, offset int) ([]*Notification, int, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, evt Event) error {
	n := &Notification{
		UserID:    evt.UserID,
		BookingID: evt.BookingID,
		HotelName: evt.HotelName,
		Kind:      evt.Kind,
		Status:    evt.Status,
	}
	return s.repo.Insert(ctx, n)
}

func (s *service) ListMine(ctx context.Context, userID string, limit, offset int) ([]*Notification, int, error) {
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

func (s *service) MarkRead(ctx context.Context, id, userID string) error {
	return s.repo.MarkRead(ctx, id, userID)
}
