package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Tx is the transaction-scoped store surface available under a room lock.
// The capacity read and the booking write must both go through the same Tx.
type Tx interface {
	BookedUnits(ctx context.Context, roomID string, rng DateRange, excludeBookingID string) (int, error)
	Insert(ctx context.Context, b *Booking) error
	Update(ctx context.Context, b *Booking) error
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	BookedUnits(ctx context.Context, roomID string, rng DateRange, excludeBookingID string) (int, error)

	// WithRoomLock runs fn inside a transaction holding a per-room advisory
	// lock, serialising the capacity read against the booking write so two
	// concurrent requests cannot both observe free capacity and both commit.
	WithRoomLock(ctx context.Context, roomID string, fn func(tx Tx) error) error
}

// dbtx is satisfied by both *pgxpool.Pool and pgx.Tx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// pgxTx adapts a pgx.Tx to the Tx interface.
type pgxTx struct {
	tx pgx.Tx
}

func (r *pgxRepository) WithRoomLock(ctx context.Context, roomID string, fn func(tx Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	// Advisory lock keyed by room id, released automatically on commit or
	// rollback. hashtext keeps the uuid within the bigint lock keyspace.
	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", roomID); err != nil {
		return fmt.Errorf("acquire room lock failed: %w", err)
	}

	if err := fn(&pgxTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx failed: %w", err)
	}
	return nil
}

func (t *pgxTx) BookedUnits(ctx context.Context, roomID string, rng DateRange, excludeBookingID string) (int, error) {
	return bookedUnits(ctx, t.tx, roomID, rng, excludeBookingID)
}

func (t *pgxTx) Insert(ctx context.Context, b *Booking) error {
	return insertBooking(ctx, t.tx, b)
}

func (t *pgxTx) Update(ctx context.Context, b *Booking) error {
	return updateBooking(ctx, t.tx, b)
}

func (r *pgxRepository) BookedUnits(ctx context.Context, roomID string, rng DateRange, excludeBookingID string) (int, error) {
	return bookedUnits(ctx, r.pool, roomID, rng, excludeBookingID)
}

func (r *pgxRepository) Update(ctx context.Context, b *Booking) error {
	return updateBooking(ctx, r.pool, b)
}

// bookedUnits sums the committed units over all pending/confirmed bookings of
// the room whose range overlaps rng. The predicate is the SQL mirror of
// DateRange.Overlaps: check_in < rng.end AND check_out > rng.start.
func bookedUnits(ctx context.Context, q dbtx, roomID string, rng DateRange, excludeBookingID string) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select("COALESCE(SUM(number_of_rooms), 0)").
		From("public.bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": []string{string(StatusPending), string(StatusConfirmed)}}).
		Where(squirrel.Lt{"check_in_date": rng.End()}).
		Where(squirrel.Gt{"check_out_date": rng.Start()})

	if excludeBookingID != "" {
		query = query.Where(squirrel.NotEq{"id": excludeBookingID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build booked units query failed: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("booked units failed: %w", err)
	}
	return total, nil
}

func insertBooking(ctx context.Context, q dbtx, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"user_id", "hotel_id", "room_id",
			"check_in_date", "check_out_date",
			"number_of_guests", "number_of_rooms",
			"status", "payment_status", "total_price",
		).
		Values(
			b.UserID, b.HotelID, b.RoomID,
			b.CheckIn, b.CheckOut,
			b.Guests, b.Rooms,
			b.Status, b.PaymentStatus, b.TotalPrice.StringFixed(2),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return q.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func updateBooking(ctx context.Context, q dbtx, b *Booking) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("room_id", b.RoomID).
		Set("check_in_date", b.CheckIn).
		Set("check_out_date", b.CheckOut).
		Set("number_of_guests", b.Guests).
		Set("number_of_rooms", b.Rooms).
		Set("status", b.Status).
		Set("payment_status", b.PaymentStatus).
		Set("total_price", b.TotalPrice.StringFixed(2)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"b.id", "b.user_id", "u.name", "b.hotel_id", "h.name", "b.room_id", "r.room_type",
		"b.check_in_date", "b.check_out_date", "b.number_of_guests", "b.number_of_rooms",
		"b.status", "b.payment_status", "b.total_price::text", "b.created_at", "b.updated_at",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.hotels h ON b.hotel_id = h.id").
		Join("public.rooms r ON b.room_id = r.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.user_id", "u.name", "b.hotel_id", "h.name", "b.room_id", "r.room_type",
		"b.check_in_date", "b.check_out_date", "b.number_of_guests", "b.number_of_rooms",
		"b.status", "b.payment_status", "b.total_price::text", "b.created_at", "b.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.bookings b").
		Join("public.users u ON b.user_id = u.id").
		Join("public.hotels h ON b.hotel_id = h.id").
		Join("public.rooms r ON b.room_id = r.id")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}
	if filter.HotelID != "" {
		query = query.Where(squirrel.Eq{"b.hotel_id": filter.HotelID})
	}
	if filter.RoomID != "" {
		query = query.Where(squirrel.Eq{"b.room_id": filter.RoomID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"b.status": filter.Status})
	}
	if filter.PaymentStatus != "" {
		query = query.Where(squirrel.Eq{"b.payment_status": filter.PaymentStatus})
	}
	if filter.Scope != nil {
		query = query.Where(filter.Scope)
	}

	query = query.OrderBy("b.created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		var b Booking
		var price string
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.UserName, &b.HotelID, &b.HotelName, &b.RoomID, &b.RoomType,
			&b.CheckIn, &b.CheckOut, &b.Guests, &b.Rooms,
			&b.Status, &b.PaymentStatus, &price, &b.CreatedAt, &b.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		if b.TotalPrice, err = decimal.NewFromString(price); err != nil {
			return nil, 0, fmt.Errorf("parse booking price failed: %w", err)
		}
		bookings = append(bookings, &b)
	}

	return bookings, total, nil
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	var price string
	if err := row.Scan(
		&b.ID, &b.UserID, &b.UserName, &b.HotelID, &b.HotelName, &b.RoomID, &b.RoomType,
		&b.CheckIn, &b.CheckOut, &b.Guests, &b.Rooms,
		&b.Status, &b.PaymentStatus, &price, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	var err error
	if b.TotalPrice, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse booking price failed: %w", err)
	}
	return &b, nil
}
