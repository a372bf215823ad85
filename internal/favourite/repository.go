package favourite

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Add(ctx context.Context, userID, hotelID string) error
	Remove(ctx context.Context, userID, hotelID string) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Favourite, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Add(ctx context.Context, userID, hotelID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.favourites").
		Columns("user_id", "hotel_id").
		Values(userID, hotelID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add favourite query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrAlreadyFavourite
		}
		return fmt.Errorf("add favourite failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) Remove(ctx context.Context, userID, hotelID string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.favourites").
		Where(squirrel.Eq{"user_id": userID, "hotel_id": hotelID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build remove favourite query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("remove favourite failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*Favourite, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"f.user_id", "f.hotel_id", "h.name", "h.city", "h.country", "f.created_at",
		"count(*) OVER() as total_count",
	).
		From("public.favourites f").
		Join("public.hotels h ON f.hotel_id = h.id").
		Where(squirrel.Eq{"f.user_id": userID}).
		OrderBy("f.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list favourites query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list favourites failed: %w", err)
	}
	defer rows.Close()

	var favs []*Favourite
	var total int

	for rows.Next() {
		var f Favourite
		if err := rows.Scan(
			&f.UserID, &f.HotelID, &f.HotelName, &f.City, &f.Country, &f.CreatedAt,
			&total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan favourite failed: %w", err)
		}
		favs = append(favs, &f)
	}

	return favs, total, nil
}
