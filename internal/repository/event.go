package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, title, date, venue, artist, description,
	total_tickets, general_tickets, sold_tickets, priority_price, general_price,
	sales_open, longitude, latitude, created_at, updated_at`

// Средний радиус Земли в км.
const earthRadiusKm = 6371.0

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (` + eventColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	lng, lat := pointArgs(e.Location)
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Date, e.Venue, e.Artist, e.Description,
		e.TotalTickets, e.GeneralTickets, e.SoldTickets,
		e.Pricing.PriorityPrice, e.Pricing.GeneralPrice,
		e.SalesOpen, lng, lat, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgCheckViolation {
			return fmt.Errorf("%w: ticket counts are out of range", domain.ErrValidation)
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY date`
	return r.list(ctx, query)
}

// ListNearby отбирает события по ограничивающему прямоугольнику по широте (индекс),
// затем точно по формуле гаверсинуса.
func (r *EventRepository) ListNearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM (
			SELECT *, %f * 2 * ASIN(LEAST(1, SQRT(
				POWER(SIN(RADIANS(latitude - $2::float8) / 2), 2) +
				COS(RADIANS($2::float8)) * COS(RADIANS(latitude)) *
				POWER(SIN(RADIANS(longitude - $1::float8) / 2), 2)
			))) AS distance_km
			FROM events
			WHERE latitude IS NOT NULL AND longitude IS NOT NULL
			  AND latitude BETWEEN $2::float8 - $4::float8 AND $2::float8 + $4::float8
		) e
		WHERE distance_km <= $3::float8
		ORDER BY distance_km`, eventColumns, earthRadiusKm)

	latDelta := q.RadiusKm / 111.2
	return r.list(ctx, query, q.Center.Longitude, q.Center.Latitude, q.RadiusKm, latDelta)
}

func (r *EventRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = ANY($1::uuid[]) ORDER BY date`
	return r.list(ctx, query, pq.Array(ids))
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	// билеты и покупки остаются, их event_id обнуляет ON DELETE SET NULL
	res, err := r.db.Master.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func scanEvent(s rowScanner) (*domain.Event, error) {
	var (
		e        domain.Event
		lng, lat sql.NullFloat64
	)
	if err := s.Scan(
		&e.ID, &e.Title, &e.Date, &e.Venue, &e.Artist, &e.Description,
		&e.TotalTickets, &e.GeneralTickets, &e.SoldTickets,
		&e.Pricing.PriorityPrice, &e.Pricing.GeneralPrice,
		&e.SalesOpen, &lng, &lat, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Location = scanPoint(lng, lat)
	return &e, nil
}
