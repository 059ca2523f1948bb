package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

func pgCode(err error) string {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return string(pgErr.Code)
	}
	return ""
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoint(lng, lat sql.NullFloat64) *domain.GeoPoint {
	if !lng.Valid || !lat.Valid {
		return nil
	}
	return &domain.GeoPoint{Longitude: lng.Float64, Latitude: lat.Float64}
}

func pointArgs(p *domain.GeoPoint) (any, any) {
	if p == nil {
		return nil, nil
	}
	return p.Longitude, p.Latitude
}
