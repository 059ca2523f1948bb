package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const ticketColumns = `id, user_id, event_id, purchase_id, type, price, is_redeemed, created_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *TicketRepository) ListByUser(ctx context.Context, userID string) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tickets by user: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

func scanTickets(rows *sql.Rows) ([]domain.Ticket, error) {
	var res []domain.Ticket
	for rows.Next() {
		var (
			t       domain.Ticket
			eventID sql.NullString
		)
		if err := rows.Scan(
			&t.ID, &t.UserID, &eventID, &t.PurchaseID,
			&t.Type, &t.Price, &t.IsRedeemed, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		t.EventID = eventID.String
		res = append(res, t)
	}

	return res, rows.Err()
}
