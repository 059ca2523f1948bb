package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lib/pq"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const purchaseColumns = `id, user_id, event_id, ticket_count, total_amount, currency,
	status, transaction_date, payment_reference, created_at, updated_at`

type PurchaseRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPurchaseRepo(db *dbpg.DB) *PurchaseRepository {
	return &PurchaseRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PurchaseRepository) Create(ctx context.Context, p *domain.Purchase) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Блокируем строку события до конца транзакции
	var general int
	lockQuery := `SELECT general_tickets FROM events WHERE id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, p.EventID).Scan(&general); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event: %w", err)
	}

	if general < p.TicketCount {
		return domain.ErrInsufficientInventory
	}

	decQuery := `UPDATE events
				 SET general_tickets = general_tickets - $2,
				     sold_tickets = sold_tickets + $2,
				     updated_at = NOW()
				 WHERE id = $1 AND general_tickets >= $2`
	res, err := tx.ExecContext(ctx, decQuery, p.EventID, p.TicketCount)
	if err != nil {
		if pgCode(err) == pgCheckViolation {
			return domain.ErrInsufficientInventory
		}
		return fmt.Errorf("decrement tickets: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrInsufficientInventory
	}

	// Места списаны, теперь можно выпускать билеты
	p.IssueTickets()

	purchaseQuery := `INSERT INTO purchases (` + purchaseColumns + `)
					  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = tx.ExecContext(
		ctx, purchaseQuery,
		p.ID, p.UserID, p.EventID, p.TicketCount, p.TotalAmount, p.Currency,
		p.Status, p.TransactionDate, p.PaymentReference, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert purchase: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tickets
		(id, user_id, event_id, purchase_id, type, price, is_redeemed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("prepare ticket insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range p.Tickets {
		if _, err = stmt.ExecContext(
			ctx, t.ID, t.UserID, t.EventID, t.PurchaseID,
			t.Type, t.Price, t.IsRedeemed, t.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit purchase: %w", err)
	}

	return nil
}

func (r *PurchaseRepository) GetByID(ctx context.Context, id string) (*domain.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}

	p, err := scanPurchase(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("scan purchase: %w", err)
	}

	if p.Tickets, err = r.tickets(ctx, p.ID); err != nil {
		return nil, err
	}

	return p, nil
}

func (r *PurchaseRepository) Complete(ctx context.Context, id, userID, paymentReference string) (*domain.Purchase, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE purchases
			  SET status = $4,
			      payment_reference = COALESCE(NULLIF($5, ''), payment_reference),
			      updated_at = NOW()
			  WHERE id = $1 AND user_id = $2 AND status = $3
			  RETURNING ` + purchaseColumns
	p, err := scanPurchase(tx.QueryRowContext(
		ctx, query, id, userID,
		domain.PurchaseStatusPending, domain.PurchaseStatusCompleted, paymentReference,
	))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("complete purchase: %w", err)
		}

		// Определяем причину: покупки нет или она уже не pending
		var status string
		checkQuery := `SELECT status FROM purchases WHERE id = $1 AND user_id = $2`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id, userID).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, domain.ErrPurchaseNotFound
			}
			return nil, fmt.Errorf("check purchase: %w", scanErr)
		}
		return nil, domain.ErrPurchaseNotPending
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit complete: %w", err)
	}

	if p.Tickets, err = r.tickets(ctx, p.ID); err != nil {
		return nil, err
	}

	return p, nil
}

// FailExpired помечает зависшие pending покупки как failed, удаляет их билеты
// и возвращает места событиям. Всё в одной транзакции.
func (r *PurchaseRepository) FailExpired(ctx context.Context, olderThan time.Time) ([]*domain.Purchase, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE purchases
			  SET status = $2, updated_at = NOW()
			  WHERE id IN (
			      SELECT id FROM purchases
			      WHERE status = $1 AND created_at < $3
			      FOR UPDATE SKIP LOCKED
			  )
			  RETURNING ` + purchaseColumns
	rows, err := tx.QueryContext(
		ctx, query,
		domain.PurchaseStatusPending, domain.PurchaseStatusFailed, olderThan,
	)
	if err != nil {
		return nil, fmt.Errorf("fail expired: %w", err)
	}

	var failed []*domain.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		failed = append(failed, p)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate expired: %w", err)
	}
	rows.Close()

	if len(failed) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(failed))
	restore := make(map[string]int)
	for _, p := range failed {
		ids = append(ids, p.ID)
		// места удалённого события возвращать некуда
		if p.EventID != "" {
			restore[p.EventID] += p.TicketCount
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM tickets WHERE purchase_id = ANY($1::uuid[])`, pq.Array(ids)); err != nil {
		return nil, fmt.Errorf("delete tickets: %w", err)
	}

	// Стабильный порядок блокировок событий
	eventIDs := make([]string, 0, len(restore))
	for id := range restore {
		eventIDs = append(eventIDs, id)
	}
	sort.Strings(eventIDs)

	restoreQuery := `UPDATE events
					 SET general_tickets = general_tickets + $2,
					     sold_tickets = GREATEST(sold_tickets - $2, 0),
					     updated_at = NOW()
					 WHERE id = $1`
	for _, eventID := range eventIDs {
		if _, err = tx.ExecContext(ctx, restoreQuery, eventID, restore[eventID]); err != nil {
			return nil, fmt.Errorf("restore tickets for event %s: %w", eventID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit expiry: %w", err)
	}

	return failed, nil
}

func (r *PurchaseRepository) tickets(ctx context.Context, purchaseID string) ([]domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE purchase_id = $1 ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, purchaseID)
	if err != nil {
		return nil, fmt.Errorf("list purchase tickets: %w", err)
	}
	defer rows.Close()

	return scanTickets(rows)
}

func scanPurchase(s rowScanner) (*domain.Purchase, error) {
	var (
		p       domain.Purchase
		eventID sql.NullString
	)
	if err := s.Scan(
		&p.ID, &p.UserID, &eventID, &p.TicketCount, &p.TotalAmount, &p.Currency,
		&p.Status, &p.TransactionDate, &p.PaymentReference, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	// пусто, если событие удалено
	p.EventID = eventID.String
	return &p, nil
}
