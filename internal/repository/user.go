package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `id, name, email, password_hash, engagement_score, is_verified,
	longitude, latitude, telegram_chat_id, created_at, updated_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	lng, lat := pointArgs(u.Location)
	_, err := r.db.Master.ExecContext(
		ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.EngagementScore, u.IsVerified,
		lng, lat, u.TelegramChatID, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
}

func (r *UserRepository) UpsertStreamingAccount(ctx context.Context, userID string, acc domain.StreamingAccount) error {
	query := `INSERT INTO streaming_accounts
			  (user_id, provider, account_id, access_token, refresh_token, expires_at, scope, last_synced)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  ON CONFLICT (user_id, provider) DO UPDATE SET
			      account_id = EXCLUDED.account_id,
			      access_token = EXCLUDED.access_token,
			      refresh_token = COALESCE(NULLIF(EXCLUDED.refresh_token, ''), streaming_accounts.refresh_token),
			      expires_at = EXCLUDED.expires_at,
			      scope = EXCLUDED.scope,
			      last_synced = EXCLUDED.last_synced`

	var expiresAt sql.NullTime
	if !acc.ExpiresAt.IsZero() {
		expiresAt = sql.NullTime{Time: acc.ExpiresAt, Valid: true}
	}

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		userID, acc.Provider, acc.AccountID, acc.AccessToken, acc.RefreshToken,
		expiresAt, acc.Scope, acc.LastSynced,
	)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("upsert streaming account: %w", err)
	}

	return nil
}

// AddEngagement меняет очки вовлечённости на delta, не опускаясь ниже нуля.
func (r *UserRepository) AddEngagement(ctx context.Context, userID string, delta int) error {
	query := `UPDATE users
			  SET engagement_score = GREATEST(engagement_score + $2, 0), updated_at = NOW()
			  WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, delta)
	if err != nil {
		return fmt.Errorf("add engagement: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var (
		u        domain.User
		lng, lat sql.NullFloat64
	)
	if err = row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.EngagementScore, &u.IsVerified,
		&lng, &lat, &u.TelegramChatID, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	u.Location = scanPoint(lng, lat)

	if u.StreamingAccounts, err = r.streamingAccounts(ctx, u.ID); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *UserRepository) streamingAccounts(ctx context.Context, userID string) ([]domain.StreamingAccount, error) {
	query := `SELECT provider, account_id, access_token, refresh_token, expires_at, scope, last_synced
			  FROM streaming_accounts
			  WHERE user_id = $1
			  ORDER BY provider`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list streaming accounts: %w", err)
	}
	defer rows.Close()

	var res []domain.StreamingAccount
	for rows.Next() {
		var (
			acc       domain.StreamingAccount
			expiresAt sql.NullTime
		)
		if err = rows.Scan(
			&acc.Provider, &acc.AccountID, &acc.AccessToken, &acc.RefreshToken,
			&expiresAt, &acc.Scope, &acc.LastSynced,
		); err != nil {
			return nil, fmt.Errorf("scan streaming account: %w", err)
		}
		if expiresAt.Valid {
			acc.ExpiresAt = expiresAt.Time
		}
		res = append(res, acc)
	}

	return res, rows.Err()
}
