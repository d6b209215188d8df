package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/earnly/internal/models"
)

// WalletRepository stores segmented wallets in PostgreSQL.
type WalletRepository struct {
	db *sqlx.DB
}

func NewWalletRepository(db *sqlx.DB) *WalletRepository {
	return &WalletRepository{db: db}
}

// Get returns the wallet of the user or models.ErrNotFound.
func (r *WalletRepository) Get(ctx context.Context, userID uuid.UUID) (*models.Wallet, error) {
	const query = `
		SELECT user_id, task, daily_bonus, referral, today, lifetime, last_bonus_claim, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var w models.Wallet
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &w, query, userID)
	logQuery(query, []any{userID}, w.Balance(), err)

	if err != nil {
		return nil, wrapErr(err, "get wallet")
	}
	return &w, nil
}

// Save performs an UPSERT of the full wallet state.
func (r *WalletRepository) Save(ctx context.Context, w *models.Wallet) error {
	query := `
		INSERT INTO wallets (user_id, task, daily_bonus, referral, today, lifetime, last_bonus_claim, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id)
		DO UPDATE SET task = EXCLUDED.task,
		              daily_bonus = EXCLUDED.daily_bonus,
		              referral = EXCLUDED.referral,
		              today = EXCLUDED.today,
		              lifetime = EXCLUDED.lifetime,
		              last_bonus_claim = EXCLUDED.last_bonus_claim,
		              updated_at = EXCLUDED.updated_at
	`
	args := []any{w.UserID, w.Task, w.DailyBonus, w.Referral, w.Today, w.Lifetime, w.LastBonusClaim, w.UpdatedAt}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return wrapErr(err, "save wallet")
}
