package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// PlatformRewardRepository keeps the platform's accumulated task share in a single row.
type PlatformRewardRepository struct {
	db *sqlx.DB
}

func NewPlatformRewardRepository(db *sqlx.DB) *PlatformRewardRepository {
	return &PlatformRewardRepository{db: db}
}

// Add increments the aggregate atomically and returns the new total.
func (r *PlatformRewardRepository) Add(ctx context.Context, amount float64) (float64, error) {
	const query = `
		INSERT INTO platform_rewards (id, total, updated_at)
		VALUES (1, $1, NOW())
		ON CONFLICT (id)
		DO UPDATE SET total = platform_rewards.total + EXCLUDED.total, updated_at = NOW()
		RETURNING total
	`

	var total float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, query, amount)
	logQuery(query, []any{amount}, total, err)

	return total, errors.Wrap(err, "add platform reward")
}

// Total returns the aggregate, zero when nothing was recorded yet.
func (r *PlatformRewardRepository) Total(ctx context.Context) (float64, error) {
	const query = `SELECT COALESCE(SUM(total), 0) FROM platform_rewards`

	var total float64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &total, query)
	logQuery(query, nil, total, err)

	return total, errors.Wrap(err, "platform reward total")
}
