package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

const subscriptionColumns = `id, user_id, plan, price, selected_channels, start_date, end_date, status, payment_reference`

// SubscriptionRepository stores channel subscriptions in PostgreSQL.
type SubscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create inserts a subscription. A reused payment reference is reported as models.ErrInvalidState.
func (r *SubscriptionRepository) Create(ctx context.Context, s *models.Subscription) error {
	query := `
		INSERT INTO subscriptions (` + subscriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (payment_reference) DO NOTHING
	`
	args := []any{s.ID, s.UserID, s.Plan, s.Price, s.SelectedChannels, s.StartDate, s.EndDate, s.Status, s.PaymentReference}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return errors.Wrap(err, "create subscription")
	}
	if rowsAffected == 0 {
		return models.ErrInvalidState
	}
	return nil
}

// ExpireActive marks every active subscription of the user as expired.
func (r *SubscriptionRepository) ExpireActive(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE subscriptions SET status = $3 WHERE user_id = $1 AND status = $2`
	args := []any{userID, models.SubscriptionActive, models.SubscriptionExpired}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return errors.Wrap(err, "expire subscriptions")
}

// GetActive returns the user's current subscription at now or models.ErrNotFound.
func (r *SubscriptionRepository) GetActive(ctx context.Context, userID uuid.UUID, now time.Time) (*models.Subscription, error) {
	query := `
		SELECT ` + subscriptionColumns + `
		FROM subscriptions
		WHERE user_id = $1 AND status = $2 AND end_date > $3
		ORDER BY end_date DESC
		LIMIT 1
	`

	var s models.Subscription
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &s, query, userID, models.SubscriptionActive, now)
	logQuery(query, []any{userID, now}, s.ID, err)

	if err != nil {
		return nil, wrapErr(err, "get active subscription")
	}
	return &s, nil
}

// Revenue returns the sum of prices of active subscriptions and the number of subscriptions ever sold.
func (r *SubscriptionRepository) Revenue(ctx context.Context) (float64, int, error) {
	const query = `
		SELECT COALESCE(SUM(price) FILTER (WHERE status = 'ACTIVE'), 0) AS total, COUNT(*) AS count
		FROM subscriptions
	`

	var row struct {
		Total float64 `db:"total"`
		Count int     `db:"count"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query)
	logQuery(query, nil, row, err)

	if err != nil {
		return 0, 0, errors.Wrap(err, "subscription revenue")
	}
	return row.Total, row.Count, nil
}
