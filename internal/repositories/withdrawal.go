package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

const withdrawalColumns = `id, user_id, amount, bank_name, bank_code, account_number, account_name,
	status, deny_reason, reference, processed_date, created_at, updated_at`

// WithdrawalRepository stores withdrawal requests in PostgreSQL.
type WithdrawalRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRepository(db *sqlx.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create inserts a new request.
func (r *WithdrawalRepository) Create(ctx context.Context, req *models.WithdrawalRequest) error {
	query := `
		INSERT INTO withdrawal_requests (` + withdrawalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	args := []any{
		req.ID, req.UserID, req.Amount, req.BankName, req.BankCode, req.AccountNumber, req.AccountName,
		req.Status, req.DenyReason, req.Reference, req.ProcessedDate, req.CreatedAt, req.UpdatedAt,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, []any{req.ID, req.UserID, req.Amount}, nil, err)

	return wrapErr(err, "create withdrawal request")
}

// Get returns the request or models.ErrNotFound.
func (r *WithdrawalRepository) Get(ctx context.Context, id uuid.UUID) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawal_requests WHERE id = $1`

	var req models.WithdrawalRequest
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &req, query, id)
	logQuery(query, []any{id}, req.Status, err)

	if err != nil {
		return nil, wrapErr(err, "get withdrawal request")
	}
	return &req, nil
}

// Save updates the mutable fields of a request.
func (r *WithdrawalRepository) Save(ctx context.Context, req *models.WithdrawalRequest) error {
	const query = `
		UPDATE withdrawal_requests
		SET status = $2, deny_reason = $3, reference = $4, processed_date = $5, updated_at = $6
		WHERE id = $1
	`
	args := []any{req.ID, req.Status, req.DenyReason, req.Reference, req.ProcessedDate, req.UpdatedAt}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return errors.Wrap(err, "save withdrawal request")
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// List returns requests newest first, optionally filtered by status and user.
func (r *WithdrawalRepository) List(ctx context.Context, filter models.WithdrawalFilter) ([]models.WithdrawalRequest, error) {
	b := psql.Select(withdrawalColumns).From("withdrawal_requests").OrderBy("created_at DESC")
	if filter.Status != "" {
		b = b.Where("status = ?", filter.Status)
	}
	if filter.UserID != uuid.Nil {
		b = b.Where("user_id = ?", filter.UserID)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build withdrawal list query")
	}

	out := []models.WithdrawalRequest{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db), &out, query, args...)
	logQuery(query, args, len(out), err)

	if err != nil {
		return nil, errors.Wrap(err, "list withdrawal requests")
	}
	return out, nil
}

// CountPending returns the number of requests awaiting a decision.
func (r *WithdrawalRepository) CountPending(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM withdrawal_requests WHERE status = $1`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &n, query, models.WithdrawalPending)
	logQuery(query, []any{models.WithdrawalPending}, n, err)

	return n, errors.Wrap(err, "count pending withdrawals")
}
