package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

// ActivityRepository stores the append-only activity log in PostgreSQL.
type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append inserts a log entry.
func (r *ActivityRepository) Append(ctx context.Context, entry *models.ActivityLog) error {
	const query = `
		INSERT INTO activity_logs (id, action, user_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{entry.ID, entry.Action, entry.UserID, entry.Details, entry.CreatedAt}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, []any{entry.Action, entry.UserID}, nil, err)

	return errors.Wrap(err, "append activity")
}

// List returns one page of entries, newest first, and the number of matching entries.
func (r *ActivityRepository) List(ctx context.Context, filter models.ActivityFilter) ([]models.ActivityLog, int, error) {
	count := psql.Select("COUNT(*)").From("activity_logs")
	list := psql.Select("id, action, user_id, details, created_at").From("activity_logs")
	if filter.Action != "" {
		count = count.Where("action = ?", filter.Action)
		list = list.Where("action = ?", filter.Action)
	}
	if filter.UserID != "" {
		count = count.Where("user_id = ?", filter.UserID)
		list = list.Where("user_id = ?", filter.UserID)
	}

	countQuery, countArgs, err := count.ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build activity count query")
	}
	var total int
	err = sqlx.GetContext(ctx, executor(ctx, r.db), &total, countQuery, countArgs...)
	logQuery(countQuery, countArgs, total, err)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count activity")
	}

	query, args, err := list.
		OrderBy("created_at DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64((filter.Page - 1) * filter.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build activity list query")
	}

	logs := []models.ActivityLog{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db), &logs, query, args...)
	logQuery(query, args, len(logs), err)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list activity")
	}
	return logs, total, nil
}

// Clear deletes every entry and returns how many were removed.
func (r *ActivityRepository) Clear(ctx context.Context) (int64, error) {
	const query = `DELETE FROM activity_logs`

	res, err := executor(ctx, r.db).ExecContext(ctx, query)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, nil, rowsAffected, err)

	return rowsAffected, errors.Wrap(err, "clear activity")
}

// Count returns the number of entries with the action created at or after since.
// An empty action matches every entry; a zero since matches all time.
func (r *ActivityRepository) Count(ctx context.Context, action string, since time.Time) (int, error) {
	b := psql.Select("COUNT(*)").From("activity_logs")
	if action != "" {
		b = b.Where("action = ?", action)
	}
	if !since.IsZero() {
		b = b.Where("created_at >= ?", since)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "build activity count query")
	}

	var n int
	err = sqlx.GetContext(ctx, executor(ctx, r.db), &n, query, args...)
	logQuery(query, args, n, err)

	return n, errors.Wrap(err, "count activity")
}
