package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

// EmergencyRepository stores broadcast messages in PostgreSQL.
type EmergencyRepository struct {
	db *sqlx.DB
}

func NewEmergencyRepository(db *sqlx.DB) *EmergencyRepository {
	return &EmergencyRepository{db: db}
}

// Create inserts a message.
func (r *EmergencyRepository) Create(ctx context.Context, m *models.EmergencyMessage) error {
	const query = `INSERT INTO emergency_messages (id, message, status, created_at) VALUES ($1, $2, $3, $4)`
	args := []any{m.ID, m.Message, m.Status, m.CreatedAt}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, args, nil, err)

	return errors.Wrap(err, "create emergency message")
}

// GetActive returns the latest message still in sent state or models.ErrNotFound.
func (r *EmergencyRepository) GetActive(ctx context.Context) (*models.EmergencyMessage, error) {
	const query = `
		SELECT id, message, status, created_at
		FROM emergency_messages
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var m models.EmergencyMessage
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &m, query, models.EmergencySent)
	logQuery(query, []any{models.EmergencySent}, m.ID, err)

	if err != nil {
		return nil, wrapErr(err, "get active emergency message")
	}
	return &m, nil
}

// Dismiss marks the message dismissed.
func (r *EmergencyRepository) Dismiss(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE emergency_messages SET status = $2 WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id, models.EmergencyDismissed)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return errors.Wrap(err, "dismiss emergency message")
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
