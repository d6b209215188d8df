package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

const adminColumns = `id, email, status, suspend_until, created_at, updated_at`

// AdminRepository stores console administrators in PostgreSQL.
type AdminRepository struct {
	db *sqlx.DB
}

func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create inserts an admin; an email that is already present is reported as models.ErrInvalidState.
func (r *AdminRepository) Create(ctx context.Context, a *models.Admin) error {
	query := `
		INSERT INTO admins (` + adminColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO NOTHING
	`
	args := []any{a.ID, a.Email, a.Status, a.SuspendUntil, a.CreatedAt, a.UpdatedAt}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return errors.Wrap(err, "create admin")
	}
	if rowsAffected == 0 {
		return models.ErrInvalidState
	}
	return nil
}

func (r *AdminRepository) getBy(ctx context.Context, column string, value any) (*models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE ` + column + ` = $1`

	var a models.Admin
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &a, query, value)
	logQuery(query, []any{value}, a.Status, err)

	if err != nil {
		return nil, wrapErr(err, "get admin")
	}
	return &a, nil
}

// GetByID returns the admin or models.ErrNotFound.
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return r.getBy(ctx, "id", id)
}

// GetByEmail returns the admin or models.ErrNotFound.
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return r.getBy(ctx, "email", email)
}

// List returns all admins, oldest first.
func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins ORDER BY created_at`

	out := []models.Admin{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &out, query)
	logQuery(query, nil, len(out), err)

	return out, errors.Wrap(err, "list admins")
}

// Save updates status and suspension of an admin.
func (r *AdminRepository) Save(ctx context.Context, a *models.Admin) error {
	const query = `UPDATE admins SET status = $2, suspend_until = $3, updated_at = $4 WHERE id = $1`
	args := []any{a.ID, a.Status, a.SuspendUntil, a.UpdatedAt}

	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return errors.Wrap(err, "save admin")
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// Delete removes an admin permanently.
func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM admins WHERE id = $1`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	if err != nil {
		return errors.Wrap(err, "delete admin")
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
