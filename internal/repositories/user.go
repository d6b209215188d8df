package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

const userColumns = `user_id, username, email, password_hash, phone, country, state, gender,
	is_active, is_verified, referral_code, referred_by, last_login, created_at, updated_at`

// UserRepository stores users in PostgreSQL.
type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	args := []any{
		u.UserID, u.Username, u.Email, u.PasswordHash, u.Phone, u.Country, u.State, u.Gender,
		u.IsActive, u.IsVerified, u.ReferralCode, u.ReferredBy, u.LastLogin, u.CreatedAt, u.UpdatedAt,
	}

	_, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	logQuery(query, []any{u.UserID, u.Email}, nil, err)

	return wrapErr(err, "create user")
}

func (r *UserRepository) getBy(ctx context.Context, column string, value any) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE ` + column + ` = $1 LIMIT 1`

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, value)
	logQuery(query, []any{value}, user.UserID, err)

	if err != nil {
		return nil, wrapErr(err, "get user")
	}
	return &user, nil
}

// GetByID returns the user or models.ErrNotFound.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getBy(ctx, "user_id", id)
}

// GetByEmail returns the user or models.ErrNotFound.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getBy(ctx, "email", email)
}

// GetByReferralCode returns the owner of the referral code or models.ErrNotFound.
func (r *UserRepository) GetByReferralCode(ctx context.Context, code string) (*models.User, error) {
	return r.getBy(ctx, "referral_code", code)
}

func (r *UserRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	return rowsAffected, err
}

// UpdateLastLogin stamps a successful login.
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	const query = `UPDATE users SET last_login = $2, updated_at = $2 WHERE user_id = $1`
	n, err := r.exec(ctx, query, id, at)
	if err != nil {
		return errors.Wrap(err, "update last login")
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetActive enables or disables a user.
func (r *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	const query = `UPDATE users SET is_active = $2, updated_at = NOW() WHERE user_id = $1`
	n, err := r.exec(ctx, query, id, active)
	if err != nil {
		return errors.Wrap(err, "set user active")
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}

// MarkVerified flags every user matching the email or phone as verified.
func (r *UserRepository) MarkVerified(ctx context.Context, email, phone string) (int64, error) {
	const query = `
		UPDATE users SET is_verified = TRUE, updated_at = NOW()
		WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND phone = $2)
	`
	n, err := r.exec(ctx, query, email, phone)
	return n, errors.Wrap(err, "mark user verified")
}

// List returns one page of users, newest first, and the total count.
func (r *UserRepository) List(ctx context.Context, page, limit int) ([]models.User, int, error) {
	var total int
	countQuery, countArgs, err := psql.Select("COUNT(*)").From("users").ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build count query")
	}
	err = sqlx.GetContext(ctx, executor(ctx, r.db), &total, countQuery, countArgs...)
	logQuery(countQuery, countArgs, total, err)
	if err != nil {
		return nil, 0, errors.Wrap(err, "count users")
	}

	query, args, err := psql.Select(userColumns).
		From("users").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit)).
		ToSql()
	if err != nil {
		return nil, 0, errors.Wrap(err, "build list query")
	}

	users := []models.User{}
	err = sqlx.SelectContext(ctx, executor(ctx, r.db), &users, query, args...)
	logQuery(query, args, len(users), err)
	if err != nil {
		return nil, 0, errors.Wrap(err, "list users")
	}
	return users, total, nil
}

// Stats counts all users, active users and users created since dayStart.
func (r *UserRepository) Stats(ctx context.Context, dayStart time.Time) (models.UserStats, error) {
	const query = `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_active) AS active,
		       COUNT(*) FILTER (WHERE created_at >= $1) AS new_today
		FROM users
	`
	var row struct {
		Total    int `db:"total"`
		Active   int `db:"active"`
		NewToday int `db:"new_today"`
	}
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &row, query, dayStart)
	logQuery(query, []any{dayStart}, row, err)
	if err != nil {
		return models.UserStats{}, errors.Wrap(err, "user stats")
	}
	return models.UserStats{Total: row.Total, Active: row.Active, NewToday: row.NewToday}, nil
}
