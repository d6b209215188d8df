package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		username VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		country VARCHAR(64) NOT NULL DEFAULT 'Nigeria',
		state VARCHAR(64) NOT NULL DEFAULT '',
		gender VARCHAR(16) NOT NULL DEFAULT '',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		is_verified BOOLEAN NOT NULL DEFAULT FALSE,
		referral_code VARCHAR(32) NOT NULL UNIQUE,
		referred_by VARCHAR(32),
		last_login TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS wallets (
		user_id UUID PRIMARY KEY REFERENCES users(user_id) ON DELETE CASCADE,
		task DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (task >= 0),
		daily_bonus DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (daily_bonus >= 0),
		referral DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (referral >= 0),
		today DOUBLE PRECISION NOT NULL DEFAULT 0,
		lifetime DOUBLE PRECISION NOT NULL DEFAULT 0,
		last_bonus_claim VARCHAR(10) NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS withdrawal_requests (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
		bank_name VARCHAR(128) NOT NULL,
		bank_code VARCHAR(16) NOT NULL,
		account_number VARCHAR(32) NOT NULL,
		account_name VARCHAR(128) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'pending',
		deny_reason TEXT,
		reference VARCHAR(128),
		processed_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS withdrawal_requests_status_idx ON withdrawal_requests (status);`,
	`CREATE TABLE IF NOT EXISTS activity_logs (
		id UUID PRIMARY KEY,
		action VARCHAR(64) NOT NULL,
		user_id VARCHAR(255) NOT NULL,
		details JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS activity_logs_created_at_idx ON activity_logs (created_at DESC);`,
	`CREATE TABLE IF NOT EXISTS admins (
		id UUID PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		status VARCHAR(16) NOT NULL DEFAULT 'active',
		suspend_until TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS emergency_messages (
		id UUID PRIMARY KEY,
		message TEXT NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'sent',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS platform_rewards (
		id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
		total DOUBLE PRECISION NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS channels (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		category VARCHAR(64) NOT NULL DEFAULT '',
		stream_url TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS subscriptions (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
		plan VARCHAR(16) NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		selected_channels BIGINT[] NOT NULL DEFAULT '{}',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'ACTIVE',
		payment_reference VARCHAR(128) NOT NULL UNIQUE
	);`,
	`CREATE INDEX IF NOT EXISTS subscriptions_user_status_idx ON subscriptions (user_id, status);`,
}

// Migrate creates the schema if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m); err != nil {
			logger.Log.Errorw("migration failed", "query", m, "error", err)
			return errors.Wrap(err, "migrate")
		}
	}
	logger.Log.Infow("migrations applied", "count", len(migrations))
	return nil
}
