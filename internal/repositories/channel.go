package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/models"
)

// ChannelRepository reads the channel catalogue from PostgreSQL.
type ChannelRepository struct {
	db *sqlx.DB
}

func NewChannelRepository(db *sqlx.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// List returns every channel ordered by id.
func (r *ChannelRepository) List(ctx context.Context) ([]models.Channel, error) {
	const query = `SELECT id, name, category, stream_url FROM channels ORDER BY id`

	out := []models.Channel{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &out, query)
	logQuery(query, nil, len(out), err)

	return out, errors.Wrap(err, "list channels")
}

// Get returns the channel or models.ErrNotFound.
func (r *ChannelRepository) Get(ctx context.Context, id int64) (*models.Channel, error) {
	const query = `SELECT id, name, category, stream_url FROM channels WHERE id = $1`

	var c models.Channel
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &c, query, id)
	logQuery(query, []any{id}, c.Name, err)

	if err != nil {
		return nil, wrapErr(err, "get channel")
	}
	return &c, nil
}

// Seed installs channels when the catalogue is empty. Existing rows are left untouched.
func (r *ChannelRepository) Seed(ctx context.Context, channels ...models.Channel) error {
	const countQuery = `SELECT COUNT(*) FROM channels`

	var n int
	err := sqlx.GetContext(ctx, r.db, &n, countQuery)
	logQuery(countQuery, nil, n, err)
	if err != nil || n > 0 {
		return errors.Wrap(err, "count channels")
	}

	const query = `INSERT INTO channels (id, name, category, stream_url) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`
	for _, c := range channels {
		args := []any{c.ID, c.Name, c.Category, c.StreamURL}
		_, err := r.db.ExecContext(ctx, query, args...)
		logQuery(query, args, c.Name, err)
		if err != nil {
			return errors.Wrap(err, "seed channel")
		}
	}
	return nil
}
