package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// ExchangeRateCacheRepository provides cached exchange rates using Redis
type ExchangeRateCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rates
}

// NewExchangeRateCacheRepository creates a new repository instance with optional TTL
func NewExchangeRateCacheRepository(client *redis.Client, expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func rateKey(from, to string) string {
	return fmt.Sprintf("exchange_rate:%s:%s", from, to)
}

// GetRate fetches a cached rate; a miss is reported as models.ErrNotFound.
func (r *ExchangeRateCacheRepository) GetRate(ctx context.Context, from, to string) (float64, error) {
	key := rateKey(from, to)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("key", key, "result", val, "error", err)
		if err == redis.Nil {
			return 0, models.ErrNotFound
		}
		return 0, err
	}

	rate, err := strconv.ParseFloat(val, 64)
	logger.Log.Infow("key", key, "value", val, "result", rate, "error", err)
	if err != nil {
		return 0, err
	}
	return rate, nil
}

// SetRate caches a rate with expiration
func (r *ExchangeRateCacheRepository) SetRate(ctx context.Context, from, to string, rate float64) error {
	key := rateKey(from, to)
	err := r.client.Set(ctx, key, strconv.FormatFloat(rate, 'f', -1, 64), r.exp).Err()

	logger.Log.Infow("key", key, "rate", rate, "error", err)

	return err
}
