package repositories

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

const bankListKey = "banks:NG"

// BankCacheRepository caches the gateway's bank list in Redis as JSON.
type BankCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewBankCacheRepository(client *redis.Client, expiration time.Duration) *BankCacheRepository {
	return &BankCacheRepository{client: client, exp: expiration}
}

// Get returns the cached list or models.ErrNotFound on a miss.
func (r *BankCacheRepository) Get(ctx context.Context) ([]models.Bank, error) {
	data, err := r.client.Get(ctx, bankListKey).Bytes()
	logger.Log.Infow("key", bankListKey, "size", len(data), "error", err)
	if err == redis.Nil {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var banks []models.Bank
	if err := json.Unmarshal(data, &banks); err != nil {
		return nil, err
	}
	return banks, nil
}

// Set replaces the cached list.
func (r *BankCacheRepository) Set(ctx context.Context, banks []models.Bank) error {
	data, err := json.Marshal(banks)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, bankListKey, data, r.exp).Err()
	logger.Log.Infow("key", bankListKey, "count", len(banks), "error", err)
	return err
}
