package repositories

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// VerificationCodeRepository keeps one-time codes in Redis until they expire.
type VerificationCodeRepository struct {
	client *redis.Client
}

func NewVerificationCodeRepository(client *redis.Client) *VerificationCodeRepository {
	return &VerificationCodeRepository{client: client}
}

func verificationKey(id string) string {
	return "verification_code:" + id
}

// Save stores the code until its ExpiresAt.
func (r *VerificationCodeRepository) Save(ctx context.Context, code *models.VerificationCode) error {
	key := verificationKey(code.ID)
	data, err := json.Marshal(code)
	if err != nil {
		return err
	}

	ttl := time.Until(code.ExpiresAt)
	if ttl <= 0 {
		return errors.New("verification code already expired")
	}
	err = r.client.Set(ctx, key, data, ttl).Err()
	logger.Log.Infow("key", key, "ttl", ttl, "error", err)

	return err
}

// Get returns the code or models.ErrNotFound when missing or expired.
func (r *VerificationCodeRepository) Get(ctx context.Context, id string) (*models.VerificationCode, error) {
	key := verificationKey(id)

	data, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("key", key, "error", err)
	if err == redis.Nil {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var code models.VerificationCode
	if err := json.Unmarshal(data, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

// Delete removes the code.
func (r *VerificationCodeRepository) Delete(ctx context.Context, id string) error {
	key := verificationKey(id)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Infow("key", key, "deleted", err == nil, "error", err)
	return err
}
