package memory

import (
	"context"
	"sync"
	"time"

	"github.com/sbilibin2017/earnly/internal/models"
)

// VerificationCodeRepository keeps one-time codes until their expiry.
type VerificationCodeRepository struct {
	mu    sync.Mutex
	codes map[string]models.VerificationCode
	now   func() time.Time
}

func NewVerificationCodeRepository() *VerificationCodeRepository {
	return &VerificationCodeRepository{codes: make(map[string]models.VerificationCode), now: time.Now}
}

func (r *VerificationCodeRepository) Save(ctx context.Context, code *models.VerificationCode) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codes[code.ID] = *code
	return nil
}

// Get returns the code; expired codes are dropped and reported as models.ErrNotFound.
func (r *VerificationCodeRepository) Get(ctx context.Context, id string) (*models.VerificationCode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.codes[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if !r.now().Before(c.ExpiresAt) {
		delete(r.codes, id)
		return nil, models.ErrNotFound
	}
	return &c, nil
}

func (r *VerificationCodeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.codes, id)
	return nil
}

type rateEntry struct {
	rate      float64
	expiresAt time.Time
}

// ExchangeRateCacheRepository caches exchange rates for a fixed TTL.
type ExchangeRateCacheRepository struct {
	mu    sync.Mutex
	exp   time.Duration
	rates map[string]rateEntry
	now   func() time.Time
}

func NewExchangeRateCacheRepository(expiration time.Duration) *ExchangeRateCacheRepository {
	return &ExchangeRateCacheRepository{exp: expiration, rates: make(map[string]rateEntry), now: time.Now}
}

func (r *ExchangeRateCacheRepository) GetRate(ctx context.Context, from, to string) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.rates[from+":"+to]
	if !ok || !r.now().Before(e.expiresAt) {
		return 0, models.ErrNotFound
	}
	return e.rate, nil
}

func (r *ExchangeRateCacheRepository) SetRate(ctx context.Context, from, to string, rate float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rates[from+":"+to] = rateEntry{rate: rate, expiresAt: r.now().Add(r.exp)}
	return nil
}

// BankCacheRepository caches the bank list for a fixed TTL.
type BankCacheRepository struct {
	mu        sync.Mutex
	exp       time.Duration
	banks     []models.Bank
	expiresAt time.Time
	now       func() time.Time
}

func NewBankCacheRepository(expiration time.Duration) *BankCacheRepository {
	return &BankCacheRepository{exp: expiration, now: time.Now}
}

func (r *BankCacheRepository) Get(ctx context.Context) ([]models.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.banks == nil || !r.now().Before(r.expiresAt) {
		return nil, models.ErrNotFound
	}
	return append([]models.Bank(nil), r.banks...), nil
}

func (r *BankCacheRepository) Set(ctx context.Context, banks []models.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.banks = append([]models.Bank{}, banks...)
	r.expiresAt = r.now().Add(r.exp)
	return nil
}
