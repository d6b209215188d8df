package services

import (
	"context"

	"github.com/sbilibin2017/earnly/internal/logger"
)

// Currencies of the payout rate.
const (
	CurrencyUSD = "USD"
	CurrencyNGN = "NGN"
)

// ExchangeRateReader fetches current exchange rates from an external service.
type ExchangeRateReader interface {
	GetRate(ctx context.Context, from, to string) (float64, error)
}

// ExchangeRateCache caches exchange rates.
type ExchangeRateCache interface {
	GetRate(ctx context.Context, from, to string) (float64, error)
	SetRate(ctx context.Context, from, to string, rate float64) error
}

// RateService resolves the USD to NGN payout rate.
type RateService struct {
	reader   ExchangeRateReader
	cache    ExchangeRateCache
	fallback float64
}

// NewRateService creates a new RateService. reader may be nil when no
// exchange service is configured; fallback is used when no rate can be fetched.
func NewRateService(reader ExchangeRateReader, cache ExchangeRateCache, fallback float64) *RateService {
	return &RateService{reader: reader, cache: cache, fallback: fallback}
}

// NairaPerDollar returns the cached rate, else the exchange service rate, else the fallback.
func (svc *RateService) NairaPerDollar(ctx context.Context) float64 {
	rate, err := svc.cache.GetRate(ctx, CurrencyUSD, CurrencyNGN)
	if err == nil && rate > 0 {
		return rate
	}

	if svc.reader == nil {
		return svc.fallback
	}

	rate, err = svc.reader.GetRate(ctx, CurrencyUSD, CurrencyNGN)
	if err != nil || rate <= 0 {
		logger.Log.Warnw("exchange rate unavailable, using fallback", "fallback", svc.fallback, "rate", rate, "error", err)
		return svc.fallback
	}

	if err := svc.cache.SetRate(ctx, CurrencyUSD, CurrencyNGN, rate); err != nil {
		logger.Log.Errorw("failed to cache exchange rate", "error", err)
	}
	return rate
}
