package facades

import (
	"context"

	"github.com/sbilibin2017/earnly/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
)

// ExchangeRatesGRPCFacade reads payout exchange rates from the exchanger service over gRPC.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
}

// NewExchangeRatesGRPCFacade creates a new facade with a gRPC client.
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client}
}

// GetRate fetches the price of one unit of from expressed in to.
func (f *ExchangeRatesGRPCFacade) GetRate(ctx context.Context, from, to string) (float64, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: from,
		ToCurrency:   to,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate via gRPC",
			"from", from, "to", to, "error", err)
		return 0, err
	}

	return float64(resp.Rate), nil
}
