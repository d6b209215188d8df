package facades

import (
	"context"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// paystackEnvelope is the common shape of every Paystack API response.
type paystackEnvelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type recipientData struct {
	RecipientCode string `json:"recipient_code"`
}

type transferData struct {
	Reference    string `json:"reference"`
	TransferCode string `json:"transfer_code"`
	Status       string `json:"status"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
	Amount    int64  `json:"amount"`
	Customer  struct {
		Email string `json:"email"`
	} `json:"customer"`
}

// PaystackFacade talks to the Paystack REST API.
type PaystackFacade struct {
	client      *resty.Client
	callbackURL string
}

// NewPaystackFacade creates a facade authenticated with the secret key.
// Every call is bounded by timeout in addition to the caller's context.
func NewPaystackFacade(baseURL, secretKey, callbackURL string, timeout time.Duration) *PaystackFacade {
	client := resty.New().
		SetHostURL(baseURL).
		SetAuthToken(secretKey).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	client.JSONMarshal = json.Marshal
	client.JSONUnmarshal = json.Unmarshal

	logger.Log.Infow("paystack client initialized", "base_url", baseURL, "timeout", timeout)
	return &PaystackFacade{client: client, callbackURL: callbackURL}
}

func (f *PaystackFacade) request(ctx context.Context) *resty.Request {
	return f.client.R().SetContext(ctx).ForceContentType("application/json")
}

func call[T any](req *resty.Request, method, path string) (T, error) {
	var envelope paystackEnvelope[T]
	resp, err := req.SetResult(&envelope).SetError(&envelope).Execute(method, path)
	if err != nil {
		logger.Log.Errorw("paystack request failed", "method", method, "path", path, "error", err)
		return envelope.Data, errors.Wrapf(err, "paystack %s %s", method, path)
	}

	logger.Log.Infow("paystack response",
		"method", method,
		"path", path,
		"status_code", resp.StatusCode(),
		"status", envelope.Status,
		"message", envelope.Message,
	)

	if resp.IsError() || !envelope.Status {
		return envelope.Data, errors.Errorf("paystack %s %s: %d %s", method, path, resp.StatusCode(), envelope.Message)
	}
	return envelope.Data, nil
}

// toKobo converts major units to kobo.
func toKobo(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// CreateRecipient registers a NUBAN bank account and returns its recipient code.
func (f *PaystackFacade) CreateRecipient(ctx context.Context, name, accountNumber, bankCode string) (string, error) {
	body := map[string]any{
		"type":           "nuban",
		"name":           name,
		"account_number": accountNumber,
		"bank_code":      bankCode,
		"currency":       "NGN",
	}

	data, err := call[recipientData](f.request(ctx).SetBody(body), resty.MethodPost, "/transferrecipient")
	if err != nil {
		return "", err
	}
	if data.RecipientCode == "" {
		return "", errors.New("paystack returned an empty recipient code")
	}
	return data.RecipientCode, nil
}

// Transfer sends amountKobo from the balance to the recipient and returns the transfer reference.
func (f *PaystackFacade) Transfer(ctx context.Context, amountKobo int64, recipientCode, reason string) (string, error) {
	body := map[string]any{
		"source":    "balance",
		"amount":    amountKobo,
		"recipient": recipientCode,
		"reason":    reason,
	}

	data, err := call[transferData](f.request(ctx).SetBody(body), resty.MethodPost, "/transfer")
	if err != nil {
		return "", err
	}
	if data.Reference != "" {
		return data.Reference, nil
	}
	return data.TransferCode, nil
}

// InitializePayment opens a checkout session for amount NGN.
func (f *PaystackFacade) InitializePayment(ctx context.Context, email string, amount float64, reference string) (*models.PaymentInit, error) {
	body := map[string]any{
		"email":     email,
		"amount":    toKobo(amount),
		"reference": reference,
	}
	if f.callbackURL != "" {
		body["callback_url"] = f.callbackURL
	}

	data, err := call[initializeData](f.request(ctx).SetBody(body), resty.MethodPost, "/transaction/initialize")
	if err != nil {
		return nil, err
	}
	return &models.PaymentInit{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyPayment returns the gateway's record of the payment with amounts in NGN.
func (f *PaystackFacade) VerifyPayment(ctx context.Context, reference string) (*models.PaymentVerification, error) {
	data, err := call[verifyData](f.request(ctx).SetPathParam("reference", reference),
		resty.MethodGet, "/transaction/verify/{reference}")
	if err != nil {
		return nil, err
	}
	return &models.PaymentVerification{
		Reference: data.Reference,
		Status:    data.Status,
		Amount:    float64(data.Amount) / 100,
		Email:     data.Customer.Email,
	}, nil
}

// ListBanks returns the Nigerian banks supported for payouts.
func (f *PaystackFacade) ListBanks(ctx context.Context) ([]models.Bank, error) {
	data, err := call[[]models.Bank](f.request(ctx).SetQueryParam("country", "nigeria"), resty.MethodGet, "/bank")
	if err != nil {
		return nil, err
	}
	return data, nil
}
