package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Verification code settings.
const (
	VerificationCodeTTL     = 10 * time.Minute
	MaxVerificationAttempts = 5 // wrong guesses before the code is discarded
	verificationCodeDigits  = 6
)

// Verification delivery methods.
const (
	MethodSMS   = "sms"
	MethodEmail = "email"
)

// VerificationCodeRepository stores one-time codes until they expire.
type VerificationCodeRepository interface {
	Save(ctx context.Context, code *models.VerificationCode) error
	Get(ctx context.Context, id string) (*models.VerificationCode, error)
	Delete(ctx context.Context, id string) error
}

// UserVerifier marks the matching account verified.
type UserVerifier interface {
	MarkVerified(ctx context.Context, email, phone string) (int64, error)
}

// VerificationService sends and checks one-time verification codes.
type VerificationService struct {
	codes    VerificationCodeRepository
	users    UserVerifier
	activity ActivityRecorder
	events   EventPublisher
	now      func() time.Time
}

// NewVerificationService creates a new VerificationService.
func NewVerificationService(codes VerificationCodeRepository, users UserVerifier, activity ActivityRecorder, events EventPublisher) *VerificationService {
	return &VerificationService{
		codes:    codes,
		users:    users,
		activity: activity,
		events:   events,
		now:      time.Now,
	}
}

func generateCode() (string, error) {
	max := big.NewInt(1_000_000)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", verificationCodeDigits, n.Int64()), nil
}

// Send issues a code for the phone and email pair and hands it to the
// notification pipeline. Only the code id is returned.
func (s *VerificationService) Send(ctx context.Context, phone, email, method string) (string, error) {
	if phone == "" || email == "" {
		return "", errors.Wrap(models.ErrInvalidInput, "phone number and email are required")
	}
	switch method {
	case "":
		method = MethodSMS
	case MethodSMS, MethodEmail:
	default:
		return "", errors.Wrapf(models.ErrInvalidInput, "unknown verification method %q", method)
	}

	value, err := generateCode()
	if err != nil {
		logger.Log.Errorw("failed to generate verification code", "error", err)
		return "", err
	}

	code := &models.VerificationCode{
		ID:        uuid.NewString(),
		Code:      value,
		Phone:     phone,
		Email:     email,
		Method:    method,
		ExpiresAt: s.now().Add(VerificationCodeTTL),
	}
	if err := s.codes.Save(ctx, code); err != nil {
		logger.Log.Errorw("failed to save verification code", "email", email, "error", err)
		return "", err
	}

	s.events.Notify(ctx, email, models.EventVerificationCode, map[string]any{
		"codeId": code.ID,
		"code":   code.Code,
		"method": method,
		"phone":  phone,
		"email":  email,
	})
	s.activity.Record(ctx, models.ActionVerificationCodeSent, email, models.ActivityDetails{
		"method":      method,
		"phoneNumber": phone,
		"codeId":      code.ID,
	})
	return code.ID, nil
}

// Verify checks a code. A match consumes the code and marks the user verified.
func (s *VerificationService) Verify(ctx context.Context, codeID, value string) error {
	code, err := s.codes.Get(ctx, codeID)
	if errors.Is(err, models.ErrNotFound) {
		return errors.Wrap(models.ErrInvalidInput, "invalid or expired verification code")
	}
	if err != nil {
		logger.Log.Errorw("failed to get verification code", "codeId", codeID, "error", err)
		return err
	}

	if s.now().After(code.ExpiresAt) {
		if err := s.codes.Delete(ctx, codeID); err != nil {
			logger.Log.Errorw("failed to delete expired verification code", "codeId", codeID, "error", err)
		}
		return errors.Wrap(models.ErrInvalidInput, "verification code has expired")
	}

	if subtle.ConstantTimeCompare([]byte(code.Code), []byte(value)) != 1 {
		s.activity.Record(ctx, models.ActionVerificationFailed, code.Email, models.ActivityDetails{"codeId": codeID})
		return s.failedAttempt(ctx, code)
	}

	if err := s.codes.Delete(ctx, codeID); err != nil {
		logger.Log.Errorw("failed to delete verification code", "codeId", codeID, "error", err)
		return err
	}

	n, err := s.users.MarkVerified(ctx, code.Email, code.Phone)
	if err != nil {
		logger.Log.Errorw("failed to mark user verified", "email", code.Email, "error", err)
		return err
	}

	s.activity.Record(ctx, models.ActionVerificationSuccess, code.Email, models.ActivityDetails{
		"method":       code.Method,
		"usersUpdated": n,
	})
	return nil
}

// failedAttempt counts a wrong guess and drops the code once the limit is reached.
func (s *VerificationService) failedAttempt(ctx context.Context, code *models.VerificationCode) error {
	code.Attempts++
	if code.Attempts >= MaxVerificationAttempts {
		if err := s.codes.Delete(ctx, code.ID); err != nil {
			logger.Log.Errorw("failed to delete verification code", "codeId", code.ID, "error", err)
			return err
		}
		return errors.Wrap(models.ErrInvalidInput, "too many attempts, request a new verification code")
	}
	if err := s.codes.Save(ctx, code); err != nil {
		logger.Log.Errorw("failed to save verification attempt", "codeId", code.ID, "error", err)
		return err
	}
	return errors.Wrap(models.ErrInvalidInput, "invalid verification code")
}
