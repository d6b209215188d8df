package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// UserRepository stores user accounts.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error                         // Inserts a user
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)          // Returns the user or models.ErrNotFound
	GetByEmail(ctx context.Context, email string) (*models.User, error)       // Returns the user or models.ErrNotFound
	GetByReferralCode(ctx context.Context, code string) (*models.User, error) // Returns the owner of a referral code
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error    // Stamps a successful login
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// ReferralCreditor pays the referral bonus.
type ReferralCreditor interface {
	CreditReferral(ctx context.Context, referrerID uuid.UUID, referredEmail string) error
}

// AuthService handles signup, login and profile lookups.
type AuthService struct {
	users     UserRepository
	wallets   WalletRepository
	tx        TxManager
	referrals ReferralCreditor
	jwt       JWTGenerator
	activity  ActivityRecorder
	events    EventPublisher
	now       func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	users UserRepository,
	wallets WalletRepository,
	tx TxManager,
	referrals ReferralCreditor,
	jwt JWTGenerator,
	activity ActivityRecorder,
	events EventPublisher,
) *AuthService {
	return &AuthService{
		users:     users,
		wallets:   wallets,
		tx:        tx,
		referrals: referrals,
		jwt:       jwt,
		activity:  activity,
		events:    events,
		now:       time.Now,
	}
}

func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// Signup registers a user with an empty wallet and returns the user and a token.
// A known referral code pays the referral bonus to its owner; an unknown one is ignored.
func (svc *AuthService) Signup(ctx context.Context, req models.SignupRequest) (*models.User, string, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || !strings.Contains(req.Email, "@") {
		return nil, "", errors.Wrap(models.ErrInvalidInput, "username and a valid email are required")
	}
	if len(req.Password) < MinPasswordLength {
		return nil, "", errors.Wrapf(models.ErrInvalidInput, "password must be at least %d characters", MinPasswordLength)
	}

	_, err := svc.users.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, "", errors.Wrap(models.ErrAlreadyExists, "user already exists")
	}
	if !errors.Is(err, models.ErrNotFound) {
		logger.Log.Errorw("failed to check user exists", "email", req.Email, "error", err)
		return nil, "", err
	}

	var referrer *models.User
	if req.ReferralCode != "" {
		referrer, err = svc.users.GetByReferralCode(ctx, req.ReferralCode)
		if err != nil {
			logger.Log.Warnw("referral code not applied", "referralCode", req.ReferralCode, "error", err)
			referrer = nil
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return nil, "", err
	}

	country := req.Country
	if country == "" {
		country = models.DefaultCountry
	}

	now := svc.now().UTC()
	user := &models.User{
		UserID:       uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Phone:        req.Phone,
		Country:      country,
		State:        req.State,
		Gender:       req.Gender,
		IsActive:     true,
		ReferralCode: newReferralCode(),
		LastLogin:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if referrer != nil {
		code := referrer.ReferralCode
		user.ReferredBy = &code
	}

	err = svc.tx.Do(ctx, func(ctx context.Context) error {
		if err := svc.users.Create(ctx, user); err != nil {
			return err
		}
		wallet := models.NewWallet(user.UserID)
		wallet.UpdatedAt = now
		return svc.wallets.Save(ctx, wallet)
	})
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", req.Email, "error", err)
		return nil, "", err
	}

	if referrer != nil {
		if err := svc.referrals.CreditReferral(ctx, referrer.UserID, user.Email); err != nil {
			logger.Log.Errorw("failed to pay referral bonus", "referrerID", referrer.UserID, "error", err)
		}
	}

	details := models.ActivityDetails{"username": user.Username, "email": user.Email, "phone": user.Phone}
	if user.ReferredBy != nil {
		details["referredBy"] = *user.ReferredBy
	}
	svc.activity.Record(ctx, models.ActionUserSignup, user.UserID.String(), details)
	svc.events.Notify(ctx, user.UserID.String(), models.EventWelcome, map[string]any{
		"username": user.Username,
		"email":    user.Email,
	})

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "userID", user.UserID, "error", err)
		return nil, "", err
	}
	return user, token, nil
}

// Login authenticates a user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		logger.Log.Errorw("failed to get user", "email", email, "error", err)
		return nil, "", err
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		svc.activity.Record(ctx, models.ActionLoginFailed, email, models.ActivityDetails{"reason": "Invalid credentials"})
		return nil, "", models.ErrInvalidCredentials
	}
	if !user.IsActive {
		svc.activity.Record(ctx, models.ActionLoginFailed, user.UserID.String(), models.ActivityDetails{"reason": "Account disabled"})
		return nil, "", errors.Wrap(models.ErrForbidden, "account disabled")
	}

	now := svc.now().UTC()
	if err := svc.users.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		logger.Log.Errorw("failed to update last login", "userID", user.UserID, "error", err)
		return nil, "", err
	}
	user.LastLogin = now

	svc.activity.Record(ctx, models.ActionLoginSuccess, user.UserID.String(), models.ActivityDetails{"username": user.Username})

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "userID", user.UserID, "error", err)
		return nil, "", err
	}
	return user, token, nil
}

// Profile returns the user's account.
func (svc *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return svc.users.GetByID(ctx, userID)
}
