package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
)

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, string, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, string, error)
}

// ProfileReader returns the account of the authenticated user.
type ProfileReader interface {
	Profile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// SignupRequest represents the JSON body for user signup
// swagger:model SignupRequest
type SignupRequest struct {
	// Full name
	// required: true
	// default: John Doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@earnly.com
	Email string `json:"email"`

	// Password, at least six characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Phone number
	// default: +2348000000000
	Phone string `json:"phone"`

	// Country, defaults to Nigeria
	Country string `json:"country"`

	// State of residence
	State string `json:"state"`

	// Gender
	Gender string `json:"gender"`

	// Referral code of an existing user
	ReferralCode string `json:"referralCode"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@earnly.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// AuthResponse is returned after a successful signup or login
// swagger:model AuthResponse
type AuthResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Account
	User *models.User `json:"user"`
}

// ProfileResponse wraps the authenticated account
// swagger:model ProfileResponse
type ProfileResponse struct {
	User *models.User `json:"user"`
}

// NewSignupHandler returns an HTTP handler for user registration.
// @Summary Register user
// @Description Create an account and wallet, optionally crediting a referrer
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.SignupRequest true "Signup Request"
// @Success 201 {object} handlers.AuthResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 409 {object} handlers.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Signup(r.Context(), models.SignupRequest{
			Username:     req.Username,
			Email:        req.Email,
			Password:     req.Password,
			Phone:        req.Phone,
			Country:      req.Country,
			State:        req.State,
			Gender:       req.Gender,
			ReferralCode: req.ReferralCode,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{Token: token, User: user})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 403 {object} handlers.ErrorResponse "Account disabled"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{Token: token, User: user})
	}
}

// NewProfileHandler returns an HTTP handler for the user's profile.
// @Summary Get profile
// @Tags user
// @Produce json
// @Success 200 {object} handlers.ProfileResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /user/profile [get]
// @Security BearerAuth
func NewProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		user, err := svc.Profile(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ProfileResponse{User: user})
	}
}
