package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/models"
	"github.com/sbilibin2017/earnly/internal/services"
)

// StatsReader computes the admin dashboard.
type StatsReader interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
}

// UserLister pages through registered users.
type UserLister interface {
	ListUsers(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error)
}

// UserStatusToggler enables or disables a user account.
type UserStatusToggler interface {
	ToggleUserStatus(ctx context.Context, email, adminEmail string) (bool, error)
}

// ActivityLister pages through the activity log.
type ActivityLister interface {
	List(ctx context.Context, filter models.ActivityFilter) ([]models.ActivityLog, models.Pagination, error)
}

// ActivityClearer empties the activity log.
type ActivityClearer interface {
	Clear(ctx context.Context, adminEmail string) (int64, error)
}

// AdminChecker reports whether an email belongs to an active admin.
type AdminChecker interface {
	CheckAdmin(ctx context.Context, email string) (*models.Admin, error)
}

// AdminManager maintains the admin roster.
type AdminManager interface {
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	AddAdmin(ctx context.Context, email, addedBy string) (*models.Admin, error)
	RemoveAdmin(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error)
	SuspendAdmin(ctx context.Context, id uuid.UUID, unit string, amount int, by string) (*models.Admin, error)
	RestoreAdmin(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, id uuid.UUID, by string) error
}

// PlatformRewardReader returns the platform's share of task rewards.
type PlatformRewardReader interface {
	PlatformRewards(ctx context.Context) (float64, error)
}

// RevenueReader returns subscription revenue.
type RevenueReader interface {
	Revenue(ctx context.Context) (services.SubscriptionRevenue, error)
}

// StatsResponse is the admin dashboard
// swagger:model StatsResponse
type StatsResponse struct {
	Stats *models.AdminStats `json:"stats"`
}

// UsersResponse is a page of users
// swagger:model UsersResponse
type UsersResponse struct {
	Users      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

// ToggleUserResponse reports the new account state
// swagger:model ToggleUserResponse
type ToggleUserResponse struct {
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
}

// LogsResponse is a page of the activity log
// swagger:model LogsResponse
type LogsResponse struct {
	Logs       []models.ActivityLog `json:"logs"`
	Pagination models.Pagination    `json:"pagination"`
}

// ClearLogsResponse reports how many entries were removed
// swagger:model ClearLogsResponse
type ClearLogsResponse struct {
	Cleared int64 `json:"cleared"`
}

// CheckAdminResponse confirms console access
// swagger:model CheckAdminResponse
type CheckAdminResponse struct {
	IsAdmin bool          `json:"isAdmin"`
	Admin   *models.Admin `json:"admin"`
}

// AdminsResponse lists admins
// swagger:model AdminsResponse
type AdminsResponse struct {
	Admins []models.Admin `json:"admins"`
}

// AdminResponse wraps a single admin
// swagger:model AdminResponse
type AdminResponse struct {
	Admin *models.Admin `json:"admin"`
}

// AddAdminRequest names the account to promote
// swagger:model AddAdminRequest
type AddAdminRequest struct {
	// required: true
	// default: jane@earnly.com
	Email string `json:"email"`
}

// SuspendAdminRequest sets the suspension length
// swagger:model SuspendAdminRequest
type SuspendAdminRequest struct {
	// minutes, hours, days, weeks, months or years
	// default: days
	Unit string `json:"unit"`

	// default: 1
	Amount int `json:"amount"`
}

// RewardsResponse is the platform aggregate
// swagger:model RewardsResponse
type RewardsResponse struct {
	PlatformRewards float64 `json:"platformRewards"`
}

// NewStatsHandler returns an HTTP handler for the admin dashboard.
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.StatsResponse
// @Router /admin/stats [get]
// @Security BearerAuth
func NewStatsHandler(svc StatsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Stats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, StatsResponse{Stats: stats})
	}
}

// NewUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Success 200 {object} handlers.UsersResponse
// @Router /admin/users [get]
// @Security BearerAuth
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, page, err := svc.ListUsers(r.Context(), queryInt(r, "page"), queryInt(r, "limit"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, UsersResponse{Users: users, Pagination: page})
	}
}

// NewToggleUserHandler returns an HTTP handler enabling or disabling a user.
// @Summary Toggle user status
// @Tags admin
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} handlers.ToggleUserResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/user/{email}/toggle [post]
// @Security BearerAuth
func NewToggleUserHandler(svc UserStatusToggler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		email := chi.URLParam(r, "email")

		active, err := svc.ToggleUserStatus(r.Context(), email, claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ToggleUserResponse{Email: email, IsActive: active})
	}
}

// NewLogsHandler returns an HTTP handler paging through the activity log.
// @Summary Activity logs
// @Tags admin
// @Produce json
// @Param page query int false "Page, from 1"
// @Param limit query int false "Page size, at most 100"
// @Param action query string false "Action filter"
// @Param userId query string false "Actor filter"
// @Success 200 {object} handlers.LogsResponse
// @Router /admin/logs [get]
// @Security BearerAuth
func NewLogsHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		logs, page, err := svc.List(r.Context(), models.ActivityFilter{
			Page:   queryInt(r, "page"),
			Limit:  queryInt(r, "limit"),
			Action: q.Get("action"),
			UserID: q.Get("userId"),
		})
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, LogsResponse{Logs: logs, Pagination: page})
	}
}

// NewClearLogsHandler returns an HTTP handler emptying the activity log.
// @Summary Clear activity logs
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.ClearLogsResponse
// @Router /admin/logs/clear [delete]
// @Security BearerAuth
func NewClearLogsHandler(svc ActivityClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		n, err := svc.Clear(r.Context(), claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ClearLogsResponse{Cleared: n})
	}
}

// NewCheckAdminHandler returns an HTTP handler telling the console whether the caller is an admin.
// @Summary Check admin access
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.CheckAdminResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/check-admin [post]
// @Security BearerAuth
func NewCheckAdminHandler(svc AdminChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		admin, err := svc.CheckAdmin(r.Context(), claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, CheckAdminResponse{IsAdmin: true, Admin: admin})
	}
}

// NewAdminsHandler returns an HTTP handler listing admins.
// @Summary List admins
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.AdminsResponse
// @Router /admin/admins [get]
// @Security BearerAuth
func NewAdminsHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		admins, err := svc.ListAdmins(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AdminsResponse{Admins: admins})
	}
}

// NewAddAdminHandler returns an HTTP handler granting console access.
// @Summary Add admin
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.AddAdminRequest true "Admin"
// @Success 201 {object} handlers.AdminResponse
// @Failure 409 {object} handlers.ErrorResponse "Already an admin"
// @Router /admin/add-admin [post]
// @Security BearerAuth
func NewAddAdminHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		var req AddAdminRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		admin, err := svc.AddAdmin(r.Context(), req.Email, claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, AdminResponse{Admin: admin})
	}
}

// NewRemoveAdminHandler returns an HTTP handler revoking console access.
// @Summary Remove admin
// @Tags admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} handlers.AdminResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/remove-admin/{id} [post]
// @Security BearerAuth
func NewRemoveAdminHandler(svc AdminManager) http.HandlerFunc {
	return adminAction(func(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error) {
		return svc.RemoveAdmin(ctx, id, by)
	})
}

// NewRestoreAdminHandler returns an HTTP handler lifting a suspension or removal.
// @Summary Restore admin
// @Tags admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} handlers.AdminResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/restore-admin/{id} [post]
// @Security BearerAuth
func NewRestoreAdminHandler(svc AdminManager) http.HandlerFunc {
	return adminAction(func(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error) {
		return svc.RestoreAdmin(ctx, id, by)
	})
}

// NewSuspendAdminHandler returns an HTTP handler suspending an admin for a while.
// @Summary Suspend admin
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body handlers.SuspendAdminRequest true "Duration"
// @Success 200 {object} handlers.AdminResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Router /admin/suspend-admin/{id} [post]
// @Security BearerAuth
func NewSuspendAdminHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SuspendAdminRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		adminAction(func(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error) {
			return svc.SuspendAdmin(ctx, id, req.Unit, req.Amount, by)
		})(w, r)
	}
}

// NewDeleteAdminHandler returns an HTTP handler deleting an admin record.
// @Summary Delete admin
// @Tags admin
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/delete-admin/{id} [delete]
// @Security BearerAuth
func NewDeleteAdminHandler(svc AdminManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		if err := svc.DeleteAdmin(r.Context(), id, claims.Email); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Admin deleted"})
	}
}

func adminAction(fn func(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := uuidParam(w, r, "id")
		if !ok {
			return
		}

		admin, err := fn(r.Context(), id, claims.Email)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, AdminResponse{Admin: admin})
	}
}

// NewRewardsHandler returns an HTTP handler reporting the platform rewards aggregate.
// @Summary Platform rewards
// @Tags admin
// @Produce json
// @Success 200 {object} handlers.RewardsResponse
// @Router /admin/rewards [get]
// @Security BearerAuth
func NewRewardsHandler(svc PlatformRewardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := svc.PlatformRewards(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, RewardsResponse{PlatformRewards: total})
	}
}

// NewSubscriptionBalanceHandler returns an HTTP handler reporting subscription revenue.
// @Summary Subscription revenue
// @Tags admin
// @Produce json
// @Success 200 {object} services.SubscriptionRevenue
// @Router /admin/subscription-balance [get]
// @Security BearerAuth
func NewSubscriptionBalanceHandler(svc RevenueReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		revenue, err := svc.Revenue(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, revenue)
	}
}
