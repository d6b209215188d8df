package services

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sbilibin2017/earnly/internal/logger"
	"github.com/sbilibin2017/earnly/internal/models"
	"golang.org/x/sync/errgroup"
)

// AdminRepository stores console administrators.
type AdminRepository interface {
	Create(ctx context.Context, a *models.Admin) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	List(ctx context.Context) ([]models.Admin, error)
	Save(ctx context.Context, a *models.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserDirectory is the admin view of user accounts.
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	List(ctx context.Context, page, limit int) ([]models.User, int, error)
	Stats(ctx context.Context, dayStart time.Time) (models.UserStats, error)
}

// ActivityCounter counts activity log entries.
type ActivityCounter interface {
	Count(ctx context.Context, action string, since time.Time) (int, error)
}

// PendingCounter counts withdrawals awaiting a decision.
type PendingCounter interface {
	CountPending(ctx context.Context) (int, error)
}

// AdminService runs the admin console: dashboard, users and admin accounts.
type AdminService struct {
	admins    AdminRepository
	users     UserDirectory
	logs      ActivityCounter
	pending   PendingCounter
	platform  PlatformRewardRepository
	activity  ActivityRecorder
	startedAt time.Time
	now       func() time.Time
}

// NewAdminService creates a new AdminService.
func NewAdminService(
	admins AdminRepository,
	users UserDirectory,
	logs ActivityCounter,
	pending PendingCounter,
	platform PlatformRewardRepository,
	activity ActivityRecorder,
) *AdminService {
	return &AdminService{
		admins:    admins,
		users:     users,
		logs:      logs,
		pending:   pending,
		platform:  platform,
		activity:  activity,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Stats gathers the dashboard figures concurrently.
func (s *AdminService) Stats(ctx context.Context) (*models.AdminStats, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var (
		stats     models.AdminStats
		successes int
		failures  int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.Users, err = s.users.Stats(ctx, dayStart)
		return err
	})
	g.Go(func() (err error) {
		stats.Activity.SuccessfulLoginsToday, err = s.logs.Count(ctx, models.ActionLoginSuccess, dayStart)
		return err
	})
	g.Go(func() (err error) {
		successes, err = s.logs.Count(ctx, models.ActionLoginSuccess, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		failures, err = s.logs.Count(ctx, models.ActionLoginFailed, time.Time{})
		return err
	})
	g.Go(func() (err error) {
		stats.Activity.TotalLogs, err = s.logs.Count(ctx, "", time.Time{})
		return err
	})
	g.Go(func() (err error) {
		stats.Finance.PendingWithdrawals, err = s.pending.CountPending(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.Finance.PlatformRewards, err = s.platform.Total(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.Errorw("failed to gather admin stats", "error", err)
		return nil, err
	}

	if attempts := successes + failures; attempts > 0 {
		stats.Activity.LoginSuccessRate = math.Round(float64(successes)/float64(attempts)*1000) / 10
	}
	stats.SystemHealth.Uptime = now.Sub(s.startedAt).Seconds()
	return &stats, nil
}

// ListUsers returns a page of users.
func (s *AdminService) ListUsers(ctx context.Context, page, limit int) ([]models.User, models.Pagination, error) {
	page, limit = normalizePage(page, limit)
	users, total, err := s.users.List(ctx, page, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "page", page, "limit", limit, "error", err)
		return nil, models.Pagination{}, err
	}
	return users, models.NewPagination(page, limit, total), nil
}

// ToggleUserStatus flips the active flag of the user with the given email and returns the new value.
func (s *AdminService) ToggleUserStatus(ctx context.Context, email, adminEmail string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, err
	}

	active := !user.IsActive
	if err := s.users.SetActive(ctx, user.UserID, active); err != nil {
		logger.Log.Errorw("failed to change user status", "userID", user.UserID, "error", err)
		return false, err
	}

	status := "inactive"
	if active {
		status = "active"
	}
	s.activity.Record(ctx, models.ActionUserStatusChanged, user.UserID.String(), models.ActivityDetails{
		"newStatus": status,
		"changedBy": adminEmail,
	})
	return active, nil
}

// Authorize returns the admin for email when it may use the console, else models.ErrForbidden.
func (s *AdminService) Authorize(ctx context.Context, email string) (*models.Admin, error) {
	admin, err := s.admins.GetByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrForbidden
	}
	if err != nil {
		logger.Log.Errorw("failed to get admin", "email", email, "error", err)
		return nil, err
	}
	if !admin.IsActive(s.now()) {
		return nil, models.ErrForbidden
	}
	return admin, nil
}

// CheckAdmin is Authorize with the attempt recorded.
func (s *AdminService) CheckAdmin(ctx context.Context, email string) (*models.Admin, error) {
	if email == "" {
		return nil, errors.Wrap(models.ErrInvalidInput, "email is required")
	}

	admin, err := s.Authorize(ctx, email)
	details := models.ActivityDetails{"success": err == nil}
	if errors.Is(err, models.ErrForbidden) {
		details["reason"] = "Not an admin or inactive"
	}
	s.activity.Record(ctx, models.ActionAdminLoginAttempt, email, details)
	return admin, err
}

// ListAdmins returns every admin account.
func (s *AdminService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	return s.admins.List(ctx)
}

// AddAdmin grants console access to email.
func (s *AdminService) AddAdmin(ctx context.Context, email, addedBy string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.Wrap(models.ErrInvalidInput, "a valid email is required")
	}

	admin, err := s.create(ctx, email)
	if err != nil {
		return nil, err
	}
	s.activity.Record(ctx, models.ActionAdminAdded, models.ActorAdmin, models.ActivityDetails{
		"email":   email,
		"addedBy": addedBy,
	})
	return admin, nil
}

// Bootstrap makes sure email is an admin. An existing account is left as it is.
func (s *AdminService) Bootstrap(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return nil
	}
	if _, err := s.create(ctx, email); err != nil && !errors.Is(err, models.ErrAlreadyExists) {
		return err
	}
	return nil
}

func (s *AdminService) create(ctx context.Context, email string) (*models.Admin, error) {
	_, err := s.admins.GetByEmail(ctx, email)
	if err == nil {
		return nil, errors.Wrap(models.ErrAlreadyExists, "admin with this email already exists")
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	admin := &models.Admin{
		ID:        uuid.New(),
		Email:     email,
		Status:    models.AdminActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, models.ErrInvalidState) {
			return nil, errors.Wrap(models.ErrAlreadyExists, "admin with this email already exists")
		}
		logger.Log.Errorw("failed to create admin", "email", email, "error", err)
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) update(ctx context.Context, id uuid.UUID, action string, by string, fn func(a *models.Admin) error) (*models.Admin, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(admin); err != nil {
		return nil, err
	}
	admin.UpdatedAt = s.now().UTC()

	if err := s.admins.Save(ctx, admin); err != nil {
		logger.Log.Errorw("failed to save admin", "id", id, "action", action, "error", err)
		return nil, err
	}

	details := models.ActivityDetails{"email": admin.Email, "by": by}
	if admin.SuspendUntil != nil {
		details["suspendUntil"] = admin.SuspendUntil.Format(time.RFC3339)
	}
	s.activity.Record(ctx, action, models.ActorAdmin, details)
	return admin, nil
}

// RemoveAdmin revokes access while keeping the account on record.
func (s *AdminService) RemoveAdmin(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error) {
	return s.update(ctx, id, models.ActionAdminRemoved, by, func(a *models.Admin) error {
		a.Status = models.AdminRemoved
		a.SuspendUntil = nil
		return nil
	})
}

// SuspendAdmin blocks access for amount units (minutes, hours, days, weeks, months or years).
func (s *AdminService) SuspendAdmin(ctx context.Context, id uuid.UUID, unit string, amount int, by string) (*models.Admin, error) {
	until, err := models.SuspendUntil(s.now().UTC(), unit, amount)
	if err != nil {
		return nil, errors.Wrap(models.ErrInvalidInput, err.Error())
	}
	return s.update(ctx, id, models.ActionAdminSuspended, by, func(a *models.Admin) error {
		a.Status = models.AdminSuspended
		a.SuspendUntil = &until
		return nil
	})
}

// RestoreAdmin reactivates a removed or suspended admin.
func (s *AdminService) RestoreAdmin(ctx context.Context, id uuid.UUID, by string) (*models.Admin, error) {
	return s.update(ctx, id, models.ActionAdminRestored, by, func(a *models.Admin) error {
		a.Status = models.AdminActive
		a.SuspendUntil = nil
		return nil
	})
}

// DeleteAdmin removes the account entirely.
func (s *AdminService) DeleteAdmin(ctx context.Context, id uuid.UUID, by string) error {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.admins.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete admin", "id", id, "error", err)
		return err
	}
	s.activity.Record(ctx, models.ActionAdminDeleted, models.ActorAdmin, models.ActivityDetails{
		"email": admin.Email,
		"by":    by,
	})
	return nil
}
