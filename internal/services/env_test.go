package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/earnly/internal/events"
	"github.com/sbilibin2017/earnly/internal/locker"
	"github.com/sbilibin2017/earnly/internal/models"
	"github.com/sbilibin2017/earnly/internal/repositories/memory"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// testEnv wires services to the memory repositories.
type testEnv struct {
	users       *memory.UserRepository
	wallets     *memory.WalletRepository
	withdrawals *memory.WithdrawalRepository
	logs        *memory.ActivityRepository
	admins      *memory.AdminRepository
	platform    *memory.PlatformRewardRepository
	tx          *memory.TxManager
	locker      *locker.KeyedMutex
	activity    *ActivityService
	events      *events.Publisher
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:       memory.NewUserRepository(),
		wallets:     memory.NewWalletRepository(),
		withdrawals: memory.NewWithdrawalRepository(),
		logs:        memory.NewActivityRepository(),
		admins:      memory.NewAdminRepository(),
		platform:    memory.NewPlatformRewardRepository(),
		tx:          memory.NewTxManager(),
		locker:      locker.NewKeyedMutex(),
		events:      events.NewPublisher(nil, nil),
	}
	env.activity = NewActivityService(env.logs)
	env.activity.now = fixedClock(testNow)
	return env
}

func (e *testEnv) walletService() *WalletService {
	svc := NewWalletService(e.wallets, e.platform, e.tx, e.locker, e.activity, e.events)
	svc.now = fixedClock(testNow)
	return svc
}

// fundWallet stores a wallet with the given buckets.
func (e *testEnv) fundWallet(t *testing.T, task, daily, referral float64) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	w := models.NewWallet(userID)
	w.Task, w.DailyBonus, w.Referral = task, daily, referral
	require.NoError(t, e.wallets.Save(context.Background(), w))
	return userID
}

// actions returns the recorded activity actions.
func (e *testEnv) actions(t *testing.T) []string {
	t.Helper()
	logs, _, err := e.logs.List(context.Background(), models.ActivityFilter{Page: 1, Limit: 1000})
	require.NoError(t, err)
	out := make([]string, 0, len(logs))
	for _, l := range logs {
		out = append(out, l.Action)
	}
	return out
}
