// Package rewards holds the stateless earning rules: how much enters which bucket.
package rewards

import (
	"time"

	"github.com/sbilibin2017/earnly/internal/models"
)

const (
	// DailyBonus is credited once per calendar day.
	DailyBonus = 0.003
	// ReferralBonus is credited to the referrer once per referred signup.
	ReferralBonus = 0.03
	// UserTaskShare is the fraction of a task reward kept by the user.
	UserTaskShare = 0.8
	// MinimumWithdrawal is the smallest amount a user may withdraw.
	MinimumWithdrawal = 0.010
)

// DateLayout formats calendar-day keys.
const DateLayout = "2006-01-02"

// DailyBonusAmount returns the daily bonus and its bucket.
func DailyBonusAmount() (float64, models.Bucket) {
	return DailyBonus, models.BucketDailyBonus
}

// ReferralBonusAmount returns the referral bonus and its bucket.
func ReferralBonusAmount() (float64, models.Bucket) {
	return ReferralBonus, models.BucketReferral
}

// TaskSplit divides a task reward between the user (credited to the task
// bucket) and the platform. The two shares always sum to reward.
func TaskSplit(reward float64) (userShare, platformShare float64) {
	userShare = reward * UserTaskShare
	platformShare = reward - userShare
	return userShare, platformShare
}

// Day returns the calendar-day key of t in UTC.
func Day(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// CanClaimDailyBonus reports whether a bonus may be claimed on day.
func CanClaimDailyBonus(lastClaim, day string) bool {
	return lastClaim != day
}
