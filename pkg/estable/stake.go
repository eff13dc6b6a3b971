package estable

import (
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/shopspring/decimal"
)

// BoostFor boost multiplier of a lock period
// 30d -> 120 (1.2x), 90d -> 150 (1.5x), 180d -> 200 (2.0x)
func BoostFor(lockPeriod int64) (int64, error) {
	switch lockPeriod {
	case core.Lock30Days:
		return 120, nil
	case core.Lock90Days:
		return 150, nil
	case core.Lock180Days:
		return 200, nil
	default:
		return 0, core.ErrInvalidLockPeriod
	}
}

// NewStake validate and build a stake; the caller assigns the per owner
// index and bumps the pool aggregate.
func NewStake(userID string, index int64, amount decimal.Decimal, lockPeriod int64, now time.Time) (*core.Stake, error) {
	if !amount.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	if err := number.CheckRange(amount); err != nil {
		return nil, err
	}

	boost, err := BoostFor(lockPeriod)
	if err != nil {
		return nil, err
	}

	return &core.Stake{
		UserID:      userID,
		StakeIndex:  index,
		Amount:      amount,
		LockPeriod:  lockPeriod,
		Boost:       boost,
		Active:      true,
		LastClaimAt: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// PendingReward linear accrual since the last claim
// reward = amount * rate * boost/100 * elapsed_seconds / scale
func PendingReward(s *core.Stake, rate decimal.Decimal, scale int64, now time.Time) decimal.Decimal {
	if !s.Active {
		return decimal.Zero
	}

	elapsed := now.Unix() - s.LastClaimAt.Unix()
	if elapsed <= 0 {
		return decimal.Zero
	}

	r := number.MulFactor(s.Amount.Mul(rate), s.Boost)
	r = r.Mul(decimal.NewFromInt(elapsed)).Div(decimal.NewFromInt(scale))

	return r.Truncate(number.MaxPrecision)
}

// Claim settle pending rewards against the pool reward balance. The pool
// is pre funded externally; a shortfall surfaces instead of truncating.
func Claim(s *core.Stake, pool *core.StakingPool, rate decimal.Decimal, scale int64, now time.Time) (decimal.Decimal, error) {
	if !s.Active {
		return decimal.Zero, core.ErrStakeNotActive
	}

	pending := PendingReward(s, rate, scale, now)
	if !pending.IsPositive() {
		return decimal.Zero, core.ErrNoRewardsToClaim
	}

	if pool.RewardBalance.LessThan(pending) {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	pool.RewardBalance = pool.RewardBalance.Sub(pending)
	s.LastClaimAt = now
	s.UpdatedAt = now

	return pending, nil
}

// Unstake return the full principal after lock expiry. Rewards are not
// auto claimed.
func Unstake(s *core.Stake, pool *core.StakingPool, now time.Time) (decimal.Decimal, error) {
	if !s.Active {
		return decimal.Zero, core.ErrStakeNotActive
	}

	if now.Before(s.LockedUntil()) {
		return decimal.Zero, core.ErrLockNotExpired
	}

	payout := s.Amount

	s.Active = false
	s.UpdatedAt = now
	pool.TotalStaked = pool.TotalStaked.Sub(s.Amount)

	return payout, nil
}

// EmergencyUnstake exit before lock expiry with a penalty. Only usable
// while the lock is still running; the two unstake paths are mutually
// exclusive by time.
func EmergencyUnstake(s *core.Stake, pool *core.StakingPool, feeBps int64, now time.Time) (payout, penalty decimal.Decimal, err error) {
	if !s.Active {
		return decimal.Zero, decimal.Zero, core.ErrStakeNotActive
	}

	if !now.Before(s.LockedUntil()) {
		return decimal.Zero, decimal.Zero, core.ErrUseRegularUnstake
	}

	penalty = number.MulRate(s.Amount, feeBps)
	payout = s.Amount.Sub(penalty)

	s.Active = false
	s.UpdatedAt = now
	pool.TotalStaked = pool.TotalStaked.Sub(s.Amount)

	return payout, penalty, nil
}
