package estable

import (
	"testing"
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/bmizerany/assert"
	"github.com/stretchr/testify/require"
)

func TestBoostFor(t *testing.T) {
	for period, expect := range map[int64]int64{
		core.Lock30Days:  120,
		core.Lock90Days:  150,
		core.Lock180Days: 200,
	} {
		boost, err := BoostFor(period)
		require.Nil(t, err)
		assert.Equal(t, expect, boost)
	}

	_, err := BoostFor(60 * 24 * 60 * 60)
	assert.Equal(t, core.ErrInvalidLockPeriod, err)

	_, err = BoostFor(0)
	assert.Equal(t, core.ErrInvalidLockPeriod, err)
}

func TestNewStake(t *testing.T) {
	now := time.Now()

	s, err := NewStake("u1", 0, number.Decimal("100"), core.Lock90Days, now)
	require.Nil(t, err)
	assert.Equal(t, int64(150), s.Boost)
	assert.Equal(t, true, s.Active)
	assert.Equal(t, now.Add(90*24*time.Hour), s.LockedUntil())

	_, err = NewStake("u1", 1, number.Decimal("0"), core.Lock30Days, now)
	assert.Equal(t, core.ErrInvalidAmount, err)

	_, err = NewStake("u1", 1, number.Decimal("100"), 12345, now)
	assert.Equal(t, core.ErrInvalidLockPeriod, err)
}

func TestPendingReward(t *testing.T) {
	now := time.Now()
	rate := number.Decimal("1000")
	scale := int64(1e12)

	s, err := NewStake("u1", 0, number.Decimal("100"), core.Lock30Days, now)
	require.Nil(t, err)

	// no time elapsed, nothing pending
	assert.Equal(t, true, PendingReward(s, rate, scale, now).IsZero())

	// one day at boost 1.2x
	later := now.Add(24 * time.Hour)
	pending := PendingReward(s, rate, scale, later)
	assert.Equal(t, "0.010368", pending.String())

	// same instant, same answer
	assert.Equal(t, pending.String(), PendingReward(s, rate, scale, later).String())

	s.Active = false
	assert.Equal(t, true, PendingReward(s, rate, scale, later).IsZero())
}

func TestClaim(t *testing.T) {
	now := time.Now()
	rate := number.Decimal("1000")
	scale := int64(1e12)

	s, err := NewStake("u1", 0, number.Decimal("100"), core.Lock30Days, now)
	require.Nil(t, err)

	pool := &core.StakingPool{
		TotalStaked:   s.Amount,
		RewardBalance: number.Decimal("1"),
	}

	_, err = Claim(s, pool, rate, scale, now)
	assert.Equal(t, core.ErrNoRewardsToClaim, err)

	later := now.Add(24 * time.Hour)
	claimed, err := Claim(s, pool, rate, scale, later)
	require.Nil(t, err)
	assert.Equal(t, "0.010368", claimed.String())
	assert.Equal(t, "0.989632", pool.RewardBalance.String())
	assert.Equal(t, later, s.LastClaimAt)

	// accrual restarts from the claim
	_, err = Claim(s, pool, rate, scale, later)
	assert.Equal(t, core.ErrNoRewardsToClaim, err)

	pool.RewardBalance = number.Decimal("0.001")
	_, err = Claim(s, pool, rate, scale, later.Add(24*time.Hour))
	assert.Equal(t, core.ErrInsufficientFunds, err)
}

func TestUnstake(t *testing.T) {
	now := time.Now()

	s, err := NewStake("u1", 0, number.Decimal("100"), core.Lock30Days, now)
	require.Nil(t, err)

	pool := &core.StakingPool{TotalStaked: s.Amount}

	_, err = Unstake(s, pool, now.Add(29*24*time.Hour))
	assert.Equal(t, core.ErrLockNotExpired, err)

	// exactly at expiry passes
	payout, err := Unstake(s, pool, s.LockedUntil())
	require.Nil(t, err)
	assert.Equal(t, "100", payout.String())
	assert.Equal(t, false, s.Active)
	assert.Equal(t, true, pool.TotalStaked.IsZero())

	_, err = Unstake(s, pool, s.LockedUntil())
	assert.Equal(t, core.ErrStakeNotActive, err)
}

func TestEmergencyUnstake(t *testing.T) {
	now := time.Now()

	s, err := NewStake("u1", 0, number.Decimal("100"), core.Lock180Days, now)
	require.Nil(t, err)

	pool := &core.StakingPool{TotalStaked: s.Amount}

	payout, penalty, err := EmergencyUnstake(s, pool, 2000, now.Add(time.Hour))
	require.Nil(t, err)
	assert.Equal(t, "80", payout.String())
	assert.Equal(t, "20", penalty.String())
	assert.Equal(t, false, s.Active)
	assert.Equal(t, true, pool.TotalStaked.IsZero())

	_, _, err = EmergencyUnstake(s, pool, 2000, now.Add(time.Hour))
	assert.Equal(t, core.ErrStakeNotActive, err)
}

func TestEmergencyUnstakeAfterExpiry(t *testing.T) {
	now := time.Now()

	s, err := NewStake("u1", 0, number.Decimal("100"), core.Lock30Days, now)
	require.Nil(t, err)

	pool := &core.StakingPool{TotalStaked: s.Amount}

	_, _, err = EmergencyUnstake(s, pool, 2000, s.LockedUntil())
	assert.Equal(t, core.ErrUseRegularUnstake, err)
}
