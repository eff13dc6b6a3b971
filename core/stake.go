package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Supported lock periods, in seconds
const (
	Lock30Days  int64 = 30 * 24 * 60 * 60
	Lock90Days  int64 = 90 * 24 * 60 * 60
	Lock180Days int64 = 180 * 24 * 60 * 60
)

// Stake time locked stake. Boost follows the 100 = 1.0x convention and is
// frozen at creation.
type Stake struct {
	ID          uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID      string          `sql:"size:36;unique_index:stake_idx" json:"user_id"`
	StakeIndex  int64           `sql:"unique_index:stake_idx" json:"stake_index"`
	Amount      decimal.Decimal `sql:"type:decimal(32,8)" json:"amount"`
	LockPeriod  int64           `json:"lock_period"`
	Boost       int64           `json:"boost"`
	Active      bool            `sql:"default:1" json:"active"`
	LastClaimAt time.Time       `json:"last_claim_at"`
	Version     int64           `sql:"default:0" json:"version"`
	CreatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// LockedUntil moment the lock expires
func (s *Stake) LockedUntil() time.Time {
	return s.CreatedAt.Add(time.Duration(s.LockPeriod) * time.Second)
}

// StakingPool shared staking aggregate. RewardBalance must be pre funded
// by an external actor before claims can pay out.
type StakingPool struct {
	ID            uint64          `sql:"PRIMARY_KEY" json:"id"`
	TotalStaked   decimal.Decimal `sql:"type:decimal(32,8)" json:"total_staked"`
	RewardBalance decimal.Decimal `sql:"type:decimal(32,8)" json:"reward_balance"`
	Version       int64           `sql:"default:0" json:"version"`
	UpdatedAt     time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// StakeReward per stake reward summary
type StakeReward struct {
	StakeIndex int64           `json:"stake_index"`
	Amount     decimal.Decimal `json:"amount"`
	Boost      int64           `json:"boost"`
	Pending    decimal.Decimal `json:"pending"`
}

// UnstakeResult unstake outcome
type UnstakeResult struct {
	StakeIndex int64           `json:"stake_index"`
	Payout     decimal.Decimal `json:"payout"`
	Penalty    decimal.Decimal `json:"penalty"`
}

// IStakeStore stake store interface
type IStakeStore interface {
	Create(ctx context.Context, tx *db.DB, stake *Stake) error
	Find(ctx context.Context, userID string, index int64) (*Stake, error)
	FindByUser(ctx context.Context, userID string) ([]*Stake, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, tx *db.DB, stake *Stake, version int64) error
	Pool(ctx context.Context) (*StakingPool, error)
	UpdatePool(ctx context.Context, tx *db.DB, pool *StakingPool, version int64) error
}

// IStakingService staking engine interface
type IStakingService interface {
	Stake(ctx context.Context, actor string, amount decimal.Decimal, lockPeriod int64, now time.Time) (*Stake, error)
	Unstake(ctx context.Context, actor string, index int64, now time.Time) (*UnstakeResult, error)
	EmergencyUnstake(ctx context.Context, actor string, index int64, now time.Time) (*UnstakeResult, error)
	PendingRewards(ctx context.Context, actor string, index int64, now time.Time) (decimal.Decimal, error)
	ClaimRewards(ctx context.Context, actor string, index int64, now time.Time) (decimal.Decimal, error)
	Rewards(ctx context.Context, actor string, now time.Time) ([]*StakeReward, error)
	// SetRewardRate admin only; returns the previous value for audit
	SetRewardRate(ctx context.Context, actor string, rate decimal.Decimal) (decimal.Decimal, error)
	RewardRate(ctx context.Context) (decimal.Decimal, error)
}
