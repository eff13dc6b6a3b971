package core

import (
	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Config estable node config
type Config struct {
	App        App              `json:"app"`
	DB         db.Config        `json:"db"`
	Stablecoin StablecoinConfig `json:"stablecoin"`
	Lending    LendingConfig    `json:"lending"`
	Staking    StakingConfig    `json:"staking"`
	Vault      VaultConfig      `json:"vault"`
	Governance GovernanceConfig `json:"governance"`
	Admins     []string         `json:"admins"`
}

// IsAdmin check if the user is admin
func (c *Config) IsAdmin(userID string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == userID {
			return true
		}
	}

	return false
}

// App app config
type App struct {
	Location string `json:"location"`
	// SystemUserID the actor workers run as
	SystemUserID string `json:"system_user_id"`
}

// StablecoinConfig peg table and mint parameters.
//
// Peg rates follow the 100 = 1.0x convention: a symbol pegged 1:1 to the
// base currency carries the rate 100.
type StablecoinConfig struct {
	Pegs               map[string]int64 `json:"pegs"`
	CollateralRatioBps int64            `json:"collateral_ratio_bps"`
}

// PegRate peg rate of symbol, zero if the symbol is unknown
func (c *StablecoinConfig) PegRate(symbol string) int64 {
	return c.Pegs[symbol]
}

// LendingConfig collateralized position parameters
type LendingConfig struct {
	MinCollateralRatioBps int64 `json:"min_collateral_ratio_bps"`
	LiquidationPenaltyBps int64 `json:"liquidation_penalty_bps"`
}

// StakingConfig lock staking parameters.
//
// RewardScale is the divisor applied to reward_rate; reward_rate values are
// expressed as tokens per second per staked token scaled by this constant.
type StakingConfig struct {
	RewardScale       int64           `json:"reward_scale"`
	DefaultRewardRate decimal.Decimal `json:"default_reward_rate"`
	EmergencyFeeBps   int64           `json:"emergency_fee_bps"`
}

// VaultConfig share vault parameters
type VaultConfig struct {
	BaseAPYBps        int64           `json:"base_apy_bps"`
	BoostedAPYBps     int64           `json:"boosted_apy_bps"`
	EstStakeThreshold decimal.Decimal `json:"est_stake_threshold"`
	SecondsPerYear    int64           `json:"seconds_per_year"`
}

// GovernanceConfig vote escrow parameters
type GovernanceConfig struct {
	EarlyExitFeeBps int64           `json:"early_exit_fee_bps"`
	MinVotePower    decimal.Decimal `json:"min_vote_power"`
	MinLockMonths   int64           `json:"min_lock_months"`
	MaxLockMonths   int64           `json:"max_lock_months"`
}
