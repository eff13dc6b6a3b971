package core

import (
	"github.com/shopspring/decimal"
)

// ActionType operation tag on commands and transaction records
type ActionType int

const (
	// ActionTypeMint mint stablecoin
	ActionTypeMint ActionType = iota + 1
	// ActionTypeRedeem redeem stablecoin
	ActionTypeRedeem
	// ActionTypeOpenBorrow open a collateralized position
	ActionTypeOpenBorrow
	// ActionTypeRepay full repay
	ActionTypeRepay
	// ActionTypeLiquidate liquidate a position
	ActionTypeLiquidate
	// ActionTypeStake lock stake
	ActionTypeStake
	// ActionTypeUnstake unstake after lock expiry
	ActionTypeUnstake
	// ActionTypeEmergencyUnstake unstake before lock expiry with penalty
	ActionTypeEmergencyUnstake
	// ActionTypeClaimRewards claim staking rewards
	ActionTypeClaimRewards
	// ActionTypeVaultDeposit vault deposit
	ActionTypeVaultDeposit
	// ActionTypeVaultWithdraw vault withdraw
	ActionTypeVaultWithdraw
	// ActionTypeStakeEst stake boost tokens into a vault
	ActionTypeStakeEst
	// ActionTypeUnstakeEst withdraw boost tokens from a vault
	ActionTypeUnstakeEst
	// ActionTypeGovStake stake for governance
	ActionTypeGovStake
	// ActionTypeGovUnstake unstake governance stake
	ActionTypeGovUnstake
	// ActionTypeVote vote on a proposal
	ActionTypeVote
	// ActionTypeYieldAccrued vault yield accrual
	ActionTypeYieldAccrued
	// ActionTypeSeizeCollateral collateral moved to treasury
	ActionTypeSeizeCollateral
)

func (a ActionType) String() string {
	switch a {
	case ActionTypeMint:
		return "mint"
	case ActionTypeRedeem:
		return "redeem"
	case ActionTypeOpenBorrow:
		return "borrow"
	case ActionTypeRepay:
		return "repay"
	case ActionTypeLiquidate:
		return "liquidate"
	case ActionTypeStake:
		return "stake"
	case ActionTypeUnstake:
		return "unstake"
	case ActionTypeEmergencyUnstake:
		return "emergency_unstake"
	case ActionTypeClaimRewards:
		return "claim_rewards"
	case ActionTypeVaultDeposit:
		return "vault_deposit"
	case ActionTypeVaultWithdraw:
		return "vault_withdraw"
	case ActionTypeStakeEst:
		return "stake_est"
	case ActionTypeUnstakeEst:
		return "unstake_est"
	case ActionTypeGovStake:
		return "gov_stake"
	case ActionTypeGovUnstake:
		return "gov_unstake"
	case ActionTypeVote:
		return "vote"
	case ActionTypeYieldAccrued:
		return "yield_accrued"
	case ActionTypeSeizeCollateral:
		return "seize_collateral"
	default:
		return "unknown"
	}
}

// Command closed set of operations accepted by the dispatcher. Every
// variant carries the acting user explicitly; engines verify ownership
// themselves instead of trusting upstream middleware.
type Command interface {
	Action() ActionType
	Who() string
}

// MintCommand mint stablecoin against collateral
type MintCommand struct {
	Actor      string          `json:"actor"`
	Symbol     string          `json:"symbol"`
	Amount     decimal.Decimal `json:"amount"`
	Collateral decimal.Decimal `json:"collateral"`
}

// RedeemCommand redeem stablecoin
type RedeemCommand struct {
	Actor  string          `json:"actor"`
	Symbol string          `json:"symbol"`
	Amount decimal.Decimal `json:"amount"`
}

// OpenBorrowCommand open a collateralized position
type OpenBorrowCommand struct {
	Actor      string          `json:"actor"`
	Amount     decimal.Decimal `json:"amount"`
	Collateral decimal.Decimal `json:"collateral"`
}

// RepayCommand fully repay a position
type RepayCommand struct {
	Actor      string `json:"actor"`
	PositionID uint64 `json:"position_id"`
}

// LiquidateCommand liquidate an unhealthy position
type LiquidateCommand struct {
	Actor      string `json:"actor"`
	PositionID uint64 `json:"position_id"`
}

// StakeCommand lock stake
type StakeCommand struct {
	Actor      string          `json:"actor"`
	Amount     decimal.Decimal `json:"amount"`
	LockPeriod int64           `json:"lock_period"`
}

// UnstakeCommand unstake after lock expiry
type UnstakeCommand struct {
	Actor      string `json:"actor"`
	StakeIndex int64  `json:"stake_index"`
}

// EmergencyUnstakeCommand unstake before expiry, 20% penalty
type EmergencyUnstakeCommand struct {
	Actor      string `json:"actor"`
	StakeIndex int64  `json:"stake_index"`
}

// ClaimRewardsCommand claim accrued staking rewards
type ClaimRewardsCommand struct {
	Actor      string `json:"actor"`
	StakeIndex int64  `json:"stake_index"`
}

// VaultDepositCommand deposit into a vault
type VaultDepositCommand struct {
	Actor   string          `json:"actor"`
	VaultID uint64          `json:"vault_id"`
	Symbol  string          `json:"symbol"`
	Amount  decimal.Decimal `json:"amount"`
}

// VaultWithdrawCommand burn shares for assets
type VaultWithdrawCommand struct {
	Actor   string          `json:"actor"`
	VaultID uint64          `json:"vault_id"`
	Shares  decimal.Decimal `json:"shares"`
}

// StakeEstCommand stake boost tokens into a vault
type StakeEstCommand struct {
	Actor   string          `json:"actor"`
	VaultID uint64          `json:"vault_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// UnstakeEstCommand withdraw boost tokens from a vault
type UnstakeEstCommand struct {
	Actor   string          `json:"actor"`
	VaultID uint64          `json:"vault_id"`
	Amount  decimal.Decimal `json:"amount"`
}

// GovStakeCommand stake for governance power
type GovStakeCommand struct {
	Actor      string          `json:"actor"`
	Amount     decimal.Decimal `json:"amount"`
	LockMonths int64           `json:"lock_months"`
}

// GovUnstakeCommand withdraw a governance stake
type GovUnstakeCommand struct {
	Actor   string `json:"actor"`
	StakeID uint64 `json:"stake_id"`
}

// VoteCommand vote on a proposal
type VoteCommand struct {
	Actor      string     `json:"actor"`
	ProposalID uint64     `json:"proposal_id"`
	Choice     VoteChoice `json:"choice"`
}

func (c MintCommand) Action() ActionType             { return ActionTypeMint }
func (c RedeemCommand) Action() ActionType           { return ActionTypeRedeem }
func (c OpenBorrowCommand) Action() ActionType       { return ActionTypeOpenBorrow }
func (c RepayCommand) Action() ActionType            { return ActionTypeRepay }
func (c LiquidateCommand) Action() ActionType        { return ActionTypeLiquidate }
func (c StakeCommand) Action() ActionType            { return ActionTypeStake }
func (c UnstakeCommand) Action() ActionType          { return ActionTypeUnstake }
func (c EmergencyUnstakeCommand) Action() ActionType { return ActionTypeEmergencyUnstake }
func (c ClaimRewardsCommand) Action() ActionType     { return ActionTypeClaimRewards }
func (c VaultDepositCommand) Action() ActionType     { return ActionTypeVaultDeposit }
func (c VaultWithdrawCommand) Action() ActionType    { return ActionTypeVaultWithdraw }
func (c StakeEstCommand) Action() ActionType         { return ActionTypeStakeEst }
func (c UnstakeEstCommand) Action() ActionType       { return ActionTypeUnstakeEst }
func (c GovStakeCommand) Action() ActionType         { return ActionTypeGovStake }
func (c GovUnstakeCommand) Action() ActionType       { return ActionTypeGovUnstake }
func (c VoteCommand) Action() ActionType             { return ActionTypeVote }

func (c MintCommand) Who() string             { return c.Actor }
func (c RedeemCommand) Who() string           { return c.Actor }
func (c OpenBorrowCommand) Who() string       { return c.Actor }
func (c RepayCommand) Who() string            { return c.Actor }
func (c LiquidateCommand) Who() string        { return c.Actor }
func (c StakeCommand) Who() string            { return c.Actor }
func (c UnstakeCommand) Who() string          { return c.Actor }
func (c EmergencyUnstakeCommand) Who() string { return c.Actor }
func (c ClaimRewardsCommand) Who() string     { return c.Actor }
func (c VaultDepositCommand) Who() string     { return c.Actor }
func (c VaultWithdrawCommand) Who() string    { return c.Actor }
func (c StakeEstCommand) Who() string         { return c.Actor }
func (c UnstakeEstCommand) Who() string       { return c.Actor }
func (c GovStakeCommand) Who() string         { return c.Actor }
func (c GovUnstakeCommand) Who() string       { return c.Actor }
func (c VoteCommand) Who() string             { return c.Actor }
