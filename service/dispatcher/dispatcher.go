package dispatcher

import (
	"context"
	"fmt"
	"time"

	"estable/core"
)

// Dispatcher routes commands to the engine that owns them. The command
// set is closed; an unhandled variant is a programming error and panics
// at dispatch rather than failing silently.
type Dispatcher struct {
	stablecoins core.IStablecoinService
	lending     core.ILendingService
	staking     core.IStakingService
	vaults      core.IVaultService
	governance  core.IGovernanceService
}

// New new dispatcher
func New(
	stablecoins core.IStablecoinService,
	lending core.ILendingService,
	staking core.IStakingService,
	vaults core.IVaultService,
	governance core.IGovernanceService,
) *Dispatcher {
	return &Dispatcher{
		stablecoins: stablecoins,
		lending:     lending,
		staking:     staking,
		vaults:      vaults,
		governance:  governance,
	}
}

// Dispatch execute one command at the given time and return the engine's
// result value
func (d *Dispatcher) Dispatch(ctx context.Context, cmd core.Command, now time.Time) (interface{}, error) {
	switch c := cmd.(type) {
	case core.MintCommand:
		return d.stablecoins.Mint(ctx, c.Actor, c.Symbol, c.Amount, c.Collateral, now)
	case core.RedeemCommand:
		return d.stablecoins.Redeem(ctx, c.Actor, c.Symbol, c.Amount, now)
	case core.OpenBorrowCommand:
		return d.lending.OpenBorrow(ctx, c.Actor, c.Amount, c.Collateral, now)
	case core.RepayCommand:
		return d.lending.Repay(ctx, c.Actor, c.PositionID, now)
	case core.LiquidateCommand:
		return d.lending.Liquidate(ctx, c.Actor, c.PositionID, now)
	case core.StakeCommand:
		return d.staking.Stake(ctx, c.Actor, c.Amount, c.LockPeriod, now)
	case core.UnstakeCommand:
		return d.staking.Unstake(ctx, c.Actor, c.StakeIndex, now)
	case core.EmergencyUnstakeCommand:
		return d.staking.EmergencyUnstake(ctx, c.Actor, c.StakeIndex, now)
	case core.ClaimRewardsCommand:
		return d.staking.ClaimRewards(ctx, c.Actor, c.StakeIndex, now)
	case core.VaultDepositCommand:
		return d.vaults.Deposit(ctx, c.Actor, c.VaultID, c.Symbol, c.Amount, now)
	case core.VaultWithdrawCommand:
		return d.vaults.Withdraw(ctx, c.Actor, c.VaultID, c.Shares, now)
	case core.StakeEstCommand:
		return d.vaults.StakeEst(ctx, c.Actor, c.VaultID, c.Amount, now)
	case core.UnstakeEstCommand:
		return d.vaults.UnstakeEst(ctx, c.Actor, c.VaultID, c.Amount, now)
	case core.GovStakeCommand:
		return d.governance.Stake(ctx, c.Actor, c.Amount, c.LockMonths, now)
	case core.GovUnstakeCommand:
		return d.governance.Unstake(ctx, c.Actor, c.StakeID, now)
	case core.VoteCommand:
		return d.governance.Vote(ctx, c.Actor, c.ProposalID, c.Choice, now)
	default:
		panic(fmt.Sprintf("dispatch: unhandled command %T", cmd))
	}
}
