package estable

import (
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/shopspring/decimal"
)

// AccruedYield simple interest between two touches
// accrued = principal * apy_bps/10000 * elapsed / seconds_per_year
func AccruedYield(principal decimal.Decimal, apyBps, elapsed, secondsPerYear int64) decimal.Decimal {
	if elapsed <= 0 || !principal.IsPositive() {
		return decimal.Zero
	}

	r := number.MulRate(principal, apyBps)
	return r.Mul(decimal.NewFromInt(elapsed)).Div(decimal.NewFromInt(secondsPerYear)).Truncate(number.MaxPrecision)
}

// AccountValue redeemable value of an account's shares
func AccountValue(v *core.Vault, a *core.VaultAccount) decimal.Decimal {
	if !a.Shares.IsPositive() || !v.TotalShares.IsPositive() {
		return decimal.Zero
	}

	value, err := number.Div(a.Shares.Mul(v.TotalAssets), v.TotalShares)
	if err != nil {
		return decimal.Zero
	}

	return value
}

// CurrentAPY boosted when the account's est stake reaches the threshold
func CurrentAPY(a *core.VaultAccount, cfg core.VaultConfig) int64 {
	if a != nil && a.EstStaked.GreaterThanOrEqual(cfg.EstStakeThreshold) {
		return cfg.BoostedAPYBps
	}

	return cfg.BaseAPYBps
}

// Accrue apply yield owed to the account since its last touch, growing
// the vault's total assets. Lazy: called at the top of every state
// changing operation so later share math uses fresh totals.
func Accrue(v *core.Vault, a *core.VaultAccount, cfg core.VaultConfig, now time.Time) decimal.Decimal {
	elapsed := now.Unix() - a.LastAccruedAt.Unix()
	value := AccountValue(v, a)

	accrued := AccruedYield(value, CurrentAPY(a, cfg), elapsed, cfg.SecondsPerYear)
	if accrued.IsPositive() {
		v.TotalAssets = v.TotalAssets.Add(accrued)
		v.UpdatedAt = now
	}

	a.LastAccruedAt = now
	a.UpdatedAt = now

	return accrued
}

// Deposit mint shares for a deposit. Accrual must already have been
// applied so existing holders are not diluted.
func Deposit(v *core.Vault, a *core.VaultAccount, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	if err := number.CheckRange(v.TotalAssets.Add(amount)); err != nil {
		return decimal.Zero, err
	}

	var shares decimal.Decimal
	if v.TotalShares.IsZero() {
		shares = amount
	} else {
		var err error
		shares, err = number.Div(amount.Mul(v.TotalShares), v.TotalAssets)
		if err != nil {
			return decimal.Zero, err
		}
	}

	v.TotalAssets = v.TotalAssets.Add(amount)
	v.TotalShares = v.TotalShares.Add(shares)
	v.UpdatedAt = now

	a.Shares = a.Shares.Add(shares)
	a.Principal = a.Principal.Add(amount)
	a.LastAccruedAt = now
	a.UpdatedAt = now

	return shares, nil
}

// Withdraw burn shares and pay out the proportional assets, truncated
// down so the vault never pays more than it holds.
func Withdraw(v *core.Vault, a *core.VaultAccount, shares decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	if !shares.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	if shares.GreaterThan(a.Shares) {
		return decimal.Zero, core.ErrInsufficientShares
	}

	amount, err := number.Div(shares.Mul(v.TotalAssets), v.TotalShares)
	if err != nil {
		return decimal.Zero, err
	}

	if amount.GreaterThan(v.TotalAssets) {
		amount = v.TotalAssets
	}

	remaining := a.Shares.Sub(shares)
	if remaining.IsZero() {
		a.Principal = decimal.Zero
	} else {
		kept, err := number.Div(a.Principal.Mul(remaining), a.Shares)
		if err != nil {
			return decimal.Zero, err
		}
		a.Principal = kept
	}

	a.Shares = remaining
	a.LastAccruedAt = now
	a.UpdatedAt = now

	v.TotalAssets = v.TotalAssets.Sub(amount)
	v.TotalShares = v.TotalShares.Sub(shares)
	v.UpdatedAt = now

	return amount, nil
}

// MoveEstStake move boost tokens in (positive) or out (negative is not
// allowed; callers pass the direction explicitly)
func MoveEstStake(a *core.VaultAccount, amount decimal.Decimal, out bool, now time.Time) error {
	if !amount.IsPositive() {
		return core.ErrInvalidAmount
	}

	if out {
		if amount.GreaterThan(a.EstStaked) {
			return core.ErrInsufficientFunds
		}
		a.EstStaked = a.EstStaked.Sub(amount)
	} else {
		if err := number.CheckRange(a.EstStaked.Add(amount)); err != nil {
			return err
		}
		a.EstStaked = a.EstStaked.Add(amount)
	}

	a.UpdatedAt = now
	return nil
}
