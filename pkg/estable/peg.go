package estable

import (
	"estable/core"
	"estable/pkg/number"

	"github.com/shopspring/decimal"
)

// RequiredCollateral collateral needed to mint amount at the given peg
// rate and overcollateralization ratio
// required = amount * peg_rate/100 * ratio_bps/10000
func RequiredCollateral(amount decimal.Decimal, pegRate, ratioBps int64) decimal.Decimal {
	return number.MulRate(number.MulFactor(amount, pegRate), ratioBps)
}

// MintedAmount stablecoin amount minted for the requested amount
// minted = amount * peg_rate/100
func MintedAmount(amount decimal.Decimal, pegRate int64) decimal.Decimal {
	return number.MulFactor(amount, pegRate)
}

// ComputeMint validate a mint request and return (minted, required
// collateral)
func ComputeMint(amount, collateral decimal.Decimal, pegRate, ratioBps int64) (decimal.Decimal, decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, decimal.Zero, core.ErrInvalidAmount
	}

	required := RequiredCollateral(amount, pegRate, ratioBps)
	if collateral.LessThan(required) {
		return decimal.Zero, decimal.Zero, core.ErrInsufficientCollateral
	}

	minted := MintedAmount(amount, pegRate)
	if err := number.CheckRange(minted); err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	return minted, required, nil
}

// ComputeRedeem validate a redeem request and return the new balance
func ComputeRedeem(balance, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, core.ErrInvalidAmount
	}

	if amount.GreaterThan(balance) {
		return decimal.Zero, core.ErrInsufficientFunds
	}

	return balance.Sub(amount), nil
}
