package number

import (
	"estable/core"

	"github.com/shopspring/decimal"
)

// MaxPrecision decimal places kept on monetary quantities
const MaxPrecision int32 = 8

var (
	bpUnit     = decimal.NewFromInt(10000)
	factorUnit = decimal.NewFromInt(100)

	// maxAmount upper bound for any monetary quantity. Values beyond it
	// fail closed instead of flowing into the ledger.
	maxAmount = decimal.New(1, 24)
)

// Decimal parse a decimal literal, ignoring errors
func Decimal(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// MulRate amount * bps / 10000, truncated down
func MulRate(amount decimal.Decimal, bps int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(bps)).Div(bpUnit).Truncate(MaxPrecision)
}

// MulFactor amount * factor / 100, truncated down.
//
// Factors follow the 100 = 1.0x convention used by peg rates and boost
// multipliers.
func MulFactor(amount decimal.Decimal, factor int64) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(factor)).Div(factorUnit).Truncate(MaxPrecision)
}

// Div amount / divisor, truncated down
func Div(amount, divisor decimal.Decimal) (decimal.Decimal, error) {
	if divisor.IsZero() {
		return decimal.Zero, core.ErrDivisionByZero
	}

	return amount.Div(divisor).Truncate(MaxPrecision), nil
}

// CheckRange fail closed when a computed quantity leaves the representable
// range
func CheckRange(amount decimal.Decimal) error {
	if amount.Abs().GreaterThan(maxAmount) {
		return core.ErrArithmeticOverflow
	}

	return nil
}
