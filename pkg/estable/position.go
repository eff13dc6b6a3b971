package estable

import (
	"time"

	"estable/core"
	"estable/pkg/number"

	"github.com/shopspring/decimal"
)

var one = decimal.New(1, 0)

// HealthFactor (collateral / borrowed) normalized by the minimum required
// ratio. A position opened at exactly the minimum ratio therefore starts
// at 1.0, one tick above the liquidation cutoff; this stays until product
// says otherwise.
func HealthFactor(collateral, borrowed decimal.Decimal, minRatioBps int64) (decimal.Decimal, error) {
	ratio, err := number.Div(collateral, borrowed)
	if err != nil {
		return decimal.Zero, err
	}

	return number.Div(ratio, decimal.NewFromInt(minRatioBps).Div(decimal.NewFromInt(10000)))
}

// OpenPosition validate and build a new position. There is no oracle, so
// the health factor never changes after creation.
func OpenPosition(userID, traceID string, borrow, collateral decimal.Decimal, cfg core.LendingConfig, now time.Time) (*core.Position, error) {
	if !borrow.IsPositive() || !collateral.IsPositive() {
		return nil, core.ErrInvalidAmount
	}

	if err := number.CheckRange(borrow); err != nil {
		return nil, err
	}

	required := number.MulRate(borrow, cfg.MinCollateralRatioBps)
	if collateral.LessThan(required) {
		return nil, core.ErrInsufficientCollateral
	}

	hf, err := HealthFactor(collateral, borrow, cfg.MinCollateralRatioBps)
	if err != nil {
		return nil, err
	}

	return &core.Position{
		TraceID:      traceID,
		UserID:       userID,
		Borrowed:     borrow,
		Collateral:   collateral,
		HealthFactor: hf,
		Status:       core.PositionStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsLiquidatable health factor strictly below 1.0
func IsLiquidatable(p *core.Position) bool {
	return p.Status == core.PositionStatusActive && p.HealthFactor.LessThan(one)
}

// Liquidate mark the position liquidated and compute the penalty. The
// seized collateral is returned for the caller to credit to the treasury.
func Liquidate(p *core.Position, cfg core.LendingConfig, now time.Time) (penalty, seized decimal.Decimal, err error) {
	if !IsLiquidatable(p) {
		return decimal.Zero, decimal.Zero, core.ErrNotLiquidatable
	}

	penalty = number.MulRate(p.Borrowed, cfg.LiquidationPenaltyBps)
	seized = p.Collateral

	p.Status = core.PositionStatusLiquidated
	p.UpdatedAt = now

	return penalty, seized, nil
}

// Repay close the position on full repayment and return the collateral
func Repay(p *core.Position, now time.Time) (decimal.Decimal, error) {
	if p.Status != core.PositionStatusActive {
		return decimal.Zero, core.ErrNotFound
	}

	returned := p.Collateral

	p.Status = core.PositionStatusClosed
	p.UpdatedAt = now

	return returned, nil
}
