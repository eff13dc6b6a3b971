package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// PositionStatus position lifecycle
type PositionStatus int

const (
	// PositionStatusActive active
	PositionStatusActive PositionStatus = iota
	// PositionStatusLiquidated terminal, reached only from active
	PositionStatusLiquidated
	// PositionStatusClosed terminal, reached by full repayment
	PositionStatusClosed
)

func (s PositionStatus) String() string {
	switch s {
	case PositionStatusActive:
		return "active"
	case PositionStatusLiquidated:
		return "liquidated"
	case PositionStatusClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Position collateralized debt position.
//
// The health factor is fixed at creation: there is no price oracle in this
// system, so collateral value never drifts on its own.
type Position struct {
	ID           uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID      string          `sql:"size:36;unique_index:idx_positions_trace" json:"trace_id"`
	UserID       string          `sql:"size:36;index:idx_positions_user" json:"user_id"`
	Borrowed     decimal.Decimal `sql:"type:decimal(32,8)" json:"borrowed"`
	Collateral   decimal.Decimal `sql:"type:decimal(32,8)" json:"collateral"`
	HealthFactor decimal.Decimal `sql:"type:decimal(32,8)" json:"health_factor"`
	Status       PositionStatus  `sql:"default:0" json:"status"`
	Version      int64           `sql:"default:0" json:"version"`
	CreatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// LiquidationResult liquidate outcome
type LiquidationResult struct {
	PositionID uint64          `json:"position_id"`
	Penalty    decimal.Decimal `json:"penalty"`
	Seized     decimal.Decimal `json:"seized"`
}

// RepayResult repay outcome
type RepayResult struct {
	PositionID uint64          `json:"position_id"`
	Repaid     decimal.Decimal `json:"repaid"`
	Returned   decimal.Decimal `json:"returned"`
}

// IPositionStore position store interface
type IPositionStore interface {
	Create(ctx context.Context, tx *db.DB, position *Position) error
	Find(ctx context.Context, id uint64) (*Position, error)
	FindByUser(ctx context.Context, userID string) ([]*Position, error)
	ListActive(ctx context.Context) ([]*Position, error)
	CountActive(ctx context.Context) (int64, error)
	Update(ctx context.Context, tx *db.DB, position *Position, version int64) error
}

// ILendingService lending engine interface
type ILendingService interface {
	OpenBorrow(ctx context.Context, actor string, borrow, collateral decimal.Decimal, now time.Time) (*Position, error)
	Repay(ctx context.Context, actor string, positionID uint64, now time.Time) (*RepayResult, error)
	Liquidate(ctx context.Context, liquidator string, positionID uint64, now time.Time) (*LiquidationResult, error)
	Positions(ctx context.Context, actor string) ([]*Position, error)
}
