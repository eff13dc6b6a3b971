package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// RevenueType revenue source
type RevenueType string

const (
	// RevenueTypeLiquidationPenalty liquidation penalty
	RevenueTypeLiquidationPenalty RevenueType = "liquidation_penalty"
	// RevenueTypeEarlyUnstakeFee governance early exit fee
	RevenueTypeEarlyUnstakeFee RevenueType = "early_unstake_fee"
	// RevenueTypeSwapFee swap fee
	RevenueTypeSwapFee RevenueType = "swap_fee"
	// RevenueTypeBorrowInterest borrow interest
	RevenueTypeBorrowInterest RevenueType = "borrow_interest"
)

// Revenue append-only revenue record. Never mutated or deleted.
type Revenue struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Type      RevenueType     `sql:"size:32;index:idx_revenues_type" json:"type"`
	Amount    decimal.Decimal `sql:"type:decimal(32,8)" json:"amount"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// Treasury collateral seized from liquidated positions
type Treasury struct {
	ID         uint64          `sql:"PRIMARY_KEY" json:"id"`
	Collateral decimal.Decimal `sql:"type:decimal(32,8)" json:"collateral"`
	Version    int64           `sql:"default:0" json:"version"`
	UpdatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IRevenueStore revenue store interface
type IRevenueStore interface {
	Create(ctx context.Context, tx *db.DB, revenue *Revenue) error
	List(ctx context.Context, limit int) ([]*Revenue, error)
	SumByType(ctx context.Context) (map[RevenueType]decimal.Decimal, error)
}

// ITreasuryStore treasury store interface
type ITreasuryStore interface {
	Get(ctx context.Context) (*Treasury, error)
	Update(ctx context.Context, tx *db.DB, treasury *Treasury, version int64) error
}
