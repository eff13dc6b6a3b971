package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// StablecoinBalance per (user, symbol) balance. Created on first mint,
// never deleted; the balance may fall to zero.
type StablecoinBalance struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string          `sql:"size:36;unique_index:stablecoin_idx" json:"user_id"`
	Symbol    string          `sql:"size:20;unique_index:stablecoin_idx" json:"symbol"`
	Balance   decimal.Decimal `sql:"type:decimal(32,8)" json:"balance"`
	Version   int64           `sql:"default:0" json:"version"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// MintResult result of a mint operation
type MintResult struct {
	TraceID    string          `json:"trace_id"`
	Symbol     string          `json:"symbol"`
	Minted     decimal.Decimal `json:"minted"`
	Collateral decimal.Decimal `json:"collateral"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// RedeemResult result of a redeem operation
type RedeemResult struct {
	TraceID    string          `json:"trace_id"`
	Symbol     string          `json:"symbol"`
	Redeemed   decimal.Decimal `json:"redeemed"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// IStablecoinStore stablecoin balance store interface
type IStablecoinStore interface {
	Find(ctx context.Context, userID, symbol string) (*StablecoinBalance, error)
	FindByUser(ctx context.Context, userID string) ([]*StablecoinBalance, error)
	All(ctx context.Context) ([]*StablecoinBalance, error)
	Create(ctx context.Context, tx *db.DB, balance *StablecoinBalance) error
	Update(ctx context.Context, tx *db.DB, balance *StablecoinBalance, version int64) error
}

// IStablecoinService stablecoin engine interface
type IStablecoinService interface {
	Mint(ctx context.Context, actor, symbol string, amount, collateral decimal.Decimal, now time.Time) (*MintResult, error)
	Redeem(ctx context.Context, actor, symbol string, amount decimal.Decimal, now time.Time) (*RedeemResult, error)
	Balances(ctx context.Context, actor string) ([]*StablecoinBalance, error)
}
