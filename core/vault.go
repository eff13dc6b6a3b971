package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

// Vault share based vault aggregate
type Vault struct {
	ID          uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Name        string          `sql:"size:64" json:"name"`
	TotalAssets decimal.Decimal `sql:"type:decimal(32,8)" json:"total_assets"`
	TotalShares decimal.Decimal `sql:"type:decimal(32,8)" json:"total_shares"`
	Version     int64           `sql:"default:0" json:"version"`
	CreatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// VaultAccount per (vault, user) state. EstStaked gates the boosted APY
// only; it earns no yield itself.
type VaultAccount struct {
	ID            uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	VaultID       uint64          `sql:"unique_index:vault_account_idx" json:"vault_id"`
	UserID        string          `sql:"size:36;unique_index:vault_account_idx" json:"user_id"`
	Shares        decimal.Decimal `sql:"type:decimal(32,8)" json:"shares"`
	Principal     decimal.Decimal `sql:"type:decimal(32,8)" json:"principal"`
	EstStaked     decimal.Decimal `sql:"type:decimal(32,8)" json:"est_staked"`
	LastAccruedAt time.Time       `json:"last_accrued_at"`
	Version       int64           `sql:"default:0" json:"version"`
	CreatedAt     time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// VaultAsset allow list entry. ExternalAPY is bookkeeping only; it never
// feeds the vault's own accrual math.
type VaultAsset struct {
	ID          uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	VaultID     uint64    `sql:"unique_index:vault_asset_idx" json:"vault_id"`
	Symbol      string    `sql:"size:20;unique_index:vault_asset_idx" json:"symbol"`
	ExternalAPY int64     `json:"external_apy"`
	CreatedAt   time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// YieldRecord emitted whenever accrual is applied
type YieldRecord struct {
	ID        uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	VaultID   uint64          `sql:"index:idx_yields_vault" json:"vault_id"`
	UserID    string          `sql:"size:36;index:idx_yields_user" json:"user_id"`
	Amount    decimal.Decimal `sql:"type:decimal(32,8)" json:"amount"`
	CreatedAt time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// DepositResult vault deposit outcome
type DepositResult struct {
	VaultID uint64          `json:"vault_id"`
	Shares  decimal.Decimal `json:"shares"`
	Accrued decimal.Decimal `json:"accrued"`
}

// WithdrawResult vault withdraw outcome
type WithdrawResult struct {
	VaultID uint64          `json:"vault_id"`
	Amount  decimal.Decimal `json:"amount"`
	Accrued decimal.Decimal `json:"accrued"`
}

// IVaultStore vault store interface
type IVaultStore interface {
	Find(ctx context.Context, id uint64) (*Vault, error)
	All(ctx context.Context) ([]*Vault, error)
	Save(ctx context.Context, vault *Vault) error
	Update(ctx context.Context, tx *db.DB, vault *Vault, version int64) error

	FindAccount(ctx context.Context, vaultID uint64, userID string) (*VaultAccount, error)
	ListAccounts(ctx context.Context, vaultID uint64) ([]*VaultAccount, error)
	CreateAccount(ctx context.Context, tx *db.DB, account *VaultAccount) error
	UpdateAccount(ctx context.Context, tx *db.DB, account *VaultAccount, version int64) error

	FindAsset(ctx context.Context, vaultID uint64, symbol string) (*VaultAsset, error)
	ListAssets(ctx context.Context, vaultID uint64) ([]*VaultAsset, error)
	CreateAsset(ctx context.Context, tx *db.DB, asset *VaultAsset) error
}

// IYieldStore yield record store interface
type IYieldStore interface {
	Create(ctx context.Context, tx *db.DB, record *YieldRecord) error
	Sum(ctx context.Context) (decimal.Decimal, error)
	List(ctx context.Context, userID string, limit int) ([]*YieldRecord, error)
}

// IVaultService vault engine interface
type IVaultService interface {
	Deposit(ctx context.Context, actor string, vaultID uint64, symbol string, amount decimal.Decimal, now time.Time) (*DepositResult, error)
	Withdraw(ctx context.Context, actor string, vaultID uint64, shares decimal.Decimal, now time.Time) (*WithdrawResult, error)
	StakeEst(ctx context.Context, actor string, vaultID uint64, amount decimal.Decimal, now time.Time) (*VaultAccount, error)
	UnstakeEst(ctx context.Context, actor string, vaultID uint64, amount decimal.Decimal, now time.Time) (*VaultAccount, error)
	CurrentAPY(ctx context.Context, vaultID uint64, userID string) (int64, error)
	// Accrue applies pending yield for one account; used by the accrual
	// worker so records keep flowing without user interaction
	Accrue(ctx context.Context, vaultID uint64, userID string, now time.Time) (decimal.Decimal, error)
	// AddAsset admin only
	AddAsset(ctx context.Context, actor string, vaultID uint64, symbol string, externalAPY int64) (*VaultAsset, error)
	SupportedAssets(ctx context.Context, vaultID uint64) ([]*VaultAsset, error)
}
