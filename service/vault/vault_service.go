package vault

import (
	"context"
	"time"

	"estable/core"
	"estable/pkg/estable"
	"estable/pkg/id"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
)

type vaultService struct {
	db           *db.DB
	vaults       core.IVaultStore
	yields       core.IYieldStore
	transactions core.ITransactionStore
	cfg          core.VaultConfig
	system       *core.Config
}

// New new vault service
func New(
	db *db.DB,
	vaults core.IVaultStore,
	yields core.IYieldStore,
	transactions core.ITransactionStore,
	system *core.Config,
) core.IVaultService {
	return &vaultService{
		db:           db,
		vaults:       vaults,
		yields:       yields,
		transactions: transactions,
		cfg:          system.Vault,
		system:       system,
	}
}

func (s *vaultService) Deposit(ctx context.Context, actor string, vaultID uint64, symbol string, amount decimal.Decimal, now time.Time) (*core.DepositResult, error) {
	log := logger.FromContext(ctx).WithField("service", "vault")

	vault, account, err := s.loadVault(ctx, vaultID, actor, now)
	if err != nil {
		return nil, err
	}

	// every deposit settles in an admitted asset
	if symbol == "" {
		return nil, core.ErrUnsupportedAsset
	}

	if _, err := s.vaults.FindAsset(ctx, vaultID, symbol); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrUnsupportedAsset
		}
		return nil, err
	}

	vaultVersion, accountVersion := vault.Version, account.Version

	accrued := estable.Accrue(vault, account, s.cfg, now)
	shares, err := estable.Deposit(vault, account, amount, now)
	if err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.saveVault(ctx, tx, vault, account, vaultVersion, accountVersion); err != nil {
			return err
		}

		if err := s.recordYield(ctx, tx, vault, account, accrued, now); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("vault_id", vault.ID)
		extra.Put("shares", shares)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeVaultDeposit, id.GenTraceID(), actor, symbol, amount, extra))
	}); err != nil {
		log.WithError(err).Errorln("deposit failed")
		return nil, err
	}

	return &core.DepositResult{
		VaultID: vault.ID,
		Shares:  shares,
		Accrued: accrued,
	}, nil
}

func (s *vaultService) Withdraw(ctx context.Context, actor string, vaultID uint64, shares decimal.Decimal, now time.Time) (*core.WithdrawResult, error) {
	log := logger.FromContext(ctx).WithField("service", "vault")

	vault, account, err := s.loadVault(ctx, vaultID, actor, now)
	if err != nil {
		return nil, err
	}

	if account.ID == 0 {
		return nil, core.ErrInsufficientShares
	}

	vaultVersion, accountVersion := vault.Version, account.Version

	accrued := estable.Accrue(vault, account, s.cfg, now)
	amount, err := estable.Withdraw(vault, account, shares, now)
	if err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.saveVault(ctx, tx, vault, account, vaultVersion, accountVersion); err != nil {
			return err
		}

		if err := s.recordYield(ctx, tx, vault, account, accrued, now); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("vault_id", vault.ID)
		extra.Put("shares", shares)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeVaultWithdraw, id.GenTraceID(), actor, "", amount, extra))
	}); err != nil {
		log.WithError(err).Errorln("withdraw failed")
		return nil, err
	}

	return &core.WithdrawResult{
		VaultID: vault.ID,
		Amount:  amount,
		Accrued: accrued,
	}, nil
}

func (s *vaultService) StakeEst(ctx context.Context, actor string, vaultID uint64, amount decimal.Decimal, now time.Time) (*core.VaultAccount, error) {
	return s.moveEst(ctx, actor, vaultID, amount, false, now)
}

func (s *vaultService) UnstakeEst(ctx context.Context, actor string, vaultID uint64, amount decimal.Decimal, now time.Time) (*core.VaultAccount, error) {
	return s.moveEst(ctx, actor, vaultID, amount, true, now)
}

func (s *vaultService) moveEst(ctx context.Context, actor string, vaultID uint64, amount decimal.Decimal, out bool, now time.Time) (*core.VaultAccount, error) {
	log := logger.FromContext(ctx).WithField("service", "vault")

	vault, account, err := s.loadVault(ctx, vaultID, actor, now)
	if err != nil {
		return nil, err
	}

	vaultVersion, accountVersion := vault.Version, account.Version

	// settle yield at the old rate before the boost flag can flip
	accrued := estable.Accrue(vault, account, s.cfg, now)

	if err := estable.MoveEstStake(account, amount, out, now); err != nil {
		return nil, err
	}

	action := core.ActionTypeStakeEst
	if out {
		action = core.ActionTypeUnstakeEst
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.saveVault(ctx, tx, vault, account, vaultVersion, accountVersion); err != nil {
			return err
		}

		if err := s.recordYield(ctx, tx, vault, account, accrued, now); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("vault_id", vault.ID)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(action, id.GenTraceID(), actor, "", amount, extra))
	}); err != nil {
		log.WithError(err).Errorln("est stake failed")
		return nil, err
	}

	return account, nil
}

func (s *vaultService) CurrentAPY(ctx context.Context, vaultID uint64, userID string) (int64, error) {
	account, err := s.vaults.FindAccount(ctx, vaultID, userID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return s.cfg.BaseAPYBps, nil
		}
		return 0, err
	}

	return estable.CurrentAPY(account, s.cfg), nil
}

func (s *vaultService) Accrue(ctx context.Context, vaultID uint64, userID string, now time.Time) (decimal.Decimal, error) {
	log := logger.FromContext(ctx).WithField("service", "vault")

	vault, account, err := s.loadVault(ctx, vaultID, userID, now)
	if err != nil {
		return decimal.Zero, err
	}

	if account.ID == 0 {
		return decimal.Zero, nil
	}

	vaultVersion, accountVersion := vault.Version, account.Version

	accrued := estable.Accrue(vault, account, s.cfg, now)

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.saveVault(ctx, tx, vault, account, vaultVersion, accountVersion); err != nil {
			return err
		}

		if err := s.recordYield(ctx, tx, vault, account, accrued, now); err != nil {
			return err
		}

		if !accrued.IsPositive() {
			return nil
		}

		extra := core.NewTransactionExtra()
		extra.Put("vault_id", vault.ID)

		return s.transactions.Create(ctx, tx, core.BuildTransaction(core.ActionTypeYieldAccrued, id.GenTraceID(), userID, "", accrued, extra))
	}); err != nil {
		log.WithError(err).Errorln("accrue failed")
		return decimal.Zero, err
	}

	return accrued, nil
}

func (s *vaultService) AddAsset(ctx context.Context, actor string, vaultID uint64, symbol string, externalAPY int64) (*core.VaultAsset, error) {
	if !s.system.IsAdmin(actor) {
		return nil, core.ErrUnauthorized
	}

	if _, err := s.vaults.Find(ctx, vaultID); err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}

	if _, err := s.vaults.FindAsset(ctx, vaultID, symbol); err == nil {
		return nil, core.ErrAssetAlreadySupported
	} else if !gorm.IsRecordNotFoundError(err) {
		return nil, err
	}

	asset := &core.VaultAsset{
		VaultID:     vaultID,
		Symbol:      symbol,
		ExternalAPY: externalAPY,
		CreatedAt:   time.Now(),
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		return s.vaults.CreateAsset(ctx, tx, asset)
	}); err != nil {
		return nil, err
	}

	return asset, nil
}

func (s *vaultService) SupportedAssets(ctx context.Context, vaultID uint64) ([]*core.VaultAsset, error) {
	return s.vaults.ListAssets(ctx, vaultID)
}

func (s *vaultService) loadVault(ctx context.Context, vaultID uint64, userID string, now time.Time) (*core.Vault, *core.VaultAccount, error) {
	vault, err := s.vaults.Find(ctx, vaultID)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, core.ErrNotFound
		}
		return nil, nil, err
	}

	account, err := s.vaults.FindAccount(ctx, vaultID, userID)
	if err != nil {
		if !gorm.IsRecordNotFoundError(err) {
			return nil, nil, err
		}
		account = &core.VaultAccount{
			VaultID:       vaultID,
			UserID:        userID,
			LastAccruedAt: now,
			CreatedAt:     now,
		}
	}

	return vault, account, nil
}

func (s *vaultService) saveVault(ctx context.Context, tx *db.DB, vault *core.Vault, account *core.VaultAccount, vaultVersion, accountVersion int64) error {
	if err := s.vaults.Update(ctx, tx, vault, vaultVersion); err != nil {
		return err
	}

	if account.ID == 0 {
		return s.vaults.CreateAccount(ctx, tx, account)
	}

	return s.vaults.UpdateAccount(ctx, tx, account, accountVersion)
}

func (s *vaultService) recordYield(ctx context.Context, tx *db.DB, vault *core.Vault, account *core.VaultAccount, accrued decimal.Decimal, now time.Time) error {
	if !accrued.IsPositive() {
		return nil
	}

	return s.yields.Create(ctx, tx, &core.YieldRecord{
		VaultID:   vault.ID,
		UserID:    account.UserID,
		Amount:    accrued,
		CreatedAt: now,
	})
}
