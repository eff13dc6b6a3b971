package vault

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
)

type vaultStore struct {
	db *db.DB
}

// New new vault store
func New(db *db.DB) core.IVaultStore {
	return &vaultStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		if err := db.Update().Model(core.Vault{}).AutoMigrate(core.Vault{}).Error; err != nil {
			return err
		}

		tx := db.Update().Model(core.VaultAccount{})
		if err := tx.AutoMigrate(core.VaultAccount{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("vault_account_idx", "vault_id", "user_id").Error; err != nil {
			return err
		}

		tx = db.Update().Model(core.VaultAsset{})
		if err := tx.AutoMigrate(core.VaultAsset{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("vault_asset_idx", "vault_id", "symbol").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *vaultStore) Find(ctx context.Context, id uint64) (*core.Vault, error) {
	var vault core.Vault
	if err := s.db.View().Where("id = ?", id).First(&vault).Error; err != nil {
		return nil, err
	}

	return &vault, nil
}

func (s *vaultStore) All(ctx context.Context) ([]*core.Vault, error) {
	var vaults []*core.Vault
	if err := s.db.View().Find(&vaults).Error; err != nil {
		return nil, err
	}

	return vaults, nil
}

func (s *vaultStore) Save(ctx context.Context, vault *core.Vault) error {
	return s.db.Update().Where("name = ?", vault.Name).FirstOrCreate(vault).Error
}

func (s *vaultStore) Update(ctx context.Context, tx *db.DB, vault *core.Vault, version int64) error {
	vault.Version++
	u := tx.Update().Model(vault).Where("version = ?", version).Updates(map[string]interface{}{
		"total_assets": vault.TotalAssets,
		"total_shares": vault.TotalShares,
		"version":      vault.Version,
		"updated_at":   vault.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *vaultStore) FindAccount(ctx context.Context, vaultID uint64, userID string) (*core.VaultAccount, error) {
	var account core.VaultAccount
	if err := s.db.View().Where("vault_id = ? AND user_id = ?", vaultID, userID).First(&account).Error; err != nil {
		return nil, err
	}

	return &account, nil
}

func (s *vaultStore) ListAccounts(ctx context.Context, vaultID uint64) ([]*core.VaultAccount, error) {
	var accounts []*core.VaultAccount
	if err := s.db.View().Where("vault_id = ?", vaultID).Find(&accounts).Error; err != nil {
		return nil, err
	}

	return accounts, nil
}

func (s *vaultStore) CreateAccount(ctx context.Context, tx *db.DB, account *core.VaultAccount) error {
	return tx.Update().Create(account).Error
}

func (s *vaultStore) UpdateAccount(ctx context.Context, tx *db.DB, account *core.VaultAccount, version int64) error {
	account.Version++
	u := tx.Update().Model(account).Where("version = ?", version).Updates(map[string]interface{}{
		"shares":          account.Shares,
		"principal":       account.Principal,
		"est_staked":      account.EstStaked,
		"last_accrued_at": account.LastAccruedAt,
		"version":         account.Version,
		"updated_at":      account.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

func (s *vaultStore) FindAsset(ctx context.Context, vaultID uint64, symbol string) (*core.VaultAsset, error) {
	var asset core.VaultAsset
	if err := s.db.View().Where("vault_id = ? AND symbol = ?", vaultID, symbol).First(&asset).Error; err != nil {
		return nil, err
	}

	return &asset, nil
}

func (s *vaultStore) ListAssets(ctx context.Context, vaultID uint64) ([]*core.VaultAsset, error) {
	var assets []*core.VaultAsset
	if err := s.db.View().Where("vault_id = ?", vaultID).Find(&assets).Error; err != nil {
		return nil, err
	}

	return assets, nil
}

func (s *vaultStore) CreateAsset(ctx context.Context, tx *db.DB, asset *core.VaultAsset) error {
	return tx.Update().Create(asset).Error
}
