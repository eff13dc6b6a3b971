package vault

import (
	"context"
	"testing"
	"time"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testVaultStore struct {
	vault  *core.Vault
	assets map[string]*core.VaultAsset
}

func (s *testVaultStore) Find(ctx context.Context, id uint64) (*core.Vault, error) {
	if s.vault == nil || s.vault.ID != id {
		return nil, gorm.ErrRecordNotFound
	}

	return s.vault, nil
}

func (s *testVaultStore) All(ctx context.Context) ([]*core.Vault, error) {
	return []*core.Vault{s.vault}, nil
}

func (s *testVaultStore) Save(ctx context.Context, vault *core.Vault) error {
	s.vault = vault
	return nil
}

func (s *testVaultStore) Update(ctx context.Context, tx *db.DB, vault *core.Vault, version int64) error {
	return nil
}

func (s *testVaultStore) FindAccount(ctx context.Context, vaultID uint64, userID string) (*core.VaultAccount, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *testVaultStore) ListAccounts(ctx context.Context, vaultID uint64) ([]*core.VaultAccount, error) {
	return nil, nil
}

func (s *testVaultStore) CreateAccount(ctx context.Context, tx *db.DB, account *core.VaultAccount) error {
	return nil
}

func (s *testVaultStore) UpdateAccount(ctx context.Context, tx *db.DB, account *core.VaultAccount, version int64) error {
	return nil
}

func (s *testVaultStore) FindAsset(ctx context.Context, vaultID uint64, symbol string) (*core.VaultAsset, error) {
	if asset, ok := s.assets[symbol]; ok && asset.VaultID == vaultID {
		return asset, nil
	}

	return nil, gorm.ErrRecordNotFound
}

func (s *testVaultStore) ListAssets(ctx context.Context, vaultID uint64) ([]*core.VaultAsset, error) {
	assets := make([]*core.VaultAsset, 0, len(s.assets))
	for _, asset := range s.assets {
		assets = append(assets, asset)
	}

	return assets, nil
}

func (s *testVaultStore) CreateAsset(ctx context.Context, tx *db.DB, asset *core.VaultAsset) error {
	s.assets[asset.Symbol] = asset
	return nil
}

func TestDepositRejectsUnlistedAsset(t *testing.T) {
	now := time.Now()

	store := &testVaultStore{
		vault: &core.Vault{
			ID:        1,
			Name:      "est",
			CreatedAt: now,
		},
		assets: map[string]*core.VaultAsset{
			"eUSD": {VaultID: 1, Symbol: "eUSD"},
		},
	}

	system := &core.Config{
		Vault: core.VaultConfig{
			BaseAPYBps:        1000,
			BoostedAPYBps:     1500,
			EstStakeThreshold: decimal.NewFromInt(1000),
			SecondsPerYear:    31536000,
		},
	}

	svc := New(nil, store, nil, nil, system)
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	// omitting the symbol must not slip past the allow list
	_, err := svc.Deposit(ctx, "u1", 1, "", amount, now)
	require.Equal(t, core.ErrUnsupportedAsset, err)

	_, err = svc.Deposit(ctx, "u1", 1, "DOGE", amount, now)
	require.Equal(t, core.ErrUnsupportedAsset, err)
}
