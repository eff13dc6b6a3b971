package stablecoin

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
)

type stablecoinStore struct {
	db *db.DB
}

// New new stablecoin balance store
func New(db *db.DB) core.IStablecoinStore {
	return &stablecoinStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.StablecoinBalance{})
		if err := tx.AutoMigrate(core.StablecoinBalance{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("stablecoin_idx", "user_id", "symbol").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *stablecoinStore) Find(ctx context.Context, userID, symbol string) (*core.StablecoinBalance, error) {
	var balance core.StablecoinBalance
	if err := s.db.View().Where("user_id = ? AND symbol = ?", userID, symbol).First(&balance).Error; err != nil {
		return nil, err
	}

	return &balance, nil
}

func (s *stablecoinStore) FindByUser(ctx context.Context, userID string) ([]*core.StablecoinBalance, error) {
	var balances []*core.StablecoinBalance
	if err := s.db.View().Where("user_id = ?", userID).Find(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

func (s *stablecoinStore) All(ctx context.Context) ([]*core.StablecoinBalance, error) {
	var balances []*core.StablecoinBalance
	if err := s.db.View().Find(&balances).Error; err != nil {
		return nil, err
	}

	return balances, nil
}

func (s *stablecoinStore) Create(ctx context.Context, tx *db.DB, balance *core.StablecoinBalance) error {
	return tx.Update().Create(balance).Error
}

func (s *stablecoinStore) Update(ctx context.Context, tx *db.DB, balance *core.StablecoinBalance, version int64) error {
	balance.Version++
	u := tx.Update().Model(balance).Where("version = ?", version).Updates(map[string]interface{}{
		"balance":    balance.Balance,
		"version":    balance.Version,
		"updated_at": balance.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
