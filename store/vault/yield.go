package vault

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type yieldStore struct {
	db *db.DB
}

// NewYield new yield record store
func NewYield(db *db.DB) core.IYieldStore {
	return &yieldStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.YieldRecord{})
		if err := tx.AutoMigrate(core.YieldRecord{}).Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_yields_vault", "vault_id").Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_yields_user", "user_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *yieldStore) Create(ctx context.Context, tx *db.DB, record *core.YieldRecord) error {
	return tx.Update().Create(record).Error
}

func (s *yieldStore) Sum(ctx context.Context) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal `gorm:"column:total"`
	}

	if err := s.db.View().Model(core.YieldRecord{}).Select("COALESCE(SUM(amount), 0) AS total").Scan(&result).Error; err != nil {
		return decimal.Zero, err
	}

	return result.Total, nil
}

func (s *yieldStore) List(ctx context.Context, userID string, limit int) ([]*core.YieldRecord, error) {
	var records []*core.YieldRecord
	if err := s.db.View().Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}

	return records, nil
}
