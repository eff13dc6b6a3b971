package revenue

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/shopspring/decimal"
)

type revenueStore struct {
	db *db.DB
}

// New new revenue store
func New(db *db.DB) core.IRevenueStore {
	return &revenueStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Revenue{})
		if err := tx.AutoMigrate(core.Revenue{}).Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_revenues_type", "type").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *revenueStore) Create(ctx context.Context, tx *db.DB, revenue *core.Revenue) error {
	return tx.Update().Create(revenue).Error
}

func (s *revenueStore) List(ctx context.Context, limit int) ([]*core.Revenue, error) {
	var revenues []*core.Revenue
	if err := s.db.View().Order("id DESC").Limit(limit).Find(&revenues).Error; err != nil {
		return nil, err
	}

	return revenues, nil
}

func (s *revenueStore) SumByType(ctx context.Context) (map[core.RevenueType]decimal.Decimal, error) {
	var rows []struct {
		Type  core.RevenueType `gorm:"column:type"`
		Total decimal.Decimal  `gorm:"column:total"`
	}

	if err := s.db.View().Model(core.Revenue{}).Select("type, COALESCE(SUM(amount), 0) AS total").Group("type").Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[core.RevenueType]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.Type] = row.Total
	}

	return sums, nil
}
