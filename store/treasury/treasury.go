package treasury

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type treasuryStore struct {
	db *db.DB
}

// New new treasury store
func New(db *db.DB) core.ITreasuryStore {
	return &treasuryStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		return db.Update().Model(core.Treasury{}).AutoMigrate(core.Treasury{}).Error
	})
}

// Get the singleton treasury row, created lazily on first read
func (s *treasuryStore) Get(ctx context.Context) (*core.Treasury, error) {
	var treasury core.Treasury
	if err := s.db.View().Where("id = 1").First(&treasury).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			treasury.ID = 1
			if err := s.db.Update().FirstOrCreate(&treasury, "id = 1").Error; err != nil {
				return nil, err
			}
			return &treasury, nil
		}
		return nil, err
	}

	return &treasury, nil
}

func (s *treasuryStore) Update(ctx context.Context, tx *db.DB, treasury *core.Treasury, version int64) error {
	treasury.Version++
	u := tx.Update().Model(treasury).Where("version = ?", version).Updates(map[string]interface{}{
		"collateral": treasury.Collateral,
		"version":    treasury.Version,
		"updated_at": treasury.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
