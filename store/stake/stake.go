package stake

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type stakeStore struct {
	db *db.DB
}

// New new stake store
func New(db *db.DB) core.IStakeStore {
	return &stakeStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Stake{})
		if err := tx.AutoMigrate(core.Stake{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("stake_idx", "user_id", "stake_index").Error; err != nil {
			return err
		}

		if err := db.Update().Model(core.StakingPool{}).AutoMigrate(core.StakingPool{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *stakeStore) Create(ctx context.Context, tx *db.DB, stake *core.Stake) error {
	return tx.Update().Create(stake).Error
}

func (s *stakeStore) Find(ctx context.Context, userID string, index int64) (*core.Stake, error) {
	var stake core.Stake
	if err := s.db.View().Where("user_id = ? AND stake_index = ?", userID, index).First(&stake).Error; err != nil {
		return nil, err
	}

	return &stake, nil
}

func (s *stakeStore) FindByUser(ctx context.Context, userID string) ([]*core.Stake, error) {
	var stakes []*core.Stake
	if err := s.db.View().Where("user_id = ?", userID).Order("stake_index").Find(&stakes).Error; err != nil {
		return nil, err
	}

	return stakes, nil
}

func (s *stakeStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.Stake{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *stakeStore) Update(ctx context.Context, tx *db.DB, stake *core.Stake, version int64) error {
	stake.Version++
	u := tx.Update().Model(stake).Where("version = ?", version).Updates(map[string]interface{}{
		"active":        stake.Active,
		"last_claim_at": stake.LastClaimAt,
		"version":       stake.Version,
		"updated_at":    stake.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}

// Pool the singleton pool row, created lazily on first read
func (s *stakeStore) Pool(ctx context.Context) (*core.StakingPool, error) {
	var pool core.StakingPool
	if err := s.db.View().Where("id = 1").First(&pool).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			pool.ID = 1
			if err := s.db.Update().FirstOrCreate(&pool, "id = 1").Error; err != nil {
				return nil, err
			}
			return &pool, nil
		}
		return nil, err
	}

	return &pool, nil
}

func (s *stakeStore) UpdatePool(ctx context.Context, tx *db.DB, pool *core.StakingPool, version int64) error {
	pool.Version++
	u := tx.Update().Model(pool).Where("version = ?", version).Updates(map[string]interface{}{
		"total_staked":   pool.TotalStaked,
		"reward_balance": pool.RewardBalance,
		"version":        pool.Version,
		"updated_at":     pool.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
