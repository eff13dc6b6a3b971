package governance

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
)

type govStakeStore struct {
	db *db.DB
}

// NewStake new governance stake store
func NewStake(db *db.DB) core.IGovernanceStakeStore {
	return &govStakeStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.GovernanceStake{})
		if err := tx.AutoMigrate(core.GovernanceStake{}).Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_gov_stakes_user", "user_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *govStakeStore) Create(ctx context.Context, tx *db.DB, stake *core.GovernanceStake) error {
	return tx.Update().Create(stake).Error
}

func (s *govStakeStore) Find(ctx context.Context, id uint64) (*core.GovernanceStake, error) {
	var stake core.GovernanceStake
	if err := s.db.View().Where("id = ?", id).First(&stake).Error; err != nil {
		return nil, err
	}

	return &stake, nil
}

func (s *govStakeStore) FindByUser(ctx context.Context, userID string) ([]*core.GovernanceStake, error) {
	var stakes []*core.GovernanceStake
	if err := s.db.View().Where("user_id = ?", userID).Find(&stakes).Error; err != nil {
		return nil, err
	}

	return stakes, nil
}

func (s *govStakeStore) Delete(ctx context.Context, tx *db.DB, stake *core.GovernanceStake) error {
	return tx.Update().Where("id = ?", stake.ID).Delete(core.GovernanceStake{}).Error
}
