package position

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
)

type positionStore struct {
	db *db.DB
}

// New new position store
func New(db *db.DB) core.IPositionStore {
	return &positionStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Position{})
		if err := tx.AutoMigrate(core.Position{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("idx_positions_trace", "trace_id").Error; err != nil {
			return err
		}

		if err := tx.AddIndex("idx_positions_user", "user_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *positionStore) Create(ctx context.Context, tx *db.DB, position *core.Position) error {
	return tx.Update().Create(position).Error
}

func (s *positionStore) Find(ctx context.Context, id uint64) (*core.Position, error) {
	var position core.Position
	if err := s.db.View().Where("id = ?", id).First(&position).Error; err != nil {
		return nil, err
	}

	return &position, nil
}

func (s *positionStore) FindByUser(ctx context.Context, userID string) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Where("user_id = ?", userID).Order("id DESC").Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func (s *positionStore) ListActive(ctx context.Context) ([]*core.Position, error) {
	var positions []*core.Position
	if err := s.db.View().Where("status = ?", core.PositionStatusActive).Find(&positions).Error; err != nil {
		return nil, err
	}

	return positions, nil
}

func (s *positionStore) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.Position{}).Where("status = ?", core.PositionStatusActive).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *positionStore) Update(ctx context.Context, tx *db.DB, position *core.Position, version int64) error {
	position.Version++
	u := tx.Update().Model(position).Where("version = ?", version).Updates(map[string]interface{}{
		"borrowed":      position.Borrowed,
		"collateral":    position.Collateral,
		"health_factor": position.HealthFactor,
		"status":        position.Status,
		"version":       position.Version,
		"updated_at":    position.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
