package governance

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
)

type proposalStore struct {
	db *db.DB
}

// NewProposal new proposal store
func NewProposal(db *db.DB) core.IProposalStore {
	return &proposalStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		return db.Update().Model(core.Proposal{}).AutoMigrate(core.Proposal{}).Error
	})
}

func (s *proposalStore) Create(ctx context.Context, proposal *core.Proposal) error {
	return s.db.Update().Create(proposal).Error
}

func (s *proposalStore) Find(ctx context.Context, id uint64) (*core.Proposal, error) {
	var proposal core.Proposal
	if err := s.db.View().Where("id = ?", id).First(&proposal).Error; err != nil {
		return nil, err
	}

	return &proposal, nil
}

func (s *proposalStore) List(ctx context.Context, limit int) ([]*core.Proposal, error) {
	var proposals []*core.Proposal
	if err := s.db.View().Order("id DESC").Limit(limit).Find(&proposals).Error; err != nil {
		return nil, err
	}

	return proposals, nil
}

func (s *proposalStore) Update(ctx context.Context, tx *db.DB, proposal *core.Proposal, version int64) error {
	proposal.Version++
	u := tx.Update().Model(proposal).Where("version = ?", version).Updates(map[string]interface{}{
		"votes_for":     proposal.VotesFor,
		"votes_against": proposal.VotesAgainst,
		"status":        proposal.Status,
		"voters":        proposal.Voters,
		"version":       proposal.Version,
		"updated_at":    proposal.UpdatedAt,
	})
	if u.Error != nil {
		return u.Error
	}

	if u.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
