package governance

import (
	"context"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
)

type voteStore struct {
	db *db.DB
}

// NewVote new vote store
func NewVote(db *db.DB) core.IVoteStore {
	return &voteStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Vote{})
		if err := tx.AutoMigrate(core.Vote{}).Error; err != nil {
			return err
		}

		if err := tx.AddUniqueIndex("vote_idx", "user_id", "proposal_id").Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *voteStore) Create(ctx context.Context, tx *db.DB, vote *core.Vote) error {
	return tx.Update().Create(vote).Error
}

func (s *voteStore) Find(ctx context.Context, userID string, proposalID uint64) (*core.Vote, error) {
	var vote core.Vote
	if err := s.db.View().Where("user_id = ? AND proposal_id = ?", userID, proposalID).First(&vote).Error; err != nil {
		return nil, err
	}

	return &vote, nil
}

func (s *voteStore) FindByProposal(ctx context.Context, proposalID uint64) ([]*core.Vote, error) {
	var votes []*core.Vote
	if err := s.db.View().Where("proposal_id = ?", proposalID).Find(&votes).Error; err != nil {
		return nil, err
	}

	return votes, nil
}
