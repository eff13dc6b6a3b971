package governance

import (
	"context"
	"fmt"
	"time"

	"estable/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"github.com/lib/pq"
	"golang.org/x/sync/singleflight"
)

// CacheProposal wrap a proposal store with a small read cache. Closed
// proposals never change again, so a short expiry is safe even while a
// proposal is still collecting votes.
func CacheProposal(store core.IProposalStore, exp time.Duration) core.IProposalStore {
	return &cacheProposalStore{
		IProposalStore: store,
		cache:          gcache.New(256).LRU().Expiration(exp).Build(),
		sf:             &singleflight.Group{},
	}
}

type cacheProposalStore struct {
	core.IProposalStore
	cache gcache.Cache
	sf    *singleflight.Group
}

func (s *cacheProposalStore) Find(ctx context.Context, id uint64) (*core.Proposal, error) {
	key := s.proposalKey(id)

	if v, err := s.cache.Get(key); err == nil {
		if proposal, ok := v.(*core.Proposal); ok {
			return copyProposal(proposal), nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		proposal, err := s.IProposalStore.Find(ctx, id)
		if err != nil {
			return nil, err
		}

		_ = s.cache.Set(key, copyProposal(proposal))
		return proposal, nil
	})
	if err != nil {
		return nil, err
	}

	// callers mutate proposals before committing; never hand out the
	// cached object itself
	return copyProposal(v.(*core.Proposal)), nil
}

func (s *cacheProposalStore) Update(ctx context.Context, tx *db.DB, proposal *core.Proposal, version int64) error {
	err := s.IProposalStore.Update(ctx, tx, proposal, version)
	// drop the entry on failure too, the caller's copy is dirty either way
	s.cache.Remove(s.proposalKey(proposal.ID))
	return err
}

func copyProposal(p *core.Proposal) *core.Proposal {
	c := *p
	c.Voters = append(pq.StringArray(nil), p.Voters...)
	return &c
}

func (s *cacheProposalStore) proposalKey(id uint64) string {
	return fmt.Sprintf("proposal:id:%d", id)
}
