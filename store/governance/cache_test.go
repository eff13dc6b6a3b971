package governance

import (
	"context"
	"testing"
	"time"

	"estable/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type testProposalStore struct {
	proposal  *core.Proposal
	finds     int
	updateErr error
}

func (s *testProposalStore) Create(ctx context.Context, proposal *core.Proposal) error {
	s.proposal = proposal
	return nil
}

func (s *testProposalStore) Find(ctx context.Context, id uint64) (*core.Proposal, error) {
	s.finds++
	return copyProposal(s.proposal), nil
}

func (s *testProposalStore) List(ctx context.Context, limit int) ([]*core.Proposal, error) {
	return []*core.Proposal{s.proposal}, nil
}

func (s *testProposalStore) Update(ctx context.Context, tx *db.DB, proposal *core.Proposal, version int64) error {
	if s.updateErr != nil {
		return s.updateErr
	}

	s.proposal = copyProposal(proposal)
	return nil
}

func newTestProposal() *core.Proposal {
	now := time.Now()
	return &core.Proposal{
		ID:        1,
		Title:     "raise the base apy",
		Status:    core.ProposalStatusOpen,
		Deadline:  now.AddDate(0, 0, 7),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCacheProposalFindReturnsPrivateCopies(t *testing.T) {
	inner := &testProposalStore{proposal: newTestProposal()}
	store := CacheProposal(inner, time.Minute)
	ctx := context.Background()

	first, err := store.Find(ctx, 1)
	require.Nil(t, err)

	// a caller mutating its result must never leak into later reads
	first.Voters = append(first.Voters, "u1")
	first.VotesFor = first.VotesFor.Add(decimal.NewFromInt(100))

	second, err := store.Find(ctx, 1)
	require.Nil(t, err)
	require.Equal(t, 0, len(second.Voters))
	require.True(t, second.VotesFor.IsZero())
	require.Equal(t, 1, inner.finds)
}

func TestCacheProposalInvalidatesOnFailedUpdate(t *testing.T) {
	inner := &testProposalStore{proposal: newTestProposal()}
	store := CacheProposal(inner, time.Minute)
	ctx := context.Background()

	proposal, err := store.Find(ctx, 1)
	require.Nil(t, err)
	require.Equal(t, 1, inner.finds)

	proposal.Voters = append(proposal.Voters, "u1")
	inner.updateErr = db.ErrOptimisticLock
	require.Equal(t, db.ErrOptimisticLock, store.Update(ctx, nil, proposal, proposal.Version))

	// the dirty entry is gone, the next read hits the backing store
	fresh, err := store.Find(ctx, 1)
	require.Nil(t, err)
	require.Equal(t, 0, len(fresh.Voters))
	require.Equal(t, 2, inner.finds)
}

func TestCopyProposalDetachesVoters(t *testing.T) {
	p := newTestProposal()
	p.Voters = pq.StringArray{"u1", "u2"}

	c := copyProposal(p)
	c.Voters = append(c.Voters, "u3")
	c.Voters[0] = "ux"

	require.Equal(t, pq.StringArray{"u1", "u2"}, p.Voters)
}
