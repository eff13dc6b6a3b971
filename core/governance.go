package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// GovernanceStake vote escrowed stake, a ledger distinct from token
// staking. Hard deleted on unstake.
type GovernanceStake struct {
	ID          uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID      string          `sql:"size:36;index:idx_gov_stakes_user" json:"user_id"`
	Amount      decimal.Decimal `sql:"type:decimal(32,8)" json:"amount"`
	LockMonths  int64           `json:"lock_months"`
	VePower     decimal.Decimal `sql:"type:decimal(32,8)" json:"ve_power"`
	LockedUntil time.Time       `json:"locked_until"`
	CreatedAt   time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// ProposalStatus proposal state
type ProposalStatus string

const (
	// ProposalStatusOpen accepting votes
	ProposalStatusOpen ProposalStatus = "open"
	// ProposalStatusClosed past deadline
	ProposalStatusClosed ProposalStatus = "closed"
)

// VoteChoice for / against
type VoteChoice string

const (
	// VoteChoiceFor for
	VoteChoiceFor VoteChoice = "for"
	// VoteChoiceAgainst against
	VoteChoiceAgainst VoteChoice = "against"
)

// Proposal governance proposal. Voters mirrors the vote records for cheap
// duplicate checks.
type Proposal struct {
	ID           uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Title        string          `sql:"size:256" json:"title"`
	VotesFor     decimal.Decimal `sql:"type:decimal(32,8)" json:"votes_for"`
	VotesAgainst decimal.Decimal `sql:"type:decimal(32,8)" json:"votes_against"`
	Deadline     time.Time       `json:"deadline"`
	Status       ProposalStatus  `sql:"size:20;default:'open'" json:"status"`
	Voters       pq.StringArray  `sql:"type:varchar(2048)" json:"voters,omitempty"`
	Version      int64           `sql:"default:0" json:"version"`
	CreatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Vote one per (user, proposal)
type Vote struct {
	ID         uint64          `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID     string          `sql:"size:36;unique_index:vote_idx" json:"user_id"`
	ProposalID uint64          `sql:"unique_index:vote_idx" json:"proposal_id"`
	Choice     VoteChoice      `sql:"size:10" json:"choice"`
	Weight     decimal.Decimal `sql:"type:decimal(32,8)" json:"weight"`
	CreatedAt  time.Time       `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// GovUnstakeResult governance unstake outcome
type GovUnstakeResult struct {
	StakeID  uint64          `json:"stake_id"`
	Returned decimal.Decimal `json:"returned"`
	Fee      decimal.Decimal `json:"fee"`
}

// IGovernanceStakeStore governance stake store interface
type IGovernanceStakeStore interface {
	Create(ctx context.Context, tx *db.DB, stake *GovernanceStake) error
	Find(ctx context.Context, id uint64) (*GovernanceStake, error)
	FindByUser(ctx context.Context, userID string) ([]*GovernanceStake, error)
	Delete(ctx context.Context, tx *db.DB, stake *GovernanceStake) error
}

// IProposalStore proposal store interface
type IProposalStore interface {
	Create(ctx context.Context, proposal *Proposal) error
	Find(ctx context.Context, id uint64) (*Proposal, error)
	List(ctx context.Context, limit int) ([]*Proposal, error)
	Update(ctx context.Context, tx *db.DB, proposal *Proposal, version int64) error
}

// IVoteStore vote store interface
type IVoteStore interface {
	Create(ctx context.Context, tx *db.DB, vote *Vote) error
	Find(ctx context.Context, userID string, proposalID uint64) (*Vote, error)
	FindByProposal(ctx context.Context, proposalID uint64) ([]*Vote, error)
}

// IGovernanceService governance engine interface
type IGovernanceService interface {
	Stake(ctx context.Context, actor string, amount decimal.Decimal, lockMonths int64, now time.Time) (*GovernanceStake, error)
	Unstake(ctx context.Context, actor string, stakeID uint64, now time.Time) (*GovUnstakeResult, error)
	Vote(ctx context.Context, actor string, proposalID uint64, choice VoteChoice, now time.Time) (*Vote, error)
	VotingPower(ctx context.Context, actor string) (decimal.Decimal, error)
	Proposals(ctx context.Context, limit int) ([]*Proposal, error)
}
