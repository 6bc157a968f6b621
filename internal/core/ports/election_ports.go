package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

type ApplyForCandidacyInput struct {
	WalletAddress string
	Party         string
	Manifesto     string
	Document      *string
}

type CastVoteInput struct {
	VoterWallet     string
	CandidateWallet string
}

// ElectionService sequences every state-changing election operation:
// identity first, then eligibility, then the irreversible ledger write.
type ElectionService interface {
	RegisterVoter(ctx context.Context, input RegisterVoterInput, asOf time.Time) (*domain.Voter, error)
	ApplyForCandidacy(ctx context.Context, input ApplyForCandidacyInput, asOf time.Time) (*domain.Candidate, error)
	CastVote(ctx context.Context, input CastVoteInput, asOf time.Time) (receipt string, err error)
	VoterStatus(ctx context.Context, walletAddress string) (*domain.VoterStatus, error)
}
