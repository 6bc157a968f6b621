package ports

import "context"

// Ledger is the external append-only vote store. Implementations never sign
// transactions themselves; submission goes through whatever transactor the
// adapter was built with. All three calls honor the context deadline.
type Ledger interface {
	SubmitVote(ctx context.Context, voterWallet, candidateWallet string) (receipt string, err error)
	QueryHasVoted(ctx context.Context, voterWallet string) (bool, error)
	QueryVoteCount(ctx context.Context, candidateWallet string) (uint64, error)
}

// LedgerGateway is the only component allowed to touch the Ledger. It adds
// retry discipline on reads and ambiguity handling on writes.
type LedgerGateway interface {
	HasVoted(ctx context.Context, voterWallet string) (bool, error)
	CastVote(ctx context.Context, voterWallet, candidateWallet string) (receipt string, err error)
	VoteCount(ctx context.Context, candidateWallet string) (uint64, error)
}
