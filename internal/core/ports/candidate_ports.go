package ports

import (
	"context"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate *domain.Candidate) error
	GetByWallet(ctx context.Context, walletAddress string) (*domain.Candidate, error)
	// ListWithIdentity returns every voter row left-joined with its
	// candidacy. Rows with a nil Party are plain voters; callers that need
	// actual candidates filter those out.
	ListWithIdentity(ctx context.Context) ([]domain.CandidateIdentity, error)
}

type RegisterCandidateInput struct {
	WalletAddress string
	Party         string
	Manifesto     string
	Document      *string
}
