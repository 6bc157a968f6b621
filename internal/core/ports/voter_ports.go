package ports

import (
	"context"
	"time"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

type VoterRepository interface {
	Create(ctx context.Context, voter *domain.Voter) error
	GetByWallet(ctx context.Context, walletAddress string) (*domain.Voter, error)
	SetProfilePhoto(ctx context.Context, walletAddress, photoRef string) error
}

type RegisterVoterInput struct {
	Name          string
	DateOfBirth   time.Time
	Email         string
	VoterID       string
	NationalID    string
	Address       string
	WalletAddress string
	ProfilePhoto  *string
}

type RegistryService interface {
	RegisterVoter(ctx context.Context, input RegisterVoterInput) (*domain.Voter, error)
	RegisterCandidate(ctx context.Context, input RegisterCandidateInput) (*domain.Candidate, error)
	FindVoterByWallet(ctx context.Context, walletAddress string) (*domain.Voter, error)
	FindCandidateByWallet(ctx context.Context, walletAddress string) (*domain.Candidate, error)
	ListCandidatesWithIdentity(ctx context.Context) ([]domain.CandidateIdentity, error)
	AttachProfilePhoto(ctx context.Context, walletAddress, photoRef string) error
}
