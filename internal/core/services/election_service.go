package services

import (
	"context"
	"errors"
	"time"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

// electionService sequences registration, candidacy and vote casting.
// Reversible checks (identity, eligibility) always run before the
// irreversible ledger write; nothing can undo a ledger append.
type electionService struct {
	registry ports.RegistryService
	gateway  ports.LedgerGateway
}

func NewElectionService(registry ports.RegistryService, gateway ports.LedgerGateway) ports.ElectionService {
	return &electionService{
		registry: registry,
		gateway:  gateway,
	}
}

func (s *electionService) RegisterVoter(ctx context.Context, input ports.RegisterVoterInput, asOf time.Time) (*domain.Voter, error) {
	if !input.DateOfBirth.IsZero() && !domain.CanVote(input.DateOfBirth, asOf) {
		return nil, &domain.UnderageError{RequiredAge: domain.MinVotingAge}
	}
	return s.registry.RegisterVoter(ctx, input)
}

func (s *electionService) ApplyForCandidacy(ctx context.Context, input ports.ApplyForCandidacyInput, asOf time.Time) (*domain.Candidate, error) {
	voter, err := s.registry.FindVoterByWallet(ctx, input.WalletAddress)
	if err != nil {
		if errors.Is(err, domain.ErrVoterNotFound) {
			return nil, domain.ErrNotRegistered
		}
		return nil, err
	}

	// Eligibility is checked against the row loaded in this call, never
	// against a previously cached flag.
	if !domain.CanRunForCandidate(voter.DateOfBirth, asOf) {
		return nil, &domain.UnderageError{RequiredAge: domain.MinCandidacyAge}
	}

	return s.registry.RegisterCandidate(ctx, ports.RegisterCandidateInput{
		WalletAddress: input.WalletAddress,
		Party:         input.Party,
		Manifesto:     input.Manifesto,
		Document:      input.Document,
	})
}

func (s *electionService) CastVote(ctx context.Context, input ports.CastVoteInput, asOf time.Time) (string, error) {
	voter, err := s.registry.FindVoterByWallet(ctx, input.VoterWallet)
	if err != nil {
		if errors.Is(err, domain.ErrVoterNotFound) {
			return "", domain.ErrNotRegistered
		}
		return "", err
	}

	// Registration already required voting age, re-validated here in case
	// the rules moved since the row was written.
	if !domain.CanVote(voter.DateOfBirth, asOf) {
		return "", &domain.UnderageError{RequiredAge: domain.MinVotingAge}
	}

	if _, err := s.registry.FindCandidateByWallet(ctx, input.CandidateWallet); err != nil {
		if errors.Is(err, domain.ErrCandidateNotFound) {
			return "", domain.ErrInvalidCandidate
		}
		return "", err
	}

	// Fast feedback only; the ledger's append-once semantics are the
	// enforcement point.
	voted, err := s.gateway.HasVoted(ctx, input.VoterWallet)
	if err != nil {
		return "", err
	}
	if voted {
		return "", domain.ErrAlreadyVoted
	}

	return s.gateway.CastVote(ctx, input.VoterWallet, input.CandidateWallet)
}

func (s *electionService) VoterStatus(ctx context.Context, walletAddress string) (*domain.VoterStatus, error) {
	status := &domain.VoterStatus{}

	_, err := s.registry.FindVoterByWallet(ctx, walletAddress)
	if err != nil {
		if errors.Is(err, domain.ErrVoterNotFound) {
			return status, nil
		}
		return nil, err
	}
	status.Registered = true

	if _, err := s.registry.FindCandidateByWallet(ctx, walletAddress); err == nil {
		status.IsCandidate = true
	} else if !errors.Is(err, domain.ErrCandidateNotFound) {
		return nil, err
	}

	voted, err := s.gateway.HasVoted(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	status.HasVoted = voted

	return status, nil
}
