package services

import (
	"context"
	"fmt"
	"regexp"

	"github.com/ethereum/go-ethereum/common"
	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

const (
	nameMinLen    = 3
	nameMaxLen    = 20
	addressMinLen = 3
	addressMaxLen = 100
	voterIDLen    = 10
	nationalIDLen = 12
	partyMaxLen   = 64
)

var (
	emailPattern      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}$`)
	nationalIDPattern = regexp.MustCompile(`^[0-9]{12}$`)
)

type registryService struct {
	voterRepo     ports.VoterRepository
	candidateRepo ports.CandidateRepository
}

func NewRegistryService(voterRepo ports.VoterRepository, candidateRepo ports.CandidateRepository) ports.RegistryService {
	return &registryService{
		voterRepo:     voterRepo,
		candidateRepo: candidateRepo,
	}
}

func (s *registryService) RegisterVoter(ctx context.Context, input ports.RegisterVoterInput) (*domain.Voter, error) {
	if err := validateVoterInput(input); err != nil {
		return nil, err
	}

	voter := &domain.Voter{
		Name:          input.Name,
		DateOfBirth:   input.DateOfBirth,
		Email:         input.Email,
		VoterID:       input.VoterID,
		NationalID:    input.NationalID,
		Address:       input.Address,
		ProfilePhoto:  input.ProfilePhoto,
		WalletAddress: common.HexToAddress(input.WalletAddress).Hex(),
	}

	// No pre-check for duplicates: the insert races to the unique
	// constraints and the repository maps violations to
	// DuplicateIdentityError naming the colliding field.
	if err := s.voterRepo.Create(ctx, voter); err != nil {
		return nil, err
	}
	return voter, nil
}

func (s *registryService) RegisterCandidate(ctx context.Context, input ports.RegisterCandidateInput) (*domain.Candidate, error) {
	if input.Party == "" {
		return nil, &domain.ValidationError{Field: "party", Rule: "required"}
	}
	if len(input.Party) > partyMaxLen {
		return nil, &domain.ValidationError{Field: "party", Rule: fmt.Sprintf("at most %d characters", partyMaxLen)}
	}
	if input.Manifesto == "" {
		return nil, &domain.ValidationError{Field: "manifesto", Rule: "required"}
	}

	wallet := common.HexToAddress(input.WalletAddress).Hex()

	voter, err := s.voterRepo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrVoterNotFound
	}

	// Fast feedback only; the unique constraint on wallet_address settles
	// concurrent applications.
	existing, err := s.candidateRepo.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrAlreadyCandidate
	}

	candidate := &domain.Candidate{
		WalletAddress: wallet,
		Party:         input.Party,
		Manifesto:     input.Manifesto,
		Document:      input.Document,
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

func (s *registryService) FindVoterByWallet(ctx context.Context, walletAddress string) (*domain.Voter, error) {
	voter, err := s.voterRepo.GetByWallet(ctx, common.HexToAddress(walletAddress).Hex())
	if err != nil {
		return nil, err
	}
	if voter == nil {
		return nil, domain.ErrVoterNotFound
	}
	return voter, nil
}

func (s *registryService) FindCandidateByWallet(ctx context.Context, walletAddress string) (*domain.Candidate, error) {
	candidate, err := s.candidateRepo.GetByWallet(ctx, common.HexToAddress(walletAddress).Hex())
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, domain.ErrCandidateNotFound
	}
	return candidate, nil
}

func (s *registryService) ListCandidatesWithIdentity(ctx context.Context) ([]domain.CandidateIdentity, error) {
	rows, err := s.candidateRepo.ListWithIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return rows, nil
}

func (s *registryService) AttachProfilePhoto(ctx context.Context, walletAddress, photoRef string) error {
	if photoRef == "" {
		return &domain.ValidationError{Field: "profile_photo", Rule: "required"}
	}
	wallet := common.HexToAddress(walletAddress).Hex()
	voter, err := s.voterRepo.GetByWallet(ctx, wallet)
	if err != nil {
		return err
	}
	if voter == nil {
		return domain.ErrVoterNotFound
	}
	return s.voterRepo.SetProfilePhoto(ctx, wallet, photoRef)
}

func validateVoterInput(input ports.RegisterVoterInput) error {
	if input.Name == "" {
		return &domain.ValidationError{Field: "name", Rule: "required"}
	}
	if len(input.Name) < nameMinLen || len(input.Name) > nameMaxLen {
		return &domain.ValidationError{Field: "name", Rule: fmt.Sprintf("between %d and %d characters", nameMinLen, nameMaxLen)}
	}
	if input.DateOfBirth.IsZero() {
		return &domain.ValidationError{Field: "dob", Rule: "required"}
	}
	if input.Email == "" {
		return &domain.ValidationError{Field: "email", Rule: "required"}
	}
	if !emailPattern.MatchString(input.Email) {
		return &domain.ValidationError{Field: "email", Rule: "must be a valid email address"}
	}
	if len(input.VoterID) != voterIDLen {
		return &domain.ValidationError{Field: "voter_id", Rule: fmt.Sprintf("must be exactly %d characters", voterIDLen)}
	}
	if !nationalIDPattern.MatchString(input.NationalID) {
		return &domain.ValidationError{Field: "national_id", Rule: fmt.Sprintf("must be exactly %d digits", nationalIDLen)}
	}
	if input.Address == "" {
		return &domain.ValidationError{Field: "address", Rule: "required"}
	}
	if len(input.Address) < addressMinLen || len(input.Address) > addressMaxLen {
		return &domain.ValidationError{Field: "address", Rule: fmt.Sprintf("between %d and %d characters", addressMinLen, addressMaxLen)}
	}
	if !common.IsHexAddress(input.WalletAddress) {
		return &domain.ValidationError{Field: "wallet_address", Rule: "must be a valid hex address"}
	}
	return nil
}
