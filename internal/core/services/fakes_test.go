package services

import (
	"context"
	"sync"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

// In-memory repositories mirroring the postgres adapters' contract:
// nil result on miss, DuplicateIdentityError / ErrAlreadyCandidate on
// constraint collisions.

type memVoterRepo struct {
	mu     sync.Mutex
	nextID int64
	voters map[string]*domain.Voter // keyed by wallet address
}

func newMemVoterRepo() *memVoterRepo {
	return &memVoterRepo{voters: make(map[string]*domain.Voter)}
}

func (r *memVoterRepo) Create(ctx context.Context, voter *domain.Voter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.voters {
		switch {
		case existing.Email == voter.Email:
			return &domain.DuplicateIdentityError{Field: "email"}
		case existing.VoterID == voter.VoterID:
			return &domain.DuplicateIdentityError{Field: "voter_id"}
		case existing.NationalID == voter.NationalID:
			return &domain.DuplicateIdentityError{Field: "national_id"}
		case existing.WalletAddress == voter.WalletAddress:
			return &domain.DuplicateIdentityError{Field: "wallet_address"}
		}
	}

	r.nextID++
	voter.ID = r.nextID
	copied := *voter
	r.voters[voter.WalletAddress] = &copied
	return nil
}

func (r *memVoterRepo) GetByWallet(ctx context.Context, wallet string) (*domain.Voter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	voter, ok := r.voters[wallet]
	if !ok {
		return nil, nil
	}
	copied := *voter
	return &copied, nil
}

func (r *memVoterRepo) SetProfilePhoto(ctx context.Context, wallet, photoRef string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	voter, ok := r.voters[wallet]
	if !ok {
		return domain.ErrVoterNotFound
	}
	voter.ProfilePhoto = &photoRef
	return nil
}

type memCandidateRepo struct {
	mu         sync.Mutex
	nextID     int64
	voterRepo  *memVoterRepo
	candidates map[string]*domain.Candidate
}

func newMemCandidateRepo(voterRepo *memVoterRepo) *memCandidateRepo {
	return &memCandidateRepo{
		voterRepo:  voterRepo,
		candidates: make(map[string]*domain.Candidate),
	}
}

func (r *memCandidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.candidates[candidate.WalletAddress]; ok {
		return domain.ErrAlreadyCandidate
	}
	r.nextID++
	candidate.ID = r.nextID
	copied := *candidate
	r.candidates[candidate.WalletAddress] = &copied
	return nil
}

func (r *memCandidateRepo) GetByWallet(ctx context.Context, wallet string) (*domain.Candidate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	candidate, ok := r.candidates[wallet]
	if !ok {
		return nil, nil
	}
	copied := *candidate
	return &copied, nil
}

func (r *memCandidateRepo) ListWithIdentity(ctx context.Context) ([]domain.CandidateIdentity, error) {
	r.voterRepo.mu.Lock()
	voters := make([]*domain.Voter, 0, len(r.voterRepo.voters))
	for _, v := range r.voterRepo.voters {
		voters = append(voters, v)
	}
	r.voterRepo.mu.Unlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	var rows []domain.CandidateIdentity
	for _, voter := range voters {
		row := domain.CandidateIdentity{Voter: *voter}
		if candidate, ok := r.candidates[voter.WalletAddress]; ok {
			party, manifesto := candidate.Party, candidate.Manifesto
			row.Party = &party
			row.Manifesto = &manifesto
			row.Document = candidate.Document
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// flakyLedger wraps another ledger and fails a configurable number of times
// per operation before letting calls through.
type flakyLedger struct {
	mu          sync.Mutex
	inner       ports.Ledger
	failSubmits int
	failReads   int
	submitErr   error
	readErr     error
	// when true, SubmitVote performs the write and then reports submitErr,
	// simulating a network failure after the ledger accepted the vote.
	ambiguousSubmit bool
}

func (l *flakyLedger) SubmitVote(ctx context.Context, voter, candidate string) (string, error) {
	l.mu.Lock()
	shouldFail := l.failSubmits > 0
	if shouldFail {
		l.failSubmits--
	}
	ambiguous := l.ambiguousSubmit
	l.mu.Unlock()

	if shouldFail {
		if ambiguous {
			if _, err := l.inner.SubmitVote(ctx, voter, candidate); err != nil {
				return "", err
			}
		}
		return "", l.submitErr
	}
	return l.inner.SubmitVote(ctx, voter, candidate)
}

func (l *flakyLedger) QueryHasVoted(ctx context.Context, voter string) (bool, error) {
	l.mu.Lock()
	shouldFail := l.failReads > 0
	if shouldFail {
		l.failReads--
	}
	l.mu.Unlock()

	if shouldFail {
		return false, l.readErr
	}
	return l.inner.QueryHasVoted(ctx, voter)
}

func (l *flakyLedger) QueryVoteCount(ctx context.Context, candidate string) (uint64, error) {
	l.mu.Lock()
	shouldFail := l.failReads > 0
	if shouldFail {
		l.failReads--
	}
	l.mu.Unlock()

	if shouldFail {
		return 0, l.readErr
	}
	return l.inner.QueryVoteCount(ctx, candidate)
}
