package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

type candidateRepository struct {
	db *sql.DB
}

func NewCandidateRepository(db *sql.DB) ports.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Create(ctx context.Context, candidate *domain.Candidate) error {
	query := `
		INSERT INTO candidates (wallet_address, party, manifesto, document)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		candidate.WalletAddress, candidate.Party, candidate.Manifesto, candidate.Document,
	).Scan(&candidate.ID, &candidate.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			// Lost the race against a concurrent application for the
			// same wallet.
			return domain.ErrAlreadyCandidate
		}
		return fmt.Errorf("failed to insert candidate: %w", err)
	}
	return nil
}

func (r *candidateRepository) GetByWallet(ctx context.Context, walletAddress string) (*domain.Candidate, error) {
	query := `
		SELECT id, wallet_address, party, manifesto, document, created_at
		FROM candidates
		WHERE wallet_address = $1
	`
	candidate := &domain.Candidate{}
	err := r.db.QueryRowContext(ctx, query, walletAddress).Scan(
		&candidate.ID, &candidate.WalletAddress, &candidate.Party,
		&candidate.Manifesto, &candidate.Document, &candidate.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch candidate: %w", err)
	}
	return candidate, nil
}

func (r *candidateRepository) ListWithIdentity(ctx context.Context) ([]domain.CandidateIdentity, error) {
	query := `
		SELECT v.id, v.name, v.dob, v.email, v.voter_id, v.national_id, v.address,
		       v.profile_photo, v.wallet_address, v.created_at,
		       c.party, c.manifesto, c.document
		FROM voters v
		LEFT JOIN candidates c ON v.wallet_address = c.wallet_address
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var identities []domain.CandidateIdentity
	for rows.Next() {
		var identity domain.CandidateIdentity
		err := rows.Scan(
			&identity.ID, &identity.Name, &identity.DateOfBirth, &identity.Email,
			&identity.VoterID, &identity.NationalID, &identity.Address,
			&identity.ProfilePhoto, &identity.WalletAddress, &identity.CreatedAt,
			&identity.Party, &identity.Manifesto, &identity.Document,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate row: %w", err)
		}
		identities = append(identities, identity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating candidate rows: %w", err)
	}
	return identities, nil
}
