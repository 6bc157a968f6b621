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

// uniqueViolation is the postgres class 23 code for unique_violation.
const uniqueViolation = "23505"

// voterConstraintFields maps unique constraint names from the migrations to
// the field named in DuplicateIdentityError.
var voterConstraintFields = map[string]string{
	"voters_email_key":          "email",
	"voters_voter_id_key":       "voter_id",
	"voters_national_id_key":    "national_id",
	"voters_wallet_address_key": "wallet_address",
}

type voterRepository struct {
	db *sql.DB
}

func NewVoterRepository(db *sql.DB) ports.VoterRepository {
	return &voterRepository{db: db}
}

func (r *voterRepository) Create(ctx context.Context, voter *domain.Voter) error {
	query := `
		INSERT INTO voters (name, dob, email, voter_id, national_id, address, profile_photo, wallet_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		voter.Name, voter.DateOfBirth, voter.Email, voter.VoterID,
		voter.NationalID, voter.Address, voter.ProfilePhoto, voter.WalletAddress,
	).Scan(&voter.ID, &voter.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			if field, ok := voterConstraintFields[pqErr.Constraint]; ok {
				return &domain.DuplicateIdentityError{Field: field}
			}
			return &domain.DuplicateIdentityError{Field: "identity"}
		}
		return fmt.Errorf("failed to insert voter: %w", err)
	}
	return nil
}

func (r *voterRepository) GetByWallet(ctx context.Context, walletAddress string) (*domain.Voter, error) {
	query := `
		SELECT id, name, dob, email, voter_id, national_id, address, profile_photo, wallet_address, created_at
		FROM voters
		WHERE wallet_address = $1
	`
	voter := &domain.Voter{}
	err := r.db.QueryRowContext(ctx, query, walletAddress).Scan(
		&voter.ID, &voter.Name, &voter.DateOfBirth, &voter.Email, &voter.VoterID,
		&voter.NationalID, &voter.Address, &voter.ProfilePhoto, &voter.WalletAddress, &voter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch voter: %w", err)
	}
	return voter, nil
}

func (r *voterRepository) SetProfilePhoto(ctx context.Context, walletAddress, photoRef string) error {
	query := `UPDATE voters SET profile_photo = $1 WHERE wallet_address = $2`
	res, err := r.db.ExecContext(ctx, query, photoRef, walletAddress)
	if err != nil {
		return fmt.Errorf("failed to update profile photo: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrVoterNotFound
	}
	return nil
}
