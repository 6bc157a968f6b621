package ports

import (
	"context"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

type TallyService interface {
	// ComputeResults joins candidate identities with ledger vote counts and
	// returns rows sorted by vote count descending, ties broken by
	// candidate id ascending.
	ComputeResults(ctx context.Context) ([]domain.TallyRow, error)
}
