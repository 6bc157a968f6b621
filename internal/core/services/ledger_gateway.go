package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

const (
	ledgerReadAttempts = 3
	ledgerRetryBackoff = 200 * time.Millisecond
)

type ledgerGateway struct {
	ledger  ports.Ledger
	backoff time.Duration
}

// NewLedgerGateway wraps the external ledger with retry discipline: reads
// retry with backoff on transport failure, writes are never blindly
// retried because a duplicate submission wastes fees even though the
// ledger itself rejects it.
func NewLedgerGateway(ledger ports.Ledger) ports.LedgerGateway {
	return &ledgerGateway{ledger: ledger, backoff: ledgerRetryBackoff}
}

func (g *ledgerGateway) HasVoted(ctx context.Context, voterWallet string) (bool, error) {
	var voted bool
	err := g.withReadRetry(ctx, func() error {
		var err error
		voted, err = g.ledger.QueryHasVoted(ctx, voterWallet)
		return err
	})
	if err != nil {
		return false, err
	}
	return voted, nil
}

func (g *ledgerGateway) VoteCount(ctx context.Context, candidateWallet string) (uint64, error) {
	var count uint64
	err := g.withReadRetry(ctx, func() error {
		var err error
		count, err = g.ledger.QueryVoteCount(ctx, candidateWallet)
		return err
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (g *ledgerGateway) CastVote(ctx context.Context, voterWallet, candidateWallet string) (string, error) {
	receipt, err := g.ledger.SubmitVote(ctx, voterWallet, candidateWallet)
	if err == nil {
		return receipt, nil
	}
	if errors.Is(err, domain.ErrAlreadyVoted) || errors.Is(err, domain.ErrInvalidCandidate) {
		return "", err
	}

	// The submission outcome is unknown. Consult the ledger before doing
	// anything else: if the vote landed, report success with an empty
	// receipt rather than resubmitting.
	voted, checkErr := g.ledger.QueryHasVoted(ctx, voterWallet)
	if checkErr != nil {
		return "", domain.ErrLedgerUnavailable
	}
	if voted {
		return "", nil
	}

	// Confirmed not recorded; one more attempt is safe.
	receipt, err = g.ledger.SubmitVote(ctx, voterWallet, candidateWallet)
	if err == nil {
		return receipt, nil
	}
	if errors.Is(err, domain.ErrAlreadyVoted) || errors.Is(err, domain.ErrInvalidCandidate) {
		return "", err
	}
	return "", domain.ErrLedgerUnavailable
}

func (g *ledgerGateway) withReadRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 0; attempt < ledgerReadAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(g.backoff):
			}
		}
		if err = fn(); err == nil {
			return nil
		}
		// Domain rejections are terminal; only transport failures retry.
		if errors.Is(err, domain.ErrInvalidCandidate) || errors.Is(err, domain.ErrAlreadyVoted) {
			return err
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrLedgerUnavailable, err)
}
