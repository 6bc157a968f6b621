// Package memory provides an in-process ledger with the same append-once
// semantics as the on-chain contract. Used by tests and local development.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

type Ledger struct {
	mu         sync.Mutex
	votes      map[string]string // voter wallet -> candidate wallet, write-once
	counts     map[string]uint64
	candidates map[string]bool // nil means any target is accepted
}

func New() *Ledger {
	return &Ledger{
		votes:  make(map[string]string),
		counts: make(map[string]uint64),
	}
}

// RestrictCandidates makes the ledger reject votes for wallets outside the
// given set, mirroring a contract with an on-chain candidate registry.
func (l *Ledger) RestrictCandidates(wallets ...string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.candidates = make(map[string]bool, len(wallets))
	for _, w := range wallets {
		l.candidates[normalize(w)] = true
	}
}

func (l *Ledger) SubmitVote(ctx context.Context, voterWallet, candidateWallet string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	voter := normalize(voterWallet)
	candidate := normalize(candidateWallet)

	if l.candidates != nil && !l.candidates[candidate] {
		return "", domain.ErrInvalidCandidate
	}
	if _, ok := l.votes[voter]; ok {
		return "", domain.ErrAlreadyVoted
	}

	l.votes[voter] = candidate
	l.counts[candidate]++
	return uuid.NewString(), nil
}

func (l *Ledger) QueryHasVoted(ctx context.Context, voterWallet string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.votes[normalize(voterWallet)]
	return ok, nil
}

func (l *Ledger) QueryVoteCount(ctx context.Context, candidateWallet string) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.counts[normalize(candidateWallet)], nil
}

func normalize(wallet string) string {
	return strings.ToLower(wallet)
}
