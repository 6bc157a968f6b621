package services

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
)

const tallyMaxConcurrentReads = 8

type tallyService struct {
	registry ports.RegistryService
	gateway  ports.LedgerGateway
}

func NewTallyService(registry ports.RegistryService, gateway ports.LedgerGateway) ports.TallyService {
	return &tallyService{
		registry: registry,
		gateway:  gateway,
	}
}

// ComputeResults joins the candidate list with per-candidate ledger counts.
// A candidate absent from the ledger counts as zero. A failed count lookup
// aborts the run with PartialTallyError naming the candidate: the gateway
// already retried, and reporting zero instead would corrupt the ranking.
func (s *tallyService) ComputeResults(ctx context.Context) ([]domain.TallyRow, error) {
	identities, err := s.registry.ListCandidatesWithIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	var rows []domain.TallyRow
	for _, identity := range identities {
		if !identity.IsCandidate() {
			continue
		}
		rows = append(rows, domain.TallyRow{
			CandidateID:   identity.ID,
			Name:          identity.Name,
			WalletAddress: identity.WalletAddress,
			Party:         *identity.Party,
			Manifesto:     derefOrEmpty(identity.Manifesto),
			ProfilePhoto:  identity.ProfilePhoto,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tallyMaxConcurrentReads)

	for i := range rows {
		g.Go(func() error {
			count, err := s.gateway.VoteCount(gctx, rows[i].WalletAddress)
			if err != nil {
				return &domain.PartialTallyError{
					WalletAddress: rows[i].WalletAddress,
					Name:          rows[i].Name,
					Err:           err,
				}
			}
			rows[i].VoteCount = count
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].VoteCount != rows[b].VoteCount {
			return rows[a].VoteCount > rows[b].VoteCount
		}
		return rows[a].CandidateID < rows[b].CandidateID
	})

	return rows, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
