package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/ballot/internal/adapters/ledger/memory"
	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

var errTransport = errors.New("connection reset")

func newTestGateway(flaky *flakyLedger) *ledgerGateway {
	return &ledgerGateway{ledger: flaky, backoff: time.Millisecond}
}

func TestGatewayReadRetry(t *testing.T) {
	inner := memory.New()
	_, err := inner.SubmitVote(context.Background(), walletA, walletB)
	require.NoError(t, err)

	flaky := &flakyLedger{inner: inner, failReads: 2, readErr: errTransport}
	gateway := newTestGateway(flaky)

	voted, err := gateway.HasVoted(context.Background(), walletA)
	require.NoError(t, err)
	assert.True(t, voted)
}

func TestGatewayReadExhaustsRetries(t *testing.T) {
	flaky := &flakyLedger{inner: memory.New(), failReads: 3, readErr: errTransport}
	gateway := newTestGateway(flaky)

	_, err := gateway.VoteCount(context.Background(), walletB)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestGatewayCastVoteAmbiguousButLanded(t *testing.T) {
	// The submission reaches the ledger but the response is lost. The
	// gateway must consult hasVoted and report success instead of
	// resubmitting.
	inner := memory.New()
	flaky := &flakyLedger{inner: inner, failSubmits: 1, submitErr: errTransport, ambiguousSubmit: true}
	gateway := newTestGateway(flaky)

	receipt, err := gateway.CastVote(context.Background(), walletA, walletB)
	require.NoError(t, err)
	assert.Empty(t, receipt)

	count, err := inner.QueryVoteCount(context.Background(), walletB)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestGatewayCastVoteAmbiguousNotLanded(t *testing.T) {
	// The submission never reached the ledger. After hasVoted confirms
	// that, one resubmission is safe.
	inner := memory.New()
	flaky := &flakyLedger{inner: inner, failSubmits: 1, submitErr: errTransport}
	gateway := newTestGateway(flaky)

	receipt, err := gateway.CastVote(context.Background(), walletA, walletB)
	require.NoError(t, err)
	assert.NotEmpty(t, receipt)

	count, err := inner.QueryVoteCount(context.Background(), walletB)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestGatewayCastVoteTransportDown(t *testing.T) {
	flaky := &flakyLedger{inner: memory.New(), failSubmits: 2, failReads: 1, submitErr: errTransport, readErr: errTransport}
	gateway := newTestGateway(flaky)

	_, err := gateway.CastVote(context.Background(), walletA, walletB)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestGatewayCastVotePassesThroughRejections(t *testing.T) {
	inner := memory.New()
	_, err := inner.SubmitVote(context.Background(), walletA, walletB)
	require.NoError(t, err)

	gateway := newTestGateway(&flakyLedger{inner: inner})

	_, err = gateway.CastVote(context.Background(), walletA, walletC)
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	inner.RestrictCandidates(walletB)
	_, err = gateway.CastVote(context.Background(), walletB, walletC)
	assert.ErrorIs(t, err, domain.ErrInvalidCandidate)
}
