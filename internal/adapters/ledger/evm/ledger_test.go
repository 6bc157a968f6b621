package evm

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

const (
	contractAddr = "0x00000000000000000000000000000000000000fe"
	voterAddr    = "0x1111111111111111111111111111111111111111"
	candAddr     = "0x2222222222222222222222222222222222222222"
)

// fakeCaller records the last call and replies with canned ABI-encoded
// return data.
type fakeCaller struct {
	lastMsg ethereum.CallMsg
	ret     []byte
	err     error
}

func (c *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	c.lastMsg = msg
	return c.ret, c.err
}

type fakeTransactor struct {
	lastFrom common.Address
	lastTo   common.Address
	lastData []byte
	txHash   string
	err      error
}

func (t *fakeTransactor) Send(ctx context.Context, from, to common.Address, calldata []byte) (string, error) {
	t.lastFrom = from
	t.lastTo = to
	t.lastData = calldata
	return t.txHash, t.err
}

func word(v byte) []byte {
	w := make([]byte, 32)
	w[31] = v
	return w
}

func TestQueryHasVoted(t *testing.T) {
	caller := &fakeCaller{ret: word(1)}
	ledger, err := newWithCaller(caller, contractAddr, nil)
	require.NoError(t, err)

	voted, err := ledger.QueryHasVoted(context.Background(), voterAddr)
	require.NoError(t, err)
	assert.True(t, voted)

	// The call targets the contract and encodes the voter address.
	require.NotNil(t, caller.lastMsg.To)
	assert.Equal(t, common.HexToAddress(contractAddr), *caller.lastMsg.To)
	assert.Contains(t, common.Bytes2Hex(caller.lastMsg.Data), voterAddr[2:])
}

func TestQueryVoteCount(t *testing.T) {
	caller := &fakeCaller{ret: word(42)}
	ledger, err := newWithCaller(caller, contractAddr, nil)
	require.NoError(t, err)

	count, err := ledger.QueryVoteCount(context.Background(), candAddr)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), count)
}

func TestQueryTransportError(t *testing.T) {
	caller := &fakeCaller{err: errors.New("connection refused")}
	ledger, err := newWithCaller(caller, contractAddr, nil)
	require.NoError(t, err)

	_, err = ledger.QueryHasVoted(context.Background(), voterAddr)
	assert.Error(t, err)
}

func TestSubmitVote(t *testing.T) {
	transactor := &fakeTransactor{txHash: "0xdeadbeef"}
	ledger, err := newWithCaller(&fakeCaller{}, contractAddr, transactor)
	require.NoError(t, err)

	txHash, err := ledger.SubmitVote(context.Background(), voterAddr, candAddr)
	require.NoError(t, err)
	assert.Equal(t, "0xdeadbeef", txHash)

	assert.Equal(t, common.HexToAddress(voterAddr), transactor.lastFrom)
	assert.Equal(t, common.HexToAddress(contractAddr), transactor.lastTo)
	assert.Contains(t, common.Bytes2Hex(transactor.lastData), candAddr[2:])
}

func TestSubmitVoteRevertMapping(t *testing.T) {
	tests := []struct {
		name    string
		sendErr error
		want    error
	}{
		{"already voted", errors.New("execution reverted: Already voted"), domain.ErrAlreadyVoted},
		{"not a candidate", errors.New("execution reverted: Not a candidate"), domain.ErrInvalidCandidate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactor := &fakeTransactor{err: tt.sendErr}
			ledger, err := newWithCaller(&fakeCaller{}, contractAddr, transactor)
			require.NoError(t, err)

			_, err = ledger.SubmitVote(context.Background(), voterAddr, candAddr)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSubmitVoteUnknownErrorPassesThrough(t *testing.T) {
	sendErr := errors.New("tx pool full")
	transactor := &fakeTransactor{err: sendErr}
	ledger, err := newWithCaller(&fakeCaller{}, contractAddr, transactor)
	require.NoError(t, err)

	_, err = ledger.SubmitVote(context.Background(), voterAddr, candAddr)
	assert.ErrorIs(t, err, sendErr)
}

func TestNewRejectsBadContractAddress(t *testing.T) {
	_, err := New("http://localhost:8545", "not-an-address", nil)
	assert.Error(t, err)
}
