// Package evm reads and appends votes through the Elections contract.
// Reads go straight to a JSON-RPC node; submissions are delegated to an
// injected Transactor so key management stays outside this module.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

const electionsABI = `[
	{"type":"function","name":"hasVoted","stateMutability":"view","inputs":[{"name":"voter","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"candidateVoteCount","stateMutability":"view","inputs":[{"name":"candidate","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"vote","stateMutability":"nonpayable","inputs":[{"name":"candidate","type":"address"}],"outputs":[]}
]`

// Transactor submits signed transactions on behalf of a voter wallet. The
// wallet/signing collaborator implements this; the adapter only packs
// calldata.
type Transactor interface {
	Send(ctx context.Context, from, to common.Address, calldata []byte) (txHash string, err error)
}

// caller is the read subset of ethclient.Client used by the adapter,
// narrowed for tests.
type caller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type Ledger struct {
	client     caller
	transactor Transactor
	contract   common.Address
	abi        abi.ABI
}

func New(rpcURL, contractAddress string, transactor Transactor) (*Ledger, error) {
	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}
	client, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ledger node: %w", err)
	}
	return newWithCaller(client, contractAddress, transactor)
}

func newWithCaller(client caller, contractAddress string, transactor Transactor) (*Ledger, error) {
	parsed, err := abi.JSON(strings.NewReader(electionsABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse elections ABI: %w", err)
	}
	return &Ledger{
		client:     client,
		transactor: transactor,
		contract:   common.HexToAddress(contractAddress),
		abi:        parsed,
	}, nil
}

func (l *Ledger) SubmitVote(ctx context.Context, voterWallet, candidateWallet string) (string, error) {
	calldata, err := l.abi.Pack("vote", common.HexToAddress(candidateWallet))
	if err != nil {
		return "", fmt.Errorf("failed to pack vote call: %w", err)
	}

	txHash, err := l.transactor.Send(ctx, common.HexToAddress(voterWallet), l.contract, calldata)
	if err != nil {
		return "", mapRevert(err)
	}
	return txHash, nil
}

func (l *Ledger) QueryHasVoted(ctx context.Context, voterWallet string) (bool, error) {
	out, err := l.call(ctx, "hasVoted", common.HexToAddress(voterWallet))
	if err != nil {
		return false, err
	}
	voted, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected hasVoted result type %T", out[0])
	}
	return voted, nil
}

func (l *Ledger) QueryVoteCount(ctx context.Context, candidateWallet string) (uint64, error) {
	out, err := l.call(ctx, "candidateVoteCount", common.HexToAddress(candidateWallet))
	if err != nil {
		return 0, err
	}
	count, ok := out[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("unexpected candidateVoteCount result type %T", out[0])
	}
	return count.Uint64(), nil
}

func (l *Ledger) call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	calldata, err := l.abi.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	raw, err := l.client.CallContract(ctx, ethereum.CallMsg{To: &l.contract, Data: calldata}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call failed: %w", method, err)
	}

	out, err := l.abi.Unpack(method, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return out, nil
}

// mapRevert translates contract revert reasons into the domain taxonomy.
// Anything unrecognized stays as-is so the gateway treats the outcome as
// ambiguous and consults hasVoted before retrying.
func mapRevert(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "already voted"):
		return domain.ErrAlreadyVoted
	case strings.Contains(msg, "not a candidate"), strings.Contains(msg, "invalid candidate"):
		return domain.ErrInvalidCandidate
	default:
		return err
	}
}
