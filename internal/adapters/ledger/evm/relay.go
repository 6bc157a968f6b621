package evm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RelayTransactor forwards packed calldata to the wallet collaborator, which
// signs with the voter's key and broadcasts. This module never holds keys.
type RelayTransactor struct {
	endpoint string
	client   *http.Client
}

func NewRelayTransactor(endpoint string) *RelayTransactor {
	return &RelayTransactor{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

type relayRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Calldata string `json:"calldata"`
}

type relayResponse struct {
	TxHash string `json:"tx_hash"`
	Error  string `json:"error,omitempty"`
}

func (t *RelayTransactor) Send(ctx context.Context, from, to common.Address, calldata []byte) (string, error) {
	body, err := json.Marshal(relayRequest{
		From:     from.Hex(),
		To:       to.Hex(),
		Calldata: hexutil.Encode(calldata),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	var relayResp relayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResp); err != nil {
		return "", fmt.Errorf("failed to decode relay response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay rejected transaction: %s", relayResp.Error)
	}
	return relayResp.TxHash, nil
}
