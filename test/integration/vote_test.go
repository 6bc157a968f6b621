package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

func (app *TestApp) castVote(t *testing.T, voter, candidate string) *http.Response {
	t.Helper()
	return app.postJSON(t, "/api/votes", map[string]string{
		"voter_wallet":     voter,
		"candidate_wallet": candidate,
	})
}

func TestCastVoteOnce(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	voter := freshWallet()
	app.registerVoter(t, voter, "1990-01-01")
	candidate := freshWallet()
	app.registerCandidate(t, candidate)

	resp := app.castVote(t, voter, candidate)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var receipt struct {
		Receipt string `json:"receipt"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&receipt))
	resp.Body.Close()
	assert.NotEmpty(t, receipt.Receipt)

	// A second vote is rejected, even for a different candidate.
	other := freshWallet()
	app.registerCandidate(t, other)

	resp = app.castVote(t, voter, other)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	kind, _ := decodeError(t, resp)
	assert.Equal(t, "already_voted", kind)
}

func TestCastVoteForNonCandidate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	voter := freshWallet()
	app.registerVoter(t, voter, "1990-01-01")
	target := freshWallet()
	app.registerVoter(t, target, "1990-01-01")

	resp := app.castVote(t, voter, target)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	kind, _ := decodeError(t, resp)
	assert.Equal(t, "invalid_candidate", kind)
}

func TestResultsRankingAndTieBreak(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	// Three candidates registered in order, so ids ascend A, B, C.
	candidateA := freshWallet()
	app.registerCandidate(t, candidateA)
	candidateB := freshWallet()
	app.registerCandidate(t, candidateB)
	candidateC := freshWallet()
	app.registerCandidate(t, candidateC)

	// Votes: A gets 2, B gets 2, C gets 1. A and B tie; A's lower id
	// ranks it first.
	for _, target := range []string{candidateA, candidateA, candidateB, candidateB, candidateC} {
		voter := freshWallet()
		app.registerVoter(t, voter, "1990-01-01")
		resp := app.castVote(t, voter, target)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp, err := app.Client.Get(app.Server.URL + "/api/results")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []domain.TallyRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	resp.Body.Close()

	require.Len(t, rows, 3)
	assert.Equal(t, candidateA, rows[0].WalletAddress)
	assert.Equal(t, uint64(2), rows[0].VoteCount)
	assert.Equal(t, candidateB, rows[1].WalletAddress)
	assert.Equal(t, uint64(2), rows[1].VoteCount)
	assert.Equal(t, candidateC, rows[2].WalletAddress)
	assert.Equal(t, uint64(1), rows[2].VoteCount)
}

func TestResultsEmptyElection(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	resp, err := app.Client.Get(app.Server.URL + "/api/results")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rows []domain.TallyRow
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rows))
	resp.Body.Close()
	assert.Empty(t, rows)
}
