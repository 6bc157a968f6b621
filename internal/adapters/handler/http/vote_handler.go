package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vncsmyrnk/ballot/internal/core/ports"
	"github.com/vncsmyrnk/ballot/internal/metrics"
)

type VoteHandler struct {
	election ports.ElectionService
	metrics  *metrics.Metrics
}

func NewVoteHandler(election ports.ElectionService, m *metrics.Metrics) *VoteHandler {
	return &VoteHandler{
		election: election,
		metrics:  m,
	}
}

type castVoteRequest struct {
	VoterWallet     string `json:"voter_wallet"`
	CandidateWallet string `json:"candidate_wallet"`
}

type castVoteResponse struct {
	Receipt string `json:"receipt,omitempty"`
}

func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.VoterWallet == "" || req.CandidateWallet == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation_error",
			Detail: "voter_wallet and candidate_wallet are required",
		})
		return
	}

	receipt, err := h.election.CastVote(r.Context(), ports.CastVoteInput{
		VoterWallet:     req.VoterWallet,
		CandidateWallet: req.CandidateWallet,
	}, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.VotesCast.Inc()
	writeJSON(w, http.StatusCreated, castVoteResponse{Receipt: receipt})
}
