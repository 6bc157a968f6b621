package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
	"github.com/vncsmyrnk/ballot/internal/metrics"
)

type CandidateHandler struct {
	election ports.ElectionService
	registry ports.RegistryService
	files    ports.FileStore
	metrics  *metrics.Metrics
}

func NewCandidateHandler(election ports.ElectionService, registry ports.RegistryService, files ports.FileStore, m *metrics.Metrics) *CandidateHandler {
	return &CandidateHandler{
		election: election,
		registry: registry,
		files:    files,
		metrics:  m,
	}
}

type applyForCandidacyRequest struct {
	WalletAddress string `json:"wallet_address"`
	Party         string `json:"party"`
	Manifesto     string `json:"manifesto"`
}

func (h *CandidateHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyForCandidacyRequest
	var documentRef *string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		req = applyForCandidacyRequest{
			WalletAddress: r.FormValue("wallet_address"),
			Party:         r.FormValue("party"),
			Manifesto:     r.FormValue("manifesto"),
		}
		if file, header, err := r.FormFile("document"); err == nil {
			defer file.Close()
			ref, err := h.files.Save(r.Context(), header.Filename, file)
			if err != nil {
				http.Error(w, "failed to store document", http.StatusInternalServerError)
				return
			}
			documentRef = &ref
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	candidate, err := h.election.ApplyForCandidacy(r.Context(), ports.ApplyForCandidacyInput{
		WalletAddress: req.WalletAddress,
		Party:         req.Party,
		Manifesto:     req.Manifesto,
		Document:      documentRef,
	}, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.CandidatesRegistered.Inc()
	writeJSON(w, http.StatusCreated, candidate)
}

func (h *CandidateHandler) Get(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	candidate, err := h.registry.FindCandidateByWallet(r.Context(), wallet)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, candidate)
}

// List returns every voter row left-joined with its candidacy, matching the
// registry contract: rows with a null party are plain voters and consumers
// that need actual candidates must filter them out.
func (h *CandidateHandler) List(w http.ResponseWriter, r *http.Request) {
	identities, err := h.registry.ListCandidatesWithIdentity(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, identities)
}
