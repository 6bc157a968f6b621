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

// maxUploadSize bounds profile photos and candidacy documents.
const maxUploadSize = 5 << 20

type VoterHandler struct {
	election ports.ElectionService
	registry ports.RegistryService
	files    ports.FileStore
	metrics  *metrics.Metrics
}

func NewVoterHandler(election ports.ElectionService, registry ports.RegistryService, files ports.FileStore, m *metrics.Metrics) *VoterHandler {
	return &VoterHandler{
		election: election,
		registry: registry,
		files:    files,
		metrics:  m,
	}
}

type registerVoterRequest struct {
	Name          string `json:"name"`
	DOB           string `json:"dob"`
	Email         string `json:"email"`
	VoterID       string `json:"voter_id"`
	NationalID    string `json:"national_id"`
	Address       string `json:"address"`
	WalletAddress string `json:"wallet_address"`
}

func (h *VoterHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerVoterRequest
	var photoRef *string

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			http.Error(w, "invalid multipart form", http.StatusBadRequest)
			return
		}
		req = registerVoterRequest{
			Name:          r.FormValue("name"),
			DOB:           r.FormValue("dob"),
			Email:         r.FormValue("email"),
			VoterID:       r.FormValue("voter_id"),
			NationalID:    r.FormValue("national_id"),
			Address:       r.FormValue("address"),
			WalletAddress: r.FormValue("wallet_address"),
		}
		if file, header, err := r.FormFile("profile_photo"); err == nil {
			defer file.Close()
			ref, err := h.files.Save(r.Context(), header.Filename, file)
			if err != nil {
				http.Error(w, "failed to store profile photo", http.StatusInternalServerError)
				return
			}
			photoRef = &ref
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation_error",
			Detail: "dob must be formatted as YYYY-MM-DD",
			Field:  "dob",
		})
		return
	}

	voter, err := h.election.RegisterVoter(r.Context(), ports.RegisterVoterInput{
		Name:          req.Name,
		DateOfBirth:   dob,
		Email:         req.Email,
		VoterID:       req.VoterID,
		NationalID:    req.NationalID,
		Address:       req.Address,
		WalletAddress: req.WalletAddress,
		ProfilePhoto:  photoRef,
	}, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.metrics.VotersRegistered.Inc()
	writeJSON(w, http.StatusCreated, voter)
}

func (h *VoterHandler) Get(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	voter, err := h.registry.FindVoterByWallet(r.Context(), wallet)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, voter)
}

func (h *VoterHandler) Status(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")

	status, err := h.election.VoterStatus(r.Context(), wallet)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}
