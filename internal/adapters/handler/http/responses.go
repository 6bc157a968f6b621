package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
)

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Field  string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeDomainError maps the core error taxonomy to HTTP statuses. Services
// never see HTTP; this is the only place statuses are chosen.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		validationErr *domain.ValidationError
		duplicateErr  *domain.DuplicateIdentityError
		underageErr   *domain.UnderageError
		tallyErr      *domain.PartialTallyError
	)

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation_error",
			Detail: validationErr.Error(),
			Field:  validationErr.Field,
		})
	case errors.As(err, &duplicateErr):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error:  "duplicate_identity",
			Detail: duplicateErr.Error(),
			Field:  duplicateErr.Field,
		})
	case errors.As(err, &underageErr):
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error:  "underage",
			Detail: underageErr.Error(),
		})
	case errors.As(err, &tallyErr):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error:  "partial_tally_failure",
			Detail: tallyErr.Error(),
		})
	case errors.Is(err, domain.ErrVoterNotFound),
		errors.Is(err, domain.ErrCandidateNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_found", Detail: err.Error()})
	case errors.Is(err, domain.ErrNotRegistered):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not_registered", Detail: err.Error()})
	case errors.Is(err, domain.ErrAlreadyCandidate):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "already_candidate", Detail: err.Error()})
	case errors.Is(err, domain.ErrAlreadyVoted):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "already_voted", Detail: err.Error()})
	case errors.Is(err, domain.ErrInvalidCandidate):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "invalid_candidate", Detail: err.Error()})
	case errors.Is(err, domain.ErrLedgerUnavailable):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "ledger_unavailable", Detail: domain.ErrLedgerUnavailable.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal", Detail: domain.ErrInternal.Error()})
	}
}
