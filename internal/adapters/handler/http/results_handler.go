package http

import (
	"errors"
	"net/http"

	"github.com/vncsmyrnk/ballot/internal/core/domain"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
	"github.com/vncsmyrnk/ballot/internal/metrics"
)

type ResultsHandler struct {
	tally   ports.TallyService
	metrics *metrics.Metrics
}

func NewResultsHandler(tally ports.TallyService, m *metrics.Metrics) *ResultsHandler {
	return &ResultsHandler{
		tally:   tally,
		metrics: m,
	}
}

func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	rows, err := h.tally.ComputeResults(r.Context())
	if err != nil {
		var tallyErr *domain.PartialTallyError
		if errors.As(err, &tallyErr) || errors.Is(err, domain.ErrLedgerUnavailable) {
			h.metrics.TallyFailures.Inc()
		}
		writeDomainError(w, err)
		return
	}

	h.metrics.TallyRuns.Inc()
	if rows == nil {
		rows = []domain.TallyRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}
