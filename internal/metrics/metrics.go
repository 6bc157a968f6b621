package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus counters exposed on /metrics.
type Metrics struct {
	VotersRegistered     prometheus.Counter
	CandidatesRegistered prometheus.Counter
	VotesCast            prometheus.Counter
	TallyRuns            prometheus.Counter
	TallyFailures        prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		VotersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ballot_voters_registered_total",
			Help: "Total number of voters registered.",
		}),
		CandidatesRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ballot_candidates_registered_total",
			Help: "Total number of candidacy applications accepted.",
		}),
		VotesCast: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ballot_votes_cast_total",
			Help: "Total number of votes accepted by the ledger.",
		}),
		TallyRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ballot_tally_runs_total",
			Help: "Total number of tally computations served.",
		}),
		TallyFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "ballot_tally_failures_total",
			Help: "Total number of tally computations aborted by ledger failures.",
		}),
	}
}
