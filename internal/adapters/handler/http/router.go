package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewHandler(voterHandler *VoterHandler, candidateHandler *CandidateHandler, voteHandler *VoteHandler, resultsHandler *ResultsHandler, fileHandler *FileHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/uploads/{ref}", fileHandler.Serve)

	r.Route("/api", func(r chi.Router) {
		r.Route("/voters", func(r chi.Router) {
			r.Post("/", voterHandler.Register)
			r.Get("/{wallet}", voterHandler.Get)
			r.Get("/{wallet}/status", voterHandler.Status)
		})

		r.Route("/candidates", func(r chi.Router) {
			r.Post("/", candidateHandler.Apply)
			r.Get("/", candidateHandler.List)
			r.Get("/{wallet}", candidateHandler.Get)
		})

		r.Route("/votes", func(r chi.Router) {
			r.Post("/", voteHandler.Cast)
		})

		r.Get("/results", resultsHandler.Results)
	})

	return r
}
