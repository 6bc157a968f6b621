package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/ballot/internal/adapters/handler/http"
	"github.com/vncsmyrnk/ballot/internal/adapters/ledger/evm"
	"github.com/vncsmyrnk/ballot/internal/adapters/ledger/memory"
	"github.com/vncsmyrnk/ballot/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/ballot/internal/adapters/storage/disk"
	"github.com/vncsmyrnk/ballot/internal/config"
	"github.com/vncsmyrnk/ballot/internal/core/ports"
	"github.com/vncsmyrnk/ballot/internal/core/services"
	"github.com/vncsmyrnk/ballot/internal/metrics"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.FromEnv()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	ledger, err := buildLedger(cfg)
	if err != nil {
		log.Fatal(err)
	}

	files, err := disk.New(cfg.UploadDir)
	if err != nil {
		log.Fatal(err)
	}

	m := metrics.New()

	voterRepo := postgres.NewVoterRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)

	registry := services.NewRegistryService(voterRepo, candidateRepo)
	gateway := services.NewLedgerGateway(ledger)
	election := services.NewElectionService(registry, gateway)
	tally := services.NewTallyService(registry, gateway)

	voterHandler := http.NewVoterHandler(election, registry, files, m)
	candidateHandler := http.NewCandidateHandler(election, registry, files, m)
	voteHandler := http.NewVoteHandler(election, m)
	resultsHandler := http.NewResultsHandler(tally, m)
	fileHandler := http.NewFileHandler(files)

	handler := http.NewHandler(voterHandler, candidateHandler, voteHandler, resultsHandler, fileHandler)
	server := &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}

// buildLedger picks the on-chain ledger when an RPC endpoint is configured
// and falls back to the in-process one for local development.
func buildLedger(cfg config.Config) (ports.Ledger, error) {
	if cfg.LedgerRPCURL == "" {
		log.Println("LEDGER_RPC_URL not set, using in-memory ledger")
		return memory.New(), nil
	}
	if cfg.WalletRelayURL == "" {
		return nil, errors.New("WALLET_RELAY_URL is required when LEDGER_RPC_URL is set")
	}
	transactor := evm.NewRelayTransactor(cfg.WalletRelayURL)
	return evm.New(cfg.LedgerRPCURL, cfg.ContractAddress, transactor)
}
