package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/vncsmyrnk/ballot/internal/adapters/ledger/evm"
	"github.com/vncsmyrnk/ballot/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/ballot/internal/config"
	"github.com/vncsmyrnk/ballot/internal/core/services"
)

// One-shot job: computes the current ranked tally and prints it. Meant for
// cron or ad-hoc snapshots during an election.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.FromEnv()

	var rpcURL, contract string
	flag.StringVar(&rpcURL, "rpc-url", cfg.LedgerRPCURL, "Ledger JSON-RPC endpoint")
	flag.StringVar(&contract, "contract", cfg.ContractAddress, "Elections contract address")
	flag.Parse()

	if rpcURL == "" {
		log.Fatal("a ledger RPC endpoint is required")
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	// Read-only run, no transactor needed.
	ledger, err := evm.New(rpcURL, contract, nil)
	if err != nil {
		log.Fatal(err)
	}

	registry := services.NewRegistryService(postgres.NewVoterRepository(db), postgres.NewCandidateRepository(db))
	gateway := services.NewLedgerGateway(ledger)
	tally := services.NewTallyService(registry, gateway)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Computing election tally...")

	rows, err := tally.ComputeResults(ctx)
	if err != nil {
		log.Fatalf("Error computing tally: %v", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tCANDIDATE\tPARTY\tVOTES")
	for i, row := range rows {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", i+1, row.Name, row.Party, row.VoteCount)
	}
	w.Flush()
}
