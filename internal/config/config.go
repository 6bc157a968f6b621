package config

import (
	"fmt"
	"os"
)

// Config gathers everything the server needs from the environment so main
// stays lean. Load a .env first with godotenv where appropriate.
type Config struct {
	Addr            string
	DatabaseURL     string
	LedgerRPCURL    string
	ContractAddress string
	WalletRelayURL  string
	UploadDir       string
}

func FromEnv() Config {
	addr := os.Getenv("BALLOT_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}
	uploadDir := os.Getenv("BALLOT_UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	return Config{
		Addr:            addr,
		DatabaseURL:     dbURLFromEnv(),
		LedgerRPCURL:    os.Getenv("LEDGER_RPC_URL"),
		ContractAddress: os.Getenv("ELECTIONS_CONTRACT_ADDRESS"),
		WalletRelayURL:  os.Getenv("WALLET_RELAY_URL"),
		UploadDir:       uploadDir,
	}
}

func dbURLFromEnv() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
}
