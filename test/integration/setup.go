package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/vncsmyrnk/ballot/internal/adapters/handler/http"
	"github.com/vncsmyrnk/ballot/internal/adapters/ledger/memory"
	repo "github.com/vncsmyrnk/ballot/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/ballot/internal/adapters/storage/disk"
	"github.com/vncsmyrnk/ballot/internal/core/services"
	"github.com/vncsmyrnk/ballot/internal/metrics"
)

type TestApp struct {
	DB          *sql.DB
	Ledger      *memory.Ledger
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

var sharedMetrics *metrics.Metrics

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	require.NoError(t, applyMigrations(db))

	ledger := memory.New()
	files, err := disk.New(t.TempDir())
	require.NoError(t, err)

	// Prometheus collectors register globally; reuse one set across tests.
	if sharedMetrics == nil {
		sharedMetrics = metrics.New()
	}
	m := sharedMetrics

	voterRepo := repo.NewVoterRepository(db)
	candidateRepo := repo.NewCandidateRepository(db)

	registry := services.NewRegistryService(voterRepo, candidateRepo)
	gateway := services.NewLedgerGateway(ledger)
	election := services.NewElectionService(registry, gateway)
	tally := services.NewTallyService(registry, gateway)

	router := handler.NewHandler(
		handler.NewVoterHandler(election, registry, files, m),
		handler.NewCandidateHandler(election, registry, files, m),
		handler.NewVoteHandler(election, m),
		handler.NewResultsHandler(tally, m),
		handler.NewFileHandler(files),
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Ledger:      ledger,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
