package testutil

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	pgclient "github.com/xw1nchester/countries-backend/pkg/client/postgresql"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

const (
	pgUser     = "testuser"
	pgPassword = "testpass"
	pgDatabase = "testdb"
)

type PostgresContainer struct {
	testcontainers.Container
	ConnectionString string
	Config           pgclient.Config
}

func NewPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	const port = "5432/tcp"

	dbURL := func(host string, port nat.Port) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, host, port.Port(), pgDatabase)
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17.5-alpine3.21",
		ExposedPorts: []string{port},
		Cmd:          []string{"postgres", "-c", "fsync=off"},
		Env: map[string]string{
			"POSTGRES_DB":       pgDatabase,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_USER":     pgUser,
		},
		WaitingFor: wait.ForSQL(port, "postgres", dbURL).
			WithStartupTimeout(30 * time.Second).
			WithQuery("SELECT 1"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	mappedPort, err := container.MappedPort(ctx, port)
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	return &PostgresContainer{
		Container:        container,
		ConnectionString: dbURL(host, mappedPort),
		Config: pgclient.Config{
			Username: pgUser,
			Password: pgPassword,
			Host:     host,
			Port:     mappedPort.Port(),
			Database: pgDatabase,
		},
	}, nil
}

// PostgresSuite starts a disposable postgres, applies migrations/postgres
// and truncates the countries table before every test.
type PostgresSuite struct {
	suite.Suite
	Container *PostgresContainer
	Pool      *pgxpool.Pool
}

func (s *PostgresSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping postgres integration tests in short mode")
	}

	ctx := context.Background()

	container, err := NewPostgresContainer(ctx)
	s.Require().NoError(err)
	s.Container = container

	s.Require().NoError(RunMigrations(container.ConnectionString, MigrationsPath("postgres")))

	pool, err := pgclient.NewClient(ctx, container.Config)
	s.Require().NoError(err)
	s.Pool = pool
}

func (s *PostgresSuite) TearDownSuite() {
	if s.Pool != nil {
		s.Pool.Close()
	}
	if s.Container != nil {
		_ = s.Container.Terminate(context.Background())
	}
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.Pool.Exec(context.Background(), `TRUNCATE countries`)
	s.Require().NoError(err)
}

// MigrationsPath walks up from the working directory to the module root.
func MigrationsPath(driver string) string {
	wd, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(wd, "go.mod")); err == nil {
			return filepath.Join(wd, "migrations", driver)
		}
		parent := filepath.Dir(wd)
		if parent == wd {
			return ""
		}
		wd = parent
	}
}

func RunMigrations(dsn, path string) error {
	if path == "" {
		return errors.New("migrations path not found")
	}

	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
