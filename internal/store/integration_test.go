package store

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
)

// PostgresContainer represents a Postgres container for testing
type PostgresContainer struct {
	testcontainers.Container
	Config Config
	Host   string
	Port   string
}

// setupPostgresContainer sets up a Postgres container for testing
func setupPostgresContainer(ctx context.Context) (*PostgresContainer, error) {
	port, err := getFreePort()
	if err != nil {
		return nil, fmt.Errorf("could not get free port: %w", err)
	}

	portStr := fmt.Sprintf("%d", port)
	portBindings := nat.PortMap{
		"5432/tcp": []nat.PortBinding{{HostPort: portStr}},
	}

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		ExposedPorts: []string{"5432/tcp"},
		HostConfigModifier: func(cfg *container.HostConfig) {
			cfg.PortBindings = portBindings
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get host: %w", err)
	}

	// The mapped port can differ from the requested one.
	mappedPort, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get mapped port: %w", err)
	}
	portStr = mappedPort.Port()

	if err := waitForPostgresReady(host, portStr, "testuser", "testpass", "testdb", 30*time.Second); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("postgres container not ready: %w", err)
	}

	config := Config{
		Enabled: true,
		Connection: Connection{
			Host:     host,
			Port:     portStr,
			User:     "testuser",
			Password: "testpass",
			DbName:   "testdb",
			SSLMode:  "disable",
		},
	}

	return &PostgresContainer{
		Container: pgContainer,
		Config:    config,
		Host:      host,
		Port:      portStr,
	}, nil
}

// getFreePort gets a free port from the OS
func getFreePort() (int, error) {
	addr, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer func(addr net.Listener) {
		if err := addr.Close(); err != nil {
			fmt.Printf("Failed to close listener: %v", err)
		}
	}(addr)

	return addr.Addr().(*net.TCPAddr).Port, nil
}

// waitForPostgresReady attempts to connect to PostgreSQL until it's ready or times out
func waitForPostgresReady(host, port, user, password, dbname string, timeout time.Duration) error {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	startTime := time.Now()
	for {
		if time.Since(startTime) > timeout {
			return fmt.Errorf("timed out waiting for PostgreSQL to be ready after %s", timeout)
		}

		db, err := sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
			_ = db.Close()
			if err == nil {
				return nil
			}
		}

		time.Sleep(500 * time.Millisecond)
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}

// TestStoreWithFXModule exercises the store end to end against a real
// PostgreSQL using the package's FX module.
func TestStoreWithFXModule(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	pgContainer, err := setupPostgresContainer(ctx)
	require.NoError(t, err)
	defer func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	}()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := NewMockLogger(ctrl)

	// Override Fatal to prevent test termination
	mockLogger.EXPECT().Fatal(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(msg string, err error, fields ...map[string]interface{}) {
			t.Logf("FATAL: %s, Error: %v", msg, err)
		}).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	t.Logf("Using PostgreSQL on %s:%s", pgContainer.Host, pgContainer.Port)

	var visitStore *Store

	app := fxtest.New(t,
		fx.Provide(
			func() Config {
				return pgContainer.Config
			},
			func() Logger {
				return mockLogger
			},
		),
		FXModule,
		fx.Populate(&visitStore),
	)

	err = app.Start(ctx)
	require.NoError(t, err)
	defer app.RequireStop()

	require.NotNil(t, visitStore, "store must be constructed when enabled")

	t.Run("SaveAndQueryVisits", func(t *testing.T) {
		ctx := context.Background()

		require.NoError(t, visitStore.SaveVisit(ctx, "0af7651916cd43dd8448eb211c80319c", "hi", http.StatusOK))
		require.NoError(t, visitStore.SaveVisit(ctx, "1bf7651916cd43dd8448eb211c80319d", "", http.StatusBadRequest))

		count, err := visitStore.CountVisits(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		visits, err := visitStore.RecentVisits(ctx, 10)
		require.NoError(t, err)
		require.Len(t, visits, 2)

		// Newest first.
		assert.Equal(t, http.StatusBadRequest, visits[0].Status)
		assert.Equal(t, "hi", visits[1].Message)
		assert.Equal(t, "0af7651916cd43dd8448eb211c80319c", visits[1].TraceID)
	})

	t.Run("RecentVisitsHonorsLimit", func(t *testing.T) {
		ctx := context.Background()

		visits, err := visitStore.RecentVisits(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, visits, 1)
	})
}

func TestDisabledStoreIsNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	visitStore := NewStore(Config{Enabled: false}, mockLogger)
	assert.Nil(t, visitStore)

	// Nil-store operations must be harmless no-ops.
	ctx := context.Background()
	assert.NoError(t, visitStore.SaveVisit(ctx, "trace", "msg", http.StatusOK))

	count, err := visitStore.CountVisits(ctx)
	assert.NoError(t, err)
	assert.Zero(t, count)

	visits, err := visitStore.RecentVisits(ctx, 5)
	assert.NoError(t, err)
	assert.Empty(t, visits)

	assert.NoError(t, visitStore.Close())
}
