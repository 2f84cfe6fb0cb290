//go:build e2e

package e2e

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"host-pricing/cmd/bootstrap"
	"host-pricing/cmd/bootstrap/components"
	"host-pricing/internal/infra/db"
	"host-pricing/internal/pkg/config"
	"host-pricing/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "pricing"
	pgPassword = "pricing-e2e"
)

// Endpoint is the host side address of a container port.
type Endpoint struct {
	Host string
	Port nat.Port
}

func (e Endpoint) Addr() string {
	return e.Host + ":" + e.Port.Port()
}

func adminDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
}

// sharedContainer is started at most once per test binary.
type sharedContainer struct {
	once      sync.Once
	container testcontainers.Container
	endpoint  Endpoint
	err       error
}

type containerSpec struct {
	name    string
	port    nat.Port
	request testcontainers.ContainerRequest
}

var (
	postgresContainer sharedContainer
	redisContainer    sharedContainer
)

var postgresSpec = containerSpec{
	name: "postgres",
	port: "5432/tcp",
	request: testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// durability is irrelevant for throwaway test data
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd:   []string{"postgres", "-c", "fsync=off", "-c", "synchronous_commit=off", "-c", "max_connections=200"},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", adminDSN).
			WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"app": "host-pricing", "scope": "e2e"},
	},
}

var redisSpec = containerSpec{
	name: "redis",
	port: "6379/tcp",
	request: testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
		WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		Labels:       map[string]string{"app": "host-pricing", "scope": "e2e"},
	},
}

func (sc *sharedContainer) start(t *testing.T, spec containerSpec) Endpoint {
	t.Helper()
	sc.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		sc.container, sc.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: spec.request,
			Started:          true,
		})
		if sc.err != nil {
			return
		}
		t.Cleanup(func() {
			stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer stopCancel()
			if err := sc.container.Terminate(stopCtx); err != nil {
				slog.Warn("container did not terminate", "container", spec.name, "error", err.Error())
			}
		})

		var host string
		if host, sc.err = sc.container.Host(ctx); sc.err != nil {
			return
		}
		var port nat.Port
		if port, sc.err = sc.container.MappedPort(ctx, spec.port); sc.err != nil {
			return
		}
		sc.endpoint = Endpoint{Host: host, Port: port}
	})
	require.NoError(t, sc.err, "%s container unavailable", spec.name)
	return sc.endpoint
}

// createDatabase gives each suite its own database so packages can run in parallel.
func createDatabase(t *testing.T, pg Endpoint) config.DBConfig {
	t.Helper()
	name := "pricing_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	admin := adminDSN(pg.Host, pg.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, admin)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	// CREATE DATABASE fails while another session copies template1
	var createErr error
	for attempt := 1; attempt <= 5; attempt++ {
		if _, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("create database failed", "attempt", attempt, "error", createErr.Error())
		time.Sleep(time.Duration(attempt) * 300 * time.Millisecond)
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		dropCtx, dropCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dropCancel()
		pool, err := pgxpool.New(dropCtx, admin)
		if err != nil {
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop database failed", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 10,
	}
}

// moduleRoot walks up from the package directory to the go.mod.
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above working directory")
		}
		dir = parent
	}
}

func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(root, "migrations", "*.sql"))
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no migrations under %s", root)
	}
	sort.Strings(files)

	for _, f := range files {
		body, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", filepath.Base(f), err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// redisConfigFor picks a logical database from the process id so parallel
// packages sharing the container do not see each other's keys.
func redisConfigFor(rd Endpoint) config.RedisConfig {
	return config.RedisConfig{
		Addr:        rd.Addr(),
		DB:          os.Getpid() % 16,
		CalendarTTL: time.Minute,
	}
}

// startApp builds the production fx graph on top of the test pool and config.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.CacheModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fx app did not start")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("fx app did not stop cleanly", "error", err.Error())
		}
	})
	return router
}

// SharedSuite owns the containers, a private database and the wired router.
// Each subtest starts from empty tables and an empty cache.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := postgresContainer.start(t, postgresSpec)
	rd := redisContainer.start(t, redisSpec)

	s.Config = config.NewTestConfig()
	s.Config.DB = createDatabase(t, pg)
	s.Config.Redis = redisConfigFor(rd)

	pool, closePool, err := db.Connect(s.Config.DB)
	require.NoError(t, err, "database connection failed")
	t.Cleanup(closePool)
	s.DB = pool

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, migrate(ctx, pool), "migration failed")

	s.Redis = redis.NewClient(&redis.Options{Addr: s.Config.Redis.Addr, DB: s.Config.Redis.DB})
	t.Cleanup(func() { _ = s.Redis.Close() })
	require.NoError(t, s.Redis.FlushDB(ctx).Err(), "failed to flush Redis")

	s.Router = startApp(t, pool, s.Config)

	slog.Info("e2e environment ready",
		"postgres", pg.Addr(),
		"database", s.Config.DB.DBName,
		"redis", rd.Addr())
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "failed to reset database state")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(s.T(), s.Redis.FlushDB(ctx).Err(), "failed to flush Redis")
}
