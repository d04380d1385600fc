// Package testinternals starts throwaway postgres and redis containers
// for integration tests.
package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/2beens/fitcoach/internal/db"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	PostgresDBName   = "fitcoach"
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
)

type Containers struct {
	dockerPool *dockertest.Pool
	teardown   []func()

	PostgresPort string
	RedisPort    string
}

// NewContainers connects to the local docker daemon.
// Uses a sensible default on windows (tcp/http) and linux/osx (socket).
func NewContainers() (*Containers, error) {
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("create dockertest pool: %w", err)
	}
	if err := dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("ping dockertest pool: %w", err)
	}
	dockerPool.MaxWait = 2 * time.Minute

	return &Containers{
		dockerPool: dockerPool,
	}, nil
}

func (c *Containers) Cleanup() {
	for i := len(c.teardown) - 1; i >= 0; i-- {
		c.teardown[i]()
	}
	c.teardown = nil
}

// StartPostgres runs postgres, waits until it accepts connections and
// applies the service schema.
func (c *Containers) StartPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	pgResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + PostgresUser,
			"POSTGRES_PASSWORD=" + PostgresPassword,
			"POSTGRES_DB=" + PostgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		if err := pgResource.Close(); err != nil {
			fmt.Printf("postgres teardown: %s\n", err)
		}
	})

	c.PostgresPort = pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@localhost:%s/%s?sslmode=disable",
		PostgresUser, PostgresPassword, c.PostgresPort, PostgresDBName,
	)

	// readiness probe over database/sql, the pool is created after
	if err := c.dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return nil, fmt.Errorf("wait for postgres: %w", err)
	}

	pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     c.PostgresPort,
		DBName:     PostgresDBName,
		DBUser:     PostgresUser,
		DBPassword: PostgresPassword,
	})
	if err != nil {
		return nil, err
	}
	c.teardown = append(c.teardown, pool.Close)

	if err := db.Migrate(ctx, pool); err != nil {
		return nil, err
	}

	return pool, nil
}

func (c *Containers) StartRedis(ctx context.Context) (*redis.Client, error) {
	redisResource, err := c.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		if err := redisResource.Close(); err != nil {
			fmt.Printf("redis teardown: %s\n", err)
		}
	})

	c.RedisPort = redisResource.GetPort("6379/tcp")
	rdb := redis.NewClient(&redis.Options{
		Addr: "localhost:" + c.RedisPort,
	})
	if err := c.dockerPool.Retry(func() error {
		return rdb.Ping(ctx).Err()
	}); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("wait for redis: %w", err)
	}
	c.teardown = append(c.teardown, func() {
		_ = rdb.Close()
	})

	return rdb, nil
}

// PostgresPool starts a postgres container for a single test.
func PostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	containers, err := NewContainers()
	if err != nil {
		t.Fatalf("containers: %s", err)
	}
	t.Cleanup(containers.Cleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()
	pool, err := containers.StartPostgres(ctx)
	if err != nil {
		t.Fatalf("start postgres: %s", err)
	}
	return pool
}
