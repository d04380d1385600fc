package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"time"

	"github.com/2beens/fitcoach/internal/activity"
	"github.com/2beens/fitcoach/internal/config"
	"github.com/2beens/fitcoach/internal/db"
	"github.com/2beens/fitcoach/internal/logging"
	"github.com/2beens/fitcoach/internal/progression"
	"github.com/2beens/fitcoach/internal/progression/events"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

type recomputer interface {
	RecomputeToday(ctx context.Context, clientID uuid.UUID) (*progression.Result, error)
}

// reruns today's reward evaluation for the given clients, e.g. after
// rewards were reported as pending
func main() {
	fmt.Println("starting progression recompute ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	clients := flag.String("clients", "", "comma separated client ids")
	timeout := flag.Duration("timeout", time.Minute, "timeout for the whole run")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})

	clientIDs, err := parseClientIDs(*clients)
	if err != nil {
		log.Fatalf("parse client ids: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("FITCOACH_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	// must share the lock with running service instances
	var locker progression.Locker = progression.NewLocalLocker()
	if cfg.ProgressionLocker == config.LockerRedis {
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: os.Getenv("FITCOACH_REDIS_PASS"),
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warnf("close redis client: %s", err)
			}
		}()
		locker = progression.NewRedisLocker(rdb, cfg.ProgressionLockTTL, 0)
	} else {
		log.Warnln("local locker in use, make sure the service is not writing at the same time")
	}

	recorder := events.NewRecorder(events.NewRepo(dbPool), cfg.EventsBufferSize, nil)
	recorder.Start()
	defer recorder.Stop()

	engine := progression.NewEngine(progression.NewEngineParams{
		ActivityLog: activity.NewRepo(dbPool),
		Profiles:    progression.NewProfileRepo(dbPool),
		Locker:      locker,
		Recorder:    recorder,
	})

	if err := recompute(ctx, engine, clientIDs, os.Stdout); err != nil {
		log.Errorf("recompute: %s", err)
		recorder.Stop()
		dbPool.Close()
		os.Exit(1)
	}

	// running services keep their cached profile views until the entry expires
	fmt.Printf("\nrecompute completed, profile views may lag for up to %s (profile_cache_ttl)\n", cfg.ProfileCacheTTL)
}

func parseClientIDs(raw string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, fmt.Errorf("client id [%s]: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no client ids given")
	}
	return ids, nil
}

type recomputeLine struct {
	ClientID uuid.UUID           `json:"clientId"`
	Result   *progression.Result `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// recompute writes one JSON line per client and keeps going on failures.
func recompute(ctx context.Context, engine recomputer, clientIDs []uuid.UUID, out io.Writer) error {
	enc := json.NewEncoder(out)
	var errs error
	for _, clientID := range clientIDs {
		line := recomputeLine{ClientID: clientID}
		result, err := engine.RecomputeToday(ctx, clientID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("client %s: %w", clientID, err))
			line.Error = err.Error()
		} else {
			line.Result = result
		}
		if err := enc.Encode(line); err != nil {
			return multierr.Append(errs, fmt.Errorf("write output: %w", err))
		}
	}
	return errs
}
