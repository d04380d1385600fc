package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitcoach/pkg"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

var ErrLockNotAcquired = errors.New("progression lock not acquired")

const (
	lockKeyPrefix      = "progression-lock||"
	lockTokenLength    = 16
	lockReleaseTimeout = 2 * time.Second
	defaultLockMaxWait = 5 * time.Second
)

// deletes the key only if it still holds our token
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// RedisLocker serializes reward evaluation per client across service
// instances. The lock expires after ttl if its holder dies.
type RedisLocker struct {
	redisClient redis.Cmdable
	ttl         time.Duration
	maxWait     time.Duration

	RandStringFunc func(s int) (string, error)
}

// NewRedisLocker creates a locker that waits at most maxWait for a busy lock.
// A non-positive maxWait falls back to 5 seconds.
func NewRedisLocker(redisClient redis.Cmdable, ttl, maxWait time.Duration) *RedisLocker {
	if maxWait <= 0 {
		maxWait = defaultLockMaxWait
	}
	return &RedisLocker{
		redisClient:    redisClient,
		ttl:            ttl,
		maxWait:        maxWait,
		RandStringFunc: pkg.GenerateRandomString,
	}
}

func lockKey(clientID uuid.UUID) string {
	return lockKeyPrefix + clientID.String()
}

func (l *RedisLocker) Lock(ctx context.Context, clientID uuid.UUID) (func(), error) {
	token, err := l.RandStringFunc(lockTokenLength)
	if err != nil {
		return nil, fmt.Errorf("generate lock token: %w", err)
	}

	key := lockKey(clientID)
	acquire := func() error {
		ok, err := l.redisClient.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("redis set nx [%s]: %w", key, err))
		}
		if !ok {
			return ErrLockNotAcquired
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 10 * time.Millisecond
	bo.MaxInterval = 250 * time.Millisecond
	bo.MaxElapsedTime = l.maxWait
	if err := backoff.Retry(acquire, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
		defer cancel()
		released, err := l.redisClient.Eval(releaseCtx, releaseScript, []string{key}, token).Int()
		if err != nil {
			log.Errorf("release progression lock [%s]: %s", key, err)
			return
		}
		if released == 0 {
			log.Warnf("progression lock [%s] expired before release", key)
		}
	}, nil
}
