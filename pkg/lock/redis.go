package lock

import (
	"context"
	"time"

	"VidTube.com/pkg/constants"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredislib "github.com/redis/go-redis/v9"
)

// RedisLocker is the cross-process KeyLocker, used when more than one API
// instance mutates the same edge tables.
type RedisLocker struct {
	rs *redsync.Redsync
}

func NewRedisLocker(client *goredislib.Client) *RedisLocker {
	pool := goredis.NewPool(client)
	return &RedisLocker{rs: redsync.New(pool)}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mu := l.rs.NewMutex("lock:"+key,
		redsync.WithExpiry(constants.ToggleLockExpirySec*time.Second),
		redsync.WithTries(16),
	)
	if err := mu.LockContext(ctx); err != nil {
		return nil, err
	}
	return func() { _, _ = mu.UnlockContext(ctx) }, nil
}

// Default is wired at startup: RedisLocker when redis is configured, the
// in-process KeyedMutex otherwise.
var Default KeyLocker = NewKeyedMutex()

func Init(client *goredislib.Client) {
	if client != nil {
		Default = NewRedisLocker(client)
	}
}
