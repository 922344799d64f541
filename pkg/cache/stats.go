package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/config"
	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var client *redis.Client

func Load() {
	client = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       config.ConfigInfo.Redis.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		hlog.Warnf("redis unavailable, stats cache disabled: %v", err)
		client = nil
	}
}

// Client exposes the shared connection for the distributed toggle lock.
func Client() *redis.Client {
	return client
}

// Stats adapts the package functions to the read-through cache surface the
// stats service consumes.
type Stats struct{}

func (Stats) Get(ctx context.Context, userID int64) (*model.ChannelStats, bool) {
	return GetChannelStats(ctx, userID)
}

func (Stats) Put(ctx context.Context, userID int64, stats *model.ChannelStats) {
	PutChannelStats(ctx, userID, stats)
}

func statsKey(userID int64) string {
	return fmt.Sprintf("channel_stats:%d", userID)
}

// GetChannelStats returns the cached stats view, or (nil, false) on miss or
// when redis is down. Stats may be up to the TTL stale; the counts are
// recomputed joins, so staleness is an accepted tradeoff.
func GetChannelStats(ctx context.Context, userID int64) (*model.ChannelStats, bool) {
	if client == nil {
		return nil, false
	}
	raw, err := client.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	stats := &model.ChannelStats{}
	if err := json.Unmarshal(raw, stats); err != nil {
		return nil, false
	}
	return stats, true
}

func PutChannelStats(ctx context.Context, userID int64, stats *model.ChannelStats) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := client.Set(ctx, statsKey(userID), raw,
		constants.StatsCacheTTLSeconds*time.Second).Err(); err != nil {
		hlog.Warnf("failed to cache channel stats: %v", err)
	}
}
