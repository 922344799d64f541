package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type VideoStatsReader interface {
	CountByUser(ctx context.Context, userId int64) (int64, error)
	SumViewsByUser(ctx context.Context, userId int64) (int64, error)
}

type LikeStatsReader interface {
	CountVideoLikesByOwner(ctx context.Context, ownerId int64) (int64, error)
}

type CommentStatsReader interface {
	CountByVideoOwner(ctx context.Context, ownerId int64) (int64, error)
}

// StatsCache is the optional read-through cache in front of the recomputed
// counts; a nil cache simply recomputes every call.
type StatsCache interface {
	Get(ctx context.Context, userId int64) (*model.ChannelStats, bool)
	Put(ctx context.Context, userId int64, stats *model.ChannelStats)
}

type ChannelStatsService struct {
	ctx      context.Context
	videos   VideoStatsReader
	likes    LikeStatsReader
	comments CommentStatsReader
	subs     SubscriptionCounter
	cache    StatsCache
}

func NewChannelStatsService(ctx context.Context, videos VideoStatsReader, likes LikeStatsReader,
	comments CommentStatsReader, subs SubscriptionCounter, cache StatsCache) *ChannelStatsService {
	return &ChannelStatsService{ctx: ctx, videos: videos, likes: likes, comments: comments, subs: subs, cache: cache}
}

// ChannelStats recomputes the dashboard counters by joining across the
// video, comment, like and subscription tables. Nothing here is maintained
// incrementally; the short cache TTL is the only smoothing applied.
func (s *ChannelStatsService) ChannelStats(ctx context.Context, userId int64) (*model.ChannelStats, error) {
	if userId <= 0 {
		return nil, errno.AuthErr
	}
	if s.cache != nil {
		if stats, ok := s.cache.Get(ctx, userId); ok {
			return stats, nil
		}
	}

	totalVideos, err := s.videos.CountByUser(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	totalViews, err := s.videos.SumViewsByUser(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	totalLikes, err := s.likes.CountVideoLikesByOwner(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	totalComments, err := s.comments.CountByVideoOwner(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	totalSubscribers, err := s.subs.CountSubscribers(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}

	stats := &model.ChannelStats{
		TotalVideos:      totalVideos,
		TotalViews:       totalViews,
		TotalVideoLikes:  totalLikes,
		TotalComments:    totalComments,
		TotalSubscribers: totalSubscribers,
	}
	if s.cache != nil {
		s.cache.Put(ctx, userId, stats)
	}
	return stats, nil
}
