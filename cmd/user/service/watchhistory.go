package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type WatchHistoryStore interface {
	ListWatchRecords(ctx context.Context, userId int64) ([]*model.WatchRecord, error)
	FindUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

type VideoReader interface {
	FindVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
}

type WatchHistoryService struct {
	ctx    context.Context
	users  WatchHistoryStore
	videos VideoReader
}

func NewWatchHistoryService(ctx context.Context, users WatchHistoryStore, videos VideoReader) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx, users: users, videos: videos}
}

// WatchHistory resolves the user's history into owner-joined videos. The
// IN-query comes back in arbitrary order, so the result is rebuilt by
// walking the stored sequence; deleted videos drop out without reordering
// the survivors.
func (s *WatchHistoryService) WatchHistory(ctx context.Context, userId int64) ([]*model.VideoWithOwner, error) {
	if userId <= 0 {
		return nil, errno.AuthErr
	}
	records, err := s.users.ListWatchRecords(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	videoIds := make([]int64, 0, len(records))
	for _, r := range records {
		videoIds = append(videoIds, r.VideoId)
	}
	videos, err := s.videos.FindVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	seenOwner := make(map[int64]bool, len(videos))
	for _, v := range videos {
		videoById[v.VideoId] = v
		if !seenOwner[v.UserId] {
			seenOwner[v.UserId] = true
			ownerIds = append(ownerIds, v.UserId)
		}
	}
	owners, err := s.users.FindUsersByIds(ctx, ownerIds)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	ownerById := make(map[int64]*model.UserLite, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u.Lite()
	}

	result := make([]*model.VideoWithOwner, 0, len(records))
	for _, r := range records {
		v, ok := videoById[r.VideoId]
		if !ok {
			continue
		}
		result = append(result, &model.VideoWithOwner{
			Video: *v,
			Owner: ownerById[v.UserId],
		})
	}
	return result, nil
}
