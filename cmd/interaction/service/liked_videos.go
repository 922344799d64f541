package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
)

type LikedVideoLister interface {
	ListVideoIdsLikedBy(ctx context.Context, userId int64) ([]int64, error)
}

type VideoReader interface {
	FindVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
}

type LikedVideosService struct {
	ctx    context.Context
	likes  LikedVideoLister
	videos VideoReader
}

func NewLikedVideosService(ctx context.Context, likes LikedVideoLister, videos VideoReader) *LikedVideosService {
	return &LikedVideosService{ctx: ctx, likes: likes, videos: videos}
}

// LikedVideos resolves every video the user has liked. Video deletion does
// not cascade into the like table, so edges can dangle; those are silently
// dropped here rather than failing the whole view.
func (s *LikedVideosService) LikedVideos(ctx context.Context, userId int64) ([]*model.Video, error) {
	if userId <= 0 {
		return nil, errno.AuthErr
	}
	ids, err := s.likes.ListVideoIdsLikedBy(ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	videos, err := s.videos.FindVideosByIds(ctx, ids)
	if err != nil {
		return nil, errors.WithMessage(errno.MysqlErr, err.Error())
	}
	byId := make(map[int64]*model.Video, len(videos))
	for _, v := range videos {
		byId[v.VideoId] = v
	}
	result := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if v, ok := byId[id]; ok {
			result = append(result, v)
		}
	}
	return result, nil
}
